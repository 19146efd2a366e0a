package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/forge-ml/forge/backend/cpu"
	"github.com/forge-ml/forge/tensor"
)

// spacingParams holds the flags shared by the spacing subcommands.
type spacingParams struct {
	start    float64
	stop     float64
	num      int
	endpoint bool
}

// registerSpacingFlags wires the shared spacing flags into fs.
func registerSpacingFlags(fs *pflag.FlagSet, p *spacingParams) {
	fs.Float64Var(&p.start, "start", 0, "First bound of the sequence")
	fs.Float64Var(&p.stop, "stop", 1, "Second bound of the sequence")
	fs.IntVar(&p.num, "num", tensor.DefaultSpacingNum, "Number of samples")
	fs.BoolVar(&p.endpoint, "endpoint", true, "Include stop as the final sample")
}

func newArangeCmd() *cobra.Command {
	var start, stop, step float64

	cmd := &cobra.Command{
		Use:   "arange",
		Short: "Print an arithmetic progression",
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := tensor.ArangeStep(start, stop, step, cpu.New())
			if err != nil {
				return err
			}
			slog.Debug("generated", "shape", t.Shape())
			printVector(t.Data())
			return nil
		},
	}

	cmd.Flags().Float64Var(&start, "start", 0, "First value of the progression")
	cmd.Flags().Float64Var(&stop, "stop", 0, "Exclusive upper bound")
	cmd.Flags().Float64Var(&step, "step", 1, "Distance between consecutive values")
	_ = cmd.MarkFlagRequired("stop")

	return cmd
}

func newLinspaceCmd() *cobra.Command {
	var p spacingParams

	cmd := &cobra.Command{
		Use:   "linspace",
		Short: "Print evenly spaced samples between two bounds",
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := tensor.Linspace(p.start, p.stop, p.num, p.endpoint, cpu.New())
			if err != nil {
				return err
			}
			slog.Debug("generated", "shape", t.Shape())
			printVector(t.Data())
			return nil
		},
	}

	registerSpacingFlags(cmd.Flags(), &p)
	return cmd
}

func newLogspaceCmd() *cobra.Command {
	var p spacingParams
	var base float64

	cmd := &cobra.Command{
		Use:   "logspace",
		Short: "Print samples spaced evenly on a log scale",
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := tensor.Logspace(p.start, p.stop, p.num, p.endpoint, base, cpu.New())
			if err != nil {
				return err
			}
			slog.Debug("generated", "shape", t.Shape())
			printVector(t.Data())
			return nil
		},
	}

	registerSpacingFlags(cmd.Flags(), &p)
	cmd.Flags().Float64Var(&base, "base", 10, "Base of the log space")
	return cmd
}

func newGeomspaceCmd() *cobra.Command {
	var p spacingParams

	cmd := &cobra.Command{
		Use:   "geomspace",
		Short: "Print samples spaced evenly on a geometric progression",
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := tensor.Geomspace(p.start, p.stop, p.num, p.endpoint, cpu.New())
			if err != nil {
				return err
			}
			slog.Debug("generated", "shape", t.Shape())
			printVector(t.Data())
			return nil
		},
	}

	registerSpacingFlags(cmd.Flags(), &p)
	return cmd
}

func newEyeCmd() *cobra.Command {
	var rows, cols, offset int

	cmd := &cobra.Command{
		Use:   "eye",
		Short: "Print a matrix with ones on a diagonal",
		RunE: func(_ *cobra.Command, _ []string) error {
			if cols <= 0 {
				cols = rows
			}
			t := tensor.Eye[float64](rows, cols, offset, cpu.New())
			slog.Debug("generated", "shape", t.Shape())
			printMatrix(t.Data(), rows, cols)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "Number of rows")
	cmd.Flags().IntVar(&cols, "cols", 0, "Number of columns (defaults to rows)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Diagonal offset (positive shifts right)")
	_ = cmd.MarkFlagRequired("rows")

	return cmd
}

func newTriCmd() *cobra.Command {
	var rows, cols, offset int

	cmd := &cobra.Command{
		Use:   "tri",
		Short: "Print a lower-triangular mask",
		RunE: func(_ *cobra.Command, _ []string) error {
			if cols <= 0 {
				cols = rows
			}
			t := tensor.Tri[float64](rows, cols, offset, cpu.New())
			slog.Debug("generated", "shape", t.Shape())
			printMatrix(t.Data(), rows, cols)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "Number of rows")
	cmd.Flags().IntVar(&cols, "cols", 0, "Number of columns (defaults to rows)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Diagonal offset")
	_ = cmd.MarkFlagRequired("rows")

	return cmd
}

func newVanderCmd() *cobra.Command {
	var values []float64
	var cols int
	var increasing bool

	cmd := &cobra.Command{
		Use:   "vander",
		Short: "Print the Vandermonde matrix of a vector",
		RunE: func(_ *cobra.Command, _ []string) error {
			backend := cpu.New()
			x, err := tensor.FromSlice(values, tensor.Shape{len(values)}, backend)
			if err != nil {
				return err
			}
			t, err := tensor.Vander(x, cols, increasing)
			if err != nil {
				return err
			}
			slog.Debug("generated", "shape", t.Shape())
			n := t.Shape()[1]
			printMatrix(t.Data(), len(values), n)
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&values, "values", nil, "Base vector elements")
	cmd.Flags().IntVar(&cols, "cols", 0, "Number of columns (defaults to the vector length)")
	cmd.Flags().BoolVar(&increasing, "increasing", false, "Order powers left to right")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}
