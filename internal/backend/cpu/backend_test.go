package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-ml/forge/internal/tensor"
)

func newRaw(t *testing.T, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	require.NoError(t, err)
	return raw
}

func newFloat64(t *testing.T, shape tensor.Shape, data []float64) *tensor.RawTensor {
	t.Helper()
	raw := newRaw(t, shape, tensor.Float64)
	copy(raw.AsFloat64(), data)
	return raw
}

func TestMetadata(t *testing.T) {
	backend := New()

	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestAdd(t *testing.T) {
	backend := New()

	a := newFloat64(t, tensor.Shape{3}, []float64{1, 2, 3})
	b := newFloat64(t, tensor.Shape{3}, []float64{10, 20, 30})

	got := backend.Add(a, b)

	assert.Equal(t, []float64{11, 22, 33}, got.AsFloat64())
}

func TestAddInt32(t *testing.T) {
	backend := New()

	a := newRaw(t, tensor.Shape{4}, tensor.Int32)
	b := newRaw(t, tensor.Shape{4}, tensor.Int32)
	copy(a.AsInt32(), []int32{1, 2, 3, 4})
	copy(b.AsInt32(), []int32{10, 10, 10, 10})

	got := backend.Add(a, b)

	assert.Equal(t, []int32{11, 12, 13, 14}, got.AsInt32())
}

func TestSubMulDiv(t *testing.T) {
	backend := New()

	a := newFloat64(t, tensor.Shape{2}, []float64{10, 9})
	b := newFloat64(t, tensor.Shape{2}, []float64{4, 3})

	assert.Equal(t, []float64{6, 6}, backend.Sub(a, b).AsFloat64())
	assert.Equal(t, []float64{40, 27}, backend.Mul(a, b).AsFloat64())
	assert.Equal(t, []float64{2.5, 3}, backend.Div(a, b).AsFloat64())
}

func TestPow(t *testing.T) {
	backend := New()

	a := newFloat64(t, tensor.Shape{3}, []float64{2, 3, 4})
	b := newFloat64(t, tensor.Shape{3}, []float64{3, 2, 0.5})

	got := backend.Pow(a, b).AsFloat64()

	want := []float64{8, 9, 2}
	for i, v := range got {
		assert.InDelta(t, want[i], v, 1e-9)
	}
}

func TestAddBroadcast(t *testing.T) {
	backend := New()

	col := newFloat64(t, tensor.Shape{3, 1}, []float64{1, 2, 3})
	row := newFloat64(t, tensor.Shape{1, 2}, []float64{10, 20})

	got := backend.Add(col, row)

	assert.Equal(t, tensor.Shape{3, 2}, got.Shape())
	assert.Equal(t, []float64{11, 21, 12, 22, 13, 23}, got.AsFloat64())
}

func TestAddBroadcastMissingDim(t *testing.T) {
	backend := New()

	m := newFloat64(t, tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	v := newFloat64(t, tensor.Shape{3}, []float64{10, 20, 30})

	got := backend.Add(m, v)

	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36}, got.AsFloat64())
}

func TestIncompatibleShapesPanic(t *testing.T) {
	backend := New()

	a := newRaw(t, tensor.Shape{3, 4}, tensor.Float64)
	b := newRaw(t, tensor.Shape{3, 5}, tensor.Float64)

	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestScalarOps(t *testing.T) {
	backend := New()

	x := newFloat64(t, tensor.Shape{3}, []float64{1, 2, 3})

	assert.Equal(t, []float64{11, 12, 13}, backend.AddScalar(x, 10.0).AsFloat64())
	assert.Equal(t, []float64{0, 1, 2}, backend.SubScalar(x, 1.0).AsFloat64())
	assert.Equal(t, []float64{2, 4, 6}, backend.MulScalar(x, 2.0).AsFloat64())
	assert.Equal(t, []float64{0.5, 1, 1.5}, backend.DivScalar(x, 2.0).AsFloat64())
}

func TestPowScalar(t *testing.T) {
	backend := New()

	x := newFloat64(t, tensor.Shape{3}, []float64{1, 2, 3})

	got := backend.PowScalar(x, 2.0).AsFloat64()

	assert.Equal(t, []float64{1, 4, 9}, got)
}

func TestScalarPow(t *testing.T) {
	backend := New()

	exponents := newFloat64(t, tensor.Shape{4}, []float64{0, 1, 2, 3})

	got := backend.ScalarPow(10.0, exponents).AsFloat64()

	want := []float64{1, 10, 100, 1000}
	for i, v := range got {
		assert.InDelta(t, want[i], v, 1e-9)
	}
}

func TestScalarTypeMismatchPanics(t *testing.T) {
	backend := New()

	x := newRaw(t, tensor.Shape{2}, tensor.Float32)

	// float64 scalar against a float32 tensor.
	assert.Panics(t, func() { backend.MulScalar(x, 2.0) })
}

func TestExpLog(t *testing.T) {
	backend := New()

	x := newFloat64(t, tensor.Shape{3}, []float64{0, 1, 2})

	exp := backend.Exp(x).AsFloat64()
	assert.InDelta(t, 1.0, exp[0], 1e-12)
	assert.InDelta(t, 2.718281828459045, exp[1], 1e-12)

	roundTrip := backend.Log(backend.Exp(x)).AsFloat64()
	for i, v := range roundTrip {
		assert.InDelta(t, x.AsFloat64()[i], v, 1e-12)
	}
}

func TestLogUnsupportedDTypePanics(t *testing.T) {
	backend := New()

	x := newRaw(t, tensor.Shape{2}, tensor.Int32)

	assert.Panics(t, func() { backend.Log(x) })
}

func TestLargeTensorParallelPath(t *testing.T) {
	backend := New()

	// Big enough to cross the worker-pool chunk threshold.
	n := 10000
	a := newRaw(t, tensor.Shape{n}, tensor.Float64)
	b := newRaw(t, tensor.Shape{n}, tensor.Float64)
	for i := 0; i < n; i++ {
		a.AsFloat64()[i] = float64(i)
		b.AsFloat64()[i] = float64(2 * i)
	}

	got := backend.Add(a, b).AsFloat64()

	for i := 0; i < n; i++ {
		require.Equal(t, float64(3*i), got[i])
	}
}
