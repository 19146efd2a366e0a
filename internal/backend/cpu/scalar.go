package cpu

import (
	"fmt"

	"github.com/forge-ml/forge/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.
// The scalar must be of the tensor's element type.

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar("addScalar", x, scalar, opAdd, false)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar("subScalar", x, scalar, opSub, false)
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar("mulScalar", x, scalar, opMul, false)
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar("divScalar", x, scalar, opDiv, false)
}

// PowScalar raises each element of the tensor to a scalar power.
func (cpu *CPUBackend) PowScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar("powScalar", x, scalar, opPow, false)
}

// ScalarPow raises a scalar base to the power of each element:
// out[i] = scalar ** x[i].
func (cpu *CPUBackend) ScalarPow(scalar any, x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.scalar("scalarPow", x, scalar, opPow, true)
}

// scalar allocates the result and dispatches to the typed kernel.
func (cpu *CPUBackend) scalar(name string, x *tensor.RawTensor, scalar any, op binOp, scalarOnLeft bool) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		scalarKernel(result.AsFloat32(), x.AsFloat32(), toScalar[float32](name, scalar), op, scalarOnLeft, cpu.workers)
	case tensor.Float64:
		scalarKernel(result.AsFloat64(), x.AsFloat64(), toScalar[float64](name, scalar), op, scalarOnLeft, cpu.workers)
	case tensor.Int32:
		scalarKernel(result.AsInt32(), x.AsInt32(), toScalar[int32](name, scalar), op, scalarOnLeft, cpu.workers)
	case tensor.Int64:
		scalarKernel(result.AsInt64(), x.AsInt64(), toScalar[int64](name, scalar), op, scalarOnLeft, cpu.workers)
	case tensor.Uint8:
		scalarKernel(result.AsUint8(), x.AsUint8(), toScalar[uint8](name, scalar), op, scalarOnLeft, cpu.workers)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

// toScalar asserts that the scalar matches the tensor's element type.
func toScalar[T number](name string, scalar any) T {
	v, ok := scalar.(T)
	if !ok {
		panic(fmt.Sprintf("%s: scalar type %T does not match tensor dtype", name, scalar))
	}
	return v
}
