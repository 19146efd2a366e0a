package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual arithmetic for tensor operations; the
// construction functions in this package compose them but never reach
// into backend internals.
//
// Implementations:
//   - internal/backend/cpu: pure Go, parallel fill loops
//   - MockBackend: naive float64 reference used by package tests
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor
	Pow(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with a scalar of the tensor's
	// element type).
	AddScalar(x *RawTensor, scalar any) *RawTensor // x + s
	SubScalar(x *RawTensor, scalar any) *RawTensor // x - s
	MulScalar(x *RawTensor, scalar any) *RawTensor // x * s
	DivScalar(x *RawTensor, scalar any) *RawTensor // x / s
	PowScalar(x *RawTensor, scalar any) *RawTensor // x ** s
	ScalarPow(scalar any, x *RawTensor) *RawTensor // s ** x

	// Math operations (element-wise, float tensors only).
	Exp(x *RawTensor) *RawTensor // e ** x
	Log(x *RawTensor) *RawTensor // natural logarithm

	// Metadata.
	Name() string
	Device() Device
}
