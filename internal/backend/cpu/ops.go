package cpu

import (
	"math"

	"github.com/forge-ml/forge/internal/parallel"
	"github.com/forge-ml/forge/internal/tensor"
)

// binOp identifies an element-wise arithmetic operation.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opPow
)

// number is the constraint for dtypes with arithmetic kernels.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// apply evaluates a single binary operation. Pow is computed in
// double precision and narrowed back to T.
func apply[T number](op binOp, x, y T) T {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		return x / y
	case opPow:
		return T(math.Pow(float64(x), float64(y)))
	default:
		panic("unknown binary op")
	}
}

// binaryKernel fills dst with op applied pairwise over a and b.
// The fast path handles identical shapes; otherwise per-element source
// indices are recovered through broadcast strides.
func binaryKernel[T number](dst, a, b []T, aShape, bShape, outShape tensor.Shape, needsBroadcast bool, op binOp, cfg parallel.Config) {
	if !needsBroadcast && aShape.Equal(bShape) {
		parallel.For(len(dst), func(i int) {
			dst[i] = apply(op, a[i], b[i])
		}, cfg)
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	parallel.For(len(dst), func(i int) {
		ai := flatIndex(i, outStrides, aStrides)
		bi := flatIndex(i, outStrides, bStrides)
		dst[i] = apply(op, a[ai], b[bi])
	}, cfg)
}

// scalarKernel fills dst with op applied between each source element
// and a scalar. With scalarOnLeft the scalar becomes the left operand,
// which matters for sub, div and pow.
func scalarKernel[T number](dst, src []T, s T, op binOp, scalarOnLeft bool, cfg parallel.Config) {
	if scalarOnLeft {
		parallel.For(len(dst), func(i int) {
			dst[i] = apply(op, s, src[i])
		}, cfg)
		return
	}
	parallel.For(len(dst), func(i int) {
		dst[i] = apply(op, src[i], s)
	}, cfg)
}
