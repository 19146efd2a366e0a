package tensor

import "math"

// Eye creates an m×n matrix with ones on the k-th diagonal and zeros
// elsewhere. Positive k shifts the diagonal of ones to the right,
// negative k to the left.
//
// Example:
//
//	t := tensor.Eye[float32](3, 4, 1, backend) // ones at (0,1), (1,2), (2,3)
func Eye[T DType, B Backend](m, n, k int, b B) *Tensor[T, B] {
	var zero T
	one := oneValue[T]()
	return FromFunc(Shape{m, n}, func(idx []int) T {
		if idx[0] == idx[1]-k {
			return one
		}
		return zero
	}, b)
}

// Identity creates the n×n identity matrix.
//
// Example:
//
//	t := tensor.Identity[float64](3, backend)
func Identity[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return Eye[T, B](n, n, 0, b)
}

// Tri creates an n×m lower-triangular mask: ones at and below the
// k-th diagonal, zeros above it.
//
// Example:
//
//	t := tensor.Tri[int32](3, 3, 0, backend) // [[1,0,0],[1,1,0],[1,1,1]]
func Tri[T DType, B Backend](n, m, k int, b B) *Tensor[T, B] {
	var zero T
	one := oneValue[T]()
	return FromFunc(Shape{n, m}, func(idx []int) T {
		if idx[0] >= idx[1]-k {
			return one
		}
		return zero
	}, b)
}

// Diag creates an n×n matrix (n = length of v) with the elements of v
// placed along the k-th diagonal and zeros elsewhere. The source is
// read through a forward-only cursor over its flat element sequence,
// advanced exactly once per diagonal cell in row-major visit order;
// with k == 0 the source is consumed exactly once, left to right.
//
// Fails with a ShapeError if v has rank > 1.
//
// Example:
//
//	v, _ := tensor.FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
//	t, err := tensor.Diag(v, 0) // 3×3 with 1, 2, 3 on the main diagonal
func Diag[T DType, B Backend](v *Tensor[T, B], k int) (*Tensor[T, B], error) {
	if len(v.Shape()) > 1 {
		return nil, NewShapeError("diag", 1, len(v.Shape()))
	}

	n := v.NumElements()
	out := Zeros[T, B](Shape{n, n}, v.Backend())
	src := v.Data()
	cursor := 0
	for i := 0; i < n; i++ {
		j := i + k
		if j < 0 || j >= n {
			continue
		}
		out.Set(src[cursor], i, j)
		cursor++
	}
	return out, nil
}

// Vander creates the n-column Vandermonde matrix of a 1-D tensor x:
// the value at (i, j) is x[i] raised to the power n-j-1, or j when
// increasing is true. Passing n <= 0 uses the length of x, producing
// the classic square Vandermonde matrix.
//
// Fails with a ShapeError if x has rank > 1.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
//	t, err := tensor.Vander(x, 0, false) // rows [1,1,1], [4,2,1], [9,3,1]
func Vander[T DType, B Backend](x *Tensor[T, B], n int, increasing bool) (*Tensor[T, B], error) {
	if len(x.Shape()) > 1 {
		return nil, NewShapeError("vander", 1, len(x.Shape()))
	}

	rows := x.NumElements()
	if n <= 0 {
		n = rows
	}
	src := x.Data()

	return FromFunc(Shape{rows, n}, func(idx []int) T {
		offset := n - idx[1] - 1
		if increasing {
			offset = idx[1]
		}
		base := toFloat64(src[idx[0]])
		return fromFloat64[T](math.Pow(base, float64(offset)))
	}, x.Backend()), nil
}
