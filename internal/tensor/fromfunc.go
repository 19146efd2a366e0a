package tensor

// FromFunc allocates a tensor of the given shape and fills it by
// invoking f once per multi-index position, in row-major order.
// The index slice passed to f is reused between calls; callers must
// copy it if they retain it.
//
// This is the indexed-construction primitive every structural
// generator in this package is built on.
//
// Example:
//
//	t := tensor.FromFunc(Shape{2, 3}, func(idx []int) float64 {
//		return float64(idx[0]*3 + idx[1])
//	}, backend)
func FromFunc[T DType, B Backend](shape Shape, f func(idx []int) T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	n := t.NumElements()
	if n == 0 {
		return t
	}

	data := t.Data()
	idx := make([]int, len(shape))
	for i := 0; i < n; i++ {
		data[i] = f(idx)
		// Advance the row-major odometer.
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return t
}

// FromFuncFlat allocates a tensor of the given shape and fills it by
// invoking f once per linear index, in increasing order.
func FromFuncFlat[T DType, B Backend](shape Shape, f func(i int) T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = f(i)
	}
	return t
}
