package tensor

import "math"

// ArangeStep creates a 1-D tensor holding the arithmetic progression
// start, start+step, start+2*step, ... stopping before stop.
//
// The element count is ceil(|(stop-start)/step|), computed in double
// precision before truncating to an index count; a count of zero
// yields an empty tensor. Each element is start + i*step, evaluated
// in double precision and then cast to T.
//
// Fails with a DomainError when step is zero, or when an ascending
// range is requested backwards (start > stop with step > 0).
//
// Example:
//
//	t, err := tensor.ArangeStep[int32](2, 10, 2, backend) // [2, 4, 6, 8]
func ArangeStep[T DType, B Backend](start, stop, step T, b B) (*Tensor[T, B], error) {
	startF := toFloat64(start)
	stopF := toFloat64(stop)
	stepF := toFloat64(step)

	if stepF == 0 {
		return nil, NewDomainError("arange", "step must be nonzero")
	}
	if startF > stopF && stepF > 0 {
		return nil, NewDomainError("arange", "start %v is greater than stop %v for positive step", start, stop)
	}

	count := int(math.Ceil(math.Abs((stopF - startF) / stepF)))
	if count < 0 {
		count = 0
	}

	return FromFuncFlat(Shape{count}, func(i int) T {
		return fromFloat64[T](startF + float64(i)*stepF)
	}, b), nil
}

// Arange creates a 1-D tensor with values from start to stop
// (exclusive) with a step of one.
//
// Example:
//
//	t, err := tensor.Arange[int32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](start, stop T, b B) (*Tensor[T, B], error) {
	return ArangeStep(start, stop, oneValue[T](), b)
}

// ArangeStop creates a 1-D tensor with values from zero to stop
// (exclusive) with a step of one.
//
// Example:
//
//	t, err := tensor.ArangeStop[float64](5, backend) // [0, 1, 2, 3, 4]
func ArangeStop[T DType, B Backend](stop T, b B) (*Tensor[T, B], error) {
	var zero T
	return ArangeStep(zero, stop, oneValue[T](), b)
}
