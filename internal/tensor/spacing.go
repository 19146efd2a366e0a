package tensor

import "math"

// DefaultSpacingNum is the conventional sample count for the spacing
// generators. Go has no default arguments, so callers wanting the
// classic behavior pass this explicitly.
const DefaultSpacingNum = 50

// Linspace creates a 1-D float64 tensor of num evenly spaced samples
// between start and stop. When endpoint is true the literal stop value
// is the final sample; otherwise the interval is half-open.
//
// All arithmetic is performed in double precision regardless of the
// caller's nominal element type, and the result is always float64.
// The samples are built from an index ramp via whole-tensor scalar
// arithmetic; with endpoint set, the last sample is overwritten with
// the literal stop to cancel accumulated floating-point drift.
//
// When num is 1 the single sample is start + (stop - start), i.e. the
// stop value. This deliberately differs from libraries that return
// start for a one-sample request.
//
// Fails with a DomainError when num is not positive, or when the
// computed step is zero (start == stop with more than one sample
// demanded).
//
// Example:
//
//	t, err := tensor.Linspace(0, 1, 5, true, backend) // [0, 0.25, 0.5, 0.75, 1]
func Linspace[B Backend](start, stop float64, num int, endpoint bool, b B) (*Tensor[float64, B], error) {
	if num <= 0 {
		return nil, NewDomainError("linspace", "number of samples must be positive, got %d", num)
	}

	if num == 1 {
		return Full[float64, B](Shape{1}, start+(stop-start), b), nil
	}

	div := num
	if endpoint {
		div = num - 1
	}
	step := (stop - start) / float64(div)
	if step == 0 {
		return nil, NewDomainError("linspace", "zero step: cannot spread %d samples between %v and %v", num, start, stop)
	}

	ramp, err := ArangeStop(float64(num), b)
	if err != nil {
		return nil, err
	}
	out := ramp.MulScalar(step).AddScalar(start)

	if endpoint {
		out.Data()[num-1] = stop
	}
	return out, nil
}

// Logspace creates a 1-D float64 tensor of num samples spaced evenly
// on a logarithmic scale: base raised to each of the linearly spaced
// exponents between start and stop. start and stop are exponents, not
// endpoint values.
//
// Example:
//
//	t, err := tensor.Logspace(0, 2, 3, true, 10, backend) // [1, 10, 100]
func Logspace[B Backend](start, stop float64, num int, endpoint bool, base float64, b B) (*Tensor[float64, B], error) {
	lin, err := Linspace(start, stop, num, endpoint, b)
	if err != nil {
		return nil, err
	}
	return lin.ScalarPow(base), nil
}

// Geomspace creates a 1-D float64 tensor of num samples spaced evenly
// on a geometric progression between start and stop (both endpoint
// values, unlike Logspace). Bounds that are both negative are allowed:
// the sequence is computed in the positive domain and negated.
//
// Fails with a DomainError when either bound is zero (no geometric
// progression contains zero) or when the bounds have mixed signs,
// which would require a logarithm of a negative number.
//
// Example:
//
//	t, err := tensor.Geomspace(1, 1000, 4, true, backend) // [1, 10, 100, 1000]
func Geomspace[B Backend](start, stop float64, num int, endpoint bool, b B) (*Tensor[float64, B], error) {
	if start == 0 || stop == 0 {
		return nil, NewDomainError("geomspace", "geometric sequence cannot contain zero")
	}
	if (start < 0) != (stop < 0) {
		return nil, NewDomainError("geomspace", "bounds %v and %v have mixed signs", start, stop)
	}

	negative := start < 0
	if negative {
		start, stop = -start, -stop
	}

	out, err := Logspace(math.Log10(start), math.Log10(stop), num, endpoint, 10, b)
	if err != nil {
		return nil, err
	}
	if negative {
		out = out.MulScalar(-1)
	}
	return out, nil
}
