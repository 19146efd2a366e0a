package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, oneValue[T](), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// ZerosLike creates a zero-filled tensor with the shape of other.
// Only the shape of other is read, never its buffer.
func ZerosLike[T DType, B Backend](other *Tensor[T, B]) *Tensor[T, B] {
	return Zeros[T, B](other.Shape().Clone(), other.Backend())
}

// OnesLike creates a one-filled tensor with the shape of other.
func OnesLike[T DType, B Backend](other *Tensor[T, B]) *Tensor[T, B] {
	return Ones[T, B](other.Shape().Clone(), other.Backend())
}

// FullLike creates a constant-filled tensor with the shape of other.
func FullLike[T DType, B Backend](other *Tensor[T, B], value T) *Tensor[T, B] {
	return Full[T, B](other.Shape().Clone(), value, other.Backend())
}

// uniform draws from rng, falling back to the process-wide source.
// Note: math/rand (not crypto/rand) - appropriate for numeric work,
// and seedable for reproducible runs.
func uniform(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64() //nolint:gosec // G404: seedable math/rand intentionally
	}
	return rng.Float64()
}

// RandRange creates a tensor whose elements are sampled independently
// and uniformly from [low, high). The element type is inferred from
// the bound type. A zero-element shape returns an empty tensor without
// touching the random source. Pass rng == nil to use the process-wide
// source; a fixed-seed rng makes the result deterministic.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	t := tensor.RandRange[int32](0, 10, Shape{2, 3}, rng, backend)
func RandRange[T DType, B Backend](low, high T, shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	if len(data) == 0 {
		return t
	}

	lo := toFloat64(low)
	span := toFloat64(high) - lo
	for i := range data {
		data[i] = fromFloat64[T](lo + span*uniform(rng))
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Only works with float types.
//
// Example:
//
//	t := tensor.Rand[float32](Shape{10, 10}, nil, backend)
func Rand[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := range dataF32 {
			dataF32[i] = float32(uniform(rng))
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := range dataF64 {
			dataF64[i] = uniform(rng)
		}
	default:
		panic("Rand only supports float32 and float64 types")
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution
// (mean=0, std=1). Uses the Box-Muller transform.
// Only works with float types.
//
// Example:
//
//	t := tensor.Randn[float32](Shape{100, 100}, nil, backend)
func Randn[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := 0; i < len(dataF32); i += 2 {
			z0, z1 := boxMuller(rng)
			dataF32[i] = float32(z0)
			if i+1 < len(dataF32) {
				dataF32[i+1] = float32(z1)
			}
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := 0; i < len(dataF64); i += 2 {
			z0, z1 := boxMuller(rng)
			dataF64[i] = z0
			if i+1 < len(dataF64) {
				dataF64[i+1] = z1
			}
		}
	default:
		panic("Randn only supports float32 and float64 types")
	}
	return t
}

// boxMuller converts two uniform draws into two standard normal draws.
func boxMuller(rng *rand.Rand) (float64, float64) {
	u1 := uniform(rng)
	u2 := uniform(rng)
	r := math.Sqrt(-2.0 * math.Log(u1))
	return r * math.Cos(2.0*math.Pi*u2), r * math.Sin(2.0*math.Pi*u2)
}
