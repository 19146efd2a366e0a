// Copyright 2026 The Forge Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/forge-ml/forge/internal/tensor"
)

// Fill generators

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// ZerosLike creates a zero-filled tensor with the shape of other.
// Only the shape of other is read, never its buffer.
func ZerosLike[T DType, B Backend](other *Tensor[T, B]) *Tensor[T, B] {
	return tensor.ZerosLike[T, B](other)
}

// OnesLike creates a one-filled tensor with the shape of other.
func OnesLike[T DType, B Backend](other *Tensor[T, B]) *Tensor[T, B] {
	return tensor.OnesLike[T, B](other)
}

// FullLike creates a constant-filled tensor with the shape of other.
func FullLike[T DType, B Backend](other *Tensor[T, B], value T) *Tensor[T, B] {
	return tensor.FullLike[T, B](other, value)
}

// Range generators

// ArangeStop creates a 1-D tensor with values from zero to stop
// (exclusive) with a step of one.
//
// Example:
//
//	x, err := tensor.ArangeStop[float64](5, backend) // [0, 1, 2, 3, 4]
func ArangeStop[T DType, B Backend](stop T, b B) (*Tensor[T, B], error) {
	return tensor.ArangeStop[T, B](stop, b)
}

// Arange creates a 1-D tensor with values from start to stop
// (exclusive) with a step of one.
//
// Example:
//
//	x, err := tensor.Arange[int32](0, 10, backend) // [0, 1, ..., 9]
func Arange[T DType, B Backend](start, stop T, b B) (*Tensor[T, B], error) {
	return tensor.Arange[T, B](start, stop, b)
}

// ArangeStep creates a 1-D tensor holding the arithmetic progression
// start, start+step, ... stopping before stop. Fails with a
// DomainError for a zero step or a backwards ascending range.
//
// Example:
//
//	x, err := tensor.ArangeStep[int32](2, 10, 2, backend) // [2, 4, 6, 8]
func ArangeStep[T DType, B Backend](start, stop, step T, b B) (*Tensor[T, B], error) {
	return tensor.ArangeStep[T, B](start, stop, step, b)
}

// Spacing generators

// Linspace creates num evenly spaced float64 samples between start
// and stop. With endpoint set, the literal stop value is the final
// sample. When num is 1 the single sample is the stop value.
//
// Example:
//
//	x, err := tensor.Linspace(0, 1, 5, true, backend) // [0, 0.25, 0.5, 0.75, 1]
func Linspace[B Backend](start, stop float64, num int, endpoint bool, b B) (*Tensor[float64, B], error) {
	return tensor.Linspace[B](start, stop, num, endpoint, b)
}

// Logspace creates num float64 samples spaced evenly on a logarithmic
// scale: base raised to each linearly spaced exponent between start
// and stop.
//
// Example:
//
//	x, err := tensor.Logspace(0, 2, 3, true, 10, backend) // [1, 10, 100]
func Logspace[B Backend](start, stop float64, num int, endpoint bool, base float64, b B) (*Tensor[float64, B], error) {
	return tensor.Logspace[B](start, stop, num, endpoint, base, b)
}

// Geomspace creates num float64 samples spaced evenly on a geometric
// progression between the endpoint values start and stop.
//
// Example:
//
//	x, err := tensor.Geomspace(1, 1000, 4, true, backend) // [1, 10, 100, 1000]
func Geomspace[B Backend](start, stop float64, num int, endpoint bool, b B) (*Tensor[float64, B], error) {
	return tensor.Geomspace[B](start, stop, num, endpoint, b)
}

// Structural matrix generators

// Eye creates an m×n matrix with ones on the k-th diagonal.
//
// Example:
//
//	x := tensor.Eye[float32](3, 4, 1, backend)
func Eye[T DType, B Backend](m, n, k int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](m, n, k, b)
}

// Identity creates the n×n identity matrix.
func Identity[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Identity[T, B](n, b)
}

// Tri creates an n×m lower-triangular mask shifted by k.
//
// Example:
//
//	x := tensor.Tri[int32](3, 3, 0, backend) // [[1,0,0],[1,1,0],[1,1,1]]
func Tri[T DType, B Backend](n, m, k int, b B) *Tensor[T, B] {
	return tensor.Tri[T, B](n, m, k, b)
}

// Diag creates a square matrix with the elements of v on the k-th
// diagonal. Fails with a ShapeError if v has rank > 1.
func Diag[T DType, B Backend](v *Tensor[T, B], k int) (*Tensor[T, B], error) {
	return tensor.Diag[T, B](v, k)
}

// Vander creates the Vandermonde matrix of a 1-D tensor. Passing
// n <= 0 uses the length of x. Fails with a ShapeError if x has
// rank > 1.
func Vander[T DType, B Backend](x *Tensor[T, B], n int, increasing bool) (*Tensor[T, B], error) {
	return tensor.Vander[T, B](x, n, increasing)
}
