// Copyright 2026 The Forge Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor construction in
// the Forge library. The heavy lifting lives in internal/tensor; this
// package re-exports the types and factory functions.
package tensor

import (
	"math/rand"

	"github.com/forge-ml/forge/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic tensor parameterized by element type and backend.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// DomainError reports an invalid numeric request to a generator.
type DomainError = tensor.DomainError

// ShapeError reports a wrong-rank input where a 1-D tensor was required.
type ShapeError = tensor.ShapeError

// DefaultSpacingNum is the conventional sample count for the spacing
// generators.
const DefaultSpacingNum = tensor.DefaultSpacingNum

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation
// functions like Zeros, Arange, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// FromFunc allocates a tensor and fills it by invoking f once per
// multi-index position, in row-major order.
//
// Example:
//
//	x := tensor.FromFunc(tensor.Shape{2, 2}, func(idx []int) int32 {
//	    return int32(idx[0] + idx[1])
//	}, backend)
func FromFunc[T DType, B Backend](shape Shape, f func(idx []int) T, b B) *Tensor[T, B] {
	return tensor.FromFunc[T, B](shape, f, b)
}

// FromFuncFlat allocates a tensor and fills it by invoking f once per
// linear index, in increasing order.
func FromFuncFlat[T DType, B Backend](shape Shape, f func(i int) T, b B) *Tensor[T, B] {
	return tensor.FromFuncFlat[T, B](shape, f, b)
}

// Rand creates a tensor filled with random values from the uniform
// distribution over [0, 1). Pass rng == nil for the process-wide source.
func Rand[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, rng, b)
}

// Randn creates a tensor filled with random values from the standard
// normal distribution.
func Randn[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, rng, b)
}

// RandRange creates a tensor sampled uniformly from [low, high); the
// element type is inferred from the bounds.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	x := tensor.RandRange[int32](0, 10, tensor.Shape{2, 3}, rng, backend)
func RandRange[T DType, B Backend](low, high T, shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.RandRange[T, B](low, high, shape, rng, b)
}
