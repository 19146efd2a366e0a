// Copyright 2026 The Forge Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor construction for the Forge
// library.
//
// # Overview
//
// Forge is the construction layer of an n-dimensional numeric array
// library: a set of factory functions that produce populated tensors
// of a declared shape and element type without explicit fill loops.
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Range and spacing generators (Arange, Linspace, Logspace, Geomspace)
//   - Structural matrix generators (Eye, Identity, Diag, Vander, Tri)
//   - Fill generators (Zeros, Ones, Full and their *Like variants)
//   - Uniform and normal random fills (RandRange, Rand, Randn)
//
// # Basic Usage
//
//	import (
//	    "github.com/forge-ml/forge/backend/cpu"
//	    "github.com/forge-ml/forge/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    ramp, err := tensor.Arange[int32](0, 10, backend)
//	    grid, err := tensor.Linspace(0, 1, 5, true, backend)
//	    id := tensor.Identity[float64](3, backend)
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType
// constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for masks and images)
//   - bool (boolean masks; excluded from the numeric generators)
//
// # Errors
//
// Invalid numeric requests surface as *DomainError (backwards
// ascending ranges, non-positive sample counts, zero steps, zero
// geometric endpoints); wrong-rank inputs surface as *ShapeError.
// Both are matched with errors.As. Validation is eager: a caller
// never receives a partially built tensor alongside an error.
//
// # Determinism
//
// Every generator is a pure function of its parameters. The random
// fills accept a *rand.Rand so seeded runs reproduce exactly.
package tensor
