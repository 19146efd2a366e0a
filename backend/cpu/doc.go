// Copyright 2026 The Forge Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements the compute collaborator of the Forge
// construction layer:
//   - Element-wise binary arithmetic (Add, Sub, Mul, Div, Pow) with
//     NumPy-style broadcasting
//   - Scalar variants, including ScalarPow (base ** x) used by the
//     logarithmic spacing generator
//   - Element-wise Exp and Log for float tensors
//
// Element values are mutually independent, so large fill loops are
// distributed over a small worker pool; callers observe no ordering,
// only the final values.
//
// # Usage
//
//	import (
//	    "github.com/forge-ml/forge/backend/cpu"
//	    "github.com/forge-ml/forge/tensor"
//	)
//
//	backend := cpu.New()
//	x, err := tensor.Linspace(0, 1, 101, true, backend)
package cpu
