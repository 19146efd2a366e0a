// Copyright 2026 The Forge Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/forge-ml/forge/internal/tensor"

// Backend defines the interface that compute backends must implement.
// Backends handle the actual arithmetic for tensor operations; the
// construction functions compose them but never reach into backend
// internals.
//
// Implementations:
//   - backend/cpu: pure Go with parallel fill loops
//
// Example:
//
//	import (
//	    "github.com/forge-ml/forge/backend/cpu"
//	    "github.com/forge-ml/forge/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	y := x.MulScalar(2) // Uses backend.MulScalar under the hood
type Backend = tensor.Backend
