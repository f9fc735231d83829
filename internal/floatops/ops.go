// Package floatops provides generic SIMD slice operations for float32 and
// float64 coordinate pipelines. It lets a single generic rotation kernel
// serve both precisions without duplicating the hot loops.
package floatops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated slice operations for type F.
// Function pointers allow type-safe generic code while delegating
// to optimized width-specific implementations.
type Ops[F Float] struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	// dst may be the same slice as a for in-place scaling.
	Scale func(dst, a []F, s F)
}

// Pre-instantiated operations for each float width.
// Package-level variables avoid repeated allocation.
var (
	ops32 = Ops[float32]{
		Scale: f32.Scale,
	}
	ops64 = Ops[float64]{
		Scale: f64.Scale,
	}
)

// For returns the Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("floatops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("floatops: type assertion failed for float64")
		}
		return ops
	default:
		panic("floatops: unsupported float type")
	}
}
