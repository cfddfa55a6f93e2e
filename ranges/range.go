// Package ranges describes size dependent bounds for generated numbers.
//
// A Range pairs an origin, the value generated numbers shrink towards,
// with a function from the current Size to a pair of bounds.
// Scaling functions let the runner grow the generated values as the trials progress.
package ranges

import (
	"golang.org/x/exp/constraints"
)

// The size parameter of a generator.
//
// Conventionally in the range 0 to MaxSize.
type Size int

const MaxSize Size = 99

// Types supported by the numeric range constructors
type Number interface {
	constraints.Integer | constraints.Float
}

type Range[A any] struct {
	origin A
	bounds func(Size) (A, A)
}

// Create a range with the provided origin and bound function.
//
// The bound function must be pure and total for sizes between 0 and MaxSize.
// The bounds it returns need not be ordered.
func New[A any](origin A, bounds func(Size) (A, A)) Range[A] {
	return Range[A]{origin: origin, bounds: bounds}
}

// The value generated numbers shrink towards.
func (r Range[A]) Origin() A {
	return r.origin
}

// The bounds of the range for the provided size.
func (r Range[A]) Bounds(size Size) (A, A) {
	return r.bounds(size)
}

// Returns the smaller of the bounds for the provided size.
func LowerBound[A constraints.Ordered](size Size, r Range[A]) A {
	x, y := r.Bounds(size)
	return min(x, y)
}

// Returns the larger of the bounds for the provided size.
func UpperBound[A constraints.Ordered](size Size, r Range[A]) A {
	x, y := r.Bounds(size)
	return max(x, y)
}

// Apply f to the origin and to both bounds.
func Map[A, B any](r Range[A], f func(A) B) Range[B] {
	return Range[B]{
		origin: f(r.origin),
		bounds: func(sz Size) (B, B) {
			x, y := r.bounds(sz)
			return f(x), f(y)
		},
	}
}

// A range containing a single value.
func Singleton[A any](x A) Range[A] {
	return ConstantFrom(x, x, x)
}

// A range whose bounds do not depend on the size. Shrinks towards x.
func Constant[A any](x, y A) Range[A] {
	return ConstantFrom(x, x, y)
}

// A range whose bounds do not depend on the size. Shrinks towards z.
func ConstantFrom[A any](z, x, y A) Range[A] {
	return Range[A]{
		origin: z,
		bounds: func(Size) (A, A) { return x, y },
	}
}

// A constant range spanning every value of the type. Shrinks towards zero.
func ConstantBounded[A Number]() Range[A] {
	return ConstantFrom[A](0, MinOf[A](), MaxOf[A]())
}

// A range whose bounds grow linearly with the size. Shrinks towards x.
func Linear[A Number](x, y A) Range[A] {
	return LinearFrom(x, x, y)
}

// A range whose bounds grow linearly with the size, starting from z.
//
// The scaled bounds are always clamped to lie between x and y.
func LinearFrom[A Number](z, x, y A) Range[A] {
	return Range[A]{
		origin: z,
		bounds: func(sz Size) (A, A) {
			return Clamp(x, y, ScaleLinear(sz, z, x)), Clamp(x, y, ScaleLinear(sz, z, y))
		},
	}
}

// A linear range spanning every value of the type. Shrinks towards zero.
func LinearBounded[A Number]() Range[A] {
	return LinearFrom[A](0, MinOf[A](), MaxOf[A]())
}

// A range whose bounds grow exponentially with the size. Shrinks towards x.
func Exponential[A Number](x, y A) Range[A] {
	return ExponentialFrom(x, x, y)
}

// A range whose bounds grow exponentially with the size, starting from z.
//
// The scaled bounds are always clamped to lie between x and y.
func ExponentialFrom[A Number](z, x, y A) Range[A] {
	return Range[A]{
		origin: z,
		bounds: func(sz Size) (A, A) {
			return Clamp(x, y, ScaleExponential(sz, z, x)), Clamp(x, y, ScaleExponential(sz, z, y))
		},
	}
}

// An exponential range spanning every value of the type. Shrinks towards zero.
func ExponentialBounded[A Number]() Range[A] {
	return ExponentialFrom[A](0, MinOf[A](), MaxOf[A]())
}

// Clamp n to lie between x and y. The bounds may be given in any order.
func Clamp[A constraints.Ordered](x, y, n A) A {
	if x > y {
		return min(x, max(y, n))
	}
	return min(y, max(x, n))
}
