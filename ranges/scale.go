package ranges

import (
	"math"
	"math/big"
	"unsafe"
)

func clampSize(sz Size) Size {
	return Clamp(0, MaxSize, sz)
}

// Scale bound linearly towards origin according to the size.
//
// Size 0 yields the origin and MaxSize yields the bound.
// Integer arithmetic is carried out without overflow.
func ScaleLinear[A Number](size Size, origin, bound A) A {
	sz := int64(clampSize(size))
	if isFloat[A]() {
		t := float64(sz) / float64(MaxSize)
		z, n := float64(origin), float64(bound)
		return A(z*(1-t) + n*t)
	}
	z, n := toBig(origin), toBig(bound)
	diff := new(big.Int).Sub(n, z)
	diff.Mul(diff, big.NewInt(sz))
	diff.Quo(diff, big.NewInt(int64(MaxSize)))
	return fromBig[A](z.Add(z, diff))
}

// Scale bound exponentially towards origin according to the size.
//
// Size 0 yields the origin and MaxSize yields (approximately) the bound.
func ScaleExponential[A Number](size Size, origin, bound A) A {
	sz := float64(clampSize(size))
	z, n := float64(origin), float64(bound)
	d := n - z
	diff := (math.Pow(math.Abs(d)+1, sz/float64(MaxSize)) - 1) * sign(d)
	r := z + diff
	if isFloat[A]() {
		return A(r)
	}
	// Converting a float outside the range of an integer type is undefined, so stay within origin and bound
	lo, hi := min(origin, bound), max(origin, bound)
	if r <= float64(lo) {
		return lo
	}
	if r >= float64(hi) {
		return hi
	}
	return A(math.Round(r))
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// The smallest value of the type. For floating point types the most negative finite value.
func MinOf[A Number]() A {
	var zero A
	switch {
	case isFloat[A]():
		f := -math.MaxFloat64
		if unsafe.Sizeof(zero) == 4 {
			f = -math.MaxFloat32
		}
		return A(f)
	case !isSigned[A]():
		return zero
	}
	v := int64(-1) << (unsafe.Sizeof(zero)*8 - 1)
	return A(v)
}

// The largest value of the type. For floating point types the largest finite value.
func MaxOf[A Number]() A {
	var zero A
	switch {
	case isFloat[A]():
		f := math.MaxFloat64
		if unsafe.Sizeof(zero) == 4 {
			f = math.MaxFloat32
		}
		return A(f)
	case !isSigned[A]():
		var v uint64 = math.MaxUint64
		return A(v >> (64 - unsafe.Sizeof(zero)*8))
	}
	var v int64 = math.MaxInt64
	return A(v >> (64 - unsafe.Sizeof(zero)*8))
}

func isFloat[A Number]() bool {
	var one A = 1
	return one/2 != 0
}

func isSigned[A Number]() bool {
	var zero A
	return zero-1 < zero
}

func toBig[A Number](x A) *big.Int {
	if isSigned[A]() {
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}

func fromBig[A Number](b *big.Int) A {
	if b.IsInt64() {
		return A(b.Int64())
	}
	return A(b.Uint64())
}
