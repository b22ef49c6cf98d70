package geom2d

import (
	"fmt"
	"math"
)

// Faculty returns n!. The result wraps around for n > 20, which no longer fits
// in a uint64, and is 0 for n ≥ 66.
func Faculty(n uint) uint64 {
	f := uint64(1)
	for i := uint(2); i <= n && i != 0; i++ {
		f *= uint64(i)
		if f == 0 {
			// 66! and every later factorial is a multiple of 2⁶⁴.
			break
		}
	}
	return f
}

// BinomialCoeff returns the binomial coefficient n! / (k! (n−k)!).
//
// The coefficient is computed multiplicatively and does not overflow where
// the factorials would; it is exact as long as it fits a float64 mantissa.
// It panics unless 0 ≤ k ≤ n.
func BinomialCoeff(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		panic(fmt.Sprintf("geom2d: BinomialCoeff(%d, %d) requires 0 ≤ k ≤ n", n, k))
	}
	k = min(k, n-k)
	c := 1.0
	for i := 1; i <= k; i++ {
		// c·(n−k+i) is divisible by i at every step.
		c = c * float64(n-k+i) / float64(i)
	}
	return c
}

// BernsteinPolynomial evaluates the i-th Bernstein basis polynomial of degree
// n at t, that is C(n, i) · tⁱ · (1−t)ⁿ⁻ⁱ. These are the weights of the
// control points of a Bézier curve of degree n at parameter t.
//
// t is usually in [0, 1] but this is not enforced. It panics unless
// 0 ≤ i ≤ n.
func BernsteinPolynomial(n, i int, t float64) float64 {
	return BinomialCoeff(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// DistancePointLine returns the perpendicular distance of p to the infinite
// line through l1 and l2. It returns an error wrapping [ErrDegenerateLine] if
// l1 and l2 are equal and thus do not define a line.
func DistancePointLine(p, l1, l2 Point) (float64, error) {
	d := l2.Sub(l1)
	length := d.Hypot()
	if length == 0 {
		return 0, fmt.Errorf("DistancePointLine: %s and %s: %w", l1, l2, ErrDegenerateLine)
	}
	return math.Abs(d.Cross(p.Sub(l1))) / length, nil
}

// IsEqual reports whether a and b are exactly equal, as defined by their Equal
// method.
func IsEqual[T Comparable[T]](a, b T) bool {
	return a.Equal(b)
}

// IsSimilar reports whether a and b are equal within maxDistance, as defined
// by their Similar method.
func IsSimilar[T Comparable[T]](a, b T, maxDistance float64) bool {
	return a.Similar(b, maxDistance)
}
