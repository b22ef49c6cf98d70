package geom2d

import (
	"fmt"
	"math"
)

// Point is a position in 2D space. Points are values; transforming a point
// returns a new point.
type Point struct {
	X float64
	Y float64
}

var _ Transformable[Point] = Point{}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// MoveBy returns the point translated by (dx, dy).
func (pt Point) MoveBy(dx, dy float64) Point {
	return Point{
		X: pt.X + dx,
		Y: pt.Y + dy,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Rotate rotates the point by th radians about center. Positive angles rotate
// the positive x axis towards the positive y axis, which is counter-clockwise
// in a y-up coordinate system.
func (pt Point) Rotate(th float64, center Point) Point {
	sin, cos := math.Sincos(th)
	return rotateAbout(pt, center, sin, cos)
}

// MirrorVertically reflects the point across the vertical line at x.
func (pt Point) MirrorVertically(x float64) Point {
	return Point{
		X: 2*x - pt.X,
		Y: pt.Y,
	}
}

// MirrorHorizontally reflects the point across the horizontal line at y.
func (pt Point) MirrorHorizontally(y float64) Point {
	return Point{
		X: pt.X,
		Y: 2*y - pt.Y,
	}
}

// MirrorPoint reflects the point through center.
func (pt Point) MirrorPoint(center Point) Point {
	return Point{
		X: 2*center.X - pt.X,
		Y: 2*center.Y - pt.Y,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// Equal reports whether both coordinates of pt and o are exactly equal.
func (pt Point) Equal(o Point) bool {
	return pt.X == o.X && pt.Y == o.Y
}

// Similar reports whether o lies within maxDistance of pt.
func (pt Point) Similar(o Point, maxDistance float64) bool {
	return pt.Distance(o) <= maxDistance
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// rotateAbout rotates pt about center by the angle whose sine and cosine are
// given.
func rotateAbout(pt, center Point, sin, cos float64) Point {
	d := pt.Sub(center)
	return Point{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}
