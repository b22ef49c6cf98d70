package geom2d

// Transformable is implemented by types that support the rigid transforms of
// this package. T is the type returned by each transform: Point returns a new
// Point, while *PointCloud and *Arc mutate in place and return the receiver,
// so calls can be chained.
//
// Implementations that carry metadata besides their points, such as [Arc],
// apply every transform to that metadata too.
type Transformable[T any] interface {
	// MoveBy translates by (dx, dy).
	MoveBy(dx, dy float64) T
	// Translate translates by v.
	Translate(v Vec2) T
	// Rotate rotates by th radians about center.
	Rotate(th float64, center Point) T
	// MirrorVertically reflects across the vertical line at x.
	MirrorVertically(x float64) T
	// MirrorHorizontally reflects across the horizontal line at y.
	MirrorHorizontally(y float64) T
	// MirrorPoint reflects through center.
	MirrorPoint(center Point) T
}

// Comparable is implemented by types that can be compared exactly and within
// a tolerance.
type Comparable[T any] interface {
	Equal(o T) bool
	Similar(o T, maxDistance float64) bool
}
