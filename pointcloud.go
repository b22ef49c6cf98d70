package geom2d

import (
	"cmp"
	"iter"
	"math"
	"slices"
)

// PointCloud is an ordered sequence of points. A point's index is its position
// in the slice; indices are always contiguous in [0, Len()).
//
// Methods that mutate the cloud have pointer receivers, transform every point
// in place and return the cloud itself, so that calls can be chained. They
// are no-ops on an empty cloud.
type PointCloud []Point

var _ Transformable[*PointCloud] = (*PointCloud)(nil)
var _ Comparable[PointCloud] = PointCloud(nil)

// Points returns a cloud holding a copy of pts.
func Points(pts ...Point) PointCloud {
	return slices.Clone(PointCloud(pts))
}

// NewPointCloud returns an empty cloud with room for n points.
func NewPointCloud(n int) PointCloud {
	return make(PointCloud, 0, n)
}

// Len returns the number of points.
func (pc PointCloud) Len() int { return len(pc) }

// At returns the point at index i. It panics if i is out of range.
func (pc PointCloud) At(i int) Point { return pc[i] }

// Set replaces the point at index i. It panics if i is out of range.
func (pc PointCloud) Set(i int, pt Point) { pc[i] = pt }

// All returns an iterator over the indices and points of the cloud.
func (pc PointCloud) All() iter.Seq2[int, Point] { return slices.All(pc) }

// Clone returns an independent copy of the cloud.
func (pc PointCloud) Clone() PointCloud { return slices.Clone(pc) }

// Reserve grows the cloud's capacity, if necessary, to guarantee room for
// another n points.
func (pc *PointCloud) Reserve(n int) {
	*pc = slices.Grow(*pc, n)
}

// Push appends pt to the cloud.
func (pc *PointCloud) Push(pt Point) {
	*pc = append(*pc, pt)
}

// PushXY appends the point (x, y) to the cloud.
func (pc *PointCloud) PushXY(x, y float64) {
	*pc = append(*pc, Point{X: x, Y: y})
}

// MoveBy translates every point by (dx, dy).
func (pc *PointCloud) MoveBy(dx, dy float64) *PointCloud {
	for i, pt := range *pc {
		(*pc)[i] = pt.MoveBy(dx, dy)
	}
	return pc
}

// Translate translates every point by v.
func (pc *PointCloud) Translate(v Vec2) *PointCloud {
	return pc.MoveBy(v.X, v.Y)
}

// MirrorVertically reflects every point across the vertical line at x.
// Passing 0 mirrors across the y axis.
func (pc *PointCloud) MirrorVertically(x float64) *PointCloud {
	for i, pt := range *pc {
		(*pc)[i] = pt.MirrorVertically(x)
	}
	return pc
}

// MirrorHorizontally reflects every point across the horizontal line at y.
// Passing 0 mirrors across the x axis.
func (pc *PointCloud) MirrorHorizontally(y float64) *PointCloud {
	for i, pt := range *pc {
		(*pc)[i] = pt.MirrorHorizontally(y)
	}
	return pc
}

// MirrorPoint reflects every point through center.
// Passing the zero Point mirrors through the origin.
func (pc *PointCloud) MirrorPoint(center Point) *PointCloud {
	for i, pt := range *pc {
		(*pc)[i] = pt.MirrorPoint(center)
	}
	return pc
}

// Rotate rotates every point by th radians about center, counter-clockwise in
// a y-up coordinate system. Passing the zero Point rotates about the origin.
func (pc *PointCloud) Rotate(th float64, center Point) *PointCloud {
	sin, cos := math.Sincos(th)
	for i, pt := range *pc {
		(*pc)[i] = rotateAbout(pt, center, sin, cos)
	}
	return pc
}

// ApplyTransform applies aff to every point.
func (pc *PointCloud) ApplyTransform(aff Affine) *PointCloud {
	for i, pt := range *pc {
		(*pc)[i] = pt.Transform(aff)
	}
	return pc
}

// Reverse reverses the order of the points.
func (pc *PointCloud) Reverse() *PointCloud {
	slices.Reverse(*pc)
	return pc
}

// SortX stably sorts the points by ascending x coordinate. Unlike
// [TopologicalPointCloud.SortX], this reorders the cloud's storage and
// therefore changes the meaning of every index into it.
func (pc *PointCloud) SortX() *PointCloud {
	slices.SortStableFunc(*pc, func(a, b Point) int { return cmp.Compare(a.X, b.X) })
	return pc
}

// SortY stably sorts the points by ascending y coordinate. See
// [PointCloud.SortX].
func (pc *PointCloud) SortY() *PointCloud {
	slices.SortStableFunc(*pc, func(a, b Point) int { return cmp.Compare(a.Y, b.Y) })
	return pc
}

// Equal reports whether pc and o have the same length and every point of pc is
// exactly equal to the point of o at the same index.
func (pc PointCloud) Equal(o PointCloud) bool {
	return slices.EqualFunc(pc, o, Point.Equal)
}

// Similar reports whether pc and o have the same length and every point of pc
// lies within maxDistance of the point of o at the same index.
//
// Points are matched by index, not by proximity.
func (pc PointCloud) Similar(o PointCloud, maxDistance float64) bool {
	return slices.EqualFunc(pc, o, func(a, b Point) bool {
		return a.Similar(b, maxDistance)
	})
}

// IsClosed reports whether the cloud has at least two points and its last point
// equals its first.
func (pc PointCloud) IsClosed() bool {
	return len(pc) > 1 && pc[0].Equal(pc[len(pc)-1])
}

// Length returns the length of the polyline through all points, in order.
func (pc PointCloud) Length() float64 {
	var l float64
	for i := 1; i < len(pc); i++ {
		l += pc[i].Distance(pc[i-1])
	}
	return l
}

// Centroid returns the arithmetic mean of all points. The centroid of an
// empty cloud is the origin.
func (pc PointCloud) Centroid() Point {
	if len(pc) == 0 {
		return Point{}
	}
	var sum Vec2
	for _, pt := range pc {
		sum = sum.Add(Vec2(pt))
	}
	return Point(sum.Div(float64(len(pc))))
}

// BoundingBox returns the smallest rectangle enclosing all points. The bounding
// box of an empty cloud is the zero Rect.
func (pc PointCloud) BoundingBox() Rect {
	if len(pc) == 0 {
		return Rect{}
	}
	r := emptyRect
	for _, pt := range pc {
		r = r.UnionPoint(pt)
	}
	return r
}
