package geom2d

import (
	"fmt"
	"iter"
	"math"
)

// Arc is a point cloud whose points lie on a circular arc, together with the
// center and diameter of its circle.
//
// An Arc owns its points. Every transform exposed by Arc moves the points and
// the center alike, so that the points stay on the circle described by
// [Arc.Center] and [Arc.Diameter]. Use [Arc.Points] to obtain a copy of the
// points for operations Arc does not provide.
type Arc struct {
	points   PointCloud
	diameter float64
	center   Point
}

var _ Transformable[*Arc] = (*Arc)(nil)
var _ Comparable[*Arc] = (*Arc)(nil)

type arcConfig struct {
	closePath    bool
	radiansStart float64
	radiansEnd   float64
	center       Point
}

func newArcConfig(opts ...ArcOption) arcConfig {
	cfg := arcConfig{
		closePath:  true,
		radiansEnd: 2 * math.Pi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ArcOption customizes the construction of an [Arc].
type ArcOption func(*arcConfig)

// WithOpenPath produces an open arc whose last point lies at the end angle,
// instead of a closed path that returns to its first point.
func WithOpenPath() ArcOption {
	return func(c *arcConfig) {
		c.closePath = false
	}
}

// WithRadians sets the angular range of the arc. The default range is
// [0, 2π]. Only the magnitude of end − start determines the step between
// points; points are always placed counter-clockwise from start.
// Both angles must be finite.
func WithRadians(start, end float64) ArcOption {
	return func(c *arcConfig) {
		c.radiansStart = start
		c.radiansEnd = end
	}
}

// WithCenter sets the center of the arc's circle. The default is the origin.
func WithCenter(center Point) ArcOption {
	return func(c *arcConfig) {
		c.center = center
	}
}

// NewArc generates an arc of nPoints points on the circle of the given
// diameter.
//
// By default the path is closed: nPoints−1 points are spaced evenly from the
// start angle, using a step of |end − start| / (nPoints − 2), and a final
// point equal to the first closes the loop. This requires nPoints ≥ 3. With
// [WithOpenPath], nPoints points are spaced evenly over the whole range,
// including both ends, which requires nPoints ≥ 2.
//
// It returns an error wrapping [ErrTooFewPoints], [ErrInvalidDiameter] or
// [ErrInvalidAngle] if the arguments do not describe an arc.
func NewArc(diameter float64, nPoints int, opts ...ArcOption) (*Arc, error) {
	cfg := newArcConfig(opts...)

	if diameter < 0 || math.IsNaN(diameter) || math.IsInf(diameter, 0) {
		return nil, fmt.Errorf("NewArc: diameter %g: %w", diameter, ErrInvalidDiameter)
	}
	if !isFinite(cfg.radiansStart) || !isFinite(cfg.radiansEnd) {
		return nil, fmt.Errorf("NewArc: radians [%g, %g]: %w", cfg.radiansStart, cfg.radiansEnd, ErrInvalidAngle)
	}
	minPoints := 2
	if cfg.closePath {
		minPoints = 3
	}
	if nPoints < minPoints {
		return nil, fmt.Errorf("NewArc: %d points, need at least %d: %w", nPoints, minPoints, ErrTooFewPoints)
	}

	sweep := math.Abs(cfg.radiansEnd - cfg.radiansStart)
	n := nPoints
	var step float64
	if cfg.closePath {
		n--
		step = sweep / float64(nPoints-2)
	} else {
		step = sweep / float64(nPoints-1)
	}

	a := &Arc{
		points:   NewPointCloud(nPoints),
		diameter: diameter,
		center:   cfg.center,
	}
	r := diameter / 2
	for i := range n {
		a.points.Push(pointOnCircle(cfg.center, r, cfg.radiansStart+float64(i)*step))
	}
	if cfg.closePath {
		a.points.Push(pointOnCircle(cfg.center, r, cfg.radiansStart))
	}
	return a, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	return center.Translate(VecFromAngle(angle).Mul(radius))
}

// Diameter returns the diameter of the arc's circle.
func (a *Arc) Diameter() float64 { return a.diameter }

// Radius returns the radius of the arc's circle.
func (a *Arc) Radius() float64 { return a.diameter / 2 }

// Center returns the center of the arc's circle.
func (a *Arc) Center() Point { return a.center }

// Len returns the number of points.
func (a *Arc) Len() int { return a.points.Len() }

// At returns the point at index i. It panics if i is out of range.
func (a *Arc) At(i int) Point { return a.points.At(i) }

// All returns an iterator over the indices and points of the arc.
func (a *Arc) All() iter.Seq2[int, Point] { return a.points.All() }

// Points returns a copy of the arc's points.
func (a *Arc) Points() PointCloud { return a.points.Clone() }

// BoundingBox returns the smallest rectangle enclosing the arc's points.
func (a *Arc) BoundingBox() Rect { return a.points.BoundingBox() }

// MoveBy translates the points and the center by (dx, dy).
func (a *Arc) MoveBy(dx, dy float64) *Arc {
	a.points.MoveBy(dx, dy)
	a.center = a.center.MoveBy(dx, dy)
	return a
}

// Translate translates the points and the center by v.
func (a *Arc) Translate(v Vec2) *Arc {
	a.points.Translate(v)
	a.center = a.center.Translate(v)
	return a
}

// MirrorVertically reflects the points and the center across the vertical
// line at x.
func (a *Arc) MirrorVertically(x float64) *Arc {
	a.points.MirrorVertically(x)
	a.center = a.center.MirrorVertically(x)
	return a
}

// MirrorHorizontally reflects the points and the center across the
// horizontal line at y.
func (a *Arc) MirrorHorizontally(y float64) *Arc {
	a.points.MirrorHorizontally(y)
	a.center = a.center.MirrorHorizontally(y)
	return a
}

// MirrorPoint reflects the points and the center through center.
func (a *Arc) MirrorPoint(center Point) *Arc {
	a.points.MirrorPoint(center)
	a.center = a.center.MirrorPoint(center)
	return a
}

// Rotate rotates the points and the center by th radians about center.
func (a *Arc) Rotate(th float64, center Point) *Arc {
	a.points.Rotate(th, center)
	a.center = a.center.Rotate(th, center)
	return a
}

// Equal reports whether both arcs have the same diameter, the same center and
// exactly equal points.
func (a *Arc) Equal(o *Arc) bool {
	return a.diameter == o.diameter &&
		a.center.Equal(o.center) &&
		a.points.Equal(o.points)
}

// Similar reports whether the centers and all corresponding points of both
// arcs lie within maxDistance of each other, and their diameters differ by
// at most maxDistance.
func (a *Arc) Similar(o *Arc, maxDistance float64) bool {
	return math.Abs(a.diameter-o.diameter) <= maxDistance &&
		a.center.Similar(o.center, maxDistance) &&
		a.points.Similar(o.points, maxDistance)
}
