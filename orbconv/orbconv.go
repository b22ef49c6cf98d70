// Package orbconv converts between geom2d point clouds and the planar
// geometries of github.com/paulmach/orb.
//
// All conversions copy coordinates. The resulting orb geometries do not alias
// the storage of the clouds they were built from, and vice versa.
package orbconv

import (
	"github.com/paulmach/orb"

	"honnef.co/go/geom2d"
)

// ToPoint converts a geom2d point to an orb point.
func ToPoint(pt geom2d.Point) orb.Point {
	return orb.Point{pt.X, pt.Y}
}

// FromPoint converts an orb point to a geom2d point.
func FromPoint(pt orb.Point) geom2d.Point {
	return geom2d.Pt(pt.X(), pt.Y())
}

func points(pc geom2d.PointCloud, extra int) []orb.Point {
	out := make([]orb.Point, 0, pc.Len()+extra)
	for _, pt := range pc.All() {
		out = append(out, ToPoint(pt))
	}
	return out
}

// LineString returns the points of pc, in order, as a line string.
func LineString(pc geom2d.PointCloud) orb.LineString {
	return orb.LineString(points(pc, 0))
}

// MultiPoint returns the points of pc as a multi point.
func MultiPoint(pc geom2d.PointCloud) orb.MultiPoint {
	return orb.MultiPoint(points(pc, 0))
}

// Ring returns the points of pc as a closed ring. If the last point of pc does
// not equal its first, the first point is appended. An empty cloud yields an
// empty ring.
func Ring(pc geom2d.PointCloud) orb.Ring {
	if pc.Len() == 0 {
		return orb.Ring{}
	}
	r := orb.Ring(points(pc, 1))
	if !pc.IsClosed() {
		r = append(r, ToPoint(pc.At(0)))
	}
	return r
}

// View returns the points of a topological point cloud, in view order, as a
// line string. It panics if the view refers to points its parent does not
// have.
func View(v *geom2d.TopologicalPointCloud) orb.LineString {
	out := make(orb.LineString, 0, v.Len())
	for _, pt := range v.All() {
		out = append(out, ToPoint(pt))
	}
	return out
}

// FromLineString returns the points of ls as a new point cloud.
func FromLineString(ls orb.LineString) geom2d.PointCloud {
	pc := geom2d.NewPointCloud(len(ls))
	for _, pt := range ls {
		pc.Push(FromPoint(pt))
	}
	return pc
}

// Bound returns the bounding box of pc. The bound of an empty cloud is the
// zero orb.Bound.
func Bound(pc geom2d.PointCloud) orb.Bound {
	if pc.Len() == 0 {
		return orb.Bound{}
	}
	return MultiPoint(pc).Bound()
}
