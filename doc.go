// Package geom2d provides point clouds and index-based views over them for 2D
// computational geometry.
//
// # Point clouds
//
// [PointCloud] is an ordered sequence of [Point] values. A point's index is its
// position in the cloud, and the order is significant: two clouds are only
// equal ([PointCloud.Equal]) or similar ([PointCloud.Similar]) when their
// points match index by index.
//
// Clouds are transformed in place. [PointCloud.MoveBy], [PointCloud.Rotate],
// [PointCloud.MirrorVertically], [PointCloud.MirrorHorizontally] and
// [PointCloud.MirrorPoint] rewrite every point and return the cloud, so calls
// can be chained:
//
//	pc := geom2d.Points(geom2d.Pt(1, 0), geom2d.Pt(2, 0))
//	pc.MoveBy(1, 1).Rotate(math.Pi/2, geom2d.Point{})
//
// All transforms are no-ops on an empty cloud.
//
// # Topologies
//
// [Topology] is a table of fixed-arity index tuples. It holds no coordinates
// and never dereferences its indices, which lets the same type describe
// single points ([1]int), edges ([2]int), triangles ([3]int) or quads
// ([4]int) over any external index space.
//
// [TopologicalPointCloud] pairs a Topology[[1]int] with a borrowed pointer to
// a PointCloud. It describes a subset or reordering of the cloud's points
// without copying them: [TopologicalPointCloud.SortX] and
// [TopologicalPointCloud.SortY] reorder the index table and leave the
// cloud's storage untouched. Several views can share one cloud.
//
// A view never owns its parent. The parent must stay alive, and must keep
// every index the view refers to, for as long as the view is used. Indices
// are checked when they are dereferenced, not when they are stored; use
// [TopologicalPointCloud.Validate] after rebinding a view with
// [TopologicalPointCloud.SetParent].
//
// # Shapes
//
// [Arc] generates the points of a circular arc and keeps its center and
// diameter consistent under every transform it exposes. Arc, PointCloud and
// Point all implement [Transformable].
//
// # Formulas
//
// [Faculty], [BinomialCoeff] and [BernsteinPolynomial] are the building blocks
// of Bézier curve construction. [DistancePointLine] computes the distance of
// a point to an infinite line. [IsEqual] and [IsSimilar] compare any two
// values that implement Equal and Similar.
//
// None of the types in this package are safe for concurrent mutation.
package geom2d
