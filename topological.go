package geom2d

import (
	"cmp"
	"fmt"
	"iter"
)

// TopologicalPointCloud is an ordered view onto the points of a parent
// [PointCloud]. It stores indices into the parent, not points, so it can
// express a subset or reordering of the parent without copying coordinates.
//
// The view borrows its parent and never owns it. The parent must outlive the
// view, and every stored index must be valid in the parent whenever it is
// dereferenced. Indices are not checked when they are pushed; accessing an
// invalid index panics, as does accessing points of a view without parent.
// Because the view holds a *PointCloud, points appended to the parent after
// the view was created are visible through it.
//
// The zero value is an empty view without parent.
type TopologicalPointCloud struct {
	topology Topology[[1]int]
	parent   *PointCloud
}

// NewTopologicalPointCloud returns a view onto parent in its storage order,
// that is, position i of the view refers to index i of parent. A nil parent
// yields an empty view without parent.
func NewTopologicalPointCloud(parent *PointCloud) *TopologicalPointCloud {
	tpc := &TopologicalPointCloud{parent: parent}
	if parent == nil {
		return tpc
	}
	tpc.topology.Reserve(parent.Len())
	for i := range *parent {
		tpc.topology.Push([1]int{i})
	}
	return tpc
}

// Parent returns the cloud the view refers to, which may be nil.
func (tpc *TopologicalPointCloud) Parent() *PointCloud {
	return tpc.parent
}

// SetParent rebinds the view to parent. Stored indices are kept as they are
// and not checked against the new parent; call [TopologicalPointCloud.Validate]
// to do so.
func (tpc *TopologicalPointCloud) SetParent(parent *PointCloud) {
	tpc.parent = parent
}

// Len returns the number of indices in the view.
func (tpc *TopologicalPointCloud) Len() int {
	return tpc.topology.Len()
}

// Reserve grows the view's capacity to guarantee room for another n indices.
func (tpc *TopologicalPointCloud) Reserve(n int) {
	tpc.topology.Reserve(n)
}

// Push appends a reference to the parent's point at index id. The index is
// not checked until it is dereferenced.
func (tpc *TopologicalPointCloud) Push(id int) {
	tpc.topology.Push([1]int{id})
}

// ID maps position i of the view to an index into the parent.
func (tpc *TopologicalPointCloud) ID(i int) int {
	return tpc.topology.At(i)[0]
}

// Point returns the parent's point referred to by position i of the view.
func (tpc *TopologicalPointCloud) Point(i int) Point {
	return tpc.ParentPoint(tpc.ID(i))
}

// ParentPoint returns the parent's point at index id.
func (tpc *TopologicalPointCloud) ParentPoint(id int) Point {
	return tpc.mustParent("ParentPoint").At(id)
}

// FirstID returns the parent index referred to by the first position of the
// view.
func (tpc *TopologicalPointCloud) FirstID() int {
	return tpc.ID(0)
}

// LastID returns the parent index referred to by the last position of the
// view.
func (tpc *TopologicalPointCloud) LastID() int {
	return tpc.ID(tpc.Len() - 1)
}

// First returns the point referred to by the first position of the view,
// which need not be the parent's first point.
func (tpc *TopologicalPointCloud) First() Point {
	return tpc.Point(0)
}

// Last returns the point referred to by the last position of the view.
func (tpc *TopologicalPointCloud) Last() Point {
	return tpc.Point(tpc.Len() - 1)
}

// All returns an iterator over the parent indices and points of the view, in
// view order.
func (tpc *TopologicalPointCloud) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for _, el := range tpc.topology.All() {
			if !yield(el[0], tpc.ParentPoint(el[0])) {
				return
			}
		}
	}
}

// SortX stably sorts the view by the x coordinate of the referred points, read
// from the parent at the time of the call. The parent is not modified. Sorting
// an empty view is a no-op, even without parent.
func (tpc *TopologicalPointCloud) SortX() *TopologicalPointCloud {
	if tpc.Len() == 0 {
		return tpc
	}
	pc := tpc.mustParent("SortX")
	tpc.topology.SortFunc(func(a, b [1]int) int {
		return cmp.Compare(pc.At(a[0]).X, pc.At(b[0]).X)
	})
	return tpc
}

// SortY stably sorts the view by the y coordinate of the referred points. See
// [TopologicalPointCloud.SortX].
func (tpc *TopologicalPointCloud) SortY() *TopologicalPointCloud {
	if tpc.Len() == 0 {
		return tpc
	}
	pc := tpc.mustParent("SortY")
	tpc.topology.SortFunc(func(a, b [1]int) int {
		return cmp.Compare(pc.At(a[0]).Y, pc.At(b[0]).Y)
	})
	return tpc
}

// PointCloud returns a new cloud holding copies of the referred points in view
// order. The result is independent of the parent.
func (tpc *TopologicalPointCloud) PointCloud() PointCloud {
	out := NewPointCloud(tpc.Len())
	for _, pt := range tpc.All() {
		out.Push(pt)
	}
	return out
}

// Validate checks that the view has a parent and that every stored index is
// valid in it.
func (tpc *TopologicalPointCloud) Validate() error {
	if tpc.parent == nil {
		return ErrNoParent
	}
	return tpc.topology.Validate(tpc.parent.Len())
}

func (tpc *TopologicalPointCloud) mustParent(op string) PointCloud {
	if tpc.parent == nil {
		panic(fmt.Sprintf("geom2d: TopologicalPointCloud.%s called on a view without parent", op))
	}
	return *tpc.parent
}
