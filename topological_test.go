package geom2d

import (
	"errors"
	"slices"
	"testing"
)

func TestTopologicalIdentity(t *testing.T) {
	pc := testCloud()
	v := NewTopologicalPointCloud(&pc)
	if v.Len() != pc.Len() {
		t.Fatalf("got %d elements, want %d", v.Len(), pc.Len())
	}
	for i := range v.Len() {
		if id := v.ID(i); id != i {
			t.Errorf("ID(%d) = %d, want %d", i, id, i)
		}
	}
	if !v.PointCloud().Equal(pc) {
		t.Errorf("identity view materialized as %v, want %v", v.PointCloud(), pc)
	}
	if v.Parent() != &pc {
		t.Error("Parent does not return the wrapped cloud")
	}
	if err := v.Validate(); err != nil {
		t.Errorf("identity view failed validation: %v", err)
	}
}

func TestTopologicalSortX(t *testing.T) {
	pc := Points(Pt(3, 1), Pt(-1, 7), Pt(2, -2), Pt(-1, 0), Pt(10, 5))
	orig := pc.Clone()

	v := NewTopologicalPointCloud(&pc).SortX()

	xs := make([]float64, 0, v.Len())
	for _, pt := range v.All() {
		xs = append(xs, pt.X)
	}
	if !slices.IsSorted(xs) {
		t.Errorf("x coordinates in view order are not sorted: %v", xs)
	}
	if !pc.Equal(orig) {
		t.Errorf("SortX modified the parent: got %v, want %v", pc, orig)
	}

	// Ties keep their storage order.
	ids := make([]int, 0, v.Len())
	for id := range v.All() {
		ids = append(ids, id)
	}
	diff(t, []int{1, 3, 2, 0, 4}, ids)

	diff(t, 1, v.FirstID())
	diff(t, 4, v.LastID())
	diff(t, Pt(-1, 7), v.First())
	diff(t, Pt(10, 5), v.Last())
}

func TestTopologicalSortY(t *testing.T) {
	pc := Points(Pt(3, 1), Pt(-1, 7), Pt(2, -2), Pt(-1, 0), Pt(10, 1))
	orig := pc.Clone()

	v := NewTopologicalPointCloud(&pc)
	v.SortY()
	diff(t, PointCloud{Pt(2, -2), Pt(-1, 0), Pt(3, 1), Pt(10, 1), Pt(-1, 7)}, v.PointCloud())
	diff(t, orig, pc)
	diff(t, 2, v.FirstID())
	diff(t, 1, v.LastID())
}

func TestTopologicalIndependentViews(t *testing.T) {
	pc := Points(Pt(3, 0), Pt(1, 2), Pt(2, 1))
	byX := NewTopologicalPointCloud(&pc).SortX()
	byY := NewTopologicalPointCloud(&pc).SortY()

	diff(t, []int{1, 2, 0}, []int{byX.ID(0), byX.ID(1), byX.ID(2)})
	diff(t, []int{0, 2, 1}, []int{byY.ID(0), byY.ID(1), byY.ID(2)})

	// Both views read coordinates live from the shared parent.
	pc.MoveBy(10, 0)
	diff(t, Pt(11, 2), byX.First())
	diff(t, Pt(13, 0), byY.First())
}

func TestTopologicalSubset(t *testing.T) {
	pc := testCloud()
	var v TopologicalPointCloud
	v.SetParent(&pc)
	v.Reserve(2)
	v.Push(3)
	v.Push(1)
	v.Push(3)

	diff(t, 3, v.Len())
	diff(t, PointCloud{pc[3], pc[1], pc[3]}, v.PointCloud())
	diff(t, pc[1], v.Point(1))
	diff(t, pc[2], v.ParentPoint(2))
	diff(t, 3, v.FirstID())
	diff(t, 3, v.LastID())
}

func TestTopologicalSnapshot(t *testing.T) {
	pc := testCloud()
	v := NewTopologicalPointCloud(&pc)
	snap := v.PointCloud()
	pc.MoveBy(1, 1)
	if !snap.Equal(testCloud()) {
		t.Errorf("snapshot changed with its parent: %v", snap)
	}
	snap.MoveBy(5, 5)
	if v.First() != pc.At(0) {
		t.Errorf("parent changed with its snapshot: %s", v.First())
	}
}

func TestTopologicalParentGrowth(t *testing.T) {
	pc := Points(Pt(0, 0))
	v := NewTopologicalPointCloud(&pc)
	pc.PushXY(5, 5)
	v.Push(1)
	diff(t, Pt(5, 5), v.Last())
	if err := v.Validate(); err != nil {
		t.Errorf("view failed validation after parent grew: %v", err)
	}
}

func TestTopologicalLazyIndexCheck(t *testing.T) {
	pc := Points(Pt(0, 0), Pt(1, 1))
	v := NewTopologicalPointCloud(&pc)

	// Pushing an invalid index succeeds; dereferencing it does not.
	v.Push(7)
	diff(t, 7, v.LastID())
	if err := v.Validate(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got error %v, want ErrIndexOutOfRange", err)
	}
	assertPanics(t, "Last with dangling index", func() { v.Last() })
	assertPanics(t, "SortX with dangling index", func() { v.SortX() })
}

func TestTopologicalRebind(t *testing.T) {
	a := Points(Pt(0, 0), Pt(1, 1), Pt(2, 2))
	b := Points(Pt(9, 9))
	v := NewTopologicalPointCloud(&a)

	v.SetParent(&b)
	if v.Parent() != &b {
		t.Fatal("SetParent did not rebind the view")
	}
	diff(t, 3, v.Len())
	diff(t, Pt(9, 9), v.First())
	if err := v.Validate(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got error %v, want ErrIndexOutOfRange", err)
	}
}

func TestTopologicalNoParent(t *testing.T) {
	var zero TopologicalPointCloud
	fromNil := NewTopologicalPointCloud(nil)
	for name, v := range map[string]*TopologicalPointCloud{"zero": &zero, "nil": fromNil} {
		if v.Len() != 0 {
			t.Errorf("%s: got %d elements, want 0", name, v.Len())
		}
		if v.Parent() != nil {
			t.Errorf("%s: got a parent", name)
		}
		if err := v.Validate(); !errors.Is(err, ErrNoParent) {
			t.Errorf("%s: got error %v, want ErrNoParent", name, err)
		}
		if pc := v.PointCloud(); pc.Len() != 0 {
			t.Errorf("%s: materialized %d points", name, pc.Len())
		}
		// Sorting an empty view reads no point.
		if got := v.SortX().SortY(); got != v || got.Len() != 0 {
			t.Errorf("%s: sorting an empty view changed it", name)
		}

		v.Push(0)
		diff(t, 0, v.FirstID())
		assertPanics(t, name+": First without parent", func() { v.First() })
		assertPanics(t, name+": ParentPoint without parent", func() { v.ParentPoint(0) })
		assertPanics(t, name+": SortY without parent", func() { v.SortY() })
	}
}
