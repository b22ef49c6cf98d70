package geom2d

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pointComparer treats points, and clouds point by point, as equal when they
// are within 1e-9 of each other. Both types need a comparer because cmp
// prefers their exact Equal methods over comparing their contents.
var pointComparer = cmp.Options{
	cmp.Comparer(func(p1, p2 Point) bool {
		return p1.Distance(p2) <= 1e-9
	}),
	cmp.Comparer(func(a, b PointCloud) bool {
		return a.Similar(b, 1e-9)
	}),
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
