package geom2d

import (
	"fmt"
	"iter"
	"slices"
)

// Element is the set of index tuples a [Topology] can hold. The arity of a
// topology is fixed by its element type at compile time.
type Element interface {
	~[1]int | ~[2]int | ~[3]int | ~[4]int
}

// Topology is an ordered table of index tuples. It stores no coordinates and
// never dereferences its indices; which index space the indices belong to,
// and whether they are valid in it, is up to the owner of the topology.
//
// The zero value is an empty topology ready to use.
type Topology[E Element] struct {
	elements []E
}

// Reserve grows the topology's capacity, if necessary, to guarantee room for
// another n elements. It has no other observable effect.
func (t *Topology[E]) Reserve(n int) {
	t.elements = slices.Grow(t.elements, n)
}

// Push appends el.
func (t *Topology[E]) Push(el E) {
	t.elements = append(t.elements, el)
}

// Len returns the number of elements.
func (t *Topology[E]) Len() int {
	return len(t.elements)
}

// At returns the element at position i. It panics if i is out of range.
func (t *Topology[E]) At(i int) E {
	return t.elements[i]
}

// Set replaces the element at position i. It panics if i is out of range.
func (t *Topology[E]) Set(i int, el E) {
	t.elements[i] = el
}

// All returns an iterator over the positions and elements of the topology.
func (t *Topology[E]) All() iter.Seq2[int, E] {
	return slices.All(t.elements)
}

// Elements returns a copy of all elements, in order.
func (t *Topology[E]) Elements() []E {
	return slices.Clone(t.elements)
}

// SortFunc stably sorts the elements using cmp, which has the same contract
// as the comparison function of [slices.SortStableFunc].
func (t *Topology[E]) SortFunc(cmp func(a, b E) int) {
	slices.SortStableFunc(t.elements, cmp)
}

// Validate checks that every index of every element lies in [0, n). It
// returns an error wrapping [ErrIndexOutOfRange] for the first index that
// does not.
func (t *Topology[E]) Validate(n int) error {
	for i, el := range t.elements {
		for j := 0; j < len(el); j++ {
			if idx := el[j]; idx < 0 || idx >= n {
				return fmt.Errorf("element %d, index %d: %d not in [0, %d): %w", i, j, idx, n, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}
