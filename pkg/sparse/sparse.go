// Package sparse implements the selection-set contract over a B-tree
// of ranges, for selections with many disjoint ranges where the
// compact slice representation would copy too much per mutation.
package sparse

import (
	"fmt"

	"github.com/google/btree"

	"github.com/davemo/glide-data-grid/pkg/selection"
)

const btreeDegree = 16

// Selection is a mutable set of non-negative indices stored as
// disjoint, non-adjacent half-open ranges keyed by range start. Use
// Snapshot for cheap copy-on-write copies. Not safe for concurrent
// mutation.
type Selection struct {
	tr     *btree.BTreeG[selection.Range]
	length int
}

func New() *Selection {
	return &Selection{
		tr: btree.NewG(btreeDegree, func(a, b selection.Range) bool {
			return a.Start < b.Start
		}),
	}
}

// Add inserts every index of r, absorbing any stored ranges it
// overlaps or touches. Touching half-open ranges coalesce, same as the
// compact representation.
func (s *Selection) Add(r selection.Range) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: add [%d,%d)", selection.ErrInvalidRange, r.Start, r.End)
	}
	if r.IsEmpty() {
		return nil
	}

	merged := r

	// a predecessor can only merge when its end reaches the new start
	var prev selection.Range
	havePrev := false
	s.tr.DescendLessOrEqual(selection.Range{Start: r.Start}, func(item selection.Range) bool {
		prev, havePrev = item, true
		return false
	})
	if havePrev && prev.End >= merged.Start {
		if prev.Start < merged.Start {
			merged.Start = prev.Start
		}
		if prev.End > merged.End {
			merged.End = prev.End
		}
		s.tr.Delete(prev)
		s.length -= prev.Len()
	}

	// absorb successors while they overlap or touch; ranges never
	// shrink during the merge
	var absorb []selection.Range
	s.tr.AscendGreaterOrEqual(selection.Range{Start: merged.Start}, func(item selection.Range) bool {
		if item.Start > merged.End {
			return false
		}
		if item.End > merged.End {
			merged.End = item.End
		}
		absorb = append(absorb, item)
		return true
	})
	for _, item := range absorb {
		s.tr.Delete(item)
		s.length -= item.Len()
	}

	s.tr.ReplaceOrInsert(merged)
	s.length += merged.Len()
	return nil
}

func (s *Selection) AddIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: index %d", selection.ErrInvalidRange, index)
	}
	return s.Add(selection.Range{Start: index, End: index + 1})
}

// Remove drops a single index, splitting its containing range when the
// index sits in the middle. Absent indices are a no-op.
func (s *Selection) Remove(index int) {
	var target selection.Range
	found := false
	s.tr.DescendLessOrEqual(selection.Range{Start: index}, func(item selection.Range) bool {
		target, found = item, true
		return false
	})
	if !found || !target.Contains(index) {
		return
	}

	s.tr.Delete(target)
	if index > target.Start {
		s.tr.ReplaceOrInsert(selection.Range{Start: target.Start, End: index})
	}
	if index+1 < target.End {
		s.tr.ReplaceOrInsert(selection.Range{Start: index + 1, End: target.End})
	}
	s.length--
}

func (s *Selection) HasIndex(index int) bool {
	if index < 0 {
		return false
	}
	has := false
	s.tr.DescendLessOrEqual(selection.Range{Start: index}, func(item selection.Range) bool {
		has = item.Contains(index)
		return false
	})
	return has
}

// Length returns the number of selected indices; it is maintained
// incrementally across mutations.
func (s *Selection) Length() int {
	return s.length
}

// Ranges returns the minimal and sorted set of ranges that covers s.
func (s *Selection) Ranges() []selection.Range {
	out := make([]selection.Range, 0, s.tr.Len())
	s.tr.Ascend(func(item selection.Range) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Iterate returns a fresh cursor over the selected indices in
// ascending order, detached from later mutations of s.
func (s *Selection) Iterate() *Iterator {
	rr := s.Ranges()
	it := &Iterator{ranges: rr}
	if len(rr) > 0 {
		it.index = rr[0].Start - 1
	}
	return it
}

// Snapshot returns an independent copy sharing tree nodes
// copy-on-write; either copy can be mutated afterwards.
func (s *Selection) Snapshot() *Selection {
	return &Selection{tr: s.tr.Clone(), length: s.length}
}
