// Package selection implements compact selection sets: sets of
// non-negative integer indices (selected rows or columns in a grid)
// stored as a minimal sorted list of disjoint half-open ranges.
package selection

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// CompactSelection is an immutable set of non-negative indices. The
// backing ranges are normalized according to mergeRanges, meaning they
// are a sorted, minimal representation (no overlapping ranges, no
// contiguous ranges, no empty ranges). The implementation of the
// various methods relies on this property.
//
// Mutators return a new CompactSelection and never modify the
// receiver, so a value can be shared across goroutines without
// synchronization.
type CompactSelection struct {
	ranges []Range
}

// Empty returns the selection with no indices.
func Empty() CompactSelection {
	return CompactSelection{}
}

// Single returns the selection containing exactly index.
func Single(index int) (CompactSelection, error) {
	return Empty().AddIndex(index)
}

// FromRange returns the selection covering exactly r.
func FromRange(r Range) (CompactSelection, error) {
	return Empty().Add(r)
}

// FromRanges normalizes an arbitrary list of ranges into a selection.
func FromRanges(rr []Range) (CompactSelection, error) {
	in := make([]Range, 0, len(rr))
	for _, r := range rr {
		if !r.IsValid() {
			return CompactSelection{}, fmt.Errorf("%w: [%d,%d)", ErrInvalidRange, r.Start, r.End)
		}
		if r.IsEmpty() {
			continue
		}
		in = append(in, r)
	}
	return CompactSelection{ranges: mergeRanges(in)}, nil
}

// Add returns a new selection additionally covering every index of r.
// An empty range contributes nothing.
func (s CompactSelection) Add(r Range) (CompactSelection, error) {
	if !r.IsValid() {
		return s, fmt.Errorf("%w: add [%d,%d)", ErrInvalidRange, r.Start, r.End)
	}
	if r.IsEmpty() {
		return s, nil
	}
	rr := make([]Range, 0, len(s.ranges)+1)
	rr = append(rr, s.ranges...)
	rr = append(rr, r)
	return CompactSelection{ranges: mergeRanges(rr)}, nil
}

// AddIndex returns a new selection additionally containing index.
func (s CompactSelection) AddIndex(index int) (CompactSelection, error) {
	if index < 0 {
		return s, fmt.Errorf("%w: index %d", ErrInvalidRange, index)
	}
	return s.Add(Range{Start: index, End: index + 1})
}

// Remove returns a new selection no longer containing index. Removing
// an index that is not selected returns an equivalent selection.
//
// Remove takes a single index only; callers that need to clear a range
// of indices issue repeated removals.
func (s CompactSelection) Remove(index int) CompactSelection {
	for i, r := range s.ranges {
		if !r.Contains(index) {
			continue
		}
		// The invariant guarantees no other range contains index and
		// that the split pieces cannot touch a neighbor.
		out := make([]Range, 0, len(s.ranges)+1)
		out = append(out, s.ranges[:i]...)
		if index > r.Start {
			out = append(out, Range{Start: r.Start, End: index})
		}
		if index+1 < r.End {
			out = append(out, Range{Start: index + 1, End: r.End})
		}
		out = append(out, s.ranges[i+1:]...)
		return CompactSelection{ranges: out}
	}
	return s
}

// Offset returns a new selection with every index shifted by delta.
func (s CompactSelection) Offset(delta int) (CompactSelection, error) {
	if len(s.ranges) == 0 {
		return s, nil
	}
	if s.ranges[0].Start+delta < 0 {
		return s, fmt.Errorf("%w: offset %d moves %s below zero", ErrInvalidRange, delta, s.ranges[0])
	}
	out := make([]Range, len(s.ranges))
	for i, r := range s.ranges {
		out[i] = Range{Start: r.Start + delta, End: r.End + delta}
	}
	return CompactSelection{ranges: out}, nil
}

// HasIndex returns whether index is selected. Any integer is a valid
// query; out-of-domain values simply match no range.
func (s CompactSelection) HasIndex(index int) bool {
	for _, r := range s.ranges {
		if r.Contains(index) {
			return true
		}
	}
	return false
}

// HasAll returns whether every index of r is selected. An empty range
// is trivially covered.
func (s CompactSelection) HasAll(r Range) bool {
	if !r.IsValid() {
		return false
	}
	if r.IsEmpty() {
		return true
	}
	// By canonical form a fully covered range sits inside one stored
	// range.
	for _, sr := range s.ranges {
		if sr.Start <= r.Start && r.End <= sr.End {
			return true
		}
	}
	return false
}

// Length returns the number of selected indices.
func (s CompactSelection) Length() int {
	n := 0
	for _, r := range s.ranges {
		n += r.Len()
	}
	return n
}

// First returns the smallest selected index, or false when the
// selection is empty.
func (s CompactSelection) First() (int, bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}
	return s.ranges[0].Start, true
}

// Last returns the largest selected index, or false when the selection
// is empty.
func (s CompactSelection) Last() (int, bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}
	return s.ranges[len(s.ranges)-1].End - 1, true
}

// Equals returns whether s and other select the same indices. Both
// being canonical this reduces to comparing the range lists.
func (s CompactSelection) Equals(other CompactSelection) bool {
	if len(s.ranges) != len(other.ranges) {
		return false
	}
	for i, r := range s.ranges {
		if r != other.ranges[i] {
			return false
		}
	}
	return true
}

// Ranges returns the minimal and sorted set of ranges that covers s.
func (s CompactSelection) Ranges() []Range {
	return append([]Range{}, s.ranges...)
}

// Indices returns every selected index in ascending order.
func (s CompactSelection) Indices() []int {
	out := make([]int, 0, s.Length())
	for _, r := range s.ranges {
		for i := r.Start; i < r.End; i++ {
			out = append(out, i)
		}
	}
	return out
}

// Iterate returns a fresh cursor over the selected indices in
// ascending order. Cursors are independent: iterating twice yields the
// same sequence.
func (s CompactSelection) Iterate() *Iterator {
	it := &Iterator{ranges: s.ranges}
	if len(s.ranges) > 0 {
		it.index = s.ranges[0].Start - 1
	}
	return it
}

func (s CompactSelection) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, r := range s.ranges {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// MarshalJSON encodes the canonical range list as [[start,end), ...]
// pairs, the natural shape for undo logs or remote sync.
func (s CompactSelection) MarshalJSON() ([]byte, error) {
	pairs := make([][2]int, len(s.ranges))
	for i, r := range s.ranges {
		pairs[i] = [2]int{r.Start, r.End}
	}
	return json.Marshal(pairs)
}

func (s *CompactSelection) UnmarshalJSON(b []byte) error {
	var pairs [][2]int
	if err := json.Unmarshal(b, &pairs); err != nil {
		return err
	}
	rr := make([]Range, len(pairs))
	for i, p := range pairs {
		rr[i] = Range{Start: p[0], End: p[1]}
	}
	ns, err := FromRanges(rr)
	if err != nil {
		return err
	}
	*s = ns
	return nil
}

// mergeRanges returns the minimal and sorted set of ranges that covers
// rr. Callers must not pass empty or invalid ranges. The input slice
// is sorted in place; callers pass a copy they own.
func mergeRanges(rr []Range) []Range {
	switch len(rr) {
	case 0:
		return nil
	case 1:
		return []Range{rr[0]}
	}

	sort.Slice(rr, func(i, j int) bool { return rr[i].less(rr[j]) })
	out := make([]Range, 1, len(rr))
	out[0] = rr[0]
	for _, r := range rr[1:] {
		prev := &out[len(out)-1]
		switch {
		case r.Start <= prev.End:
			// prev and r overlap or touch, merge them. Half-open
			// ranges that share a boundary coalesce: [0,3) and [3,5)
			// become [0,5).
			//
			//   prev     r
			// s------es-----e
			if r.End > prev.End {
				// A range enclosed by prev never shrinks it.
				prev.End = r.End
			}
		default:
			// No overlap and not adjacent, no merging possible.
			//
			//   prev       r
			// s------e  s-----e
			out = append(out, r)
		}
	}
	return out
}
