package sparse

import "github.com/davemo/glide-data-grid/pkg/selection"

// Iterator walks selected indices in ascending order over the ranges
// captured when the cursor was created.
type Iterator struct {
	ranges  []selection.Range
	current int
	index   int
}

func (r *Iterator) Next() bool {
	if r.current >= len(r.ranges) {
		return false
	}
	r.index++
	if r.index >= r.ranges[r.current].End {
		r.current++
		if r.current >= len(r.ranges) {
			return false
		}
		r.index = r.ranges[r.current].Start
	}
	return true
}

func (r *Iterator) Index() int {
	return r.index
}
