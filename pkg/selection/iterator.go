package selection

// Iterator walks the indices of a selection in ascending order,
// expanding each stored range before moving to the next. The zero
// cursor sits before the first index; Next advances and reports
// whether an index is available.
type Iterator struct {
	ranges  []Range
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
