package rowtable

import "k8s.io/apimachinery/pkg/labels"

// Iterator walks marked rows in ascending row order over a snapshot
// taken at Iterate time.
type Iterator struct {
	current int
	keys    []int64
	rows    map[int64]labels.Set
}

func (r *Iterator) Value() labels.Set {
	return r.rows[r.keys[r.current]]
}

func (r *Iterator) ID() int64 {
	return r.keys[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.keys)
}
