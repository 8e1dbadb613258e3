// Package rowtable tracks marked rows in a grid together with label
// metadata (row markers, per-row annotations).
package rowtable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/davemo/glide-data-grid/pkg/selection"
)

type Table interface {
	Get(id int64) (labels.Set, error)
	Mark(id int64, d labels.Set) error
	MarkDynamic(d labels.Set) (int64, error)
	Unmark(id int64) error
	Update(id int64, d labels.Set) error

	Iterate() *Iterator

	Count() int
	Has(id int64) bool
	IsFree(id int64) bool
	FindFree() (int64, error)

	GetAll() map[int64]labels.Set
	GetByLabel(selector labels.Selector) map[int64]labels.Set

	// Selection returns the marked rows as a canonical compact
	// selection set.
	Selection() selection.CompactSelection
}

// ValidationFn guards individual rows; marking or unmarking a row for
// which it errors is rejected.
type ValidationFn func(id int64) error

// New creates a table over rows [0, size). Reserved rows are
// pre-marked and protected against later marking or unmarking.
func New(size int64, reserved map[int64]labels.Set) (Table, error) {
	r := &rowTable{
		m:    new(sync.RWMutex),
		rows: map[int64]labels.Set{},
		size: size,
	}
	if len(reserved) > 0 {
		r.validateFn = func(id int64) error {
			if _, ok := reserved[id]; ok {
				return fmt.Errorf("row %d is reserved", id)
			}
			return nil
		}
	}

	var errm error
	for id, d := range reserved {
		id := id
		if err := r.add(id, d, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type rowTable struct {
	m          *sync.RWMutex
	rows       map[int64]labels.Set
	size       int64
	validateFn ValidationFn
}

func (r *rowTable) validate(id int64, init bool) error {
	if id < 0 {
		return fmt.Errorf("row %d is negative", id)
	}
	if id > r.size-1 {
		return fmt.Errorf("row %d is bigger then max allowed rows: %d", id, r.size-1)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *rowTable) Get(id int64) (labels.Set, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	d, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("no match found for: %v", id)
	}
	return d, nil
}

func (r *rowTable) Mark(id int64, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, d, false)
}

func (r *rowTable) MarkDynamic(d labels.Set) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()

	for id := int64(0); id < r.size; id++ {
		if !r.isFree(id) {
			continue
		}
		if err := r.add(id, d, false); err != nil {
			continue
		}
		return id, nil
	}
	return 0, fmt.Errorf("no free row found")
}

func (r *rowTable) Unmark(id int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(id, false); err != nil {
		return err
	}
	delete(r.rows, id)
	return nil
}

func (r *rowTable) Update(id int64, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(id, false); err != nil {
		return err
	}
	if r.isFree(id) {
		return fmt.Errorf("row %d not found", id)
	}
	r.rows[id] = d
	return nil
}

func (r *rowTable) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *rowTable) iterate() *Iterator {
	keys := make([]int64, 0, len(r.rows))
	rows := make(map[int64]labels.Set, len(r.rows))
	for key, d := range r.rows {
		keys = append(keys, key)
		rows[key] = d
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})

	return &Iterator{current: -1, keys: keys, rows: rows}
}

func (r *rowTable) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.rows)
}

func (r *rowTable) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.rows[id]
	return ok
}

func (r *rowTable) IsFree(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.isFree(id)
}

func (r *rowTable) isFree(id int64) bool {
	_, ok := r.rows[id]
	return !ok
}

func (r *rowTable) FindFree() (int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	for id := int64(0); id < r.size; id++ {
		if r.isFree(id) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("no free row found")
}

func (r *rowTable) GetAll() map[int64]labels.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	rows := make(map[int64]labels.Set, len(r.rows))

	iter := r.iterate()
	for iter.Next() {
		rows[iter.ID()] = iter.Value()
	}
	return rows
}

func (r *rowTable) GetByLabel(selector labels.Selector) map[int64]labels.Set {
	rows := map[int64]labels.Set{}

	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value()) {
			rows[iter.ID()] = iter.Value()
		}
	}
	return rows
}

func (r *rowTable) Selection() selection.CompactSelection {
	iter := r.Iterate()

	// collapse consecutive marked rows into half-open runs; the keys
	// come out of the iterator sorted
	var rr []selection.Range
	for iter.Next() {
		id := int(iter.ID())
		if n := len(rr); n > 0 && rr[n-1].End == id {
			rr[n-1].End = id + 1
			continue
		}
		rr = append(rr, selection.Range{Start: id, End: id + 1})
	}

	// runs are already canonical, FromRanges cannot fail on them
	s, _ := selection.FromRanges(rr)
	return s
}

func (r *rowTable) add(id int64, d labels.Set, init bool) error {
	if err := r.validate(id, init); err != nil {
		return err
	}
	if !r.isFree(id) {
		return fmt.Errorf("row %d already marked", id)
	}
	r.rows[id] = d
	return nil
}
