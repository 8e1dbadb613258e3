package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned when a caller supplies a range with a
// negative start or with start > end.
var ErrInvalidRange = errors.New("invalid range")

// Range is a half-open interval [Start, End) of non-negative indices.
// A range with Start == End is empty and is never stored in a selection.
type Range struct {
	Start int
	End   int
}

func NewRange(start, end int) (Range, error) {
	r := Range{Start: start, End: end}
	if !r.IsValid() {
		return Range{}, fmt.Errorf("%w: [%d,%d)", ErrInvalidRange, start, end)
	}
	return r, nil
}

func (r Range) IsValid() bool {
	return r.Start >= 0 && r.Start <= r.End
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the number of indices covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains returns whether index falls within [Start, End).
func (r Range) Contains(index int) bool {
	return r.Start <= index && index < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

func ParseRange(s string) (Range, error) {
	var r Range
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, ")") {
		return r, fmt.Errorf("range %q is not of the form [start,end)", s)
	}
	body := s[1 : len(s)-1]
	c := strings.IndexByte(body, ',')
	if c == -1 {
		return r, fmt.Errorf("no comma in range %q", s)
	}
	start, err := strconv.Atoi(body[:c])
	if err != nil {
		return r, fmt.Errorf("invalid start %q in range %q", body[:c], s)
	}
	end, err := strconv.Atoi(body[c+1:])
	if err != nil {
		return r, fmt.Errorf("invalid end %q in range %q", body[c+1:], s)
	}
	return NewRange(start, end)
}

func (r Range) less(other Range) bool {
	if r.Start != other.Start {
		return r.Start < other.Start
	}
	return other.End < r.End
}
