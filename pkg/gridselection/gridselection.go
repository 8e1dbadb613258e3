// Package gridselection combines the row, column and cell selections a
// grid front-end tracks into one value.
package gridselection

import (
	"fmt"

	"github.com/davemo/glide-data-grid/pkg/selection"
)

// Cell addresses a single grid cell.
type Cell struct {
	Col int
	Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// CellRange is a rectangle of cells: Width columns starting at X and
// Height rows starting at Y.
type CellRange struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r CellRange) IsValid() bool {
	return r.X >= 0 && r.Y >= 0 && r.Width >= 1 && r.Height >= 1
}

func (r CellRange) Contains(c Cell) bool {
	return r.X <= c.Col && c.Col < r.X+r.Width &&
		r.Y <= c.Row && c.Row < r.Y+r.Height
}

// Current is the focused cell together with the rectangles selected
// around it.
type Current struct {
	Cell        Cell
	Range       CellRange
	ExtraRanges []CellRange
}

// GridSelection is the full selection state of a grid. Rows and
// Columns interact with the rest of the grid only through the
// CompactSelection contract. The zero value selects nothing.
type GridSelection struct {
	Current *Current
	Rows    selection.CompactSelection
	Columns selection.CompactSelection
}

func Empty() GridSelection {
	return GridSelection{}
}

func (g GridSelection) IsEmpty() bool {
	return g.Current == nil && g.Rows.Length() == 0 && g.Columns.Length() == 0
}

// WithCurrent returns a copy of g focused on cur. The ExtraRanges
// slice is copied so the result never aliases caller memory.
func (g GridSelection) WithCurrent(cur Current) GridSelection {
	c := Current{
		Cell:  cur.Cell,
		Range: cur.Range,
	}
	if len(cur.ExtraRanges) > 0 {
		c.ExtraRanges = append([]CellRange{}, cur.ExtraRanges...)
	}
	g.Current = &c
	return g
}

// WithoutCurrent returns a copy of g with no focused cell.
func (g GridSelection) WithoutCurrent() GridSelection {
	g.Current = nil
	return g
}

func (g GridSelection) WithRows(rows selection.CompactSelection) GridSelection {
	g.Rows = rows
	return g
}

func (g GridSelection) WithColumns(cols selection.CompactSelection) GridSelection {
	g.Columns = cols
	return g
}

func (g GridSelection) Equals(other GridSelection) bool {
	if !g.Rows.Equals(other.Rows) || !g.Columns.Equals(other.Columns) {
		return false
	}
	if (g.Current == nil) != (other.Current == nil) {
		return false
	}
	if g.Current == nil {
		return true
	}
	if g.Current.Cell != other.Current.Cell || g.Current.Range != other.Current.Range {
		return false
	}
	if len(g.Current.ExtraRanges) != len(other.Current.ExtraRanges) {
		return false
	}
	for i, r := range g.Current.ExtraRanges {
		if r != other.Current.ExtraRanges[i] {
			return false
		}
	}
	return true
}
