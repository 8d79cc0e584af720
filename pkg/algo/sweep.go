package algo

import (
	"errors"
	"fmt"
)

// ErrAnchorNotCovered is returned when a sweep is anchored on a cell that is
// outside the mask or not covered.
var ErrAnchorNotCovered = errors.New("anchor cell is not covered")

// GrowRectangle grows the maximal rectangle whose top-left corner is the
// anchor (row, col), committing to a width before a height:
//  1. Expands right along the anchor row while cells are covered.
//  2. Expands down while the whole column slice of the next row is covered.
func GrowRectangle(m *Mask, row, col int) (Rect, error) {
	if !m.At(row, col) {
		return Rect{}, fmt.Errorf("(%d,%d): %w", row, col, ErrAnchorNotCovered)
	}
	return sweep(m, row, col), nil
}

// GrowRectangleTransposed grows the maximal rectangle anchored at (row, col)
// committing to a height before a width. It sweeps the transposed mask and
// transposes the result back.
func GrowRectangleTransposed(m *Mask, row, col int) (Rect, error) {
	if !m.At(row, col) {
		return Rect{}, fmt.Errorf("(%d,%d): %w", row, col, ErrAnchorNotCovered)
	}
	return sweep(m.Transpose(), col, row).Transpose(), nil
}

// sweep assumes m.At(row, col).
func sweep(m *Mask, row, col int) Rect {
	rLast, cLast := row, col

	// Expand Width (Cols)
	for m.At(row, cLast+1) {
		cLast++
	}

	// Expand Height (Rows)
	for rLast+1 < m.rows && rowCovered(m, rLast+1, col, cLast) {
		rLast++
	}

	r := Rect{RowFirst: row, RowLast: rLast, ColFirst: col, ColLast: cLast}
	if !m.Contains(r) {
		panic(fmt.Sprintf("algo: swept rectangle %v leaves coverage", r))
	}
	return r
}

func rowCovered(m *Mask, row, colFirst, colLast int) bool {
	base := row * m.cols
	for c := colFirst; c <= colLast; c++ {
		if !m.cells[base+c] {
			return false
		}
	}
	return true
}
