package algo

import "fmt"

// Rect represents a rectangular region defined by its inclusive boundaries.
type Rect struct {
	RowFirst int
	RowLast  int
	ColFirst int
	ColLast  int
}

// Valid reports whether the bounds are ordered and non-negative.
func (r Rect) Valid() bool {
	return r.RowFirst >= 0 && r.ColFirst >= 0 && r.RowFirst <= r.RowLast && r.ColFirst <= r.ColLast
}

// Height is the number of rows spanned.
func (r Rect) Height() int { return r.RowLast - r.RowFirst + 1 }

// Width is the number of columns spanned.
func (r Rect) Width() int { return r.ColLast - r.ColFirst + 1 }

// Area returns the number of cells in the rectangle, or 0 if it is not valid.
func (r Rect) Area() int {
	if !r.Valid() {
		return 0
	}
	return r.Height() * r.Width()
}

// Transpose swaps the row and column bounds.
func (r Rect) Transpose() Rect {
	return Rect{
		RowFirst: r.ColFirst,
		RowLast:  r.ColLast,
		ColFirst: r.RowFirst,
		ColLast:  r.RowLast,
	}
}

// Mask returns a new rows x cols mask with exactly the cells of r covered.
// Parts of r outside the grid are dropped.
func (r Rect) Mask(rows, cols int) *Mask {
	m := NewMask(rows, cols)
	if !r.Valid() {
		return m
	}
	for row := r.RowFirst; row <= min(r.RowLast, rows-1); row++ {
		for col := r.ColFirst; col <= min(r.ColLast, cols-1); col++ {
			m.cells[row*cols+col] = true
		}
	}
	return m
}

func (r Rect) String() string {
	return fmt.Sprintf("rows %d-%d, cols %d-%d", r.RowFirst, r.RowLast, r.ColFirst, r.ColLast)
}
