package algo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotBinary is returned when a mask cell holds a value other than 0 or 1.
	ErrNotBinary = errors.New("mask may only contain 0s and 1s")
	// ErrRagged is returned when mask rows differ in length or the mask has no columns.
	ErrRagged = errors.New("mask must be a non-empty rectangular grid")
)

// Cell represents a single cell coordinate in a grid.
type Cell struct {
	Row int
	Col int
}

// Mask is a binary coverage grid. A set cell is covered.
// The zero value is an empty 0x0 mask.
type Mask struct {
	rows  int
	cols  int
	cells []bool
}

// NewMask returns an all-zero mask with the given dimensions.
// Negative dimensions are clamped to zero.
func NewMask(rows, cols int) *Mask {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Mask{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// MaskFromRows builds a mask from a row-major grid of 0/1 values.
// Every row must have the same, non-zero length.
func MaskFromRows(grid [][]uint8) (*Mask, error) {
	if len(grid) == 0 {
		return nil, ErrRagged
	}
	cols := len(grid[0])
	if cols == 0 {
		return nil, ErrRagged
	}
	m := NewMask(len(grid), cols)
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", r, len(row), cols, ErrRagged)
		}
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				m.cells[r*cols+c] = true
			default:
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, v, ErrNotBinary)
			}
		}
	}
	return m, nil
}

// ParseMask builds a mask from rows written as strings of '0' and '1'.
// Surrounding whitespace on each row is ignored.
func ParseMask(lines []string) (*Mask, error) {
	grid := make([][]uint8, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]uint8, len(line))
		for c, ch := range []byte(line) {
			switch ch {
			case '0':
			case '1':
				row[c] = 1
			default:
				return nil, fmt.Errorf("cell (%d,%d) = %q: %w", r, c, ch, ErrNotBinary)
			}
		}
		grid = append(grid, row)
	}
	return MaskFromRows(grid)
}

// Rows returns the number of rows.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mask) Cols() int { return m.cols }

func (m *Mask) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At reports whether the cell is covered. Out-of-range cells are uncovered.
func (m *Mask) At(row, col int) bool {
	if !m.inBounds(row, col) {
		return false
	}
	return m.cells[row*m.cols+col]
}

// Set marks the cell covered or uncovered. It panics if the cell is out of range.
func (m *Mask) Set(row, col int, covered bool) {
	if !m.inBounds(row, col) {
		panic(fmt.Sprintf("algo: cell (%d,%d) outside %dx%d mask", row, col, m.rows, m.cols))
	}
	m.cells[row*m.cols+col] = covered
}

// Count returns the number of covered cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// Covered returns every covered cell in row-major order.
func (m *Mask) Covered() []Cell {
	var cells []Cell
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.cells[r*m.cols+c] {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	out := NewMask(m.rows, m.cols)
	copy(out.cells, m.cells)
	return out
}

// Transpose returns a new cols x rows mask with rows and columns swapped.
func (m *Mask) Transpose() *Mask {
	out := NewMask(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.cells[c*m.rows+r] = m.cells[r*m.cols+c]
		}
	}
	return out
}

// Contains reports whether every cell of r lies inside the mask and is covered.
func (m *Mask) Contains(r Rect) bool {
	if !r.Valid() || !m.inBounds(r.RowFirst, r.ColFirst) || !m.inBounds(r.RowLast, r.ColLast) {
		return false
	}
	for row := r.RowFirst; row <= r.RowLast; row++ {
		for col := r.ColFirst; col <= r.ColLast; col++ {
			if !m.cells[row*m.cols+col] {
				return false
			}
		}
	}
	return true
}

// Equal reports whether both masks have the same shape and coverage.
func (m *Mask) Equal(o *Mask) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// Lines renders the mask as one string of '0' and '1' per row.
func (m *Mask) Lines() []string {
	lines := make([]string, m.rows)
	buf := make([]byte, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			buf[c] = '0'
			if m.cells[r*m.cols+c] {
				buf[c] = '1'
			}
		}
		lines[r] = string(buf)
	}
	return lines
}

func (m *Mask) String() string {
	return strings.Join(m.Lines(), "\n")
}
