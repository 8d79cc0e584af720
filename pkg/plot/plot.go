// Package plot tracks tower coverage over a rectangular plot of land.
package plot

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/commtower/commtower/pkg/algo"
)

// ErrInvalidDimensions is returned when a plot has a non-positive side.
var ErrInvalidDimensions = errors.New("plot dimensions must be positive integers")

// Plot is a rows x cols grid with the cumulative coverage of placed towers.
type Plot struct {
	coverage *algo.Mask
	covered  int
}

// New creates an empty plot with no coverage.
func New(rows, cols int) (*Plot, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	return &Plot{coverage: algo.NewMask(rows, cols)}, nil
}

// Rows returns the number of rows in the plot.
func (p *Plot) Rows() int { return p.coverage.Rows() }

// Cols returns the number of columns in the plot.
func (p *Plot) Cols() int { return p.coverage.Cols() }

// Area is the total number of cells in the plot.
func (p *Plot) Area() int { return p.Rows() * p.Cols() }

// Covered is the number of covered cells.
func (p *Plot) Covered() int { return p.covered }

// Full reports whether every cell is covered.
func (p *Plot) Full() bool { return p.covered == p.Area() }

// Ratio is the covered share of the plot, rounded to three decimals.
func (p *Plot) Ratio() float64 {
	return math.Round(float64(p.covered)/float64(p.Area())*1000) / 1000
}

// Mask returns a copy of the current coverage.
func (p *Plot) Mask() *algo.Mask { return p.coverage.Clone() }

// RandomTower draws a random tower rectangle inside the plot. Each dimension
// takes two uniform indices; the smaller becomes the first bound.
func (p *Plot) RandomTower(rng *rand.Rand) algo.Rect {
	r1, r2 := rng.IntN(p.Rows()), rng.IntN(p.Rows())
	c1, c2 := rng.IntN(p.Cols()), rng.IntN(p.Cols())
	return algo.Rect{
		RowFirst: min(r1, r2),
		RowLast:  max(r1, r2),
		ColFirst: min(c1, c2),
		ColLast:  max(c1, c2),
	}
}

// RemoveOverlap returns the cells of tower not already covered.
func (p *Plot) RemoveOverlap(tower algo.Rect) *algo.Mask {
	fresh := tower.Mask(p.Rows(), p.Cols())
	if p.covered == 0 {
		return fresh
	}
	for _, c := range fresh.Covered() {
		if p.coverage.At(c.Row, c.Col) {
			fresh.Set(c.Row, c.Col, false)
		}
	}
	return fresh
}

// Cover merges r into the plot's coverage. It panics if r overlaps existing
// coverage or leaves the plot.
func (p *Plot) Cover(r algo.Rect) {
	if r.Area() == 0 || !r.Mask(p.Rows(), p.Cols()).Contains(r) {
		panic(fmt.Sprintf("plot: tower %v outside %dx%d plot", r, p.Rows(), p.Cols()))
	}
	for row := r.RowFirst; row <= r.RowLast; row++ {
		for col := r.ColFirst; col <= r.ColLast; col++ {
			if p.coverage.At(row, col) {
				panic(fmt.Sprintf("plot: tower %v overlaps coverage at (%d,%d)", r, row, col))
			}
			p.coverage.Set(row, col, true)
		}
	}
	p.covered += r.Area()
}

// Placement describes one built tower.
type Placement struct {
	// Tower is the raw random rectangle.
	Tower algo.Rect
	// Trimmed is the coverage actually added; zero when Added is false.
	Trimmed algo.Rect
	// Added is false when the tower lay entirely over existing coverage.
	Added bool
}

// Place builds one random tower: the tower's uncovered cells are trimmed to
// their largest rectangle, which is merged into the plot.
func (p *Plot) Place(rng *rand.Rand) Placement {
	tower := p.RandomTower(rng)
	trimmed, ok := algo.TrimToLargestRectangle(p.RemoveOverlap(tower), rng)
	if ok {
		p.Cover(trimmed)
	}
	return Placement{Tower: tower, Trimmed: trimmed, Added: ok}
}
