package algo

import (
	"fmt"
	"math/rand/v2"
)

// Candidates returns the width-first and height-first rectangles grown from
// every covered cell, in row-major anchor order. Duplicates are kept.
func Candidates(m *Mask) []Rect {
	cells := m.Covered()
	if len(cells) == 0 {
		return nil
	}
	t := m.Transpose()
	rects := make([]Rect, 0, 2*len(cells))
	for _, c := range cells {
		rects = append(rects, sweep(m, c.Row, c.Col))
		rects = append(rects, sweep(t, c.Col, c.Row).Transpose())
	}
	return rects
}

// LargestCandidates returns the distinct candidates sharing the maximum area,
// in the order they were first generated.
func LargestCandidates(m *Mask) []Rect {
	var (
		best    []Rect
		maxArea int
		seen    = make(map[Rect]bool)
	)
	for _, r := range Candidates(m) {
		a := r.Area()
		switch {
		case a > maxArea:
			maxArea = a
			best = best[:0]
			clear(seen)
		case a < maxArea:
			continue
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		best = append(best, r)
	}
	return best
}

// TrimToLargestRectangle picks the largest covered rectangle of m. Ties are
// broken uniformly at random among distinct rectangles using rng; a nil rng
// uses the package-level source. ok is false when m has no covered cells.
func TrimToLargestRectangle(m *Mask, rng *rand.Rand) (r Rect, ok bool) {
	if m == nil {
		return Rect{}, false
	}
	ties := LargestCandidates(m)
	if len(ties) == 0 {
		return Rect{}, false
	}

	var i int
	if rng != nil {
		i = rng.IntN(len(ties))
	} else {
		i = rand.IntN(len(ties))
	}
	r = ties[i]

	if !m.Contains(r) || r.Area() > m.Count() {
		panic(fmt.Sprintf("algo: trimmed rectangle %v exceeds source coverage", r))
	}
	return r, true
}

// Trim returns the mask form of TrimToLargestRectangle's pick. When m has no
// coverage the result is an all-zero mask of the same shape.
func Trim(m *Mask, rng *rand.Rand) *Mask {
	if m == nil {
		return NewMask(0, 0)
	}
	r, ok := TrimToLargestRectangle(m, rng)
	if !ok {
		return NewMask(m.Rows(), m.Cols())
	}
	return r.Mask(m.Rows(), m.Cols())
}
