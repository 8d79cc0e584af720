package algo

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestTrimToLargestRectangle(t *testing.T) {
	tests := []struct {
		name    string
		mask    []string
		allowed []Rect
	}{
		{
			name:    "Full 3x3",
			mask:    []string{"111", "111", "111"},
			allowed: []Rect{{RowFirst: 0, RowLast: 2, ColFirst: 0, ColLast: 2}},
		},
		{
			name: "Empty Middle Row",
			mask: []string{"111", "000", "111"},
			allowed: []Rect{
				{RowFirst: 0, RowLast: 0, ColFirst: 0, ColLast: 2},
				{RowFirst: 2, RowLast: 2, ColFirst: 0, ColLast: 2},
			},
		},
		{
			name:    "Single Cell",
			mask:    []string{"000", "010", "000"},
			allowed: []Rect{{RowFirst: 1, RowLast: 1, ColFirst: 1, ColLast: 1}},
		},
		{
			name: "L-Shape",
			mask: []string{"111", "100", "100"},
			allowed: []Rect{
				{RowFirst: 0, RowLast: 0, ColFirst: 0, ColLast: 2},
				{RowFirst: 0, RowLast: 2, ColFirst: 0, ColLast: 0},
			},
		},
		{
			name:    "Solid Offset Rectangle",
			mask:    []string{"00000", "01110", "01110", "00000"},
			allowed: []Rect{{RowFirst: 1, RowLast: 2, ColFirst: 1, ColLast: 3}},
		},
		{
			name:    "Height First Wins",
			mask:    []string{"111", "110", "110"},
			allowed: []Rect{{RowFirst: 0, RowLast: 2, ColFirst: 0, ColLast: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustParse(t, tt.mask...)
			rng := newRand(1)
			for i := 0; i < 20; i++ {
				got, ok := TrimToLargestRectangle(m, rng)
				if !ok {
					t.Fatalf("TrimToLargestRectangle() returned no rectangle")
				}
				found := false
				for _, want := range tt.allowed {
					if got == want {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("TrimToLargestRectangle() = %v, want one of %v", got, tt.allowed)
				}
			}
		})
	}
}

func TestTrimToLargestRectangle_Empty(t *testing.T) {
	for _, m := range []*Mask{nil, NewMask(0, 0), NewMask(3, 3)} {
		if r, ok := TrimToLargestRectangle(m, newRand(1)); ok {
			t.Errorf("TrimToLargestRectangle() = %v, want none", r)
		}
	}

	got := Trim(NewMask(2, 4), nil)
	if got.Rows() != 2 || got.Cols() != 4 || got.Count() != 0 {
		t.Errorf("Trim() on empty mask = %dx%d with %d covered, want empty 2x4", got.Rows(), got.Cols(), got.Count())
	}
}

func TestTrim(t *testing.T) {
	m := mustParse(t, "0110", "0111", "0000")
	got := Trim(m, newRand(3))
	want := mustParse(t, "0110", "0110", "0000")
	if !got.Equal(want) {
		t.Errorf("Trim() =\n%s\nwant\n%s", got, want)
	}
}

// Every pick must stay inside the source coverage, and trimming the pick's
// own mask must return the pick unchanged.
func TestTrimToLargestRectangle_RandomMasks(t *testing.T) {
	rng := newRand(42)
	for i := 0; i < 300; i++ {
		rows, cols := 1+rng.IntN(7), 1+rng.IntN(7)
		m := NewMask(rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				m.Set(r, c, rng.IntN(3) > 0)
			}
		}

		got, ok := TrimToLargestRectangle(m, rng)
		if ok != (m.Count() > 0) {
			t.Fatalf("mask %d: ok = %v with %d covered cells", i, ok, m.Count())
		}
		if !ok {
			continue
		}
		if !m.Contains(got) {
			t.Fatalf("mask %d: %v is not inside\n%s", i, got, m)
		}
		if got.Area() <= 0 || got.Area() > m.Count() {
			t.Fatalf("mask %d: area %d outside (0, %d]", i, got.Area(), m.Count())
		}
		for _, c := range Candidates(m) {
			if c.Area() > got.Area() {
				t.Fatalf("mask %d: candidate %v larger than pick %v", i, c, got)
			}
		}

		again, ok := TrimToLargestRectangle(got.Mask(rows, cols), rng)
		if !ok || again != got {
			t.Fatalf("mask %d: re-trim = %v, %v; want %v", i, again, ok, got)
		}
	}
}

func TestTrimToLargestRectangle_TieDistribution(t *testing.T) {
	tests := []struct {
		name string
		mask []string
	}{
		{name: "Disjoint Rows", mask: []string{"111", "000", "111"}},
		{name: "L-Shape", mask: []string{"111", "100", "100"}},
		{name: "Disjoint Blocks", mask: []string{"1100", "1100", "0000", "0011", "0011"}},
	}

	const trials = 4000
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustParse(t, tt.mask...)
			rng := newRand(7)
			counts := make(map[Rect]int)
			for i := 0; i < trials; i++ {
				r, ok := TrimToLargestRectangle(m, rng)
				if !ok {
					t.Fatal("TrimToLargestRectangle() returned no rectangle")
				}
				counts[r]++
			}
			if len(counts) != 2 {
				t.Fatalf("got %d distinct winners %v, want 2", len(counts), counts)
			}
			for r, n := range counts {
				if n < trials*4/10 || n > trials*6/10 {
					t.Errorf("%v picked %d/%d times, want roughly half", r, n, trials)
				}
			}
		})
	}
}

func TestLargestCandidates(t *testing.T) {
	m := mustParse(t, "111", "000", "111")
	got := LargestCandidates(m)
	want := []Rect{
		{RowFirst: 0, RowLast: 0, ColFirst: 0, ColLast: 2},
		{RowFirst: 2, RowLast: 2, ColFirst: 0, ColLast: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LargestCandidates() = %v, want %v", got, want)
	}

	if n := len(Candidates(m)); n != 12 {
		t.Errorf("len(Candidates()) = %d, want 12", n)
	}
}
