package plot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/commtower/commtower/pkg/algo"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestRandomTower_InsidePlot(t *testing.T) {
	p, err := New(4, 7)
	if err != nil {
		t.Fatal(err)
	}
	rng := newRand(1)
	for i := 0; i < 500; i++ {
		r := p.RandomTower(rng)
		if !r.Valid() || r.RowLast >= p.Rows() || r.ColLast >= p.Cols() {
			t.Fatalf("RandomTower() = %v outside 4x7 plot", r)
		}
	}
}

func TestRemoveOverlap(t *testing.T) {
	p, _ := New(3, 4)
	tower := algo.Rect{RowFirst: 0, RowLast: 2, ColFirst: 1, ColLast: 3}

	if got := p.RemoveOverlap(tower); !got.Equal(tower.Mask(3, 4)) {
		t.Errorf("RemoveOverlap() on empty plot =\n%s", got)
	}

	p.Cover(algo.Rect{RowFirst: 1, RowLast: 1, ColFirst: 0, ColLast: 2})
	got := p.RemoveOverlap(tower)
	want, _ := algo.ParseMask([]string{"0111", "0001", "0111"})
	if !got.Equal(want) {
		t.Errorf("RemoveOverlap() =\n%s\nwant\n%s", got, want)
	}
	if got.Count() > tower.Area() {
		t.Errorf("RemoveOverlap() covers %d cells, tower only %d", got.Count(), tower.Area())
	}
}

func TestCover_OverlapPanics(t *testing.T) {
	p, _ := New(2, 2)
	p.Cover(algo.Rect{RowFirst: 0, RowLast: 0, ColFirst: 0, ColLast: 1})
	defer func() {
		if recover() == nil {
			t.Error("Cover() over existing coverage did not panic")
		}
	}()
	p.Cover(algo.Rect{RowFirst: 0, RowLast: 1, ColFirst: 0, ColLast: 0})
}

func TestPlace_NeverOverlaps(t *testing.T) {
	p, _ := New(6, 5)
	rng := newRand(9)
	prev := 0
	for i := 0; i < 40 && !p.Full(); i++ {
		pl := p.Place(rng)
		gained := p.Covered() - prev
		if pl.Added && gained != pl.Trimmed.Area() {
			t.Fatalf("placement %d gained %d cells, trimmed area %d", i, gained, pl.Trimmed.Area())
		}
		if !pl.Added && gained != 0 {
			t.Fatalf("placement %d gained %d cells without adding a tower", i, gained)
		}
		prev = p.Covered()
	}
	if p.Mask().Count() != p.Covered() {
		t.Errorf("mask count %d != covered %d", p.Mask().Count(), p.Covered())
	}
}

func TestSimulate_Fill(t *testing.T) {
	res, err := Simulate(context.Background(), 5, 8, Options{Rand: newRand(3), Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if res.Covered != 40 || res.Area != 40 || res.Ratio != 1 {
		t.Errorf("Simulate() covered %d/%d ratio %v, want full plot", res.Covered, res.Area, res.Ratio)
	}
	if res.Towers < 1 || res.Towers != len(res.Placements) {
		t.Errorf("Simulate() towers = %d, placements = %d", res.Towers, len(res.Placements))
	}
	if res.RunID == "" {
		t.Error("Simulate() did not set a run ID")
	}
}

func TestSimulate_TowerCount(t *testing.T) {
	res, err := Simulate(context.Background(), 50, 50, Options{Towers: 3, Rand: newRand(5), Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if res.Towers > 3 || (res.Towers < 3 && res.Covered != res.Area) {
		t.Errorf("Simulate() built %d towers, want 3", res.Towers)
	}
	if res.Ratio <= 0 || res.Ratio > 1 {
		t.Errorf("Simulate() ratio = %v, want (0, 1]", res.Ratio)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	a, _ := Simulate(context.Background(), 7, 7, Options{Rand: newRand(11), Logger: quietLogger()})
	b, _ := Simulate(context.Background(), 7, 7, Options{Rand: newRand(11), Logger: quietLogger()})
	if a.Towers != b.Towers || !a.Coverage.Mask().Equal(b.Coverage.Mask()) {
		t.Errorf("same seed gave %d and %d towers", a.Towers, b.Towers)
	}
}

func TestSimulate_Errors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Simulate(ctx, 3, 3, Options{Logger: quietLogger()}); !errors.Is(err, context.Canceled) {
		t.Errorf("Simulate() with cancelled context error = %v", err)
	}

	if _, err := Simulate(context.Background(), 40, 40, Options{MaxTowers: 1, Rand: newRand(1), Logger: quietLogger()}); !errors.Is(err, ErrTowerLimit) {
		t.Errorf("Simulate() error = %v, want ErrTowerLimit", err)
	}

	if _, err := Simulate(context.Background(), 0, 3, Options{Logger: quietLogger()}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Simulate() error = %v, want ErrInvalidDimensions", err)
	}
}
