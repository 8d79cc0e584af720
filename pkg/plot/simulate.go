package plot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

// ErrTowerLimit is returned when a fill run exceeds Options.MaxTowers.
var ErrTowerLimit = errors.New("tower limit reached before the plot was full")

// Options controls a simulation run.
type Options struct {
	// Towers is the number of towers to build. 0 builds until the plot is full.
	Towers int
	// MaxTowers bounds a fill run. 0 means unbounded.
	MaxTowers int
	// Rand is the random source for tower placement and tie-breaking.
	// Nil seeds a fresh PCG source.
	Rand *rand.Rand
	// Logger receives per-tower debug records. Nil uses slog.Default().
	Logger *slog.Logger
}

// Result summarises a finished run.
type Result struct {
	RunID      string
	Towers     int
	Covered    int
	Area       int
	Ratio      float64
	Placements []Placement
	Coverage   *Plot
}

// Simulate places random towers on an empty rows x cols plot until opts.Towers
// have been built or, when opts.Towers is 0, until the plot is full.
func Simulate(ctx context.Context, rows, cols int, opts Options) (Result, error) {
	if opts.Towers < 0 {
		return Result{}, fmt.Errorf("tower count must be >= 0, got %d", opts.Towers)
	}
	p, err := New(rows, cols)
	if err != nil {
		return Result{}, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	runID := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", runID)
	logger.Info("simulation started", "rows", rows, "cols", cols, "towers", opts.Towers)

	res := Result{RunID: runID, Area: p.Area(), Coverage: p}
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if opts.Towers == 0 && opts.MaxTowers > 0 && res.Towers >= opts.MaxTowers {
			return res, fmt.Errorf("%d towers, %d/%d cells covered: %w", res.Towers, p.Covered(), p.Area(), ErrTowerLimit)
		}

		pl := p.Place(rng)
		gained := 0
		if pl.Added {
			gained = pl.Trimmed.Area()
		}
		res.Towers++
		res.Placements = append(res.Placements, pl)
		res.Covered = p.Covered()
		res.Ratio = p.Ratio()
		logger.Debug("tower placed",
			"n", res.Towers,
			"tower", pl.Tower.String(),
			"added", pl.Added,
			"gained", gained,
			"covered", res.Covered,
		)

		if p.Full() || (opts.Towers > 0 && res.Towers == opts.Towers) {
			break
		}
	}

	logger.Info("simulation finished", "towers", res.Towers, "covered", res.Covered, "ratio", res.Ratio)
	return res, nil
}
