package solve

import (
	"context"
	"log"
	"time"

	"github.com/gridforge/tilepuzzle/exactcover"
	"github.com/gridforge/tilepuzzle/grasp"
	"github.com/gridforge/tilepuzzle/metaheuristic"
	"github.com/gridforge/tilepuzzle/shapekit"
)

// Options aggregates every solver's tunables. The CLI populates one of
// these from flags and passes it straight through; each solver reads only
// the fields it cares about.
//
// Seed and Seeded together avoid a false ambiguity: Seed's zero value (0)
// is a perfectly legal seed, so a bare int64 field cannot distinguish
// "caller wants seed 0" from "caller didn't set a seed." Seeded makes that
// explicit — when false, every dispatched solver draws its own seed from a
// non-deterministic source instead of running fully deterministic at Go's
// zero value.
type Options struct {
	MaxIterations int
	Alpha         float64
	Timeout       time.Duration
	Verbose       bool
	Seed          int64
	Seeded        bool

	PopulationSize int
	Generations    int
	Elitism        int

	InitialTemperature float64
	CoolingRate        float64
}

// Result is the outcome of any solver, normalized to one shape for the
// CLI's reporting path.
type Result struct {
	BestScore       int
	PlacedBundleIDs []int
}

// Run dispatches to the named algorithm: "grasp", "dlx", "sa", "ga", "perm".
// An unrecognized name falls back to "grasp" with a logged warning rather
// than failing the run outright — a CLI typo shouldn't lose a long-running
// batch job when a sensible default is available.
func Run(ctx context.Context, name string, p *shapekit.Puzzle, opts Options) (Result, error) {
	switch name {
	case "grasp":
		return runGRASP(ctx, p, opts)
	case "dlx":
		return runDLX(p)
	case "sa":
		return runSA(p, opts), nil
	case "ga":
		return runGAPermutation(p, opts), nil
	case "perm":
		return runGACoordinate(p, opts), nil
	default:
		log.Printf("solve: unknown algorithm %q, falling back to grasp", name)
		return runGRASP(ctx, p, opts)
	}
}

func runGRASP(ctx context.Context, p *shapekit.Puzzle, opts Options) (Result, error) {
	res, err := grasp.Solve(ctx, p, grasp.Config{
		MaxIterations: opts.MaxIterations,
		Alpha:         opts.Alpha,
		TimeBudget:    opts.Timeout,
		Verbose:       opts.Verbose,
		Seed:          opts.Seed,
		Seeded:        opts.Seeded,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{BestScore: res.BestScore, PlacedBundleIDs: res.PlacedBundleIDs}, nil
}

func runDLX(p *shapekit.Puzzle) (Result, error) {
	res, err := exactcover.Solve(p)
	if err != nil {
		return Result{}, err
	}
	return Result{BestScore: res.BestScore, PlacedBundleIDs: res.PlacedBundleIDs}, nil
}

func runSA(p *shapekit.Puzzle, opts Options) Result {
	sa := &metaheuristic.SA{Config: metaheuristic.SAConfig{
		InitialTemperature: opts.InitialTemperature,
		CoolingRate:        opts.CoolingRate,
		MaxIterations:      opts.MaxIterations,
		Seed:               opts.Seed,
		Seeded:             opts.Seeded,
	}}
	res := sa.Solve(p.Board, p.Bundles)
	return Result{BestScore: res.BestFitness}
}

func runGAPermutation(p *shapekit.Puzzle, opts Options) Result {
	ga := &metaheuristic.GAPermutation{Config: metaheuristic.GAConfig{
		PopulationSize: opts.PopulationSize,
		Generations:    opts.Generations,
		Elitism:        opts.Elitism,
		Seed:           opts.Seed,
		Seeded:         opts.Seeded,
	}}
	res := ga.Solve(p.Board, p.Bundles)
	return Result{BestScore: res.BestFitness}
}

func runGACoordinate(p *shapekit.Puzzle, opts Options) Result {
	ga := &metaheuristic.GACoordinate{Config: metaheuristic.GAConfig{
		PopulationSize: opts.PopulationSize,
		Generations:    opts.Generations,
		Elitism:        opts.Elitism,
		Seed:           opts.Seed,
		Seeded:         opts.Seeded,
	}}
	res := ga.Solve(p.Board, p.Bundles)
	return Result{BestScore: res.BestFitness}
}
