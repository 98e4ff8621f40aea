package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/gridforge/tilepuzzle/puzzleio"
	"github.com/gridforge/tilepuzzle/solve"
)

// runSolve implements "tilepuzzle solve --input <path> --output <path>
// --algo <name> [--timeout <seconds>] [--seed <n>] [--verbose]". Omitting
// --seed leaves every dispatched solver to draw its own non-deterministic
// seed, the same as a bare `tilepuzzle generate` run.
func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	inputPath := fs.String("input", "", "path to the puzzle file to solve")
	outputPath := fs.String("output", "", "path to write the solved puzzle file")
	algo := fs.String("algo", "grasp", "algorithm: grasp, dlx, sa, ga, perm")
	timeoutSeconds := fs.Int("timeout", 0, "time budget in seconds (0 = unbounded)")
	verbose := fs.Bool("verbose", false, "log per-iteration progress")
	seed := fs.Int64("seed", 0, "RNG seed (omit for a non-deterministic seed)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inputPath == "" || *outputPath == "" {
		return fmt.Errorf("solve: --input and --output are required")
	}

	seeded := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})

	puzzle, err := puzzleio.Load(*inputPath)
	if err != nil {
		return err
	}

	opts := solve.Options{
		MaxIterations:      1000,
		Alpha:              0.3,
		Verbose:            *verbose,
		Seed:               *seed,
		Seeded:             seeded,
		PopulationSize:     50,
		Generations:        100,
		Elitism:            2,
		InitialTemperature: 100,
		CoolingRate:        0.995,
	}
	if *timeoutSeconds > 0 {
		opts.Timeout = time.Duration(*timeoutSeconds) * time.Second
	}

	res, err := solve.Run(context.Background(), *algo, puzzle, opts)
	if err != nil {
		return err
	}

	if err := puzzleio.Save(*outputPath, puzzle); err != nil {
		return err
	}

	fmt.Printf("score=%d placed_bundles=%d\n", res.BestScore, len(res.PlacedBundleIDs))
	return nil
}
