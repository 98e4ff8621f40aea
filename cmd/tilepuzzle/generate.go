package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/gridforge/tilepuzzle/generator"
	"github.com/gridforge/tilepuzzle/puzzlecfg"
	"github.com/gridforge/tilepuzzle/puzzleio"
)

// runGenerate implements "tilepuzzle generate --config <path> --output
// <path>": it loads the generator configuration, builds a puzzle, and
// writes both the solved target file and the cleared task file.
func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to generator config YAML")
	outputPath := fs.String("output", "", "path to write the task puzzle file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" || *outputPath == "" {
		return fmt.Errorf("generate: --config and --output are required")
	}

	cfg, err := puzzlecfg.Load(*configPath)
	if err != nil {
		return err
	}

	puzzle, err := generator.Generate(cfg)
	if err != nil {
		return err
	}

	targetPath := withSuffix(*outputPath, "_target")
	if err := puzzleio.Save(targetPath, puzzle); err != nil {
		return err
	}

	task := puzzle.Clone()
	task.ClearBoard()
	if err := puzzleio.Save(*outputPath, task); err != nil {
		return err
	}

	fmt.Printf("generated %s (target) and %s (task)\n", targetPath, *outputPath)
	return nil
}

// withSuffix inserts suffix before path's extension, e.g.
// withSuffix("out.json", "_target") == "out_target.json".
func withSuffix(path, suffix string) string {
	ext := ""
	base := path
	if i := strings.LastIndex(path, "."); i >= 0 {
		ext = path[i:]
		base = path[:i]
	}
	return base + suffix + ext
}
