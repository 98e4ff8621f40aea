// Command tilepuzzle generates and solves tile-placement puzzles. Usage:
//
//	tilepuzzle generate --config <path> --output <path>
//	tilepuzzle solve --input <path> --output <path> --algo <name> [--timeout <seconds>] [--seed <n>] [--verbose]
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: tilepuzzle <generate|solve> [flags]")
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "solve":
		err = runSolve(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Usage: tilepuzzle <generate|solve> [flags]\nunknown subcommand %q\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		log.Printf("tilepuzzle: %v", err)
		os.Exit(1)
	}
}
