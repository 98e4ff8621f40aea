// Package solve maps an algorithm name to the solver package that
// implements it, aggregating every solver's tunables into one Options
// struct so the CLI has a single place to populate from flags.
package solve
