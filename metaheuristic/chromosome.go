package metaheuristic

import "github.com/gridforge/tilepuzzle/heuristic"

// Gene is one bundle's placement policy: which bundle, and which heuristic
// kind to drive its greedy placement with.
type Gene struct {
	BundleID  int
	Heuristic heuristic.Kind
}

// Chromosome is an ordered sequence of genes, one per bundle. Order matters
// for SA and GAPermutation (it is the bundle placement order); GACoordinate
// does not use Chromosome at all — its individuals are placement maps.
type Chromosome []Gene

// Clone returns an independent copy of c.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}
