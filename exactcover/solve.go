package exactcover

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/gridforge/tilepuzzle/embedding"
	"github.com/gridforge/tilepuzzle/shapekit"
	"github.com/gridforge/tilepuzzle/topology"
)

// Result is the outcome of a Solve call.
type Result struct {
	BestScore       int
	PlacedBundleIDs []int
}

// MatrixRow is one candidate (bundle, shape, anchor, rotation) placement.
// Footprint is cached at construction time rather than recomputed during
// apply, avoiding a second pass through the embedding primitive for every
// row that ends up in the solution.
type MatrixRow struct {
	ID        int
	Cols      []string
	BundleID  int
	Anchor    int
	Rotation  topology.Rotation
	Footprint []int
}

// Solve builds the full placement matrix and runs Algorithm X on it. A
// Result with BestScore 0 and no placements means no exact cover exists (or
// some shape has no legal placement at all) — this is a degenerate, valid
// outcome, not an error.
func Solve(p *shapekit.Puzzle) (*Result, error) {
	rows, cols, shapeCols := buildMatrix(p)

	for _, col := range shapeCols {
		if cols[col].Size() == 0 {
			return &Result{}, nil
		}
	}

	var solution []int
	if !search(cols, rows, &solution) {
		return &Result{}, nil
	}

	return applySolution(p, rows, solution), nil
}

// buildMatrix enumerates every (bundle, shape, anchor, rotation) placement
// as a row, and every shape-once / cell-once requirement as a column.
func buildMatrix(p *shapekit.Puzzle) (map[int]*MatrixRow, map[string]*hashset.Set, []string) {
	rows := make(map[int]*MatrixRow)
	cols := make(map[string]*hashset.Set)

	var shapeCols []string
	for id := 0; id < p.Board.Size(); id++ {
		cols[cellCol(id)] = hashset.New()
	}

	rowID := 0
	for _, bundle := range p.Bundles {
		for shapeIdx, shape := range bundle.Shapes {
			shapeCol := shapeColKey(bundle.ID, shapeIdx)
			cols[shapeCol] = hashset.New()
			shapeCols = append(shapeCols, shapeCol)

			for anchor := 0; anchor < p.Board.Size(); anchor++ {
				for rot := 0; rot < p.Board.MaxPorts(); rot++ {
					fp, err := embedding.Embed(p.Board, anchor, shape, topology.Rotation(rot))
					if err != nil {
						continue
					}

					rowCols := make([]string, 0, len(fp)+1)
					rowCols = append(rowCols, shapeCol)
					for _, cid := range fp {
						rowCols = append(rowCols, cellCol(cid))
					}

					row := &MatrixRow{
						ID: rowID, Cols: rowCols, BundleID: bundle.ID,
						Anchor: anchor, Rotation: topology.Rotation(rot), Footprint: fp,
					}
					rows[rowID] = row
					for _, c := range rowCols {
						cols[c].Add(rowID)
					}
					rowID++
				}
			}
		}
	}

	return rows, cols, shapeCols
}

func cellCol(id int) string {
	return fmt.Sprintf("N:%d", id)
}

func shapeColKey(bundleID, shapeIdx int) string {
	return fmt.Sprintf("S:%d:%d", bundleID, shapeIdx)
}

// removedCol remembers a column's row set at the moment it was covered, so
// uncover can restore it exactly.
type removedCol struct {
	name string
	rows []int
}

// search is classic Algorithm X: pick the minimum-incidence column, try
// each of its rows, cover/uncover around the choice, backtrack on failure.
func search(cols map[string]*hashset.Set, rows map[int]*MatrixRow, solution *[]int) bool {
	if len(cols) == 0 {
		return true
	}

	bestCol, minLen := "", -1
	for name, set := range cols {
		if minLen == -1 || set.Size() < minLen {
			bestCol, minLen = name, set.Size()
			if minLen <= 1 {
				break
			}
		}
	}
	if minLen == 0 {
		return false
	}

	candidates := intValues(cols[bestCol])

	for _, rowID := range candidates {
		*solution = append(*solution, rowID)

		removed := cover(cols, rows, rowID)

		if search(cols, rows, solution) {
			return true
		}

		*solution = (*solution)[:len(*solution)-1]
		uncover(cols, rows, rowID, removed)
	}

	return false
}

// cover removes every column the chosen row satisfies, and removes every
// other row that also touches one of those columns from the columns it
// doesn't share with the chosen row (so competing placements stop being
// candidates once this row is tentatively chosen).
func cover(cols map[string]*hashset.Set, rows map[int]*MatrixRow, rowID int) []removedCol {
	var removed []removedCol
	for _, c := range rows[rowID].Cols {
		set, ok := cols[c]
		if !ok {
			continue
		}

		for _, otherRow := range intValues(set) {
			if otherRow == rowID {
				continue
			}
			for _, oc := range rows[otherRow].Cols {
				if oc != c {
					if s, ok := cols[oc]; ok {
						s.Remove(otherRow)
					}
				}
			}
		}

		removed = append(removed, removedCol{name: c, rows: intValues(set)})
		delete(cols, c)
	}
	return removed
}

// uncover restores exactly what cover removed, in reverse order.
func uncover(cols map[string]*hashset.Set, rows map[int]*MatrixRow, rowID int, removed []removedCol) {
	for i := len(removed) - 1; i >= 0; i-- {
		c := removed[i]
		set := hashset.New()
		for _, r := range c.rows {
			set.Add(r)
		}
		cols[c.name] = set

		for _, otherRow := range c.rows {
			if otherRow == rowID {
				continue
			}
			for _, oc := range rows[otherRow].Cols {
				if oc != c.name {
					if s, ok := cols[oc]; ok {
						s.Add(otherRow)
					}
				}
			}
		}
	}
}

func intValues(set *hashset.Set) []int {
	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}
	return out
}

// applySolution stamps each chosen row's cached footprint onto the board,
// assigning a fresh synthetic figure id per row.
func applySolution(p *shapekit.Puzzle, rows map[int]*MatrixRow, solution []int) *Result {
	placedSet := map[int]bool{}
	score := 0
	figureID := 0

	for _, rowID := range solution {
		row := rows[rowID]
		placedSet[row.BundleID] = true
		for _, cid := range row.Footprint {
			p.Board.SetTags(cid, row.BundleID, figureID)
		}
		figureID++
		score += len(row.Footprint)
	}

	placed := make([]int, 0, len(placedSet))
	for id := range placedSet {
		placed = append(placed, id)
	}
	return &Result{BestScore: score, PlacedBundleIDs: placed}
}
