package track

import "gonum.org/v1/gonum/mat"

// gatedAssignment is the outcome of one timepoint boundary after gating:
// accepted pairings plus the leftovers on both sides. Track indices refer
// to rows of the cost matrix, region indices to its columns.
type gatedAssignment struct {
	// matches holds {trackRow, regionCol} pairs in ascending trackRow
	// order.
	matches [][2]int
	// unmatchedTracks are rows with no accepted pairing (death candidates).
	unmatchedTracks []int
	// unmatchedRegions are columns with no accepted pairing (birth
	// candidates).
	unmatchedRegions []int
}

// applyGate partitions the solver's pairings by the maximum allowed
// per-step displacement. A pairing whose distance exceeds the gate is
// dissolved: without gating the optimal solver will pair a vanished
// cell's track with an unrelated cell across the field merely because it
// is least bad, so the gate enforces the physical bound on how far a cell
// can move between consecutive acquisitions.
//
// assignment[i] = j follows the solveAssignment convention; numTracks and
// numRegions are the cost matrix dimensions.
func applyGate(cost *mat.Dense, assignment []int, numTracks, numRegions int, maxDisplacement float64) gatedAssignment {
	out := gatedAssignment{}
	matchedRegions := make([]bool, numRegions)
	for i := 0; i < numTracks; i++ {
		j := -1
		if i < len(assignment) {
			j = assignment[i]
		}
		if j >= 0 && j < numRegions && cost.At(i, j) <= maxDisplacement {
			out.matches = append(out.matches, [2]int{i, j})
			matchedRegions[j] = true
			continue
		}
		out.unmatchedTracks = append(out.unmatchedTracks, i)
	}
	for j := 0; j < numRegions; j++ {
		if !matchedRegions[j] {
			out.unmatchedRegions = append(out.unmatchedRegions, j)
		}
	}
	return out
}
