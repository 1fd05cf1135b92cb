package track

import (
	"gonum.org/v1/gonum/mat"
)

// buildCostMatrix computes the m×n matrix of Euclidean distances between
// the active tracks' match positions (rows) and the current timepoint's
// region centroids (columns). Returns nil when either side is empty; those
// boundaries are pure births or pure deaths and never reach the solver.
//
// The second return value reports whether every entry is finite. A
// non-finite entry makes the assignment optimum meaningless, so callers
// must treat the whole boundary as degenerate rather than trust any
// pairing out of it.
func buildCostMatrix(trackPositions, regionCentroids []Point) (*mat.Dense, bool) {
	m := len(trackPositions)
	n := len(regionCentroids)
	if m == 0 || n == 0 {
		return nil, true
	}
	cost := mat.NewDense(m, n, nil)
	finite := true
	for i, tp := range trackPositions {
		for j, rc := range regionCentroids {
			d := euclideanDistance(tp, rc)
			if !finiteValue(d) {
				finite = false
			}
			cost.Set(i, j, d)
		}
	}
	return cost, finite
}
