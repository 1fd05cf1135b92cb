package track

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Algorithm selects how candidate pairings are computed from a cost matrix.
type Algorithm uint16

const (
	// AlgorithmHungarian solves the rectangular assignment problem
	// optimally (Kuhn–Munkres / Jonker–Volgenant). This is the default:
	// greedy matching is order-dependent and can flip identities when two
	// regions compete for the same track.
	AlgorithmHungarian Algorithm = iota
	// AlgorithmGreedy assigns each track its nearest unused region. Faster
	// but not globally optimal; deterministic for identical inputs.
	AlgorithmGreedy
)

// forbiddenCost is the padding value for rectangular matrices. Any pairing
// at or above it is rejected when trimming back to the original shape.
const forbiddenCost = 1e18

// solveAssignment returns assignment[i] = column paired with row i, or -1
// if row i is unpaired. Rows are track positions, columns are region
// centroids. At most min(m, n) rows are paired and no column is used
// twice. Both algorithms are deterministic: the same matrix always yields
// the same assignment, including when multiple pairings tie on total cost
// (the tie broken is whichever the fixed row-major scan order reaches
// first).
func solveAssignment(cost *mat.Dense, algorithm Algorithm) []int {
	switch algorithm {
	case AlgorithmGreedy:
		return greedyAssign(cost)
	default:
		return hungarianAssign(cost)
	}
}

// hungarianAssign solves the rectangular minimum-cost assignment for an
// n×m cost matrix using the Kuhn–Munkres algorithm with potentials
// (Jonker–Volgenant variant), O(dim³) in the padded dimension. The matrix
// is padded square with forbiddenCost so excess rows or columns stay
// unpaired. Internally 1-indexed for cleaner index arithmetic.
func hungarianAssign(cost *mat.Dense) []int {
	if cost == nil {
		return nil
	}
	n, m := cost.Dims()
	if n == 0 {
		return nil
	}
	if m == 0 {
		result := make([]int, n)
		for i := range result {
			result[i] = -1
		}
		return result
	}

	dim := n
	if m > dim {
		dim = m
	}

	c := make([][]float64, dim)
	for i := 0; i < dim; i++ {
		c[i] = make([]float64, dim)
		for j := 0; j < dim; j++ {
			if i < n && j < m {
				c[i][j] = cost.At(i, j)
			} else {
				c[i][j] = forbiddenCost
			}
		}
	}

	const inf = math.MaxFloat64 / 2

	u := make([]float64, dim+1) // Row potentials
	v := make([]float64, dim+1) // Column potentials
	p := make([]int, dim+1)     // p[j] = row assigned to column j
	way := make([]int, dim+1)   // way[j] = previous column in augmenting path
	minv := make([]float64, dim+1)
	used := make([]bool, dim+1)

	for i := 1; i <= dim; i++ {
		p[0] = i
		j0 := 0 // Virtual column

		for j := 1; j <= dim; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= dim; j++ {
				if used[j] {
					continue
				}
				cur := c[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			if j1 < 0 {
				break
			}

			for j := 0; j <= dim; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment along the path.
		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	// Extract row → column assignments.
	rowAssign := make([]int, dim)
	for i := range rowAssign {
		rowAssign[i] = -1
	}
	for j := 1; j <= dim; j++ {
		if p[j] > 0 && p[j] <= dim {
			rowAssign[p[j]-1] = j - 1
		}
	}

	// Trim to original dimensions and reject forbidden pairings.
	result := make([]int, n)
	for i := 0; i < n; i++ {
		col := rowAssign[i]
		if col < 0 || col >= m || cost.At(i, col) >= forbiddenCost {
			result[i] = -1
		} else {
			result[i] = col
		}
	}

	return result
}

// greedyAssign pairs each row with its lowest-cost unused column, rows in
// ascending order. Kept as the faster alternative for very large region
// sets where the optimality of the Hungarian solution is not worth its
// cubic cost.
func greedyAssign(cost *mat.Dense) []int {
	if cost == nil {
		return nil
	}
	n, m := cost.Dims()
	if n == 0 {
		return nil
	}
	result := make([]int, n)
	usedCols := make([]bool, m)
	for i := 0; i < n; i++ {
		best := -1
		bestCost := math.Inf(1)
		for j := 0; j < m; j++ {
			if usedCols[j] {
				continue
			}
			if cur := cost.At(i, j); cur < bestCost && cur < forbiddenCost {
				bestCost = cur
				best = j
			}
		}
		result[i] = best
		if best >= 0 {
			usedCols[best] = true
		}
	}
	return result
}
