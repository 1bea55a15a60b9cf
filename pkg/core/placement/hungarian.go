package placement

import (
	"fmt"
	"math"
)

// AssignmentSolver solves minimum-cost perfect matching on a square cost matrix
type AssignmentSolver interface {
	// Solve returns, for each row, the index of the column matched to it
	Solve(cost [][]float64) ([]int, error)
}

// HungarianSolver implements AssignmentSolver with the O(n³) Hungarian method
// using row and column potentials.
type HungarianSolver struct{}

// Solve finds a perfect matching of minimum total cost
func (HungarianSolver) Solve(cost [][]float64) ([]int, error) {
	n := len(cost)
	for i, row := range cost {
		if len(row) != n {
			return nil, fmt.Errorf("cost matrix is not square: row %d has %d columns, expected %d", i, len(row), n)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("cost matrix entry (%d, %d) is not finite", i, j)
			}
		}
	}
	if n == 0 {
		return []int{}, nil
	}

	// Index 0 is a virtual row/column; real rows and columns are 1..n
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	match := make([]int, n+1) // match[j] is the row assigned to column j
	way := make([]int, n+1)
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		match[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := match[j0]
			delta := math.Inf(1)
			j1 := 0

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if match[j0] == 0 {
				break
			}
		}

		// Flip the augmenting path
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= n; j++ {
		if match[j] != 0 {
			rowToCol[match[j]-1] = j - 1
		}
	}

	return rowToCol, nil
}
