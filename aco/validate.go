// Package aco - validation for the shipped matrix-backed traversal.
//
// Deterministic, side-effect free checks; only sentinel errors from types.go.
// O(n²) worst case for an n×n matrix, no hidden allocations.
package aco

import "math"

// symTol is a structural tolerance for symmetry and diagonal checks.
const symTol = 1e-12

// validateDistanceMatrix verifies that dist is a usable symmetric distance
// matrix and returns its order n.
//
// Contract:
//   - square, n ≥ 2 (ErrNonSquareMatrix, ErrMatrixTooSmall);
//   - diagonal ≈ 0 within symTol (ErrBadWeight);
//   - off-diagonal entries strictly positive and finite (ErrBadWeight) -
//     the walker inverts them into qualities, so zero, ±Inf and NaN are all
//     rejected up front;
//   - symmetric within symTol (ErrAsymmetricMatrix) - colony edges are
//     unordered pairs, so an asymmetric matrix would be incoherent.
//
// Complexity: O(n²) time, O(1) space.
func validateDistanceMatrix(dist [][]float64) (int, error) {
	n := len(dist)
	if n < 2 {
		if n == 0 {
			return 0, ErrNonSquareMatrix
		}

		return 0, ErrMatrixTooSmall
	}

	// Shape first, values second: the symmetry check below reads dist[j][i]
	// ahead of row j's own iteration, so every row length must be known good.
	var (
		i int
		j int
		w float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquareMatrix
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = dist[i][j]
			if i == j {
				if math.IsNaN(w) || math.Abs(w) > symTol {
					return 0, ErrBadWeight
				}
				continue
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
				return 0, ErrBadWeight
			}
			// Only check each unordered pair once.
			if j > i && math.Abs(w-dist[j][i]) > symTol {
				return 0, ErrAsymmetricMatrix
			}
		}
	}

	return n, nil
}
