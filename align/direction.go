// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align implements the pairwise and position-weight-matrix
// dynamic programming aligners shared by the heuristic and latent-repeat
// pipelines: global (Needleman-Wunsch-style), local (Smith-Waterman-
// style) and PWM variants over a single scalar gap-open/gap-extend
// penalty pair.
package align

// Direction records which predecessor cell a DP cell's score came from.
type Direction byte

const (
	Top Direction = iota
	Left
	Diagonal
	Beginning
)

// pick chooses the max of top, left and diagonal, breaking ties in that
// order, with no floor at zero (used by the global aligner's interior
// cells, which never restart).
func pick(top, left, diag float64) (float64, Direction) {
	max := top
	d := Top
	if left > max {
		max, d = left, Left
	}
	if diag > max {
		max, d = diag, Diagonal
	}
	return max, d
}

// pickWithBeginning is pick, except a non-positive max selects Beginning,
// used by local and PWM cells where an alignment may restart anywhere.
func pickWithBeginning(top, left, diag float64) (float64, Direction) {
	max, d := pick(top, left, diag)
	if max <= 0 {
		return 0, Beginning
	}
	return max, d
}
