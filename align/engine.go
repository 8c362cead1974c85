// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/driftnet/alphabet"
)

// Global performs a Needleman-Wunsch-style global alignment of query
// against target under matrix with gap-open penalty del and gap-extend
// penalty ext. The border rows and columns are pre-filled with linear
// gap penalties so every cell of the grid is reachable, and the score is
// read from the bottom-right corner.
func Global(query, target []alphabet.Code, del, ext float64, matrix *mat.Dense) (*Alignment, *Result, error) {
	if len(query) == 0 || len(target) == 0 {
		return nil, nil, ErrEmptySequence
	}

	n, m := len(target), len(query)
	scores := mat.NewDense(n+1, m+1, nil)
	dirs := newDirGrid(n+1, m+1)

	for x := 1; x <= m; x++ {
		scores.Set(0, x, -float64(x)*del)
		dirs[0][x] = Left
	}
	for y := 1; y <= n; y++ {
		scores.Set(y, 0, -float64(y)*del)
		dirs[y][0] = Top
	}

	penalty := del
	for x := 1; x <= m; x++ {
		qc := query[x-1]
		for y := 1; y <= n; y++ {
			tc := target[y-1]

			top := scores.At(y-1, x) - penalty
			left := scores.At(y, x-1) - penalty
			diag := scores.At(y-1, x-1) + matrix.At(int(tc), int(qc))

			val, d := pick(top, left, diag)
			if d != Beginning {
				penalty = ext
			} else {
				penalty = del
			}
			scores.Set(y, x, val)
			dirs[y][x] = d
		}
	}

	aln := traceback(query, target, dirs, n, m, n, m)
	aln.F = scores.At(n, m)
	return aln, &Result{Scores: scores, Directions: dirs}, nil
}

// Local performs a Smith-Waterman-style local alignment; cells may
// restart an alignment at Beginning whenever the unconstrained max of
// top/left/diagonal candidates would be non-positive, and the optimum is
// read from the argmax cell of the grid.
func Local(query, target []alphabet.Code, del, ext float64, matrix *mat.Dense) (*Alignment, *Result, error) {
	if len(query) == 0 || len(target) == 0 {
		return nil, nil, ErrEmptySequence
	}

	n, m := len(target), len(query)
	scores := mat.NewDense(n+1, m+1, nil)
	dirs := newDirGrid(n+1, m+1)

	penalty := del
	bestY, bestX, best := 0, 0, 0.0
	for x := 1; x <= m; x++ {
		qc := query[x-1]
		for y := 1; y <= n; y++ {
			tc := target[y-1]

			top := scores.At(y-1, x) - penalty
			left := scores.At(y, x-1) - penalty
			diag := scores.At(y-1, x-1) + matrix.At(int(tc), int(qc))

			val, d := pickWithBeginning(top, left, diag)
			if d != Beginning {
				penalty = ext
			} else {
				penalty = del
			}
			scores.Set(y, x, val)
			dirs[y][x] = d
			if val > best {
				best, bestY, bestX = val, y, x
			}
		}
	}

	aln := traceback(query, target, dirs, bestY, bestX, n, m)
	aln.F = best
	return aln, &Result{Scores: scores, Directions: dirs}, nil
}

// traceback walks dirs from (startY, startX) back to Beginning, emitting
// one aligned pair per visited cell, and returns the reversed result.
func traceback(query, target []alphabet.Code, dirs [][]Direction, startY, startX, n, m int) *Alignment {
	var qOut, tOut []alphabet.Code
	y, x := startY, startX
	for {
		switch dirs[y][x] {
		case Beginning:
			qOut = reverseCodes(qOut)
			tOut = reverseCodes(tOut)
			return &Alignment{
				Query:        qOut,
				Target:       tOut,
				QueryCoords:  Coords{Start: x + 1, End: startX},
				TargetCoords: Coords{Start: y + 1, End: startY},
			}
		case Top:
			qOut = append(qOut, alphabet.Blank)
			tOut = append(tOut, target[y-1])
			y--
		case Left:
			qOut = append(qOut, query[x-1])
			tOut = append(tOut, alphabet.Blank)
			x--
		case Diagonal:
			qOut = append(qOut, query[x-1])
			tOut = append(tOut, target[y-1])
			x--
			y--
		}
	}
}

func reverseCodes(s []alphabet.Code) []alphabet.Code {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

func newDirGrid(rows, cols int) [][]Direction {
	g := make([][]Direction, rows)
	for i := range g {
		g[i] = make([]Direction, cols)
		for j := range g[i] {
			g[i][j] = Beginning
		}
	}
	return g
}
