// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/driftnet/alphabet"
)

// PWM aligns query against a (4, L) position-weight matrix, scanning the
// query's positions against the matrix's columns the same way Local
// scans query positions against target symbols, except the "target" axis
// is the matrix's own 1..L column numbering rather than a second
// sequence.
func PWM(query []alphabet.Code, del, ext float64, matrix *mat.Dense) (*PWMAlignment, *Result, error) {
	if len(query) == 0 {
		return nil, nil, ErrEmptySequence
	}
	rows, cols := matrix.Dims()
	if rows != alphabet.DNA.Volume() {
		return nil, nil, ErrMatrixShape
	}

	n, m := cols, len(query)
	// scores/dirs are indexed [query position][PWM column].
	scores := mat.NewDense(m+1, n+1, nil)
	dirs := newDirGrid(m+1, n+1)

	penalty := del
	bestY, bestX, best := 0, 0, 0.0
	for col := 1; col <= n; col++ {
		for y := 1; y <= m; y++ {
			qc := query[y-1]

			top := scores.At(y-1, col) - penalty
			left := scores.At(y, col-1) - penalty
			diag := scores.At(y-1, col-1) + matrix.At(int(qc), col-1)

			val, d := pickWithBeginning(top, left, diag)
			if d != Beginning {
				penalty = ext
			} else {
				penalty = del
			}
			scores.Set(y, col, val)
			dirs[y][col] = d
			if val > best {
				best, bestY, bestX = val, y, col
			}
		}
	}

	aln := pwmTraceback(query, dirs, bestY, bestX, cols)
	aln.F = best
	aln.Dim = cols
	return aln, &Result{Scores: scores, Directions: dirs}, nil
}

func pwmTraceback(query []alphabet.Code, dirs [][]Direction, startY, startCol, dim int) *PWMAlignment {
	var numbered []int
	var qOut []alphabet.Code
	y, col := startY, startCol
	for {
		switch dirs[y][col] {
		case Beginning:
			for i, j := 0, len(numbered)-1; i < j; i, j = i+1, j-1 {
				numbered[i], numbered[j] = numbered[j], numbered[i]
			}
			qOut = reverseCodes(qOut)
			return &PWMAlignment{
				Numbered:    numbered,
				Query:       qOut,
				Dim:         dim,
				QueryCoords: Coords{Start: y + 1, End: startY},
				MotifCoords: Coords{Start: col + 1, End: startCol},
			}
		case Top:
			numbered = append(numbered, 0)
			qOut = append(qOut, query[y-1])
			y--
		case Left:
			numbered = append(numbered, col)
			qOut = append(qOut, alphabet.Blank)
			col--
		case Diagonal:
			numbered = append(numbered, col)
			qOut = append(qOut, query[y-1])
			col--
			y--
		}
	}
}
