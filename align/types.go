// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/driftnet/alphabet"
)

// Coords is a pair of 1-based (start, end) coordinates.
type Coords struct {
	Start, End int
}

// Alignment is the result of a pairwise (substitution-matrix) alignment:
// equal-length Query and Target slices, padded with alphabet.Blank for
// gaps.
type Alignment struct {
	Query, Target []alphabet.Code
	QueryCoords   Coords
	TargetCoords  Coords
	F             float64
}

// FrequencyMatrix counts, for every aligned pair in which neither side is
// Blank, one occurrence of Target[i] aligned against Query[i], in a
// dense volume x volume matrix.
func (a *Alignment) FrequencyMatrix(volume int) *mat.Dense {
	m := mat.NewDense(volume, volume, nil)
	for i := range a.Query {
		x, y := a.Query[i], a.Target[i]
		if x == alphabet.Blank || y == alphabet.Blank {
			continue
		}
		m.Set(int(y), int(x), m.At(int(y), int(x))+1)
	}
	return m
}

// Project renders the alignment as a single symbol sequence under the
// given scoring matrix: identical aligned pairs reproduce the symbol,
// differing non-blank pairs scoring >= 0 under matrix become Pos, and
// everything else (any Blank) becomes Blank.
func (a *Alignment) Project(matrix *mat.Dense) []alphabet.Code {
	out := make([]alphabet.Code, len(a.Query))
	for i := range a.Query {
		x, y := a.Query[i], a.Target[i]
		switch {
		case x == y:
			out[i] = x
		case x != alphabet.Blank && y != alphabet.Blank && matrix.At(int(y), int(x)) >= 0:
			out[i] = alphabet.Pos
		default:
			out[i] = alphabet.Blank
		}
	}
	return out
}

// PWMAlignment is the result of aligning a sequence against a
// position-weight matrix: Numbered holds, for each aligned position, the
// 1-based PWM column index (0 meaning the query symbol was aligned
// against a gap in the motif), parallel to Query.
type PWMAlignment struct {
	Numbered     []int
	Query        []alphabet.Code
	Dim          int
	QueryCoords  Coords
	MotifCoords  Coords
	F            float64
}

// FrequencyMatrix counts, for every aligned position with a non-zero
// column index and a non-blank query symbol, one occurrence of
// Query[i] at column Numbered[i]-1, in a dense volume x Dim matrix.
func (a *PWMAlignment) FrequencyMatrix(volume int) *mat.Dense {
	m := mat.NewDense(volume, a.Dim, nil)
	for i := range a.Numbered {
		col := a.Numbered[i]
		sym := a.Query[i]
		if col == 0 || sym == alphabet.Blank {
			continue
		}
		m.Set(int(sym), col-1, m.At(int(sym), col-1)+1)
	}
	return m
}

// Project renders the alignment as a single symbol sequence: the query
// symbol wherever the column index is non-zero, Blank otherwise. The
// matrix argument is accepted for interface symmetry with Alignment and
// is unused.
func (a *PWMAlignment) Project(*mat.Dense) []alphabet.Code {
	out := make([]alphabet.Code, len(a.Numbered))
	for i := range a.Numbered {
		if a.Numbered[i] != 0 {
			out[i] = a.Query[i]
		} else {
			out[i] = alphabet.Blank
		}
	}
	return out
}

// Result bundles a completed alignment with the DP grids that produced
// it and, optionally, the matrix that was actually used (set by the
// heuristic package once it has settled on a final transformed matrix).
type Result struct {
	Scores     *mat.Dense
	Directions [][]Direction
	Matrix     *mat.Dense
}
