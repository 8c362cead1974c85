// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heuristic implements the iterative realign-and-retransform
// loop: align, re-estimate the scoring matrix from the winning
// alignment's own frequencies, transform it back onto the (kd, r²)
// surface, and repeat until the score stops improving.
package heuristic

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/driftnet/align"
	"github.com/kortschak/driftnet/alphabet"
	"github.com/kortschak/driftnet/submat"
)

// Params is the (kd, r², background frequencies) triple that parameterises
// a matrix transform between refinement cycles.
type Params struct {
	KD          float64
	RSquared    float64
	Frequencies []float64
}

// Pairwise repeatedly performs a local alignment of query against target
// over the given alphabet, re-transforming the matrix from each winning
// alignment's own frequency matrix, until the score stops strictly
// improving. It returns the final alignment together with the matrix
// that produced it.
func Pairwise(alpha *alphabet.Alphabet, query, target []alphabet.Code, del, ext float64, matrix *mat.Dense, params Params) (*align.Alignment, *mat.Dense, error) {
	rSquared := params.RSquared
	if rSquared == 0 {
		rows, cols := matrix.Dims()
		rSquared = float64(rows * cols)
	}

	transformed, err := submat.Transform(matrix, params.KD, rSquared, params.Frequencies)
	if err != nil {
		return nil, nil, err
	}

	maxF := 0.0
	for {
		aln, _, err := align.Local(query, target, del, ext, transformed)
		if err != nil {
			return nil, nil, err
		}
		if aln.F > maxF {
			maxF = aln.F
			transformed, err = submat.Transform(aln.FrequencyMatrix(alpha.Volume()), params.KD, rSquared, params.Frequencies)
			if err != nil {
				return nil, nil, err
			}
			continue
		}
		return aln, transformed, nil
	}
}

// PWM repeatedly performs a PWM alignment of query against a position-
// weight matrix, re-transforming it from each winning alignment's own
// frequency matrix, until the score stops strictly improving.
func PWM(query []alphabet.Code, del, ext float64, matrix *mat.Dense, params Params) (*align.PWMAlignment, *mat.Dense, error) {
	transformed, err := submat.Transform(matrix, params.KD, params.RSquared, params.Frequencies)
	if err != nil {
		return nil, nil, err
	}

	maxF := 0.0
	for {
		aln, _, err := align.PWM(query, del, ext, transformed)
		if err != nil {
			return nil, nil, err
		}
		if aln.F > maxF {
			maxF = aln.F
			transformed, err = submat.Transform(aln.FrequencyMatrix(alphabet.DNA.Volume()), params.KD, params.RSquared, params.Frequencies)
			if err != nil {
				return nil, nil, err
			}
			continue
		}
		return aln, transformed, nil
	}
}
