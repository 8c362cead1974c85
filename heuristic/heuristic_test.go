// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heuristic

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/driftnet/alphabet"
	"github.com/kortschak/driftnet/submat"
)

func TestPairwiseTerminatesAndImproves(t *testing.T) {
	query := alphabet.RandomSeq(alphabet.Protein, 40)
	target := alphabet.RandomSeq(alphabet.Protein, 40)
	matrix := submat.BLOSUM62()

	freqs := make([]float64, alphabet.Protein.Volume())
	for i := range freqs {
		freqs[i] = 1.0 / float64(len(freqs))
	}

	aln, transformed, err := Pairwise(alphabet.Protein, query, target, 11, 2, matrix, Params{
		KD:          0,
		RSquared:    0,
		Frequencies: freqs,
	})
	if err != nil {
		t.Fatalf("Pairwise: %v", err)
	}
	if aln == nil {
		t.Fatal("Pairwise returned nil alignment")
	}
	if aln.F < 0 {
		t.Errorf("F = %v, want >= 0", aln.F)
	}
	if transformed == nil {
		t.Fatal("Pairwise returned nil matrix")
	}
	rows, cols := transformed.Dims()
	if rows != 24 || cols != 24 {
		t.Errorf("transformed dims = %d,%d, want 24,24", rows, cols)
	}
}

func TestPairwiseZeroRSquaredDefaultsToDims(t *testing.T) {
	query := alphabet.RandomSeq(alphabet.DNA, 20)
	target := alphabet.RandomSeq(alphabet.DNA, 20)
	matrix := mat.NewDense(4, 4, []float64{
		1, -1, -1, -1,
		-1, 1, -1, -1,
		-1, -1, 1, -1,
		-1, -1, -1, 1,
	})
	freqs := []float64{0.25, 0.25, 0.25, 0.25}

	_, transformed, err := Pairwise(alphabet.DNA, query, target, 11, 2, matrix, Params{
		KD:          0,
		RSquared:    0,
		Frequencies: freqs,
	})
	if err != nil {
		t.Fatalf("Pairwise: %v", err)
	}

	// With kd=0 every transform lands on squared Frobenius norm r², so
	// the returned matrix shows the r² actually used: rows*cols = 16.
	sumSq := 0.0
	rows, cols := transformed.Dims()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := transformed.At(y, x)
			sumSq += v * v
		}
	}
	if math.Abs(sumSq-16) > 1e-6 {
		t.Errorf("sum of squares of returned matrix = %v, want 16 (rows*cols)", sumSq)
	}
}
