// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package submat

import "gonum.org/v1/gonum/mat"

// blosum62Data is the standard published 24x24 BLOSUM62 lattice,
// embedded verbatim. The published row/column order is
// A R N D C Q E G H I L K M F P S T W Y V B Z X *.
var blosum62Data = []float64{
	4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0, -2, -1, 0, -4,
	-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3, -1, 0, -1, -4,
	-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3, 3, 0, -1, -4,
	-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3, 4, 1, -1, -4,
	0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1, -3, -3, -2, -4,
	-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2, 0, 3, -1, -4,
	-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1, -4,
	0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3, -1, -2, -1, -4,
	-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3, 0, 0, -1, -4,
	-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3, -3, -3, -1, -4,
	-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1, -4, -3, -1, -4,
	-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2, 0, 1, -1, -4,
	-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1, -3, -1, -1, -4,
	-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1, -3, -3, -1, -4,
	-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2, -2, -1, -2, -4,
	1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2, 0, 0, 0, -4,
	0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0, -1, -1, 0, -4,
	-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3, -4, -3, -2, -4,
	-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1, -3, -2, -1, -4,
	0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4, -3, -2, -1, -4,
	-2, -1, 3, 4, -3, 0, 1, -1, 0, -3, -4, 0, -3, -3, -2, 0, -1, -4, -3, -3, 4, 1, -1, -4,
	-1, 0, 0, 1, -3, 3, 4, -2, 0, -3, -3, 1, -1, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1, -4,
	0, -1, -1, -1, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -2, 0, 0, -2, -1, -1, -1, -1, -1, -4,
	-4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, 1,
}

// BLOSUM62 is the standard 24x24 BLOSUM62 log-odds matrix in its
// published row/column order. The first 21 rows/columns (A..V, B) match
// the Protein alphabet's codes; Protein codes 21, 22 and 23 (J, Z, X)
// index the published Z, X and * rows/columns.
func BLOSUM62() *mat.Dense {
	return mat.NewDense(24, 24, append([]float64(nil), blosum62Data...))
}

// pam250Data is the classical published 20x20 Dayhoff PAM250 log-odds
// table (A R N D C Q E G H I L K M F P S T W Y V), extended with B, Z and
// X rows/columns following standard ambiguity-code conventions (B = N/D
// average, Z = Q/E average, X = unknown, scored 0 against everything but
// itself). J (I/L ambiguity) has no entry in the classical table; its row
// and column are the elementwise average of the I and L rows/columns, a
// documented judgment call (see DESIGN.md).
var pam250Base20 = []float64{
	2, -2, 0, 0, -2, 0, 0, 1, -1, -1, -2, -1, -1, -3, 1, 1, 1, -6, -3, 0,
	-2, 6, 0, -1, -4, 1, -1, -3, 2, -2, -3, 3, 0, -4, 0, 0, -1, 2, -4, -2,
	0, 0, 2, 2, -4, 1, 1, 0, 2, -2, -3, 1, -2, -3, 0, 1, 0, -4, -2, -2,
	0, -1, 2, 4, -5, 2, 3, 1, 1, -2, -4, 0, -3, -6, -1, 0, 0, -7, -4, -2,
	-2, -4, -4, -5, 12, -5, -5, -3, -3, -2, -6, -5, -5, -4, -3, 0, -2, -8, 0, -2,
	0, 1, 1, 2, -5, 4, 2, -1, 3, -2, -2, 1, -1, -5, 0, -1, -1, -5, -4, -2,
	0, -1, 1, 3, -5, 2, 4, 0, 1, -2, -3, 0, -2, -5, -1, 0, 0, -7, -4, -2,
	1, -3, 0, 1, -3, -1, 0, 5, -2, -3, -4, -2, -3, -5, 0, 1, 0, -7, -5, -1,
	-1, 2, 2, 1, -3, 3, 1, -2, 6, -2, -2, 0, -2, -2, 0, -1, -1, -3, 0, -2,
	-1, -2, -2, -2, -2, -2, -2, -3, -2, 5, 2, -2, 2, 1, -2, -1, 0, -5, -1, 4,
	-2, -3, -3, -4, -6, -2, -3, -4, -2, 2, 6, -3, 4, 2, -3, -3, -2, -2, -1, 2,
	-1, 3, 1, 0, -5, 1, 0, -2, 0, -2, -3, 5, 0, -5, -1, 0, 0, -3, -4, -2,
	-1, 0, -2, -3, -5, -1, -2, -3, -2, 2, 4, 0, 6, 0, -2, -2, -1, -4, -2, 2,
	-3, -4, -3, -6, -4, -5, -5, -5, -2, 1, 2, -5, 0, 9, -5, -3, -3, 0, 7, -1,
	1, 0, 0, -1, -3, 0, -1, 0, 0, -2, -3, -1, -2, -5, 6, 1, 0, -6, -5, -1,
	1, 0, 1, 0, 0, -1, 0, 1, -1, -1, -3, 0, -2, -3, 1, 2, 1, -2, -3, -1,
	1, -1, 0, 0, -2, -1, 0, 0, -1, 0, -2, 0, -1, -3, 0, 1, 3, -5, -3, 0,
	-6, 2, -4, -7, -8, -5, -7, -7, -3, -5, -2, -3, -4, 0, -6, -2, -5, 17, 0, -6,
	-3, -4, -2, -4, 0, -4, -4, -5, 0, -1, -1, -4, -2, 7, -5, -3, -3, 0, 10, -2,
	0, -2, -2, -2, -2, -2, -2, -1, -2, 4, 2, -2, 2, -1, -1, -1, 0, -6, -2, 4,
}

// PAM250 is the 24x24 Dayhoff PAM250 matrix extended with B, J, Z and X,
// in Protein alphabet row/column order.
func PAM250() *mat.Dense {
	const n20 = 20
	m := mat.NewDense(24, 24, nil)
	for y := 0; y < n20; y++ {
		for x := 0; x < n20; x++ {
			m.Set(y, x, pam250Base20[y*n20+x])
		}
	}

	// B (index 20) = average of D (3) and N (2); Z (22) = average of Q
	// (5) and E (6); X (23) scores 0 except 1 against itself.
	avgRowCol := func(idx, a, b int) {
		for x := 0; x < n20; x++ {
			m.Set(idx, x, (pam250Base20[a*n20+x]+pam250Base20[b*n20+x])/2)
			m.Set(x, idx, (pam250Base20[x*n20+a]+pam250Base20[x*n20+b])/2)
		}
	}
	avgRowCol(20, 3, 2) // B
	avgRowCol(22, 5, 6) // Z
	m.Set(20, 20, (pam250Base20[3*n20+3]+pam250Base20[2*n20+2])/2)
	m.Set(22, 22, (pam250Base20[5*n20+5]+pam250Base20[6*n20+6])/2)

	for x := 0; x < 24; x++ {
		if x != 23 {
			m.Set(23, x, 0)
			m.Set(x, 23, 0)
		}
	}
	m.Set(23, 23, 1)

	// J (index 21) = average of I (9) and L (10), including against the
	// freshly-filled B/Z/X rows and columns.
	for x := 0; x < 24; x++ {
		if x == 21 {
			continue
		}
		m.Set(21, x, (m.At(9, x)+m.At(10, x))/2)
		m.Set(x, 21, (m.At(x, 9)+m.At(x, 10))/2)
	}
	m.Set(21, 21, (m.At(9, 10)+m.At(10, 9))/2)

	return m
}

// RandomPWM returns an L-column, 4-row position weight matrix with
// entries sampled uniformly from {-1, 0, 1}, used to seed the
// latent-repeat scanner's initial guess.
func RandomPWM(length int) *mat.Dense {
	m := mat.NewDense(4, length, nil)
	for y := 0; y < 4; y++ {
		for x := 0; x < length; x++ {
			m.Set(y, x, float64(randTrit()))
		}
	}
	return m
}
