// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package submat provides substitution and position-weight matrices and
// the quadratic-root projection used to fit a matrix to a target
// information content and background composition.
package submat

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrWrongMatrixSpecified is returned by Transform when the projection's
// quadratic has no real root.
var ErrWrongMatrixSpecified = errors.New("submat: no real root for matrix projection")

// Threshold returns the conventional minimum-total-score significance
// cutoff for a protein substitution matrix with dim rows, or 0 if dim is
// not one of the known alphabet sizes.
func Threshold(dim int) float64 {
	switch dim {
	case 20:
		return 22.6
	case 21:
		return 23.1
	case 22:
		return 23.6
	case 23:
		return 24.1
	case 24:
		return 24.6
	default:
		return 0
	}
}

// Transform projects matrix onto the surface defined by the scalar
// constraints k_d (target expected score under background p) and rSquared
// (target squared Frobenius distance from the origin of the projected
// family), given the background frequencies of the matrix's row alphabet.
// frequencies must have length equal to matrix's row count.
func Transform(matrix *mat.Dense, kd, rSquared float64, frequencies []float64) (*mat.Dense, error) {
	rows, cols := matrix.Dims()

	uniform := make([]float64, cols)
	for x := range uniform {
		uniform[x] = 1.0 / float64(cols)
	}

	// p is the outer product of frequencies and a uniform column
	// distribution, same shape as matrix.
	p := mat.NewDense(rows, cols, nil)
	p.Outer(1, mat.NewVecDense(rows, frequencies), mat.NewVecDense(cols, uniform))

	pSquared := sumSquares(p)
	k0 := sumProduct(p, matrix)

	a := (kd - k0) / pSquared
	b := kd / pSquared
	difference := a - b

	// base = matrix + p*difference
	base := mat.NewDense(rows, cols, nil)
	base.Scale(difference, p)
	base.Add(base, matrix)

	denominator := sumSquares(base)

	aCoeff := (2 * b * sumProduct(p, base)) / denominator
	bCoeff := (b*b*pSquared - rSquared) / denominator

	roots, n := solveQuadratic(aCoeff, bCoeff)
	if n == 0 {
		return nil, ErrWrongMatrixSpecified
	}

	// candidate(t) = p*b + t*(matrix + p*(a-b))
	candidate := func(t float64) *mat.Dense {
		dir := mat.NewDense(rows, cols, nil)
		dir.Scale(a-b, p)
		dir.Add(dir, matrix)
		dir.Scale(t, dir)
		pb := mat.NewDense(rows, cols, nil)
		pb.Scale(b, p)
		pb.Add(pb, dir)
		return pb
	}

	if n == 1 {
		return candidate(roots[0]), nil
	}

	t0, t1 := roots[0], roots[1]
	switch {
	case t0 > 0 && t1 < 0:
		return candidate(t0), nil
	case t0 < 0 && t1 > 0:
		return candidate(t1), nil
	default:
		c0 := candidate(t0)
		c1 := candidate(t1)
		if l2Distance(matrix, c0) < l2Distance(matrix, c1) {
			return c0, nil
		}
		return c1, nil
	}
}

// sumSquares returns the squared Frobenius norm of m, i.e. the sum of
// its entries squared.
func sumSquares(m *mat.Dense) float64 {
	n := mat.Norm(m, 2)
	return n * n
}

func sumProduct(a, b *mat.Dense) float64 {
	var prod mat.Dense
	prod.MulElem(a, b)
	return mat.Sum(&prod)
}

func l2Distance(a, b *mat.Dense) float64 {
	rows, cols := a.Dims()
	diff := mat.NewDense(rows, cols, nil)
	diff.Sub(a, b)
	return mat.Norm(diff, 2)
}

// solveQuadratic solves t^2 + a*t + b = 0, returning the real roots.
func solveQuadratic(a, b float64) ([2]float64, int) {
	disc := a*a - 4*b
	switch {
	case disc < 0:
		return [2]float64{}, 0
	case disc == 0:
		return [2]float64{-a / 2}, 1
	default:
		sq := math.Sqrt(disc)
		return [2]float64{(-a + sq) / 2, (-a - sq) / 2}, 2
	}
}
