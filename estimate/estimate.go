// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package estimate fits a Karlin-Altschul-style extreme-value
// distribution (k, λ, h) to a sample of local-alignment scores against
// shuffled targets, and reports the P-value of an observed score under
// the fitted distribution.
package estimate

import (
	"errors"
	"math"
)

const (
	maxIter         = 10000
	thresholdGlobal = 1e-6
	thresholdLocal  = 1e-4
)

// ErrValidation is returned when the input sample is malformed or its
// variance cannot be computed.
var ErrValidation = errors.New("estimate: mismatched sample lengths or undefined variance")

// Params is a fitted (k, λ, h) triple.
type Params struct {
	K, Lambda, H float64
}

// GetPValue reports the probability of observing a local-alignment score
// of at least s between sequences of length m and n under the fitted
// distribution.
func (p Params) GetPValue(m, n int, s float64) float64 {
	l := math.Log(p.K*float64(m)*float64(n)) / p.H
	nn := (float64(m) - l) * (float64(n) - l)
	return 1 - math.Exp(-p.K*nn*math.Exp(-p.Lambda*s))
}

// CalculateDistributionParams fits (k, λ, h) to a sample of scores[i]
// obtained aligning a fixed-length query (queryLength) against targets of
// length targetLengths[i].
func CalculateDistributionParams(queryLength int, targetLengths []int, scores []float64) (Params, error) {
	if len(scores) != len(targetLengths) {
		return Params{}, ErrValidation
	}
	n := float64(len(scores))
	if n == 0 {
		return Params{}, ErrValidation
	}

	sd, ok := stdDev(scores)
	if !ok || sd == 0 {
		return Params{}, ErrValidation
	}

	lambda := 1 / sd
	h := 1.0

	nnArray := make([]float64, len(targetLengths))
	for i, t := range targetLengths {
		nnArray[i] = float64(queryLength * t)
	}

	k := n / sumNNExpScore(nnArray, scores, lambda)

	logLikelihood := n*math.Log(lambda*k) + sumLogLikelihoodTerms(nnArray, scores, lambda, k)

	activeLengths := append([]int(nil), targetLengths...)
	activeScores := append([]float64(nil), scores...)

	for iter := 0; iter <= maxIter; iter++ {
		k, lambda = estimateKAndLambda(queryLength, activeLengths, activeScores, k, lambda, h)
		h = estimateH(queryLength, activeLengths, activeScores, k, lambda, h)

		nnArray = make([]float64, len(targetLengths))
		for i, t := range targetLengths {
			l := math.Log(k*float64(queryLength)*float64(t)) / h
			nnArray[i] = (float64(queryLength) - l) * (float64(t) - l)
		}

		logLikelihoodNew := n*math.Log(lambda*k) + sumLogLikelihoodTerms(nnArray, scores, lambda, k)

		if math.Abs(logLikelihoodNew-logLikelihood)/math.Abs(logLikelihood) < thresholdGlobal {
			return Params{K: k, Lambda: lambda, H: h}, nil
		}
		logLikelihood = logLikelihoodNew

		var lengthsBuf []int
		var scoresBuf []float64
		for i, s := range scores {
			t := targetLengths[i]
			nn := nnArray[i]
			if n*(1-math.Exp(-k*nn*math.Exp(-lambda*s))) >= 1 {
				lengthsBuf = append(lengthsBuf, t)
				scoresBuf = append(scoresBuf, s)
			}
		}
		activeLengths = lengthsBuf
		activeScores = scoresBuf
	}

	return Params{K: k, Lambda: lambda, H: h}, nil
}

func sumNNExpScore(nnArray, scores []float64, lambda float64) float64 {
	sum := 0.0
	for i, nn := range nnArray {
		sum += nn * math.Exp(-lambda*scores[i])
	}
	return sum
}

func sumLogLikelihoodTerms(nnArray, scores []float64, lambda, k float64) float64 {
	sum := 0.0
	for i, nn := range nnArray {
		s := scores[i]
		sum += math.Log(nn) - lambda*s - k*nn*math.Exp(-lambda*s)
	}
	return sum
}

func estimateKAndLambda(queryLength int, targetLengths []int, scores []float64, oldK, oldLambda, h float64) (float64, float64) {
	k := oldK
	lambda := oldLambda
	n := float64(len(targetLengths))
	if n == 0 {
		return k, lambda
	}

	nnArray := make([]float64, len(targetLengths))
	recomputeNN := func() {
		for i, t := range targetLengths {
			l := math.Log(k*float64(queryLength)*float64(t)) / h
			nnArray[i] = (float64(queryLength) - l) * (float64(t) - l)
		}
	}
	recomputeNN()

	scoreSum := 0.0
	for _, s := range scores {
		scoreSum += s
	}

	expScores := make([]float64, len(scores))
	sum, weightedSum := 0.0, 0.0
	recomputeExp := func() {
		sum, weightedSum = 0, 0
		for i, s := range scores {
			expScores[i] = math.Exp(-lambda * s)
			sum += nnArray[i] * expScores[i]
			weightedSum += nnArray[i] * s * expScores[i]
		}
	}
	recomputeExp()

	for iter := 0; iter <= maxIter; iter++ {
		lambdaF := 1/lambda - scoreSum/n + weightedSum/sum

		sumSq := 0.0
		for i, s := range scores {
			sumSq += nnArray[i] * s * s * expScores[i]
		}
		lambdaFd := -1/(lambda*lambda) - sumSq/sum + (weightedSum/sum)*(weightedSum/sum)

		if math.IsInf(lambdaF, 0) || math.IsNaN(lambdaF) || math.IsInf(lambdaFd, 0) || math.IsNaN(lambdaFd) {
			return k, lambda
		}

		newLambda := lambda - lambdaF/lambdaFd

		// Recompute at the still-current lambda (it has not been
		// reassigned yet) to pick up the nnArray update from the tail
		// of the previous iteration, then derive newK from that sum
		// before lambda advances.
		recomputeExp()

		newK := n / sum
		if math.IsInf(newK, 0) || math.IsNaN(newK) || newK <= 0 {
			return k, lambda
		}
		k = newK
		lambda = newLambda

		if math.Abs(lambdaF) < thresholdLocal {
			return k, lambda
		}

		recomputeNN()
	}

	return k, lambda
}

func estimateH(queryLength int, targetLengths []int, scores []float64, k, lambda, oldH float64) float64 {
	h := oldH

	for iter := 0; iter <= maxIter; iter++ {
		lArray := make([]float64, len(targetLengths))
		nnArray := make([]float64, len(targetLengths))
		aArray := make([]float64, len(targetLengths))
		bArray := make([]float64, len(targetLengths))
		cArray := make([]float64, len(targetLengths))

		for i, t := range targetLengths {
			l := math.Log(k*float64(queryLength)*float64(t)) / h
			lArray[i] = l
			nnArray[i] = (float64(queryLength) - l) * (float64(t) - l)
			aArray[i] = 2*l - float64(queryLength) - float64(t)
			bArray[i] = 1/nnArray[i] - k*math.Exp(-lambda*scores[i])
			cArray[i] = -l / h
		}

		hG, hGd := 0.0, 0.0
		for i := range targetLengths {
			a, b, c, nn := aArray[i], bArray[i], cArray[i], nnArray[i]
			hG += a * b * c
			hGd += 2*b*c*c - (a*c/nn)*(a*c/nn) - 2*a*b*c/h
		}

		if math.Abs(hG) < thresholdLocal {
			return h
		}

		switch {
		case hGd > 0:
			if hG > 0 {
				h *= 2
			} else {
				h /= 2
			}
		case hG <= 0:
			h /= 2
		default:
			newH := h - hG/hGd
			if newH < 0 {
				newH = h / 2
			}
			h = newH
		}
	}

	return h
}

func stdDev(values []float64) (float64, bool) {
	n := float64(len(values))
	if n == 0 {
		return 0, false
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= n
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= n
	return math.Sqrt(variance), true
}
