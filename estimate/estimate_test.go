// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estimate

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

// gumbelSample draws a synthetic score from the Karlin-Altschul tail
// model's implied Gumbel distribution for a fixed (k, lambda, h, m, n).
func gumbelSample(k, lambda, h float64, m, n int) float64 {
	l := math.Log(k*float64(m)*float64(n)) / h
	nn := (float64(m) - l) * (float64(n) - l)
	u := rand.Float64()
	// Invert 1 - exp(-k*nn*exp(-lambda*s)) = u for s.
	return -math.Log(-math.Log(1-u)/(k*nn)) / lambda
}

func TestCalculateDistributionParamsRecoversKnownParameters(t *testing.T) {
	const (
		k      = 0.1
		lambda = 0.3
		h      = 1.0
		m      = 300
	)
	n := 5000
	targetLengths := make([]int, n)
	scores := make([]float64, n)
	for i := range scores {
		// Target lengths vary, as they do for CalculatePValue's
		// shuffled-and-truncated targets, so that h, which only
		// enters through how NN scales with (m, t), is identifiable;
		// holding t fixed collapses h to a single unobservable offset.
		targetLengths[i] = 150 + rand.Intn(301)
		scores[i] = gumbelSample(k, lambda, h, m, targetLengths[i])
	}

	params, err := CalculateDistributionParams(m, targetLengths, scores)
	if err != nil {
		t.Fatalf("CalculateDistributionParams: %v", err)
	}

	if params.Lambda <= 0 || params.K <= 0 || params.H <= 0 {
		t.Fatalf("fitted params not all positive: %+v", params)
	}

	// Each of k, lambda and h should be recovered to within 5%.
	within := func(got, want, tol float64) bool {
		return math.Abs(got-want)/want < tol
	}
	if !within(params.K, k, 0.05) {
		t.Errorf("k = %v, want within 5%% of %v", params.K, k)
	}
	if !within(params.Lambda, lambda, 0.05) {
		t.Errorf("lambda = %v, want within 5%% of %v", params.Lambda, lambda)
	}
	if !within(params.H, h, 0.05) {
		t.Errorf("h = %v, want within 5%% of %v", params.H, h)
	}

	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if pv := params.GetPValue(m, m, median); math.Abs(pv-0.5) > 0.05 {
		t.Errorf("GetPValue(m, m, median) = %v, want within 0.05 of 0.5", pv)
	}
}

func TestGetPValueMonotonicInScore(t *testing.T) {
	p := Params{K: 0.1, Lambda: 0.3, H: 1.0}
	low := p.GetPValue(300, 300, 10)
	high := p.GetPValue(300, 300, 50)
	if !(high < low) {
		t.Errorf("GetPValue not decreasing in score: low=%v high=%v", low, high)
	}
}

func TestGetPValueMonotonicInLength(t *testing.T) {
	p := Params{K: 0.1, Lambda: 0.3, H: 1.0}
	// A fixed score becomes less surprising as the searched space m*n
	// grows, so the P-value rises with sequence length.
	small := p.GetPValue(100, 100, 30)
	large := p.GetPValue(1000, 1000, 30)
	if !(large > small) {
		t.Errorf("GetPValue not increasing in sequence length: small=%v large=%v", small, large)
	}
}

func TestCalculateDistributionParamsRejectsMismatchedLengths(t *testing.T) {
	_, err := CalculateDistributionParams(100, []int{100, 100}, []float64{1})
	if err != ErrValidation {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
