// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"math"
	"testing"

	"github.com/kortschak/driftnet/alphabet"
	"github.com/kortschak/driftnet/submat"
)

func smallOptions() CMDOptions {
	opts := DefaultOptions()
	opts.RepeatLength = 10
	opts.QueryOffset = 5
	opts.Threads = 2
	opts.Repeats = 2
	return opts
}

func TestCalculateStartingValuesProducesFiniteStatistics(t *testing.T) {
	opts := smallOptions()
	query := alphabet.RandomSeq(alphabet.DNA, 500)
	matrix := submat.RandomPWM(opts.RepeatLength)

	mean, std := CalculateStartingValues(query, matrix, opts)
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		t.Errorf("mean = %v, want finite", mean)
	}
	if math.IsNaN(std) || math.IsInf(std, 0) {
		t.Errorf("std = %v, want finite", std)
	}
	if std < 0 {
		t.Errorf("std = %v, want >= 0", std)
	}
}

func TestCalculateCycleOnlyKeepsHighZScores(t *testing.T) {
	opts := smallOptions()
	query := alphabet.RandomSeq(alphabet.DNA, 500)
	matrix := submat.RandomPWM(opts.RepeatLength)

	tasks := CalculateCycle(query, matrix, nil, 0, 1, opts)
	for _, task := range tasks {
		if task.Z < zThreshold {
			t.Errorf("task with z=%v survived filtering, want >= %v", task.Z, zThreshold)
		}
	}
}

func TestPerformCalculationPerSequenceReturnsDirectCycle(t *testing.T) {
	opts := smallOptions()
	raw := make([]byte, 2000)
	letters := []byte("ATCG")
	for i := range raw {
		raw[i] = letters[i%4]
	}

	result, err := PerformCalculationPerSequence(opts, raw, "test")
	if err != nil {
		t.Fatalf("PerformCalculationPerSequence: %v", err)
	}
	direct, ok := result["direct"]
	if !ok {
		t.Fatal("result missing \"direct\" entry")
	}
	if direct.Matrix == nil {
		t.Fatal("direct cycle has nil matrix")
	}
}

func TestPerformCalculationPerSequenceReverse(t *testing.T) {
	opts := smallOptions()
	opts.Reverse = true
	raw := make([]byte, 1000)
	letters := []byte("ATCG")
	for i := range raw {
		raw[i] = letters[i%4]
	}

	result, err := PerformCalculationPerSequence(opts, raw, "test")
	if err != nil {
		t.Fatalf("PerformCalculationPerSequence: %v", err)
	}
	if _, ok := result["inverse"]; !ok {
		t.Fatal("result missing \"inverse\" entry when Reverse is set")
	}
}
