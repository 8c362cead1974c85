// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"log"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/kortschak/driftnet/align"
	"github.com/kortschak/driftnet/alphabet"
	"github.com/kortschak/driftnet/submat"
)

// zThreshold is the minimum z-score a window must clear to survive into
// a Task.
const zThreshold = 3.0

// CalculateStartingValues estimates a baseline (mean, stddev) of PWM
// alignment scores over opts.RepeatLength + opts.QueryOffset windows of a
// shuffled copy of query, split across opts.Threads goroutines. Windows
// start opts.QueryOffset apart within each goroutine's stride (or
// len(query)/1000 apart with opts.SimpleInit), so neighbouring windows
// overlap. It is the reference point
// every subsequent cycle's z-scores are measured against until the first
// refinement cycle replaces it with the surviving tasks' own statistics.
func CalculateStartingValues(query []alphabet.Code, matrix *mat.Dense, opts CMDOptions) (mean, std float64) {
	length := len(query)

	shuffled := append([]alphabet.Code(nil), query...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	step := opts.QueryOffset
	if opts.SimpleInit {
		step = length / 1000
		if step == 0 {
			step = 1
		}
	}

	results := make(chan float64, opts.Threads)
	var wg sync.WaitGroup
	for i := 0; i < opts.Threads; i++ {
		i := i
		workerMatrix := mat.DenseCopyOf(matrix)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := i * opts.QueryOffset; j < length; j += step * opts.Threads {
				border := j + opts.RepeatLength + opts.QueryOffset
				if border >= length {
					border = length
				}
				aln, _, err := align.PWM(shuffled[j:border], opts.Deletions, opts.Extension, workerMatrix)
				if err != nil {
					continue
				}
				results <- aln.F
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var fs []float64
	for f := range results {
		fs = append(fs, f)
	}

	return stat.PopMeanStdDev(fs, nil)
}

// CalculateCycle slides a PWM alignment over query in opts.RepeatLength
// + opts.QueryOffset windows spaced opts.QueryOffset apart, split across
// opts.Threads goroutines, and returns every window whose z-score
// against (mean, std) clears zThreshold. indices translates window
// coordinates from filtered-sequence space back to original bytes; pass
// nil when query is already in original coordinates.
func CalculateCycle(query []alphabet.Code, matrix *mat.Dense, indices []alphabet.GapIndex, mean, std float64, opts CMDOptions) []Task {
	length := len(query)

	results := make(chan Task, opts.Threads)
	var wg sync.WaitGroup
	for i := 0; i < opts.Threads; i++ {
		i := i
		workerMatrix := mat.DenseCopyOf(matrix)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := i * opts.QueryOffset; j < length; j += opts.QueryOffset * opts.Threads {
				border := j + opts.RepeatLength + opts.QueryOffset
				if border >= length {
					border = length
				}
				aln, _, err := align.PWM(query[j:border], opts.Deletions, opts.Extension, workerMatrix)
				if err != nil {
					continue
				}
				results <- Task{
					Alignment:  aln,
					LeftCoord:  alphabet.IndexCoord(j, indices),
					RightCoord: alphabet.IndexCoord(border, indices),
					Z:          (aln.F - mean) / std,
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var tasks []Task
	for t := range results {
		if t.Z >= zThreshold {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Cycle bundles the survivors of a scan over one sequence orientation
// together with the matrix that produced them.
type Cycle struct {
	Tasks  []Task
	Matrix *mat.Dense
}

// PerformCalculationPerSequence runs the full refinement loop over a raw
// DNA sequence: starting from a random PWM, it alternates scanning with
// re-estimating the matrix from the surviving tasks' own aligned
// frequencies, for up to opts.Repeats cycles or until a cycle produces no
// survivors. When opts.Reverse is set, a second pass scans the reverse
// complement-free reversal of the sequence using the matrix settled on by
// the forward pass. The returned map holds a "direct" entry and, when
// requested, an "inverse" entry.
func PerformCalculationPerSequence(opts CMDOptions, rawSeq []byte, head string) (map[string]Cycle, error) {
	log.Printf("calculating direct of %s", head)

	query, frequencies, indices := alphabet.ParseWithFreqsAndIndices(alphabet.DNA, rawSeq)

	matrix := submat.RandomPWM(opts.RepeatLength)
	matrix, err := retransform(matrix, opts, frequencies)
	if err != nil {
		return nil, err
	}

	mean, std := CalculateStartingValues(query, matrix, opts)

	result := make(map[string]Cycle)
	var tasks []Task

	for i := 0; i < opts.Repeats; i++ {
		newTasks := CalculateCycle(query, matrix, indices, mean, std, opts)
		if len(newTasks) == 0 {
			break
		}
		tasks = Filter(newTasks)

		if i < opts.Repeats-1 {
			mean, std = taskMeanStdDev(tasks)

			rows, cols := matrix.Dims()
			freqMatrix := mat.NewDense(rows, cols, nil)
			for _, t := range tasks {
				freqMatrix.Add(freqMatrix, t.Alignment.FrequencyMatrix(alphabet.DNA.Volume()))
			}

			matrix, err = retransform(freqMatrix, opts, frequencies)
			if err != nil {
				return nil, err
			}
		}
	}

	result["direct"] = Cycle{Tasks: tasks, Matrix: matrix}

	if opts.Reverse {
		log.Printf("calculating inverse of %s", head)

		reversed := make([]alphabet.Code, len(query))
		for i, c := range query {
			reversed[len(query)-1-i] = c
		}
		rotated := alphabet.RotateIndices(indices, len(reversed))

		inverted := CalculateCycle(reversed, matrix, rotated, mean, std, opts)
		result["inverse"] = Cycle{Tasks: Filter(inverted), Matrix: matrix}
	}

	return result, nil
}

// retransform re-projects matrix onto kd=0, r²=deletions*extension. The
// scanner always uses this literal pair rather than opts.KD and
// opts.RSquared; see DESIGN.md.
func retransform(matrix *mat.Dense, opts CMDOptions, frequencies []float64) (*mat.Dense, error) {
	return submat.Transform(matrix, 0, opts.Deletions*opts.Extension, frequencies)
}

// taskMeanStdDev computes the population mean and stddev of a batch of
// tasks' alignment scores.
func taskMeanStdDev(tasks []Task) (mean, std float64) {
	fs := make([]float64, len(tasks))
	for i, t := range tasks {
		fs[i] = t.Alignment.F
	}
	return stat.PopMeanStdDev(fs, nil)
}
