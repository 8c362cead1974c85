// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orchestrate fans a single alignment job out across a
// population of candidate starting matrices, collects the resulting
// subtasks, and elects the best-scoring one per job.
package orchestrate

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/driftnet/alphabet"
	"github.com/kortschak/driftnet/heuristic"
)

var (
	// ErrResultIsEmpty is returned by Result when a hash is queried
	// before any of its subtasks have arrived.
	ErrResultIsEmpty = errors.New("orchestrate: no subtask recorded for hash")

	// ErrCalculation is returned when a job is registered with a
	// zero expected subtask count.
	ErrCalculation = errors.New("orchestrate: expected subtask count must be positive")
)

// Job is a single pairwise-alignment request to be run once per
// candidate starting matrix in Matrices.
type Job struct {
	Hash           string
	Alpha          *alphabet.Alphabet
	QuerySequence  []alphabet.Code
	TargetSequence []alphabet.Code
	Deletions      float64
	Extension      float64
	Matrices       []*mat.Dense
	Params         heuristic.Params
}

// Subtask is the result of running a Job's heuristic realignment loop
// from one candidate starting matrix.
type Subtask struct {
	Hash   string
	FValue float64
	Matrix *mat.Dense
	Query  []alphabet.Code
	Target []alphabet.Code
}

// RunJob runs heuristic.Pairwise once per matrix in job.Matrices,
// spread across threads goroutines, and returns one Subtask per matrix
// that produced an alignment. A matrix that fails to align (an
// unprojectable frequency combination) is silently skipped.
func RunJob(job Job, threads int) []Subtask {
	if threads < 1 {
		threads = 1
	}

	work := make(chan *mat.Dense)
	go func() {
		defer close(work)
		for _, m := range job.Matrices {
			work <- m
		}
	}()

	results := make(chan Subtask, len(job.Matrices))
	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range work {
				aln, matrix, err := heuristic.Pairwise(job.Alpha, job.QuerySequence, job.TargetSequence, job.Deletions, job.Extension, m, job.Params)
				if err != nil {
					continue
				}
				results <- Subtask{
					Hash:   job.Hash,
					FValue: aln.F,
					Matrix: matrix,
					Query:  aln.Query,
					Target: aln.Target,
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	subtasks := make([]Subtask, 0, len(job.Matrices))
	for s := range results {
		subtasks = append(subtasks, s)
	}
	return subtasks
}

// ComputeFrequencies pools the symbol counts of every sequence given
// and returns their relative frequencies, the background composition a
// Job carries for its whole population of candidate matrices.
func ComputeFrequencies(alpha *alphabet.Alphabet, seqs ...[]alphabet.Code) []float64 {
	freqs := make([]float64, alpha.Volume())
	total := 0
	for _, seq := range seqs {
		for _, c := range seq {
			if int(c) < alpha.Volume() {
				freqs[c]++
				total++
			}
		}
	}
	if total > 0 {
		floats.Scale(1/float64(total), freqs)
	}
	return freqs
}

// Aggregator tracks, per job hash, the best subtask seen so far and how
// many of the job's expected subtasks have reported.
type Aggregator struct {
	mu    sync.Mutex
	best  map[string]Subtask
	have  map[string]bool
	seen  map[string]int
	total map[string]int
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		best:  make(map[string]Subtask),
		have:  make(map[string]bool),
		seen:  make(map[string]int),
		total: make(map[string]int),
	}
}

// Expect records that hash owes total subtasks before it can resolve.
func (a *Aggregator) Expect(hash string, total int) error {
	if total <= 0 {
		return ErrCalculation
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.total[hash] = total
	return nil
}

// Add records a subtask result, electing it as the new best for its
// hash if its FValue exceeds the current best's. A higher FValue always
// wins; see DESIGN.md for the election rule.
func (a *Aggregator) Add(subtask Subtask) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seen[subtask.Hash]++
	if !a.have[subtask.Hash] || subtask.FValue > a.best[subtask.Hash].FValue {
		a.best[subtask.Hash] = subtask
		a.have[subtask.Hash] = true
	}
}

// Best returns the highest-FValue subtask recorded for hash.
func (a *Aggregator) Best(hash string) (Subtask, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	s, ok := a.have[hash]
	return a.best[hash], ok && s
}

// Result is Best with the missing case surfaced as ErrResultIsEmpty,
// for callers that treat querying an unreported hash as a fault rather
// than a condition to poll on.
func (a *Aggregator) Result(hash string) (Subtask, error) {
	s, ok := a.Best(hash)
	if !ok {
		return Subtask{}, ErrResultIsEmpty
	}
	return s, nil
}

// Percentage reports how much of hash's expected subtask count has been
// reported, as a value in [0, 100]. It is 0 if Expect was never called
// for hash.
func (a *Aggregator) Percentage(hash string) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	total := a.total[hash]
	if total == 0 {
		return 0
	}
	return float64(a.seen[hash]) / float64(total) * 100
}

// Resolved reports whether hash has received its full expected subtask
// count and so is ready to have its best subtask committed as a result
// and its subtasks discarded.
func (a *Aggregator) Resolved(hash string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	total, ok := a.total[hash]
	return ok && total > 0 && a.seen[hash] >= total
}

// Forget discards the recorded best subtask and counters for hash, once
// its result has been committed elsewhere.
func (a *Aggregator) Forget(hash string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.best, hash)
	delete(a.have, hash)
	delete(a.seen, hash)
	delete(a.total, hash)
}
