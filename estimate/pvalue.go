// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estimate

import (
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/driftnet/align"
	"github.com/kortschak/driftnet/alphabet"
)

const (
	threads   = 10
	sequences = 5000
)

// CalculatePValue estimates the statistical significance of an observed
// local alignment by repeatedly realigning query against shuffled,
// randomly truncated copies of target and fitting the resulting score
// distribution. initialScore and len(target) are seeded into the sample
// before the shuffled trials are added; since the sixth worker runs one
// trial fewer, the sample holds at most 1+(sequences-1) = sequences
// entries.
func CalculatePValue(query, target []alphabet.Code, initialScore, del, ext float64, matrix *mat.Dense) (float64, error) {
	scores := make([]float64, 0, 1+sequences)
	lengths := make([]int, 0, 1+sequences)
	scores = append(scores, initialScore)
	lengths = append(lengths, len(target))

	type chunk struct {
		scores  []float64
		lengths []int
	}
	results := make(chan chunk, threads)

	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		i := i
		workerMatrix := mat.DenseCopyOf(matrix)
		wg.Add(1)
		go func() {
			defer wg.Done()
			limit := sequences / threads
			// The sixth worker gets one fewer sample than the even
			// split would give every other worker. See DESIGN.md.
			if i == 5 {
				limit = sequences - (sequences/threads)*(threads-1) - 1
			}

			localScores := make([]float64, 0, limit)
			localLengths := make([]int, 0, limit)
			for j := 0; j < limit; j++ {
				shuffled := shuffleAndTruncate(target)
				aln, _, err := align.Local(query, shuffled, del, ext, workerMatrix)
				if err != nil {
					continue
				}
				localScores = append(localScores, aln.F)
				localLengths = append(localLengths, len(shuffled))
			}
			results <- chunk{scores: localScores, lengths: localLengths}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for c := range results {
		scores = append(scores, c.scores...)
		lengths = append(lengths, c.lengths...)
	}

	params, err := CalculateDistributionParams(len(query), lengths, scores)
	if err != nil {
		return 0, err
	}
	return params.GetPValue(len(query), len(target), initialScore), nil
}

// shuffleAndTruncate drops a random 0-6 symbol suffix from sequence, then
// shuffles the remainder.
func shuffleAndTruncate(sequence []alphabet.Code) []alphabet.Code {
	lock := rand.Intn(7)
	n := len(sequence) - lock
	if n < 0 {
		n = 0
	}
	out := append([]alphabet.Code(nil), sequence[:n]...)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
