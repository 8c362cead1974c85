// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrate

// Pair is a named pair of sequence identifiers awaiting a comparison
// score.
type Pair struct {
	Query, Target string
}

// PairQueries enumerates every unordered pair of distinct identifiers
// in names, the backlog of comparisons a batch submission expands to.
func PairQueries(names []string) []Pair {
	var pairs []Pair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			pairs = append(pairs, Pair{Query: names[i], Target: names[j]})
		}
	}
	return pairs
}
