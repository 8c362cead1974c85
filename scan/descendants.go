// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"math/rand"

	"github.com/kortschak/driftnet/alphabet"
)

// MutationPercent names how densely GenerateDescendants mutates a
// sequence: every MutationPercent-th symbol, starting from the
// descendant's own index, is replaced with a uniform random symbol.
type MutationPercent int

const (
	Quarter MutationPercent = 4
	Half    MutationPercent = 2
)

// GenerateDescendants returns amount mutated copies of sequence. The i-th
// descendant starts mutating at offset i and steps by percent, so
// descendants whose indices differ by a multiple of percent touch the
// same positions (each with its own random replacements).
func GenerateDescendants(sequence []alphabet.Code, amount int, percent MutationPercent, volume int) [][]alphabet.Code {
	offset := int(percent)

	result := make([][]alphabet.Code, amount)
	for i := 0; i < amount; i++ {
		result[i] = mutate(sequence, offset, i, volume)
	}
	return result
}

func mutate(sequence []alphabet.Code, offset, start, volume int) []alphabet.Code {
	result := append([]alphabet.Code(nil), sequence...)
	for i := start; i < len(sequence); i += offset {
		result[i] = alphabet.Code(rand.Intn(volume))
	}
	return result
}
