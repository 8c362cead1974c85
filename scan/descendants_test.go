// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"testing"

	"github.com/kortschak/driftnet/alphabet"
)

func TestGenerateDescendantsCountAndLength(t *testing.T) {
	seq := alphabet.RandomSeq(alphabet.DNA, 100)
	descendants := GenerateDescendants(seq, 10, Quarter, alphabet.DNA.Volume())
	if len(descendants) != 10 {
		t.Fatalf("got %d descendants, want 10", len(descendants))
	}
	for i, d := range descendants {
		if len(d) != len(seq) {
			t.Errorf("descendant %d has length %d, want %d", i, len(d), len(seq))
		}
	}
}

func TestMutateOnlyTouchesStridePositions(t *testing.T) {
	seq := alphabet.RandomSeq(alphabet.DNA, 20)
	out := mutate(seq, 4, 1, alphabet.DNA.Volume())
	for i := range seq {
		if (i-1)%4 == 0 && i >= 1 {
			continue
		}
		if out[i] != seq[i] {
			t.Errorf("position %d changed unexpectedly: got %v, want %v", i, out[i], seq[i])
		}
	}
}
