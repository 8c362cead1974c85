// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphabet

import "testing"

func TestDNACode(t *testing.T) {
	for _, tc := range []struct {
		b byte
		c Code
	}{
		{'A', 0}, {'T', 1}, {'C', 2}, {'G', 3}, {'_', Blank}, {'+', Pos},
	} {
		if got := DNA.Code(tc.b); got != tc.c {
			t.Errorf("Code(%q) = %v, want %v", tc.b, got, tc.c)
		}
	}
	if got := DNA.Code('Q'); got != Any {
		t.Errorf("Code('Q') = %v, want Any", got)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		a *Alphabet
		s string
	}{
		{DNA, "ATCGGCTA"},
		{Protein, "ARNDCQEGHILKMFPSTWYVBJZX"},
	} {
		seq, err := Parse(tc.a, []byte(tc.s))
		if err != nil {
			t.Fatalf("Parse(%s, %q): %v", tc.a, tc.s, err)
		}
		out := make([]byte, len(seq))
		for i, c := range seq {
			out[i] = tc.a.Char(c)
		}
		if string(out) != tc.s {
			t.Errorf("round trip over %s = %q, want %q", tc.a, out, tc.s)
		}
	}
}

func TestParseStrictRejectsUnknown(t *testing.T) {
	if _, err := Parse(DNA, []byte("ATCGQ")); err == nil {
		t.Fatal("expected error for unrecognised byte, got nil")
	}
	seq, err := Parse(DNA, []byte("ATCG"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seq) != 4 {
		t.Fatalf("len(seq) = %d, want 4", len(seq))
	}
}

func TestParseWithFreqsAndIndicesDropsUnknown(t *testing.T) {
	// "AT??CG" drops the run "??" at positions 2-3.
	seq, freqs, indices := ParseWithFreqsAndIndices(DNA, []byte("AT??CG"))
	if len(seq) != 4 {
		t.Fatalf("len(seq) = %d, want 4", len(seq))
	}
	sum := 0.0
	for _, f := range freqs {
		sum += f
	}
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("freqs sum = %v, want ~1", sum)
	}
	if len(indices) != 1 {
		t.Fatalf("len(indices) = %d, want 1", len(indices))
	}
	if indices[0].Offset != 2 || indices[0].LocalOffset != 2 {
		t.Fatalf("indices[0] = %+v, want offset=2 local=2", indices[0])
	}
}

func TestIndexCoordTranslatesThroughGap(t *testing.T) {
	_, _, indices := ParseWithFreqsAndIndices(DNA, []byte("AT??CG"))
	// Filtered coordinate 2 ("C") sits at original offset 4.
	if got := IndexCoord(2, indices); got != 4 {
		t.Errorf("IndexCoord(2, ...) = %d, want 4", got)
	}
	// Filtered coordinate 0 ("A") precedes any gap.
	if got := IndexCoord(0, indices); got != 0 {
		t.Errorf("IndexCoord(0, ...) = %d, want 0", got)
	}
}

func TestRotateIndicesRemapsToReversedCoordinates(t *testing.T) {
	// "AT??CG" filtered is "ATCG"; reversed it reads as "GC??TA", so the
	// break that preceded filtered coordinate 2 still precedes the
	// reversed filtered coordinate 2 and the T lands at byte offset 4.
	_, _, indices := ParseWithFreqsAndIndices(DNA, []byte("AT??CG"))
	rotated := RotateIndices(indices, 4)
	if len(rotated) != 1 {
		t.Fatalf("len(rotated) = %d, want 1", len(rotated))
	}
	if rotated[0].Coord != 2 || rotated[0].Offset != 2 || rotated[0].LocalOffset != 2 {
		t.Fatalf("rotated[0] = %+v, want coord=2 offset=2 local=2", rotated[0])
	}
	if got := IndexCoord(2, rotated); got != 4 {
		t.Errorf("IndexCoord(2, rotated) = %d, want 4", got)
	}
	if got := RotateIndices(nil, 10); got != nil {
		t.Errorf("RotateIndices(nil, 10) = %+v, want nil", got)
	}
}

func TestRandomSeqWithFreqsVolume(t *testing.T) {
	seq, freqs := RandomSeqWithFreqs(Protein, 1000)
	if len(seq) != 1000 {
		t.Fatalf("len(seq) = %d, want 1000", len(seq))
	}
	if len(freqs) != Protein.Volume() {
		t.Fatalf("len(freqs) = %d, want %d", len(freqs), Protein.Volume())
	}
	for _, c := range seq {
		if int(c) >= Protein.Volume() {
			t.Fatalf("code %d out of volume range", c)
		}
	}
}
