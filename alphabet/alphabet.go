// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alphabet codes biological sequences over a small closed symbol
// set and tracks where runs of unrecognised bytes were dropped from the
// input so callers can translate coordinates back to the original bytes.
package alphabet

import (
	"fmt"
	"math/rand"
)

// Code identifies a symbol within an Alphabet's volume. Blank and Pos are
// out-of-band markers and are never counted into a frequency vector.
type Code byte

const (
	Blank Code = 98
	Pos   Code = 99
	Any   Code = 255
)

// Alphabet is a closed, fixed-size symbol set with a character encoding.
type Alphabet struct {
	name    string
	volume  int
	toCode  map[byte]Code
	toChar  map[Code]byte
}

// Volume is the number of ordinary (non-Blank, non-Pos, non-Any) symbols
// in the alphabet.
func (a *Alphabet) Volume() int { return a.volume }

func (a *Alphabet) String() string { return a.name }

// Code returns the Code for an input byte, or Any if the byte is not a
// member of the alphabet.
func (a *Alphabet) Code(b byte) Code {
	if c, ok := a.toCode[b]; ok {
		return c
	}
	return Any
}

// StrictCode returns the Code for an input byte and reports whether the
// byte was recognised.
func (a *Alphabet) StrictCode(b byte) (Code, bool) {
	c, ok := a.toCode[b]
	return c, ok
}

// Char returns the byte representation of a Code.
func (a *Alphabet) Char(c Code) byte {
	if b, ok := a.toChar[c]; ok {
		return b
	}
	return '*'
}

// ErrCharIsNotMatchable is returned by strict parsing when a byte does not
// belong to the alphabet.
type ErrCharIsNotMatchable struct{ Char byte }

func (e ErrCharIsNotMatchable) Error() string {
	return fmt.Sprintf("alphabet: char %q is not matchable", e.Char)
}

var dnaPairs = []struct {
	b byte
	c Code
}{
	{'A', 0}, {'T', 1}, {'C', 2}, {'G', 3},
	{'_', Blank}, {'+', Pos},
}

var proteinPairs = []struct {
	b byte
	c Code
}{
	{'A', 0}, {'R', 1}, {'N', 2}, {'D', 3}, {'C', 4}, {'Q', 5}, {'E', 6},
	{'G', 7}, {'H', 8}, {'I', 9}, {'L', 10}, {'K', 11}, {'M', 12},
	{'F', 13}, {'P', 14}, {'S', 15}, {'T', 16}, {'W', 17}, {'Y', 18},
	{'V', 19}, {'B', 20}, {'J', 21}, {'Z', 22}, {'X', 23},
	{'_', Blank}, {'+', Pos},
}

func newAlphabet(name string, volume int, pairs []struct {
	b byte
	c Code
}) *Alphabet {
	a := &Alphabet{
		name:   name,
		volume: volume,
		toCode: make(map[byte]Code, len(pairs)),
		toChar: make(map[Code]byte, len(pairs)+1),
	}
	for _, p := range pairs {
		a.toCode[p.b] = p.c
		a.toChar[p.c] = p.b
	}
	a.toChar[Any] = '*'
	return a
}

// DNA is the four-letter nucleotide alphabet, volume 4.
var DNA = newAlphabet("DNA", 4, dnaPairs)

// Protein is the twenty-letter amino acid alphabet extended with the
// ambiguity codes B, J, Z and X, volume 24.
var Protein = newAlphabet("Protein", 24, proteinPairs)

// GapIndex records that the filtered sequence position Coord corresponds
// to original position Coord+Offset, where Offset accumulates the length
// of every run of unrecognised bytes seen so far and LocalOffset is the
// length of the single run ending immediately before Coord.
type GapIndex struct {
	Coord       int
	Offset      int
	LocalOffset int
}

// Parse strictly decodes raw bytes over the alphabet, returning an error
// on the first unrecognised byte.
func Parse(a *Alphabet, raw []byte) ([]Code, error) {
	out := make([]Code, 0, len(raw))
	for _, b := range raw {
		c, ok := a.StrictCode(b)
		if !ok {
			return nil, ErrCharIsNotMatchable{Char: b}
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseWithFreqsAndIndices leniently decodes raw bytes over the alphabet,
// silently dropping unrecognised bytes, and returns the decoded sequence,
// the frequency of each ordinary symbol (summing to 1), and the reversed
// list of GapIndex entries describing where bytes were dropped.
func ParseWithFreqsAndIndices(a *Alphabet, raw []byte) ([]Code, []float64, []GapIndex) {
	out := make([]Code, 0, len(raw))
	freqs := make([]float64, a.volume)
	var indices []GapIndex

	pass := true
	count := 0
	localCount := 0
	for i, b := range raw {
		c, ok := a.StrictCode(b)
		if !ok {
			pass = false
			count++
			localCount++
			continue
		}
		if int(c) < a.volume {
			freqs[c]++
		}
		if !pass {
			indices = append(indices, GapIndex{
				Coord:       i - count,
				Offset:      count,
				LocalOffset: localCount,
			})
			localCount = 0
			pass = true
		}
		out = append(out, c)
	}

	// indices is built in encounter order but returned most-recent
	// first, so a linear scan from the front finds the nearest
	// preceding break.
	for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
		indices[i], indices[j] = indices[j], indices[i]
	}

	n := float64(len(out))
	if n > 0 {
		for i := range freqs {
			freqs[i] /= n
		}
	}
	return out, freqs, indices
}

// ParseWithFreqs is ParseWithFreqsAndIndices without gap bookkeeping.
func ParseWithFreqs(a *Alphabet, raw []byte) ([]Code, []float64) {
	seq, freqs, _ := ParseWithFreqsAndIndices(a, raw)
	return seq, freqs
}

// RandomSeq returns a sequence of n symbols drawn uniformly from the
// alphabet's volume.
func RandomSeq(a *Alphabet, n int) []Code {
	out := make([]Code, n)
	for i := range out {
		out[i] = Code(rand.Intn(a.volume))
	}
	return out
}

// RandomSeqWithFreqs is RandomSeq with the resulting frequency vector.
func RandomSeqWithFreqs(a *Alphabet, n int) ([]Code, []float64) {
	out := make([]Code, n)
	freqs := make([]float64, a.volume)
	for i := range out {
		c := Code(rand.Intn(a.volume))
		out[i] = c
		freqs[c]++
	}
	if n > 0 {
		for i := range freqs {
			freqs[i] /= float64(n)
		}
	}
	return out, freqs
}

// IndexCoord translates a coordinate in filtered-sequence space back to
// the original byte offset using a reversed GapIndex list as produced by
// ParseWithFreqsAndIndices.
func IndexCoord(coord int, indices []GapIndex) int {
	for _, idx := range indices {
		if coord >= idx.Coord {
			return coord + idx.Offset
		}
	}
	return coord
}

// RotateIndices remaps a GapIndex list built against a sequence of the
// given (filtered) length onto that sequence's reversal.
func RotateIndices(indices []GapIndex, queryLength int) []GapIndex {
	if len(indices) == 0 {
		return nil
	}
	ref := indices[0]
	fullLength := queryLength + ref.Offset

	out := make([]GapIndex, 0, len(indices))
	offset := 0
	for _, idx := range indices {
		offset += idx.LocalOffset
		out = append(out, GapIndex{
			Coord:       fullLength - idx.Coord - ref.Offset,
			Offset:      offset,
			LocalOffset: idx.LocalOffset,
		})
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
