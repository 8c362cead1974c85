// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// driftnet-align performs a single global or local protein alignment of
// the two sequences in a FASTA file under a named substitution matrix.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	biogoalphabet "github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/driftnet/align"
	"github.com/kortschak/driftnet/alphabet"
	"github.com/kortschak/driftnet/submat"
)

var (
	in      = flag.String("in", "", "input FASTA file containing exactly two protein sequences (required)")
	out     = flag.String("out", "", "output file name (default stdout)")
	errFile = flag.String("err", "", "output file name for log (default stderr)")
	matrix  = flag.String("matrix", "blosum62", "substitution matrix: blosum62 or pam250")
	global  = flag.Bool("global", false, "perform a global (Needleman-Wunsch) alignment instead of local (Smith-Waterman)")
	del     = flag.Float64("deletions", 11, "gap-open penalty")
	ext     = flag.Float64("extension", 1, "gap-extend penalty")
)

func main() {
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	if *errFile != "" {
		f, err := os.Create(*errFile)
		if err != nil {
			log.Fatalf("failed to create log file %q: %v", *errFile, err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *in, err)
	}
	defer f.Close()

	var raws [][]byte
	var names []string
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, biogoalphabet.Protein)))
	for sc.Next() {
		seq := sc.Seq().(*linear.Seq)
		raw := make([]byte, len(seq.Seq))
		for i, l := range seq.Seq {
			raw[i] = byte(l)
		}
		raws = append(raws, raw)
		names = append(names, seq.Name())
	}
	if err := sc.Error(); err != nil {
		log.Fatalf("error during fasta read: %v", err)
	}
	if len(raws) != 2 {
		log.Fatalf("there should be 2 sequences, not %d", len(raws))
	}

	m, err := namedMatrix(*matrix)
	if err != nil {
		log.Fatal(err)
	}

	query, err := alphabet.Parse(alphabet.Protein, raws[0])
	if err != nil {
		log.Fatalf("failed to parse query %q: %v", names[0], err)
	}
	target, err := alphabet.Parse(alphabet.Protein, raws[1])
	if err != nil {
		log.Fatalf("failed to parse target %q: %v", names[1], err)
	}

	var aln *align.Alignment
	if *global {
		aln, _, err = align.Global(query, target, *del, *ext, m)
	} else {
		aln, _, err = align.Local(query, target, *del, *ext, m)
	}
	if err != nil {
		log.Fatalf("alignment failed: %v", err)
	}

	w := os.Stdout
	if *out != "" {
		wf, err := os.Create(*out)
		if err != nil {
			log.Fatalf("failed to create output file %q: %v", *out, err)
		}
		defer wf.Close()
		w = wf
	}

	fmt.Fprintf(w, "score: %v\n", aln.F)
	fmt.Fprintf(w, "%s\t%s\n", names[0], formatCodes(alphabet.Protein, aln.Query))
	fmt.Fprintf(w, "%s\t%s\n", names[1], formatCodes(alphabet.Protein, aln.Target))
}

func namedMatrix(name string) (*mat.Dense, error) {
	switch name {
	case "blosum62":
		return submat.BLOSUM62(), nil
	case "pam250":
		return submat.PAM250(), nil
	default:
		return nil, fmt.Errorf("unknown matrix %q", name)
	}
}

func formatCodes(a *alphabet.Alphabet, codes []alphabet.Code) string {
	out := make([]byte, len(codes))
	for i, c := range codes {
		out[i] = a.Char(c)
	}
	return string(out)
}
