// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// driftnet scans one or more DNA sequences for latent tandem-repeat-like
// windows by sliding a randomly seeded position-weight matrix over the
// sequence, refining the matrix against its own best hits over several
// cycles, and reporting the surviving windows' coordinates and z-scores.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"

	biogoalphabet "github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/store/interval"
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/driftnet/alphabet"
	"github.com/kortschak/driftnet/heuristic"
	"github.com/kortschak/driftnet/scan"
	"github.com/kortschak/driftnet/submat"
)

var (
	in      = flag.String("in", "", "input FASTA file (if empty, run in self-test mode against a random sequence)")
	out     = flag.String("out", "output.csv", "output CSV file name for surviving windows")
	mOut    = flag.String("matrices-out", "matrices.json", "output JSON file name for the matrix settled on per sequence")
	mask    = flag.String("mask", "", "optional CSV file of name,z_value,left_coord,right_coord ranges to mask out before scanning")
	gffOut  = flag.String("gff", "", "optional GFF output file for surviving windows")
	errFile = flag.String("err", "", "output file name for log (default stderr)")

	repeatLength = flag.Int("repeat-length", 300, "length of the position-weight matrix")
	queryOffset  = flag.Int("query-offset", 30, "step between scan windows")
	deletions    = flag.Float64("deletions", 30, "gap-open penalty")
	extension    = flag.Float64("extension", 7, "gap-extend penalty")
	rsquared     = flag.Float64("rsquared", 100000, "heuristic aligner target squared distance (pass-through only; unused by the scanner's own re-transforms)")
	kd           = flag.Float64("kd", 0, "heuristic aligner target expected score (pass-through only; unused by the scanner's own re-transforms)")
	threads      = flag.Int("threads", 1, "number of worker goroutines per scan phase")
	repeats      = flag.Int("repeats", 10, "maximum number of refinement cycles per sequence")
	simpleInit   = flag.Bool("simple-init", false, "use a coarse 1/1000-length step for baseline statistics instead of query-offset")
	reverse      = flag.Bool("reverse", false, "additionally scan the sequence reversal with the settled matrix")
)

func main() {
	flag.Parse()

	if *errFile != "" {
		f, err := os.Create(*errFile)
		if err != nil {
			log.Fatalf("failed to create log file %q: %v", *errFile, err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	opts := scan.CMDOptions{
		RepeatLength: *repeatLength,
		QueryOffset:  *queryOffset,
		Deletions:    *deletions,
		Extension:    *extension,
		RSquared:     *rsquared,
		KD:           *kd,
		Threads:      *threads,
		Repeats:      *repeats,
		SimpleInit:   *simpleInit,
		Reverse:      *reverse,
	}

	var results map[string]scan.Cycle
	switch {
	case *in == "":
		results = runTesting(opts)
	case *mask != "":
		results = runWithMask(opts, *in, *mask)
	default:
		results = runExploring(opts, *in)
	}

	if err := writeCSV(*out, results); err != nil {
		log.Fatalf("failed to write csv output: %v", err)
	}
	if err := writeMatrices(*mOut, results); err != nil {
		log.Fatalf("failed to write matrices output: %v", err)
	}
	if *gffOut != "" {
		if err := writeGFF(*gffOut, results); err != nil {
			log.Fatalf("failed to write gff output: %v", err)
		}
	}

	fmt.Printf("output written to:\n 1. result: %s\n 2. matrices: %s\n", *out, *mOut)
}

const testSequenceLength = 100000
const descendantsAmount = 10

// runTesting exercises the scanner against a random chromosome seeded
// with several mutated descendants of a random sample sequence, so that
// the pipeline can be sanity-checked without a real FASTA input.
func runTesting(opts scan.CMDOptions) map[string]scan.Cycle {
	log.Print("entering testing mode")

	chromosome := alphabet.RandomSeq(alphabet.DNA, testSequenceLength)
	query, freqs := alphabet.RandomSeqWithFreqs(alphabet.DNA, opts.RepeatLength+opts.QueryOffset)

	matrix := submat.RandomPWM(opts.RepeatLength)
	_, matrix, err := heuristic.PWM(query, opts.Deletions, opts.Extension, matrix, heuristic.Params{
		KD:          opts.KD,
		RSquared:    opts.RSquared,
		Frequencies: freqs,
	})
	if err != nil {
		log.Fatalf("failed to settle a matrix for the sample sequence: %v", err)
	}

	descendants := scan.GenerateDescendants(query, descendantsAmount, scan.Quarter, alphabet.DNA.Volume())

	stride := len(chromosome) / (len(descendants) + 1)
	sequence := append([]alphabet.Code(nil), chromosome[:stride]...)
	for i, d := range descendants {
		sequence = append(sequence, d...)
		sequence = append(sequence, chromosome[stride*i:stride*(i+1)]...)
	}

	mean, std := scan.CalculateStartingValues(sequence, matrix, opts)
	tasks := scan.CalculateCycle(sequence, matrix, nil, mean, std, opts)

	return map[string]scan.Cycle{
		"test": {Tasks: tasks, Matrix: matrix},
	}
}

// runExploring scans every sequence in a FASTA file.
func runExploring(opts scan.CMDOptions, fastaPath string) map[string]scan.Cycle {
	log.Print("entering exploring mode")

	seqs, err := readFasta(fastaPath)
	if err != nil {
		log.Fatalf("failed to read fasta file %q: %v", fastaPath, err)
	}

	result := make(map[string]scan.Cycle)
	for _, s := range seqs {
		addSequenceResult(result, opts, s.name, s.raw)
	}
	return result
}

// runWithMask scans every sequence in a FASTA file after masking out the
// ranges named by a CSV file of prior hits, so that a second pass over
// the same sequence doesn't rediscover already-known windows.
func runWithMask(opts scan.CMDOptions, fastaPath, maskPath string) map[string]scan.Cycle {
	log.Print("entering exploring mode with mask support")

	seqs, err := readFasta(fastaPath)
	if err != nil {
		log.Fatalf("failed to read fasta file %q: %v", fastaPath, err)
	}
	masks, err := readMaskCSV(maskPath)
	if err != nil {
		log.Fatalf("failed to read mask csv %q: %v", maskPath, err)
	}

	result := make(map[string]scan.Cycle)
	for _, s := range seqs {
		raw := s.raw
		if records, ok := masks[s.name]; ok {
			raw = maskSequence(raw, records)
		}
		addSequenceResult(result, opts, s.name, raw)
	}
	return result
}

func addSequenceResult(result map[string]scan.Cycle, opts scan.CMDOptions, name string, raw []byte) {
	cycles, err := scan.PerformCalculationPerSequence(opts, raw, name)
	if err != nil {
		log.Fatalf("failed to scan %q: %v", name, err)
	}
	if direct, ok := cycles["direct"]; ok {
		result[name] = direct
	}
	if inverse, ok := cycles["inverse"]; ok {
		result[name+"-reversed"] = inverse
	}
}

type fastaSeq struct {
	name string
	raw  []byte
}

func readFasta(path string) ([]fastaSeq, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var seqs []fastaSeq
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, biogoalphabet.DNAgapped)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		raw := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			raw[i] = byte(l)
		}
		seqs = append(seqs, fastaSeq{name: s.Name(), raw: raw})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("empty fasta file")
	}
	return seqs, nil
}

// maskRecord is one row of the optional mask CSV: a previously-reported
// hit whose range should be excluded from this pass.
type maskRecord struct {
	Name       string
	ZValue     float64
	LeftCoord  int
	RightCoord int
}

func readMaskCSV(path string) (map[string][]maskRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]maskRecord)
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == "name" {
			continue
		}
		if len(row) != 4 {
			return nil, fmt.Errorf("bad mask record: %v", row)
		}
		z, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		left, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, err
		}
		right, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, err
		}
		result[row[0]] = append(result[row[0]], maskRecord{Name: row[0], ZValue: z, LeftCoord: left, RightCoord: right})
	}
	return result, nil
}

// maskInterval adapts a maskRecord's range to biogo/store/interval's
// IntTree for range-overlap lookup.
type maskInterval struct {
	left, right int
	id          uintptr
}

func (m maskInterval) ID() uintptr { return m.id }
func (m maskInterval) Range() interval.IntRange {
	return interval.IntRange{Start: m.left, End: m.right}
}
func (m maskInterval) Overlap(b interval.IntRange) bool {
	return m.left < b.End && b.Start < m.right
}

// maskSequence replaces every byte covered by a mask record's range with
// 'N', so that the alphabet parser drops it the same way it drops any
// other ambiguity code, shifting downstream coordinates through the
// usual gap-index bookkeeping.
func maskSequence(raw []byte, records []maskRecord) []byte {
	if len(records) == 0 {
		return raw
	}

	t := &interval.IntTree{}
	for i, r := range records {
		t.Insert(maskInterval{left: r.LeftCoord, right: r.RightCoord, id: uintptr(i + 1)}, true)
	}
	t.AdjustRanges()

	out := append([]byte(nil), raw...)
	for i := range out {
		if len(t.Get(maskInterval{left: i, right: i + 1})) > 0 {
			out[i] = 'N'
		}
	}
	return out
}

func writeCSV(path string, results map[string]scan.Cycle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"name", "z_value", "left_coord", "right_coord"}); err != nil {
		return err
	}
	for name, cycle := range results {
		for _, t := range cycle.Tasks {
			row := []string{
				name,
				strconv.FormatFloat(t.Z, 'g', -1, 64),
				strconv.Itoa(t.LeftCoord),
				strconv.Itoa(t.RightCoord),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

func writeMatrices(path string, results map[string]scan.Cycle) error {
	matrices := make(map[string][][]float64, len(results))
	for name, cycle := range results {
		matrices[name] = denseToSlice(cycle.Matrix)
	}
	b, err := json.Marshal(matrices)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0o644)
}

func denseToSlice(m *mat.Dense) [][]float64 {
	if m == nil {
		return nil
	}
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for y := 0; y < rows; y++ {
		out[y] = make([]float64, cols)
		for x := 0; x < cols; x++ {
			out[y][x] = m.At(y, x)
		}
	}
	return out
}

func writeGFF(path string, results map[string]scan.Cycle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := gff.NewWriter(f, 60, true)
	w.WriteComment("left and right coordinates are in the scanned sequence's own byte offsets.")
	for name, cycle := range results {
		for _, t := range cycle.Tasks {
			feat := &gff.Feature{
				SeqName:   name,
				Source:    "driftnet",
				Feature:   "repeat",
				FeatStart: t.LeftCoord,
				FeatEnd:   t.RightCoord,
				FeatFrame: gff.NoFrame,
				FeatAttributes: gff.Attributes{
					{Tag: "Z", Value: strconv.FormatFloat(t.Z, 'g', -1, 64)},
				},
			}
			w.Write(feat)
		}
	}
	return nil
}
