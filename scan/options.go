// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

// CMDOptions parameterises a scanning run. KD and RSquared are only read
// by cmd/driftnet's self-test mode, which hands them to heuristic.PWM;
// the scanner's own internal re-transform calls always use kd=0 and
// r²=deletions*extension, ignoring both fields (see DESIGN.md).
type CMDOptions struct {
	RepeatLength int
	QueryOffset  int
	Deletions    float64
	Extension    float64
	RSquared     float64
	KD           float64
	Threads      int
	Repeats      int
	SimpleInit   bool
	Reverse      bool
}

// DefaultOptions returns the conventional parameterisation used when no
// command-line overrides are given.
func DefaultOptions() CMDOptions {
	return CMDOptions{
		RepeatLength: 300,
		QueryOffset:  30,
		Deletions:    30,
		Extension:    7,
		RSquared:     100000,
		KD:           0,
		Threads:      1,
		Repeats:      10,
		SimpleInit:   false,
		Reverse:      false,
	}
}
