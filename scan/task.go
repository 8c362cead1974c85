// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan implements the parallel latent-repeat scanner: a sliding
// PWM alignment over a long sequence, z-score filtering, overlap
// merging, and matrix re-estimation across refinement cycles.
package scan

import "github.com/kortschak/driftnet/align"

// Task is a single surviving window hit: its PWM alignment, its
// translated coordinates in original-sequence space, and its z-score
// against the phase's baseline mean/stddev. Two Tasks are considered
// equal when their LeftCoord matches; Filter deduplicates on this rule.
type Task struct {
	Alignment            *align.PWMAlignment
	LeftCoord, RightCoord int
	Z                     float64
}

func sameTask(a, b Task) bool {
	return a.LeftCoord == b.LeftCoord
}

func containsTask(tasks []Task, t Task) bool {
	for _, existing := range tasks {
		if sameTask(existing, t) {
			return true
		}
	}
	return false
}
