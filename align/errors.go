// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import "errors"

var (
	// ErrMatrixShape is returned by PWM when the supplied matrix's row
	// count does not match the DNA alphabet's volume.
	ErrMatrixShape = errors.New("align: PWM matrix must have 4 rows")

	// ErrEmptySequence is returned when an aligner is asked to run on a
	// zero-length query or target.
	ErrEmptySequence = errors.New("align: empty sequence")
)
