// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package submat

import "math/rand"

// randTrit returns a uniform random value in {-1, 0, 1}.
func randTrit() int {
	return rand.Intn(3) - 1
}
