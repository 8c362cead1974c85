// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrate

import (
	"testing"

	"github.com/kortschak/driftnet/scan"
)

func TestClusterSimilarGroupsOverlappingTasks(t *testing.T) {
	tasks := []scan.Task{
		{LeftCoord: 0, RightCoord: 100},
		{LeftCoord: 10, RightCoord: 110},
		{LeftCoord: 1000, RightCoord: 1100},
	}

	clusters := ClusterSimilar(tasks, 0.5)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}

	sizes := make(map[int]int)
	for _, c := range clusters {
		sizes[len(c)]++
	}
	if sizes[2] != 1 || sizes[1] != 1 {
		t.Errorf("cluster sizes = %v, want one pair and one singleton", sizes)
	}
}

func TestClusterSimilarHandlesEmptyInput(t *testing.T) {
	if got := ClusterSimilar(nil, 0.5); len(got) != 0 {
		t.Errorf("got %d clusters for empty input, want 0", len(got))
	}
}
