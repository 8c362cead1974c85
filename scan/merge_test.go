// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import "testing"

func TestFilterMergesOverlappingTasks(t *testing.T) {
	tasks := []Task{
		{LeftCoord: 300, RightCoord: 630, Z: 12.24},
		{LeftCoord: 360, RightCoord: 690, Z: 12.38},
		{LeftCoord: 1080, RightCoord: 1410, Z: 11.76},
		{LeftCoord: 1740, RightCoord: 2070, Z: 10.47},
		{LeftCoord: 1860, RightCoord: 2190, Z: 11.39},
	}

	got := Filter(tasks)
	want := []Task{
		{LeftCoord: 360, RightCoord: 690, Z: 12.38},
		{LeftCoord: 1080, RightCoord: 1410, Z: 11.76},
		{LeftCoord: 1860, RightCoord: 2190, Z: 11.39},
	}
	if len(got) != len(want) {
		t.Fatalf("Filter returned %d tasks, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].LeftCoord != want[i].LeftCoord || got[i].RightCoord != want[i].RightCoord || got[i].Z != want[i].Z {
			t.Errorf("survivor %d = (%d,%d,%v), want (%d,%d,%v)",
				i, got[i].LeftCoord, got[i].RightCoord, got[i].Z,
				want[i].LeftCoord, want[i].RightCoord, want[i].Z)
		}
	}
}

func TestFilterDeduplicatesReexaminedSurvivor(t *testing.T) {
	// The sweep leaves the task that ended a run at the head of the
	// remainder; when that task was itself the run's elected survivor it
	// must not be emitted a second time. Task equality is by LeftCoord.
	tasks := []Task{
		{LeftCoord: 0, RightCoord: 100, Z: 4},
		{LeftCoord: 50, RightCoord: 150, Z: 9},
	}

	got := Filter(tasks)
	if len(got) != 1 {
		t.Fatalf("Filter returned %d tasks, want 1: %+v", len(got), got)
	}
	if got[0].LeftCoord != 50 || got[0].Z != 9 {
		t.Errorf("survivor = (%d,%d,%v), want (50,150,9)", got[0].LeftCoord, got[0].RightCoord, got[0].Z)
	}
}

func TestFilterSortsUnorderedInput(t *testing.T) {
	tasks := []Task{
		{LeftCoord: 1080, RightCoord: 1410, Z: 11.76},
		{LeftCoord: 300, RightCoord: 630, Z: 12.24},
		{LeftCoord: 360, RightCoord: 690, Z: 12.38},
	}

	got := Filter(tasks)
	if len(got) != 2 {
		t.Fatalf("Filter returned %d tasks, want 2", len(got))
	}
	if got[0].LeftCoord != 360 || got[1].LeftCoord != 1080 {
		t.Errorf("survivors = %+v, want left coords 360 then 1080", got)
	}
}

func TestFilterEmptyAndSingle(t *testing.T) {
	if got := Filter(nil); got != nil {
		t.Errorf("Filter(nil) = %+v, want nil", got)
	}
	one := []Task{{LeftCoord: 10, RightCoord: 20, Z: 5}}
	got := Filter(one)
	if len(got) != 1 || got[0].LeftCoord != 10 {
		t.Errorf("Filter(single) = %+v, want the input unchanged", got)
	}
}

func TestCheckIntersection(t *testing.T) {
	for _, tc := range []struct {
		name           string
		l1, r1, l2, r2 int
		want           bool
	}{
		{"left endpoint inside", 300, 630, 360, 690, true},
		{"right endpoint inside", 360, 690, 300, 630, true},
		{"containment", 0, 1000, 100, 200, true},
		{"contained", 100, 200, 0, 1000, true},
		{"disjoint", 300, 630, 1080, 1410, false},
		{"touching endpoints", 100, 200, 200, 300, true},
		{"identical", 100, 200, 100, 200, true},
	} {
		if got := checkIntersection(tc.l1, tc.r1, tc.l2, tc.r2); got != tc.want {
			t.Errorf("%s: checkIntersection(%d,%d,%d,%d) = %v, want %v",
				tc.name, tc.l1, tc.r1, tc.l2, tc.r2, got, tc.want)
		}
	}
}
