// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import "sort"

// Filter sorts tasks by LeftCoord and collapses runs of overlapping
// tasks into single survivors, keeping the maximum-z member of each run.
// A run absorbs every subsequent task that overlaps the run's own anchor
// task, not transitively against the whole accumulated batch, and stops
// at the first non-overlap; the task that ended a run is re-examined as
// the next round's starting point and deduplicated by Task equality.
func Filter(tasks []Task) []Task {
	if len(tasks) == 0 {
		return nil
	}
	if len(tasks) == 1 {
		return append([]Task(nil), tasks...)
	}

	work := append([]Task(nil), tasks...)
	sort.Slice(work, func(i, j int) bool { return work[i].LeftCoord < work[j].LeftCoord })

	var result []Task

	for len(work) > 0 {
		if len(work) == 1 {
			if !containsTask(result, work[0]) {
				result = append(result, work[0])
			}
			break
		}

		current := work[0]
		batch := []Task{current}
		index := 0

		for i := 1; i < len(work); i++ {
			index = i - 1
			if checkIntersection(current.LeftCoord, current.RightCoord, work[i].LeftCoord, work[i].RightCoord) {
				batch = append(batch, work[i])
			} else {
				break
			}
		}

		if len(batch) == 1 {
			result = append(result, batch[0])
		} else {
			best := batch[0]
			for _, t := range batch[1:] {
				if t.Z > best.Z {
					best = t
				}
			}
			result = append(result, best)
		}

		work = work[index+1:]
	}

	return result
}

// checkIntersection reports whether intervals [left1,right1] and
// [left2,right2] overlap: either endpoint of one lies within the other,
// or one interval wholly contains the other.
func checkIntersection(left1, right1, left2, right2 int) bool {
	if left1 >= left2 && left1 <= right2 {
		return true
	}
	if right1 >= left2 && right1 <= right2 {
		return true
	}
	if left2 >= left1 && right2 <= right1 {
		return true
	}
	return false
}
