// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrate

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/kortschak/driftnet/scan"
)

// ClusterSimilar groups tasks into connected components of coordinate
// overlap whose Jaccard similarity is at least thresh, so that many
// scan hits belonging to the same underlying repeat can be reported as
// one cluster rather than independently. Clusters are returned as
// indices into tasks, in the order topo.ConnectedComponents produces
// them.
func ClusterSimilar(tasks []scan.Task, thresh float64) [][]int {
	g := thresholdGraph{WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(1, 0), thresh: thresh}
	for i := range tasks {
		g.AddNode(simple.Node(i))
	}
	for i := range tasks[:max(0, len(tasks)-1)] {
		for j := range tasks[i+1:] {
			w := jaccard(tasks[i], tasks[j+i+1])
			if w <= 0 {
				continue
			}
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j + i + 1), W: w})
		}
	}

	cc := topo.ConnectedComponents(g)
	clusters := make([][]int, len(cc))
	for i, c := range cc {
		ids := make([]int, len(c))
		for j, n := range c {
			ids[j] = int(n.ID())
		}
		clusters[i] = ids
	}
	return clusters
}

func jaccard(a, b scan.Task) float64 {
	n := intersection(a, b)
	union := (a.RightCoord - a.LeftCoord) + (b.RightCoord - b.LeftCoord) - n
	if union <= 0 {
		return 0
	}
	return float64(n) / float64(union)
}

func intersection(a, b scan.Task) int {
	n := min(a.RightCoord, b.RightCoord) - max(a.LeftCoord, b.LeftCoord)
	if n < 0 {
		return 0
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// thresholdGraph is an undirected graph where edges must be at or above
// a given weight to be returned or traversed.
type thresholdGraph struct {
	*simple.WeightedUndirectedGraph
	thresh float64
}

// From returns all nodes in g that can be reached directly from n.
func (g thresholdGraph) From(n int64) graph.Nodes {
	if g.Node(n) == nil {
		return nil
	}

	var nodes []graph.Node
	for _, to := range graph.NodesOf(g.WeightedUndirectedGraph.From(n)) {
		if g.HasEdgeBetween(n, to.ID()) {
			nodes = append(nodes, to)
		}
	}

	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween returns whether an edge exists between nodes x and y.
func (g thresholdGraph) HasEdgeBetween(x, y int64) bool {
	if !g.WeightedUndirectedGraph.HasEdgeBetween(x, y) {
		return false
	}
	w, _ := g.Weight(x, y)
	return w >= g.thresh
}

// Edge returns the edge from u to v if such an edge exists and nil
// otherwise. v must be directly reachable from u as defined by From.
func (g thresholdGraph) Edge(u, v int64) graph.Edge {
	return g.EdgeBetween(u, v)
}

// EdgeBetween returns the edge between nodes x and y.
func (g thresholdGraph) EdgeBetween(x, y int64) graph.Edge {
	e := g.WeightedUndirectedGraph.EdgeBetween(x, y)
	if e == nil {
		return nil
	}
	if w, _ := g.Weight(x, y); w < g.thresh {
		return nil
	}
	return e
}
