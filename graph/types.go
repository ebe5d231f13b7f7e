package graph

import (
	"sync"

	"github.com/katalvlaran/overlapgraph/region"
)

// Node is a graph vertex carrying the Region it represents.
type Node struct {
	ID     string
	Region region.Region
}

// Edge is an unordered connection between two nodes, labelled with the
// Region formed by their intersection.
type Edge struct {
	A     string
	B     string
	Label region.Region
}

// Graph is an undirected, simple IntersectionGraph: no self-loops, no
// parallel edges. mu protects concurrent access to its internal state.
type Graph struct {
	mu       sync.RWMutex
	nodes    map[string]Node
	adjacent map[string]map[string]Edge
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]Node),
		adjacent: make(map[string]map[string]Edge),
	}
}
