package graph

import "errors"

// ErrNodeNotFound indicates an operation referenced a node ID absent
// from the graph.
var ErrNodeNotFound = errors.New("graph: node not found")

// ErrNodeExists indicates AddNode was called with an ID already present.
var ErrNodeExists = errors.New("graph: node already exists")

// ErrSelfLoop indicates AddEdge was called with both endpoints equal.
var ErrSelfLoop = errors.New("graph: self-loops are not permitted")
