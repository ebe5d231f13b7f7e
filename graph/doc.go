// Package graph implements IntersectionGraph: an undirected, simple
// graph whose nodes carry a region.Region payload and whose edges carry
// a region.Region label (the intersection of their two endpoints).
//
// What:
//
//	New creates an empty graph. AddNode inserts a node keyed by a
//	region's ID. AddEdge is idempotent: adding the same unordered pair
//	twice is a no-op on the second call, so no parallel edges or
//	self-loops can arise. HasEdge, Neighbors, Nodes, Edges, NodeCount
//	and EdgeCount provide read access.
//
// Why:
//
//	Thread-safety is provided via sync.RWMutex exactly as the teacher's
//	adjacency-list graph, since nothing prevents concurrent readers
//	once a GraphBuilder has finished construction.
package graph
