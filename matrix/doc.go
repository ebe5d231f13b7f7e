// Package matrix provides a dense boolean adjacency-matrix view of an
// IntersectionGraph, for callers that prefer O(1) pairwise lookups over
// graph.Graph's map-based adjacency lists.
//
// What:
//
//	NewAdjacency(g) builds an Adjacency snapshot: Index maps node ID to
//	row/column, Data[i][j] reports whether the corresponding nodes are
//	connected. Has(i, j) and Dim() provide read access.
//
// Why:
//
//	Grounded on the teacher's AdjacencyMatrix, generalized from an
//	int64-weighted directed-or-undirected matrix to a plain boolean
//	undirected one, since IntersectionGraph edges carry a Region label
//	rather than a scalar weight.
package matrix
