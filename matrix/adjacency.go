package matrix

import "github.com/katalvlaran/overlapgraph/graph"

// Adjacency is a dense boolean adjacency-matrix snapshot of a Graph.
type Adjacency struct {
	Index map[string]int // node ID -> row/column index
	Data  [][]bool       // Data[i][j] reports an edge between row i and column j
}

// NewAdjacency builds an Adjacency snapshot of g. The snapshot does not
// track subsequent mutations of g.
func NewAdjacency(g *graph.Graph) *Adjacency {
	nodes := g.Nodes()
	n := len(nodes)
	idx := make(map[string]int, n)
	for i, node := range nodes {
		idx[node.ID] = i
	}

	data := make([][]bool, n)
	for i := range data {
		data[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		i, j := idx[e.A], idx[e.B]
		data[i][j] = true
		data[j][i] = true
	}
	return &Adjacency{Index: idx, Data: data}
}

// Has reports whether the nodes at rows i and j are connected.
func (m *Adjacency) Has(i, j int) bool {
	return m.Data[i][j]
}

// HasID reports whether the nodes a and b are connected, looking both
// up by ID. Returns ErrUnknownNode if either ID is absent.
func (m *Adjacency) HasID(a, b string) (bool, error) {
	i, ok := m.Index[a]
	if !ok {
		return false, ErrUnknownNode
	}
	j, ok := m.Index[b]
	if !ok {
		return false, ErrUnknownNode
	}
	return m.Data[i][j], nil
}

// Dim returns the number of nodes (the matrix's row/column count).
func (m *Adjacency) Dim() int {
	return len(m.Index)
}
