package graph

import "sort"

// AddNode inserts a node carrying r. Returns ErrNodeExists if a node
// with this ID is already present.
func (g *Graph) AddNode(r Node) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[r.ID]; exists {
		return ErrNodeExists
	}
	g.nodes[r.ID] = r
	g.adjacent[r.ID] = make(map[string]Edge)
	return nil
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// AddEdge connects a and b, labelled with label. It is idempotent: if
// the pair is already connected, it does nothing and returns nil.
// Returns ErrSelfLoop if a == b, or ErrNodeNotFound if either endpoint
// is absent.
func (g *Graph) AddEdge(a, b string, label Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if a == b {
		return ErrSelfLoop
	}
	if _, ok := g.nodes[a]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[b]; !ok {
		return ErrNodeNotFound
	}
	if _, exists := g.adjacent[a][b]; exists {
		return nil
	}

	g.adjacent[a][b] = label
	g.adjacent[b][a] = label
	return nil
}

// HasEdge reports whether a and b are connected.
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacent[a][b]
	return ok
}

// Neighbors returns the IDs of every node adjacent to id, sorted. Returns
// nil if id is absent, and an empty slice if id has no neighbours.
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacent[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Nodes returns every node in the graph, ordered by ID. Two runs over
// the same graph always yield the same order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edges returns every edge exactly once, ordered by its canonical
// (min, max) node-id key. Two runs over the same graph always yield the
// same order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]bool)
	out := make([]Edge, 0)
	for a, nbrs := range g.adjacent {
		for b, e := range nbrs {
			lo, hi := a, b
			if hi < lo {
				lo, hi = hi, lo
			}
			key := lo + "\x00" + hi
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		lo1, hi1 := canonicalPair(out[i].A, out[i].B)
		lo2, hi2 := canonicalPair(out[j].A, out[j].B)
		if lo1 != lo2 {
			return lo1 < lo2
		}
		return hi1 < hi2
	})
	return out
}

// canonicalPair returns (a, b) reordered so the lexicographically
// smaller ID comes first.
func canonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of distinct unordered edges.
func (g *Graph) EdgeCount() int {
	return len(g.Edges())
}
