package components

import "github.com/katalvlaran/overlapgraph/graph"

// Find returns every connected component of g as a slice of node IDs.
// Component order and the order of IDs within a component are
// unspecified but stable within one call.
func Find(g *graph.Graph) [][]string {
	visited := make(map[string]bool)
	var result [][]string

	for _, n := range g.Nodes() {
		if visited[n.ID] {
			continue
		}
		result = append(result, walk(g, n.ID, visited))
	}
	return result
}

// Of returns the connected component containing id, or nil if id is not
// a node of g.
func Of(g *graph.Graph, id string) []string {
	if !g.HasNode(id) {
		return nil
	}
	return walk(g, id, make(map[string]bool))
}

// walk performs an iterative depth-first marking from start, recording
// every node it reaches.
func walk(g *graph.Graph, start string, visited map[string]bool) []string {
	stack := []string{start}
	visited[start] = true
	var members []string

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, id)

		for _, nbr := range g.Neighbors(id) {
			if !visited[nbr] {
				visited[nbr] = true
				stack = append(stack, nbr)
			}
		}
	}
	return members
}
