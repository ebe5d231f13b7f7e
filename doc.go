// Package overlapgraph builds intersection graphs from axis-aligned
// regions in d-dimensional space.
//
// Given a set of regions (intervals in 1-D, rectangles in 2-D, or their
// product in higher dimensions), the module runs a single sweep-line pass
// and produces an undirected graph whose nodes are the regions and whose
// edges connect every pair that intersects, each edge labelled with the
// intersection region itself.
//
// Package layout:
//
//	interval/    — 1-D bounded-value algebra: contains, encloses, intersect, union
//	region/      — d-D product of intervals built on interval.Interval
//	regionset/   — fixed-dimension, id-keyed collection of regions + bounding box
//	timeline/    — Init/Begin/End/Done event stream over a RegionSet
//	sweep/       — generic one-pass driver over a Timeline with an Observer callback
//	graph/       — the undirected intersection graph (nodes, labelled edges)
//	builder/     — GraphBuilder observer + the Build entry point
//	components/  — connected components ("overlap clusters") of an intersection graph
//	matrix/      — dense adjacency-matrix view of an intersection graph
//
// Runnable examples live in the example_test.go files of builder, graph,
// interval, matrix and timeline.
//
// Quick example:
//
//	rs := regionset.New(1)
//	a, _ := region.New("a", []interval.Interval{interval.New(0, 10)})
//	b, _ := region.New("b", []interval.Interval{interval.New(5, 15)})
//	rs.Add(a)
//	rs.Add(b)
//	g, _ := builder.Build(rs)
//	// g has nodes {a, b} and one edge {a,b} labelled [5,10]
//
//	go get github.com/katalvlaran/overlapgraph
package overlapgraph
