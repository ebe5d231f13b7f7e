package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/overlapgraph/builder"
	"github.com/katalvlaran/overlapgraph/interval"
	"github.com/katalvlaran/overlapgraph/region"
	"github.com/katalvlaran/overlapgraph/regionset"
)

func mustRegion(t *testing.T, id string, factors ...interval.Interval) region.Region {
	t.Helper()
	r, err := region.New(id, factors)
	require.NoError(t, err)
	return r
}

func TestBuildOneDimensionalChain(t *testing.T) {
	rs := regionset.New(1)
	require.NoError(t, rs.Add(mustRegion(t, "a", interval.New(0, 4))))
	require.NoError(t, rs.Add(mustRegion(t, "b", interval.New(2, 6))))
	require.NoError(t, rs.Add(mustRegion(t, "c", interval.New(5, 9))))

	g, err := builder.Build(rs)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "c"))
	assert.False(t, g.HasEdge("a", "c"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuildRejectsEmptySet(t *testing.T) {
	rs := regionset.New(1)
	_, err := builder.Build(rs)
	assert.ErrorIs(t, err, builder.ErrEmptyRegionSet)
}

func TestBuildRectanglesRequiresFullDimensionOverlap(t *testing.T) {
	// a and b overlap on the x axis only; they must not get an edge.
	a := mustRegion(t, "a", interval.New(0, 5), interval.New(0, 5))
	b := mustRegion(t, "b", interval.New(2, 7), interval.New(10, 15))
	c := mustRegion(t, "c", interval.New(2, 7), interval.New(3, 8))

	rs := regionset.New(2)
	require.NoError(t, rs.Add(a))
	require.NoError(t, rs.Add(b))
	require.NoError(t, rs.Add(c))

	g, err := builder.Build(rs)
	require.NoError(t, err)

	assert.False(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("a", "c"))
}

func TestBuildEnclosedRectangleProducesEdgeLabelledWithInnerRegion(t *testing.T) {
	outer := mustRegion(t, "outer", interval.New(0, 10), interval.New(0, 10))
	inner := mustRegion(t, "inner", interval.New(2, 4), interval.New(2, 4))

	rs := regionset.New(2)
	require.NoError(t, rs.Add(outer))
	require.NoError(t, rs.Add(inner))

	g, err := builder.Build(rs)
	require.NoError(t, err)
	require.True(t, g.HasEdge("outer", "inner"))

	var found bool
	for _, e := range g.Edges() {
		if (e.A == "outer" && e.B == "inner") || (e.A == "inner" && e.B == "outer") {
			found = true
			assert.Equal(t, 2.0, e.Label.Factors()[0].Lower())
			assert.Equal(t, 4.0, e.Label.Factors()[0].Upper())
		}
	}
	assert.True(t, found)
}

func TestBuildWithSweepDimensionOption(t *testing.T) {
	a := mustRegion(t, "a", interval.New(0, 10), interval.New(0, 2))
	b := mustRegion(t, "b", interval.New(0, 10), interval.New(1, 3))

	rs := regionset.New(2)
	require.NoError(t, rs.Add(a))
	require.NoError(t, rs.Add(b))

	g, err := builder.Build(rs, builder.WithSweepDimension(1))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a", "b"))
}

func TestBuildWithInclusiveBoundsOption(t *testing.T) {
	// a and b overlap on the swept dimension (0) but only touch, without
	// overlapping, on dimension 1 — the full-intersection check is where
	// incBounds takes effect.
	a := mustRegion(t, "a", interval.New(0, 10), interval.New(0, 5))
	b := mustRegion(t, "b", interval.New(0, 10), interval.New(5, 9))

	rs := regionset.New(2)
	require.NoError(t, rs.Add(a))
	require.NoError(t, rs.Add(b))

	exclusive, err := builder.Build(rs)
	require.NoError(t, err)
	assert.False(t, exclusive.HasEdge("a", "b"))

	inclusive, err := builder.Build(rs, builder.WithInclusiveBounds(true))
	require.NoError(t, err)
	assert.True(t, inclusive.HasEdge("a", "b"))
}

func TestWithSweepDimensionPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() {
		builder.WithSweepDimension(-1)
	})
}
