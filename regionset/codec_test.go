package regionset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/overlapgraph/regionset"
)

func TestRegionSetJSONRoundTrip(t *testing.T) {
	rs := regionset.New(1)
	require.NoError(t, rs.Add(mustRegion(t, "a", 0, 5)))
	require.NoError(t, rs.Add(mustRegion(t, "b", 3, 8)))

	data, err := json.Marshal(rs)
	require.NoError(t, err)

	var decoded regionset.RegionSet
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, rs.Dimension(), decoded.Dimension())
	assert.Equal(t, rs.Size(), decoded.Size())

	got, err := decoded.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID())
}

func TestRegionSetUnmarshalPropagatesAddErrors(t *testing.T) {
	data := []byte(`{"dimension":1,"regions":[{"id":"a","factors":[[0,5]]},{"id":"a","factors":[[1,2]]}]}`)

	var decoded regionset.RegionSet
	err := json.Unmarshal(data, &decoded)
	assert.ErrorIs(t, err, regionset.ErrDuplicateID)
}

func TestRegionSetJSONRoundTripPreservesBounds(t *testing.T) {
	bound := mustRegion(t, "bound", 0, 10)
	rs := regionset.New(1, regionset.WithBounds(bound))
	require.NoError(t, rs.Add(mustRegion(t, "a", 2, 4)))

	data, err := json.Marshal(rs)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bounds"`)

	var decoded regionset.RegionSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.ErrorIs(t, decoded.Add(mustRegion(t, "outside", 5, 20)), regionset.ErrOutOfBounds)
}

func TestRegionSetJSONOmitsBoundsWhenUnbounded(t *testing.T) {
	rs := regionset.New(1)
	require.NoError(t, rs.Add(mustRegion(t, "a", 0, 5)))

	data, err := json.Marshal(rs)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"bounds"`)
}
