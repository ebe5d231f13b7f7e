package sweep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/overlapgraph/interval"
	"github.com/katalvlaran/overlapgraph/region"
	"github.com/katalvlaran/overlapgraph/regionset"
	"github.com/katalvlaran/overlapgraph/sweep"
)

func mustRegion(t *testing.T, id string, lo, hi float64) region.Region {
	t.Helper()
	r, err := region.New(id, []interval.Interval{interval.New(lo, hi)})
	require.NoError(t, err)
	return r
}

// recordingObserver captures the callback sequence for assertions.
type recordingObserver struct {
	inits      []int
	begins     []string
	candidates [][2]string
	ends       []string
	dones      int
}

func (o *recordingObserver) OnInit(dim int) error {
	o.inits = append(o.inits, dim)
	return nil
}

func (o *recordingObserver) OnBegin(r region.Region, active map[string]region.Region) error {
	o.begins = append(o.begins, r.ID())
	if _, ok := active[r.ID()]; !ok {
		return assertErr("region missing from active set on OnBegin: " + r.ID())
	}
	return nil
}

func (o *recordingObserver) OnCandidate(a, b region.Region) error {
	o.candidates = append(o.candidates, [2]string{a.ID(), b.ID()})
	return nil
}

func (o *recordingObserver) OnEnd(r region.Region, active map[string]region.Region) error {
	o.ends = append(o.ends, r.ID())
	if _, ok := active[r.ID()]; ok {
		return assertErr("region still in active set on OnEnd: " + r.ID())
	}
	return nil
}

func (o *recordingObserver) OnDone() error {
	o.dones++
	return nil
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func TestRunEmitsCandidateForOverlappingPair(t *testing.T) {
	rs := regionset.New(1)
	require.NoError(t, rs.Add(mustRegion(t, "a", 0, 5)))
	require.NoError(t, rs.Add(mustRegion(t, "b", 3, 8)))

	obs := &recordingObserver{}
	require.NoError(t, sweep.Run(rs, 0, obs))

	assert.Equal(t, []int{0}, obs.inits)
	assert.Equal(t, 1, obs.dones)
	assert.Equal(t, [][2]string{{"a", "b"}}, obs.candidates)
	assert.ElementsMatch(t, []string{"a", "b"}, obs.begins)
	assert.ElementsMatch(t, []string{"a", "b"}, obs.ends)
}

func TestRunEmitsNoCandidateForDisjointPair(t *testing.T) {
	rs := regionset.New(1)
	require.NoError(t, rs.Add(mustRegion(t, "a", 0, 5)))
	require.NoError(t, rs.Add(mustRegion(t, "b", 10, 15)))

	obs := &recordingObserver{}
	require.NoError(t, sweep.Run(rs, 0, obs))
	assert.Empty(t, obs.candidates)
}

func TestRunAdjacentRegionsDoNotOverlap(t *testing.T) {
	rs := regionset.New(1)
	require.NoError(t, rs.Add(mustRegion(t, "a", 0, 5)))
	require.NoError(t, rs.Add(mustRegion(t, "b", 5, 10)))

	obs := &recordingObserver{}
	require.NoError(t, sweep.Run(rs, 0, obs))
	assert.Empty(t, obs.candidates)
}

func TestRunChainOfThreeEmitsEachPairOnce(t *testing.T) {
	rs := regionset.New(1)
	require.NoError(t, rs.Add(mustRegion(t, "a", 0, 4)))
	require.NoError(t, rs.Add(mustRegion(t, "b", 2, 6)))
	require.NoError(t, rs.Add(mustRegion(t, "c", 5, 9)))

	obs := &recordingObserver{}
	require.NoError(t, sweep.Run(rs, 0, obs))

	seen := make(map[string]bool)
	for _, c := range obs.candidates {
		seen[c[0]+"-"+c[1]] = true
	}
	assert.True(t, seen["a-b"])
	assert.True(t, seen["b-c"])
	assert.False(t, seen["a-c"])
	assert.Len(t, obs.candidates, 2)
}

func TestRunRejectsNilObserver(t *testing.T) {
	rs := regionset.New(1)
	require.NoError(t, rs.Add(mustRegion(t, "a", 0, 1)))
	assert.ErrorIs(t, sweep.Run(rs, 0, nil), sweep.ErrNilObserver)
}

func TestRunPropagatesTimelineError(t *testing.T) {
	rs := regionset.New(1)
	require.NoError(t, rs.Add(mustRegion(t, "a", 0, 1)))
	err := sweep.Run(rs, 5, &recordingObserver{})
	assert.Error(t, err)
}
