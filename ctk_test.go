package ctk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := New(DefaultConstraintSet())
	require.NoError(t, err)
	return p
}

func TestPipelineBuild(t *testing.T) {
	p := defaultPipeline(t)
	assert.Equal(t, ModeDefault, p.Mode())
	assert.Len(t, p.ConstraintNames(), 10)

	tab, err := p.Build("sam1")
	require.NoError(t, err)
	assert.Equal(t, 20, tab.Len())
	for _, c := range tab.Candidates() {
		assert.Len(t, c.Violations(), 10, "candidate %q", c.Output)
	}
	_, set := tab.Inclusion()
	assert.False(t, set)
}

func TestPipelineClonesConstraints(t *testing.T) {
	p := defaultPipeline(t)
	a, err := p.Build("sam1")
	require.NoError(t, err)
	b, err := p.Build("kat1")
	require.NoError(t, err)

	ca, _ := a.Constraint("Onset")
	cb, _ := b.Constraint("Onset")
	assert.NotSame(t, ca, cb)
	assert.Equal(t, ca.Name(), cb.Name())
}

func TestPipelineDepthOne(t *testing.T) {
	set := DefaultConstraintSet()
	set.Depth = 1
	p, err := New(set)
	require.NoError(t, err)

	tab, err := p.Build("sam1")
	require.NoError(t, err)
	assert.Equal(t, 12, tab.Len())
}

func TestBuildCorpus(t *testing.T) {
	p := defaultPipeline(t)
	entries := []Entry{
		{Input: "sam1", Output: "sam", Count: 3},
		{Input: "kat1", Output: "xyz", Count: 1},
		{Input: "sam1", Output: "sa1", Count: 1},
	}
	tabs, err := p.BuildCorpus(context.Background(), entries, 2)
	require.NoError(t, err)
	require.Len(t, tabs, 2)

	sam := tabs[0]
	assert.Equal(t, "sam1", sam.Input())
	incl, set := sam.Inclusion()
	assert.True(t, set)
	assert.True(t, incl)
	assert.Equal(t, 20, sam.Len())
	c, err := sam.Candidate("sam")
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.Freq())
	c, err = sam.Candidate("sa")
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Freq())

	kat := tabs[1]
	assert.Equal(t, "kat1", kat.Input())
	incl, set = kat.Inclusion()
	assert.True(t, set)
	assert.False(t, incl)
	ref := NewTableau("kat1")
	GenTwo(ref, ModeDefault)
	assert.Equal(t, ref.Len()+1, kat.Len())
	c, err = kat.Candidate("xyz")
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Freq())
	assert.Len(t, c.Violations(), 10, "attested outputs are evaluated too")
}

func TestBuildCorpusCancelled(t *testing.T) {
	p := defaultPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.BuildCorpus(ctx, []Entry{{Input: "sam1"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRejectsInvalidSet(t *testing.T) {
	set := DefaultConstraintSet()
	set.Constraints[0].Pattern = ""
	set.Constraints[0].Type = "Phonotactic"
	_, err := New(set)
	assert.Error(t, err)
}
