package ctk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableau(t *testing.T) {
	tab := NewTableau("sam1 kat1")
	assert.Equal(t, "sam1 kat1", tab.Input())
	assert.Equal(t, "s.a.m.1 k.a.t.1", tab.ParsedInput())
	assert.Len(t, tab.Syllables(), 2)
	assert.Equal(t, 0, tab.Len())
	assert.Equal(t, "Tableau 'sam1 kat1' with 0 candidates", tab.String())
}

func TestTableauCandidates(t *testing.T) {
	tab := NewTableau("sam1")
	c, added := tab.AddCandidate("sam")
	require.True(t, added)
	assert.Equal(t, "s.a.m.", c.ParsedOutput())

	again, added := tab.AddCandidate("sam")
	assert.False(t, added)
	assert.Same(t, c, again)

	tab.AddCandidate("sa")
	assert.Equal(t, []string{"sam", "sa"}, tab.CandidateNames())
	assert.True(t, tab.HasCandidate("sa"))

	_, err := tab.Candidate("xyz")
	assert.True(t, errors.Is(err, ErrUnknownCandidate))
}

func TestCandidatesDoNotShareViolations(t *testing.T) {
	tab := NewTableau("sam1")
	a, _ := tab.AddCandidate("sam")
	b, _ := tab.AddCandidate("sa")
	a.AddViolation(3)
	assert.Equal(t, []int{3}, a.Violations())
	assert.Empty(t, b.Violations())

	v := a.Violations()
	v[0] = 99
	assert.Equal(t, []int{3}, a.Violations(), "Violations returns a copy")

	other := NewTableau("sam1")
	assert.Equal(t, 0, other.Len())
}

func TestCandidateFreq(t *testing.T) {
	c := NewCandidate("sam")
	assert.Equal(t, 0.0, c.Freq())
	c.AddFreq(1)
	c.AddFreq(2.5)
	assert.Equal(t, 3.5, c.Freq())
	assert.Equal(t, "Candidate 'sam'", c.String())
}

func TestTableauConstraints(t *testing.T) {
	tab := NewTableau("sam1")
	require.True(t, tab.AddConstraint(NewConstraint("A", TypeMarkedness, nil, "first")))
	require.True(t, tab.AddConstraint(NewConstraint("B", TypeDep, nil, "")))
	assert.False(t, tab.AddConstraint(NewConstraint("A", TypeProsodic, nil, "")))
	assert.Equal(t, []string{"A", "B"}, tab.ConstraintNames())

	a, err := tab.Constraint("A")
	require.NoError(t, err)
	assert.Equal(t, TypeMarkedness, a.Type())
	desc, ok := a.Description()
	assert.True(t, ok)
	assert.Equal(t, "first", desc)

	b, _ := tab.Constraint("B")
	_, ok = b.Description()
	assert.False(t, ok)

	_, err = tab.Constraint("Z")
	assert.True(t, errors.Is(err, ErrUnknownConstraint))
}

func TestTableauInclusion(t *testing.T) {
	tab := NewTableau("sam1")
	_, set := tab.Inclusion()
	assert.False(t, set)

	tab.SetInclusion(false)
	incl, set := tab.Inclusion()
	assert.True(t, set)
	assert.False(t, incl)

	require.NoError(t, tab.ParseInclusion("true"))
	incl, _ = tab.Inclusion()
	assert.True(t, incl)

	err := tab.ParseInclusion("maybe")
	assert.True(t, errors.Is(err, ErrInvalidInclusion))
	incl, set = tab.Inclusion()
	assert.True(t, set)
	assert.True(t, incl, "a rejected value leaves the flag unchanged")
}

func TestTableauRows(t *testing.T) {
	tab := samTableau(t)
	require.NoError(t, Eval(tab))
	c, _ := tab.Candidate("sam")
	c.AddFreq(2)

	rows := tab.Rows(false)
	require.Len(t, rows, tab.Len())
	assert.Equal(t, Row{Input: "sam1", Output: "sam", Freq: 2, Violations: []int{1, 0, 0, 0}}, rows[0])

	parsed := tab.Rows(true)
	assert.Equal(t, "s.a.m.1", parsed[0].Input)
	assert.Equal(t, "s.a.m.", parsed[0].Output)

	lines := tab.Format(false)
	assert.Contains(t, lines, "sam1\tsam\t2\t1\t0\t0\t0\n")
	assert.Contains(t, lines, "sam1\tam\t0\t1\t0\t1\t0\n")

	profiles := tab.Profiles()
	assert.Equal(t, []float64{2, 1, 0, 0, 0}, profiles[0])
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("dep")
	require.NoError(t, err)
	assert.Equal(t, TypeDep, typ)

	typ, err = ParseType("Alignment")
	assert.True(t, errors.Is(err, ErrUnrecognizedType))
	assert.Equal(t, TypeNone, typ)
	assert.Equal(t, "None", typ.String())
	assert.Equal(t, "None Constraint 'X'", NewConstraint("X", typ, nil, "").String())
}
