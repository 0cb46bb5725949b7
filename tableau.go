package ctk

import (
	"fmt"
	"strconv"
	"strings"
)

// Tableau holds one input with its constraints and candidates. Both
// registries keep insertion order and ignore duplicate keys.
type Tableau struct {
	input  string
	sylls  []Syllable
	parsed string

	constraints     []*Constraint
	constraintIndex map[string]*Constraint

	candidates     []*Candidate
	candidateIndex map[string]*Candidate

	// incl is nil until set
	incl *bool
}

// NewTableau parses input and returns an empty tableau for it.
func NewTableau(input string) *Tableau {
	sylls := ParseWord(input)
	return &Tableau{
		input:           input,
		sylls:           sylls,
		parsed:          Dotted(sylls),
		constraintIndex: make(map[string]*Constraint),
		candidateIndex:  make(map[string]*Candidate),
	}
}

// Input returns the surface source string.
func (t *Tableau) Input() string { return t.input }

// ParsedInput returns the dotted representation of the input.
func (t *Tableau) ParsedInput() string { return t.parsed }

// Syllables returns the parsed input syllables.
func (t *Tableau) Syllables() []Syllable {
	return append([]Syllable(nil), t.sylls...)
}

// AddConstraint registers c under its name. It reports false, leaving
// the registry unchanged, if the name is already taken.
func (t *Tableau) AddConstraint(c *Constraint) bool {
	if _, ok := t.constraintIndex[c.name]; ok {
		return false
	}
	t.constraintIndex[c.name] = c
	t.constraints = append(t.constraints, c)
	return true
}

// Constraint looks up a constraint by name.
func (t *Tableau) Constraint(name string) (*Constraint, error) {
	c, ok := t.constraintIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: tableau %q has no constraint %q", ErrUnknownConstraint, t.input, name)
	}
	return c, nil
}

// Constraints returns the registered constraints in registration order.
func (t *Tableau) Constraints() []*Constraint {
	return append([]*Constraint(nil), t.constraints...)
}

// ConstraintNames returns constraint names in registration order.
func (t *Tableau) ConstraintNames() []string {
	names := make([]string, len(t.constraints))
	for i, c := range t.constraints {
		names[i] = c.name
	}
	return names
}

// AddCandidate registers a new candidate for output and reports true, or
// returns the existing candidate and false.
func (t *Tableau) AddCandidate(output string) (*Candidate, bool) {
	if c, ok := t.candidateIndex[output]; ok {
		return c, false
	}
	c := NewCandidate(output)
	t.candidateIndex[output] = c
	t.candidates = append(t.candidates, c)
	return c, true
}

// Candidate looks up a candidate by its output string.
func (t *Tableau) Candidate(output string) (*Candidate, error) {
	c, ok := t.candidateIndex[output]
	if !ok {
		return nil, fmt.Errorf("%w: tableau %q has no candidate %q", ErrUnknownCandidate, t.input, output)
	}
	return c, nil
}

// HasCandidate reports whether output is registered.
func (t *Tableau) HasCandidate(output string) bool {
	_, ok := t.candidateIndex[output]
	return ok
}

// Candidates returns the candidates in insertion order.
func (t *Tableau) Candidates() []*Candidate {
	return append([]*Candidate(nil), t.candidates...)
}

// CandidateNames returns candidate outputs in insertion order.
func (t *Tableau) CandidateNames() []string {
	names := make([]string, len(t.candidates))
	for i, c := range t.candidates {
		names[i] = c.Output
	}
	return names
}

// Len returns the number of candidates.
func (t *Tableau) Len() int { return len(t.candidates) }

// Inclusion returns the inclusion flag and whether it has been set.
func (t *Tableau) Inclusion() (included, set bool) {
	if t.incl == nil {
		return false, false
	}
	return *t.incl, true
}

// SetInclusion sets the inclusion flag.
func (t *Tableau) SetInclusion(v bool) {
	t.incl = &v
}

// ParseInclusion sets the inclusion flag from a boolean spelling such as
// "true" or "0". Anything else returns ErrInvalidInclusion and leaves the
// flag unchanged.
func (t *Tableau) ParseInclusion(value string) error {
	v, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidInclusion, value)
	}
	t.SetInclusion(v)
	return nil
}

func (t *Tableau) String() string {
	return fmt.Sprintf("Tableau '%s' with %d candidates", t.input, len(t.candidates))
}
