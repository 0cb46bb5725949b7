// Package ctk builds Optimality-Theory tableaux for Cantonese syllable
// strings in LSHK transcription. It parses syllables, generates
// deletion and epenthesis candidates (GEN) and counts their constraint
// violations (EVAL). Ranking candidates is left to the caller.
package ctk

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pipeline builds evaluated tableaux from a compiled constraint set.
type Pipeline struct {
	constraints []*Constraint
	mode        Mode
	depth       int
}

// New compiles set into a Pipeline. Any compile failure, including an
// unrecognized constraint type, is returned, since such a constraint
// cannot be evaluated.
func New(set *ConstraintSet) (*Pipeline, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	cs, err := set.Compile()
	if err != nil {
		return nil, err
	}
	depth := set.Depth
	if depth == 0 {
		depth = 1
	}
	return &Pipeline{constraints: cs, mode: set.GenMode(), depth: depth}, nil
}

// Mode returns the GEN mode.
func (p *Pipeline) Mode() Mode { return p.mode }

// ConstraintNames returns the constraint names in evaluation order.
func (p *Pipeline) ConstraintNames() []string {
	names := make([]string, len(p.constraints))
	for i, c := range p.constraints {
		names[i] = c.name
	}
	return names
}

// Constraints returns the compiled constraints in evaluation order.
func (p *Pipeline) Constraints() []*Constraint {
	return append([]*Constraint(nil), p.constraints...)
}

// Build returns the evaluated tableau for input.
func (p *Pipeline) Build(input string) (*Tableau, error) {
	return p.build(input, nil)
}

// Entry is one corpus observation: an input, an attested output and how
// often it was attested.
type Entry struct {
	Input  string
	Output string
	Count  float64
}

// build creates the tableau for input, runs GEN, registers the attested
// outputs of entries with their counts, and runs EVAL. The inclusion flag
// records whether GEN produced every attested output.
func (p *Pipeline) build(input string, entries []Entry) (*Tableau, error) {
	t := NewTableau(input)
	for _, c := range p.constraints {
		t.AddConstraint(c.clone())
	}

	if p.depth >= 2 {
		GenTwo(t, p.mode)
	} else {
		GenOne(t, p.mode)
	}

	if len(entries) > 0 {
		generated := true
		for _, e := range entries {
			if e.Output == "" {
				continue
			}
			out := StripTones(e.Output)
			c, added := t.AddCandidate(out)
			if added {
				generated = false
			}
			c.AddFreq(e.Count)
		}
		t.SetInclusion(generated)
	}

	if err := Eval(t); err != nil {
		return nil, err
	}
	return t, nil
}

// BuildCorpus builds one tableau per distinct input, in order of first
// appearance. Entries sharing an input share a tableau. Tableaux are
// built concurrently, at most limit at a time (GOMAXPROCS when limit
// is not positive).
func (p *Pipeline) BuildCorpus(ctx context.Context, entries []Entry, limit int) ([]*Tableau, error) {
	var inputs []string
	groups := make(map[string][]Entry)
	for _, e := range entries {
		if _, ok := groups[e.Input]; !ok {
			inputs = append(inputs, e.Input)
		}
		groups[e.Input] = append(groups[e.Input], e)
	}

	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	out := make([]*Tableau, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := p.build(input, groups[input])
			if err != nil {
				return fmt.Errorf("build %q: %w", input, err)
			}
			out[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
