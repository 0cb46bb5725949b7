package ctk

import "fmt"

// Eval applies every constraint of t, in registration order, to every
// candidate, in insertion order, appending one violation count per
// constraint to each candidate.
//
// An untyped constraint makes Eval fail with ErrUntypedConstraint before
// any violation is recorded.
func Eval(t *Tableau) error {
	for _, c := range t.constraints {
		if _, ok := typeNames[c.typ]; !ok {
			return fmt.Errorf("eval %q: %w: %q", t.input, ErrUntypedConstraint, c.name)
		}
	}
	for _, c := range t.constraints {
		for _, cand := range t.candidates {
			v, err := c.count(t, cand)
			if err != nil {
				return fmt.Errorf("eval %q: %w", t.input, err)
			}
			cand.AddViolation(v)
		}
	}
	return nil
}
