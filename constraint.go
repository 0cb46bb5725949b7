package ctk

import (
	"fmt"
	"strings"
)

// ConstraintType governs which representation a constraint reads during
// Eval. TypeNone marks an unrecognized type; such constraints can be
// registered but not evaluated.
type ConstraintType int

const (
	TypeNone ConstraintType = iota
	TypeMarkedness
	TypeProsodic
	TypePhonotactic
	TypeFaithfulness
	TypeMax
	TypeDep
)

var typeNames = map[ConstraintType]string{
	TypeMarkedness:   "Markedness",
	TypeProsodic:     "Prosodic",
	TypePhonotactic:  "Phonotactic",
	TypeFaithfulness: "Faithfulness",
	TypeMax:          "Max",
	TypeDep:          "Dep",
}

func (t ConstraintType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "None"
}

// ParseType maps a type tag such as "Max" to its ConstraintType. Tags
// match case-insensitively. An unknown tag yields TypeNone and an error
// wrapping ErrUnrecognizedType.
func ParseType(tag string) (ConstraintType, error) {
	for t, n := range typeNames {
		if strings.EqualFold(n, tag) {
			return t, nil
		}
	}
	return TypeNone, fmt.Errorf("%w: %q (must be Markedness, Prosodic, Phonotactic, Faithfulness, Max or Dep)",
		ErrUnrecognizedType, tag)
}

// Func counts violations in one form of a candidate: the surface string
// for Dep and Phonotactic constraints, the parsed output otherwise.
type Func func(form string) int

// MaxFunc counts violations by comparing the tableau input with a
// candidate's surface string.
type MaxFunc func(input, output string) int

// Constraint is a named, typed violation counter. It is not modified
// after construction.
type Constraint struct {
	name        string
	typ         ConstraintType
	description string
	fn          Func
	maxFn       MaxFunc
}

// NewConstraint builds a constraint of any type other than Max. A nil fn
// counts no violations.
func NewConstraint(name string, typ ConstraintType, fn Func, desc string) *Constraint {
	return &Constraint{name: name, typ: typ, fn: fn, description: desc}
}

// NewMaxConstraint builds a Max constraint. A nil fn counts no violations.
func NewMaxConstraint(name string, fn MaxFunc, desc string) *Constraint {
	return &Constraint{name: name, typ: TypeMax, maxFn: fn, description: desc}
}

// Name returns the constraint's unique key.
func (c *Constraint) Name() string { return c.name }

// Type returns the constraint type.
func (c *Constraint) Type() ConstraintType { return c.typ }

// Description returns the descriptive text, and false if there is none.
func (c *Constraint) Description() (string, bool) {
	return c.description, c.description != ""
}

func (c *Constraint) String() string {
	return fmt.Sprintf("%s Constraint '%s'", c.typ, c.name)
}

// clone returns a copy for registration in another tableau.
func (c *Constraint) clone() *Constraint {
	cp := *c
	return &cp
}

// count applies the constraint to cand, reading whichever representation
// its type calls for.
func (c *Constraint) count(t *Tableau, cand *Candidate) (int, error) {
	switch c.typ {
	case TypeDep, TypePhonotactic:
		if c.fn == nil {
			return 0, nil
		}
		return c.fn(cand.Output), nil
	case TypeMax:
		if c.maxFn == nil {
			return 0, nil
		}
		return c.maxFn(t.input, cand.Output), nil
	case TypeMarkedness, TypeProsodic, TypeFaithfulness:
		if c.fn == nil {
			return 0, nil
		}
		return c.fn(cand.ParsedOutput()), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUntypedConstraint, c.name)
}
