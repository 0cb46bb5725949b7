package ctk

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConstraintSetYAML is the constraint set used when none is given.
const DefaultConstraintSetYAML = `# ctk constraint set
version: 1

# GEN mode: default inserts C for consonant epenthesis, trigram inserts T, S and R.
mode: default
# 1 for single edits, 2 to add deletion-then-vowel-epenthesis candidates.
depth: 2

constraints:
  - name: Onset
    type: Markedness
    slots: onset
    segments: [""]
    description: Every syllable has an onset.
  - name: NoCoda
    type: Markedness
    slots: coda
    segments: [""]
    require: true
    description: No syllable has a coda.
  - name: "*SyllabicNasal"
    type: Prosodic
    slots: nucleus
    segments: [m, n, ng]
    description: Nasals do not head syllables.
  - name: "*NG#"
    type: Phonotactic
    pattern: "ng$"
    description: No word ends in ng.
  - name: "*ObsObs"
    type: Phonotactic
    pattern: "[bpdtgkfhczs]\\s*[bpdtgkfhczs]"
    description: No two adjacent obstruents.
  - name: Dep-V
    type: Dep
    segment: V
    description: Do not insert vowels.
  - name: Dep-C
    type: Dep
    segment: C
    description: Do not insert consonants.
  - name: Dep-V/C_
    type: Dep
    segment: V
    left: post_consonant
    description: Do not insert vowels after consonants.
  - name: Max-C
    type: Max
    segment: "[bpdtgkmnfsczhljw][wg]?"
    description: Do not delete consonants.
  - name: Max-V
    type: Max
    segment: "[aeiou]"
    description: Do not delete vowels.
`

// ConstraintSpec declares one constraint. The fields used depend on the
// type: Markedness, Prosodic and Faithfulness constraints check slots
// against segments; Phonotactic ones count pattern; Dep ones count
// segment between the left and right environments (named builders such
// as post_consonant); Max ones compare segment counts between input and
// output, with left and right as environment patterns.
type ConstraintSpec struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`

	Slots    string   `yaml:"slots,omitempty"`
	Segments []string `yaml:"segments,omitempty"`
	Require  bool     `yaml:"require,omitempty"`

	Pattern string `yaml:"pattern,omitempty"`

	Segment string `yaml:"segment,omitempty"`
	Left    string `yaml:"left,omitempty"`
	Right   string `yaml:"right,omitempty"`
}

// ConstraintSet is a constraint-set document.
type ConstraintSet struct {
	Version     int              `yaml:"version"`
	Mode        string           `yaml:"mode"`
	Depth       int              `yaml:"depth"`
	Constraints []ConstraintSpec `yaml:"constraints"`
}

// DefaultConstraintSet parses DefaultConstraintSetYAML.
func DefaultConstraintSet() *ConstraintSet {
	set, err := ParseConstraintSet([]byte(DefaultConstraintSetYAML))
	if err != nil {
		panic(fmt.Sprintf("ctk: default constraint set: %v", err))
	}
	return set
}

// LoadConstraintSet reads and validates a constraint-set file.
func LoadConstraintSet(path string) (*ConstraintSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("constraint set: read %s: %w", path, err)
	}
	set, err := ParseConstraintSet(data)
	if err != nil {
		return nil, fmt.Errorf("constraint set %s: %w", path, err)
	}
	return set, nil
}

// ParseConstraintSet decodes and validates a constraint-set document.
func ParseConstraintSet(data []byte) (*ConstraintSet, error) {
	var set ConstraintSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Validate checks the document's structure. Type tags are not checked
// here; Compile reports unrecognized ones.
func (s *ConstraintSet) Validate() error {
	if s.Version < 1 {
		return fmt.Errorf("constraint set version must be >= 1")
	}
	if _, err := ParseMode(s.Mode); err != nil {
		return err
	}
	if s.Depth < 0 || s.Depth > 2 {
		return fmt.Errorf("depth must be 0, 1 or 2 (0 means 1), got %d", s.Depth)
	}
	seen := make(map[string]bool, len(s.Constraints))
	for i, c := range s.Constraints {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("constraints[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("constraints[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// GenMode returns the document's GEN mode.
func (s *ConstraintSet) GenMode() Mode {
	m, _ := ParseMode(s.Mode)
	return m
}

// Compile builds every declared constraint in order. A constraint with an
// unrecognized type is still returned, untyped, and its ErrUnrecognizedType
// is joined into the returned error; any other failure returns no
// constraints.
func (s *ConstraintSet) Compile() ([]*Constraint, error) {
	out := make([]*Constraint, 0, len(s.Constraints))
	var warnings []error
	for i, decl := range s.Constraints {
		c, err := decl.Compile()
		if errors.Is(err, ErrUnrecognizedType) {
			warnings = append(warnings, fmt.Errorf("constraints[%d]: %w", i, err))
		} else if err != nil {
			return nil, fmt.Errorf("constraints[%d] %q: %w", i, decl.Name, err)
		}
		out = append(out, c)
	}
	return out, errors.Join(warnings...)
}

// Compile builds the constraint from its declaration.
func (cs ConstraintSpec) Compile() (*Constraint, error) {
	typ, err := ParseType(cs.Type)
	if err != nil {
		return NewConstraint(cs.Name, TypeNone, nil, cs.Description), err
	}

	switch typ {
	case TypeMax:
		if cs.Segment == "" {
			return nil, fmt.Errorf("max constraint needs a segment")
		}
		fn, err := GenericMax(cs.Segment, cs.Left, cs.Right)
		if err != nil {
			return nil, err
		}
		return NewMaxConstraint(cs.Name, fn, cs.Description), nil

	case TypeDep:
		if cs.Segment == "" {
			return nil, fmt.Errorf("dep constraint needs a segment")
		}
		lenv, err := lookupEnv(cs.Left)
		if err != nil {
			return nil, err
		}
		renv, err := lookupEnv(cs.Right)
		if err != nil {
			return nil, err
		}
		fn, err := GenericDep(lenv, renv, cs.Segment)
		if err != nil {
			return nil, err
		}
		return NewConstraint(cs.Name, typ, fn, cs.Description), nil

	case TypePhonotactic:
		if cs.Pattern == "" {
			return nil, fmt.Errorf("phonotactic constraint needs a pattern")
		}
		fn, err := Phonotactic(cs.Pattern)
		if err != nil {
			return nil, err
		}
		return NewConstraint(cs.Name, typ, fn, cs.Description), nil
	}

	if cs.Slots == "" {
		return nil, fmt.Errorf("%s constraint needs slots", typ)
	}
	slots, err := ParseSlots(cs.Slots)
	if err != nil {
		return nil, err
	}
	return NewConstraint(cs.Name, typ, ComponentCheck(slots, cs.Segments, !cs.Require), cs.Description), nil
}

func lookupEnv(name string) (Env, error) {
	if name == "" {
		return nil, nil
	}
	env, ok := envs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown environment %q (want post_consonant, pre_consonant, post_vowel or pre_vowel)", name)
	}
	return env, nil
}
