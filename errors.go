package ctk

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownConstraint is returned when a tableau has no constraint by that name.
	ErrUnknownConstraint = errors.New("ctk: unknown constraint")
	// ErrUnknownCandidate is returned when a tableau has no candidate with that output.
	ErrUnknownCandidate = errors.New("ctk: unknown candidate")
	// ErrUnrecognizedType is returned for a constraint type tag outside the
	// fixed enumeration. The constraint is still built, untyped.
	ErrUnrecognizedType = errors.New("ctk: unrecognized constraint type")
	// ErrUntypedConstraint is returned by Eval when a registered constraint
	// has no type; nothing is evaluated in that case.
	ErrUntypedConstraint = errors.New("ctk: constraint has no type")
	// ErrInvalidInclusion is returned when an inclusion value is not boolean.
	ErrInvalidInclusion = errors.New("ctk: inclusion value must be a boolean")
	// ErrEmptyMatch is returned for a counting pattern that matches the
	// empty string.
	ErrEmptyMatch = errors.New("ctk: pattern matches the empty string")
)

// Slot identifies one of the four parts of a parsed syllable.
type Slot int

const (
	SlotOnset Slot = iota
	SlotNucleus
	SlotCoda
	SlotTone
)

func (s Slot) String() string {
	switch s {
	case SlotOnset:
		return "onset"
	case SlotNucleus:
		return "nucleus"
	case SlotCoda:
		return "coda"
	case SlotTone:
		return "tone"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// CharacterError reports a syllable part that failed strict validation.
type CharacterError struct {
	Syllable string
	Slot     Slot
	Value    string
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("ctk: [%s] does not conform to standard transcription: %s cannot be %q",
		e.Syllable, e.Slot, e.Value)
}
