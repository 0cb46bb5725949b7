package ctk

import "fmt"

// Candidate is one output form of a tableau with its frequency weight
// and violation profile.
type Candidate struct {
	// Output is the surface string the candidate is keyed by.
	Output string

	parsed     string
	freq       float64
	violations []int
}

// NewCandidate parses output into a fresh candidate with zero frequency
// and no violations.
func NewCandidate(output string) *Candidate {
	return &Candidate{
		Output:     output,
		parsed:     Dotted(ParseWord(output)),
		violations: make([]int, 0, 8),
	}
}

// ParsedOutput returns the dotted representation of Output.
func (c *Candidate) ParsedOutput() string { return c.parsed }

// Freq returns the frequency weight.
func (c *Candidate) Freq() float64 { return c.freq }

// AddFreq adds n to the frequency weight.
func (c *Candidate) AddFreq(n float64) { c.freq += n }

// Violations returns a copy of the violation counts, one per evaluated
// constraint in evaluation order.
func (c *Candidate) Violations() []int {
	return append([]int(nil), c.violations...)
}

// AddViolation appends one constraint's violation count.
func (c *Candidate) AddViolation(v int) {
	c.violations = append(c.violations, v)
}

func (c *Candidate) String() string {
	return fmt.Sprintf("Candidate '%s'", c.Output)
}
