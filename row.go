package ctk

import (
	"strconv"
	"strings"
)

// Row is one line of a violation table.
type Row struct {
	// Input is the underlying form, plain or parsed.
	Input string
	// Output is the surface form, plain or parsed.
	Output string
	// Freq is the candidate's frequency weight.
	Freq float64
	// Violations holds one count per constraint, in registration order.
	Violations []int
}

// Fields renders the row as strings: input, output, frequency, then
// each violation count.
func (r Row) Fields() []string {
	out := make([]string, 0, 3+len(r.Violations))
	out = append(out, r.Input, r.Output, strconv.FormatFloat(r.Freq, 'f', -1, 64))
	for _, v := range r.Violations {
		out = append(out, strconv.Itoa(v))
	}
	return out
}

// Rows returns one row per candidate in insertion order. With parsed
// set, input and outputs use the dotted representation.
func (t *Tableau) Rows(parsed bool) []Row {
	ur := t.input
	if parsed {
		ur = t.parsed
	}
	rows := make([]Row, 0, len(t.candidates))
	for _, c := range t.candidates {
		sr := c.Output
		if parsed {
			sr = c.parsed
		}
		rows = append(rows, Row{
			Input:      ur,
			Output:     sr,
			Freq:       c.freq,
			Violations: c.Violations(),
		})
	}
	return rows
}

// Format renders Rows(parsed) as tab-separated lines, each ending in a
// newline.
func (t *Tableau) Format(parsed bool) string {
	var b strings.Builder
	for _, r := range t.Rows(parsed) {
		b.WriteString(strings.Join(r.Fields(), "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// Profiles returns, per candidate, its frequency followed by its
// violation counts.
func (t *Tableau) Profiles() [][]float64 {
	out := make([][]float64, 0, len(t.candidates))
	for _, c := range t.candidates {
		p := make([]float64, 0, 1+len(c.violations))
		p = append(p, c.freq)
		for _, v := range c.violations {
			p = append(p, float64(v))
		}
		out = append(out, p)
	}
	return out
}
