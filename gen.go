package ctk

import (
	"fmt"
	"strings"
)

// Mode selects how GEN epenthesizes consonants.
type Mode int

const (
	// ModeDefault inserts the generic consonant C.
	ModeDefault Mode = iota
	// ModeTrigram inserts obstruent T, sibilant S and sonorant R as three
	// separate candidates.
	ModeTrigram
)

func (m Mode) String() string {
	if m == ModeTrigram {
		return "trigram"
	}
	return "default"
}

// ParseMode maps "trigram" to ModeTrigram and "" or "default" to
// ModeDefault.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return ModeDefault, nil
	case "trigram":
		return ModeTrigram, nil
	}
	return ModeDefault, fmt.Errorf("unknown GEN mode %q", s)
}

// consonantMarks returns the placeholders inserted for consonant epenthesis.
func (m Mode) consonantMarks() []Placeholder {
	if m == ModeTrigram {
		return []Placeholder{EpObstruent, EpSibilant, EpSonorant}
	}
	return []Placeholder{EpConsonant}
}

// GenOne registers every candidate one edit away from the tableau's
// input: the faithful form, each single deletion, vowel and consonant
// epenthesis before each segment, and word-final epenthesis. Outputs
// already registered are skipped.
func GenOne(t *Tableau, mode Mode) {
	tokens := Componify(t.sylls)

	t.AddCandidate(strings.TrimSpace(joinTokens(tokens)))
	if len(tokens) == 0 {
		return
	}

	for j, tok := range tokens {
		if tok.blank() {
			continue
		}
		t.AddCandidate(joinTokens(removeToken(tokens, j)))
	}

	for k, tok := range tokens {
		if tok.blank() {
			continue
		}
		t.AddCandidate(vowelEpenthesis(tokens, k))
		for _, p := range mode.consonantMarks() {
			t.AddCandidate(joinTokens(insertToken(tokens, k, epentheticToken(p))))
		}
	}

	for _, p := range mode.consonantMarks() {
		t.AddCandidate(joinTokens(tokens) + p.String())
	}

	final := append([]Token(nil), tokens...)
	if n := len(final) - 1; Consonants.Has(final[n].Text) {
		// the final consonant becomes the onset of the new syllable
		final[n].Text = " " + final[n].Text
		t.AddCandidate(joinTokens(final) + EpVowel.String())
	} else {
		t.AddCandidate(joinTokens(final) + " " + EpVowel.String())
	}
}

// GenTwo runs GenOne and then, for every pure deletion candidate, adds
// vowel epenthesis before each remaining segment and word-finally. It
// does not produce two deletions, two epentheses, or epenthesis followed
// by deletion.
func GenTwo(t *Tableau, mode Mode) {
	GenOne(t, mode)

	// the first candidate is the faithful form
	names := t.CandidateNames()
	if len(names) < 2 {
		return
	}
	for _, d := range names[1:] {
		if d == "" || hasPlaceholder(d) {
			continue
		}
		tokens := Componify(ParseWord(d))
		if len(tokens) == 0 {
			continue
		}

		for k, tok := range tokens {
			if tok.blank() {
				continue
			}
			t.AddCandidate(vowelEpenthesis(tokens, k))
		}

		n := len(tokens) - 1
		switch {
		case Consonants.Has(tokens[n].Text):
			tokens[n].Text = " " + tokens[n].Text
			t.AddCandidate(joinTokens(tokens) + EpVowel.String())
		case tokens[n].blank() && n > 0 && Consonants.Has(tokens[n-1].Text):
			// A consonant before an empty coda would become the onset of
			// the final V, but no candidate is registered for it.
		default:
			t.AddCandidate(joinTokens(tokens) + " " + EpVowel.String())
		}
	}
}

// vowelEpenthesis inserts V before tokens[k], resyllabifies, and returns
// the resulting output.
func vowelEpenthesis(tokens []Token, k int) string {
	withV := insertToken(tokens, k, epentheticToken(EpVowel))
	Resyllabify(withV, k)
	return joinTokens(withV)
}

// hasPlaceholder reports whether output contains an epenthetic marker.
func hasPlaceholder(output string) bool {
	for _, p := range placeholders {
		if strings.IndexByte(output, byte(p)) >= 0 {
			return true
		}
	}
	return false
}
