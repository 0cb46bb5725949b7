package ctk

import (
	"strings"
	"unicode/utf8"
)

// Syllable is one parsed syllable: onset, nucleus, coda and tone.
// Any part may be empty.
type Syllable struct {
	Onset   string
	Nucleus string
	Coda    string
	Tone    string
}

// partSep joins the four parts in the dotted (parsed) representation.
const partSep = "."

// String returns the dotted form "onset.nucleus.coda.tone".
func (s Syllable) String() string {
	return s.Onset + partSep + s.Nucleus + partSep + s.Coda + partSep + s.Tone
}

// Text reassembles the orthographic syllable.
func (s Syllable) Text() string {
	return s.Onset + s.Nucleus + s.Coda + s.Tone
}

// part returns the slot's value, "" for an out-of-range slot.
func (s Syllable) part(slot Slot) string {
	switch slot {
	case SlotOnset:
		return s.Onset
	case SlotNucleus:
		return s.Nucleus
	case SlotCoda:
		return s.Coda
	case SlotTone:
		return s.Tone
	}
	return ""
}

// pairRule splits a two-segment syllable when match holds.
// Rules are tried in order; the last one always matches.
type pairRule struct {
	name  string
	match func(a, b string) bool
	split func(a, b string) Syllable
}

var pairRules = []pairRule{
	{
		name:  "onset-coda",
		match: func(a, b string) bool { return onsetLeaders.Has(a) && GeneralObstruents.Has(b) },
		split: func(a, b string) Syllable { return Syllable{Onset: a, Coda: b} },
	},
	{
		name:  "onset-nucleus",
		match: func(a, b string) bool { return onsetLeaders.Has(a) },
		split: func(a, b string) Syllable { return Syllable{Onset: a, Nucleus: b} },
	},
	{
		name:  "nasal-onset",
		match: func(a, b string) bool { return SyllabicNasals.Has(a) && nasalFollowers.Has(b) },
		split: func(a, b string) Syllable { return Syllable{Onset: a, Nucleus: b} },
	},
	{
		name:  "nucleus-coda",
		match: func(a, b string) bool { return true },
		split: func(a, b string) Syllable { return Syllable{Nucleus: a, Coda: b} },
	},
}

// fixRule repairs a longer syllable whose onset swallowed its nucleus.
type fixRule struct {
	name  string
	match func(s Syllable) bool
	apply func(s *Syllable)
}

func onsetOnly(s Syllable) bool { return s.Nucleus == "" && s.Coda == "" }

// clusterFixes are tried in order and at most one applies.
var clusterFixes = []fixRule{
	{
		name:  "ng-led onset",
		match: func(s Syllable) bool { return onsetOnly(s) && strings.HasPrefix(s.Onset, "ng") },
		apply: func(s *Syllable) { s.Nucleus, s.Onset = s.Onset[2:], "ng" },
	},
	{
		name:  "ng-final onset",
		match: func(s Syllable) bool { return onsetOnly(s) && strings.HasSuffix(s.Onset, "ng") },
		apply: func(s *Syllable) { s.Nucleus, s.Onset = "ng", s.Onset[:len(s.Onset)-2] },
	},
	{
		name:  "bare onset",
		match: onsetOnly,
		apply: func(s *Syllable) { s.Nucleus, s.Onset = s.Onset, "" },
	},
}

// nasalFix turns a lone nasal onset into a syllabic nucleus. It runs
// after clusterFixes.
var nasalFix = fixRule{
	name:  "syllabic nasal",
	match: func(s Syllable) bool { return SyllabicNasals.Has(s.Onset) && s.Nucleus == "" },
	apply: func(s *Syllable) { s.Nucleus, s.Onset = s.Onset, "" },
}

// Parse splits one orthographic syllable into its parts without
// validating them. A trailing digit is taken as the tone.
func Parse(sigma string) Syllable {
	if sigma == "" || sigma == " " {
		return Syllable{}
	}

	var tone string
	segments := sigma
	if last := sigma[len(sigma)-1]; last >= '0' && last <= '9' {
		tone = sigma[len(sigma)-1:]
		segments = sigma[:len(sigma)-1]
	}

	s := parseSegments(segments)
	s.Tone = tone
	return s
}

func parseSegments(segments string) Syllable {
	runes := []rune(segments)

	switch {
	case Consonants.Has(segments) || Vowels.Has(segments):
		return Syllable{Nucleus: segments}
	case len(runes) == 1:
		return Syllable{Nucleus: segments}
	case len(runes) == 2:
		a, b := string(runes[0]), string(runes[1])
		for _, r := range pairRules {
			if r.match(a, b) {
				return r.split(a, b)
			}
		}
	case len(runes) > 2:
		return parseCluster(runes)
	}
	return Syllable{}
}

// parseCluster handles syllables of three or more segments: the longest
// consonant run is the onset, the first licit nucleus after it is the
// nucleus, and whatever follows is the coda.
func parseCluster(runes []rune) Syllable {
	var s Syllable
	segments := string(runes)

	s.Onset = onsetClusterRe.FindString(segments)
	x := utf8.RuneCountInString(s.Onset)

	s.Nucleus = nucleusRe.FindString(string(runes[x:]))
	// Positions count from the end of the onset even when the nucleus
	// was found further along.
	y := x + utf8.RuneCountInString(s.Nucleus)
	if y < len(runes) {
		s.Coda = string(runes[y:])
	}

	for _, f := range clusterFixes {
		if f.match(s) {
			f.apply(&s)
			break
		}
	}
	if nasalFix.match(s) {
		nasalFix.apply(&s)
	}
	return s
}

// ParseStrict parses sigma and then validates every part, returning a
// *CharacterError for the first part outside its legal set.
func ParseStrict(sigma string) (Syllable, error) {
	s := Parse(sigma)
	if sigma == "" || sigma == " " {
		return s, nil
	}
	checks := []func(string) bool{CheckOnset, CheckNucleus, CheckCoda, CheckTone}
	for i, ok := range checks {
		slot := Slot(i)
		if v := s.part(slot); !ok(v) {
			return Syllable{}, &CharacterError{Syllable: sigma, Slot: slot, Value: v}
		}
	}
	return s, nil
}

// CheckOnset reports whether onset is a consonant or empty.
func CheckOnset(onset string) bool {
	return onset == "" || Consonants.Has(onset)
}

// CheckNucleus reports whether nucleus is a vowel or syllabic nasal.
func CheckNucleus(nucleus string) bool {
	return Nuclei.Has(nucleus)
}

// CheckCoda reports whether coda is a licit coda or empty.
func CheckCoda(coda string) bool {
	return coda == "" || Codas.Has(coda)
}

// CheckTone reports whether tone is a non-empty run of digits.
func CheckTone(tone string) bool {
	if tone == "" {
		return false
	}
	for i := 0; i < len(tone); i++ {
		if tone[i] < '0' || tone[i] > '9' {
			return false
		}
	}
	return true
}

// ParseWord parses every whitespace-separated syllable of word.
func ParseWord(word string) []Syllable {
	fields := strings.Fields(word)
	out := make([]Syllable, 0, len(fields))
	for _, f := range fields {
		out = append(out, Parse(f))
	}
	return out
}

// ParseWordStrict is ParseWord with strict validation. The first failing
// syllable aborts the parse.
func ParseWordStrict(word string) ([]Syllable, error) {
	fields := strings.Fields(word)
	out := make([]Syllable, 0, len(fields))
	for _, f := range fields {
		s, err := ParseStrict(f)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Dotted returns the parsed representation of sylls: dotted syllables
// separated by single spaces.
func Dotted(sylls []Syllable) string {
	parts := make([]string, len(sylls))
	for i, s := range sylls {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// ParseDotted reads back one dotted syllable. Missing parts are empty.
func ParseDotted(dotted string) Syllable {
	parts := strings.SplitN(dotted, partSep, 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	return Syllable{Onset: parts[0], Nucleus: parts[1], Coda: parts[2], Tone: parts[3]}
}
