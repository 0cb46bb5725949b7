package ctk

import (
	"fmt"
	"regexp"
)

// SegmentSet is an immutable membership set over segment spellings.
type SegmentSet map[string]struct{}

func newSegmentSet(groups ...[]string) SegmentSet {
	s := make(SegmentSet)
	for _, g := range groups {
		for _, seg := range g {
			s[seg] = struct{}{}
		}
	}
	return s
}

// Has reports whether seg is a member of the set.
func (s SegmentSet) Has(seg string) bool {
	_, ok := s[seg]
	return ok
}

// Placeholder is an abstract epenthetic segment produced only by GEN.
// Placeholders never occur in transcribed input.
type Placeholder byte

const (
	EpConsonant Placeholder = 'C'
	EpVowel     Placeholder = 'V'
	EpObstruent Placeholder = 'T'
	EpSibilant  Placeholder = 'S'
	EpSonorant  Placeholder = 'R'
)

// String returns the single-letter spelling used in candidate outputs.
func (p Placeholder) String() string {
	return string(rune(p))
}

// placeholders lists every marker a candidate output may carry.
var placeholders = []Placeholder{EpConsonant, EpVowel, EpObstruent, EpSibilant, EpSonorant}

// Segment inventories of the LSHK transcription.
var (
	obstruentList = []string{"b", "p", "f", "d", "t", "g", "gw", "k", "kw", "h"}
	sibilantList  = []string{"c", "z", "s"}
	sonorantList  = []string{"l", "j", "m", "n", "ng", "w"}
	codaList      = []string{"m", "n", "ng", "p", "t", "k", "j", "w", EpConsonant.String()}
	vowelList     = []string{"aa", "a", "e", "i", "o", "oe", "eo", "u", "yu", EpVowel.String()}
	nasalList     = []string{"m", "n", "ng"}
)

var (
	Obstruents = newSegmentSet(obstruentList)
	Sibilants  = newSegmentSet(sibilantList)
	// GeneralObstruents is Obstruents ∪ Sibilants.
	GeneralObstruents = newSegmentSet(obstruentList, sibilantList)
	Sonorants         = newSegmentSet(sonorantList)
	Consonants        = newSegmentSet(obstruentList, sibilantList, sonorantList, []string{EpConsonant.String()})
	Codas             = newSegmentSet(codaList)
	Vowels            = newSegmentSet(vowelList)
	// SyllabicNasals may stand alone as a nucleus.
	SyllabicNasals = newSegmentSet(nasalList)

	// Nuclei is every legal nucleus: Vowels ∪ SyllabicNasals.
	Nuclei = newSegmentSet(vowelList, nasalList)

	// onsetLeaders may open a two-segment syllable as its onset.
	onsetLeaders = newSegmentSet(obstruentList, sibilantList, []string{"l", "j", "w", EpConsonant.String()})
	// nasalFollowers license a nasal onset in a two-segment syllable.
	nasalFollowers = newSegmentSet(vowelList, []string{"j", "w"})
	// wholeNuclei are multi-letter nuclei that componify keeps intact.
	wholeNuclei = newSegmentSet(vowelList, []string{"ng", "m", "n", "l", "j", "w"})
	// resyllabifyOpeners, after a consonant, make the right context syllabic.
	resyllabifyOpeners = newSegmentSet(vowelList, []string{"j", "w", "l", "m", "n", "ng"})
)

// Class patterns, usable inside larger expressions.
const (
	ObstruentPattern        = `[bpdtgkfh]w?`
	SibilantPattern         = `[czs]`
	GeneralObstruentPattern = `[bpdtgkfhczs]w?`
	SonorantPattern         = `[mnwlj]g?`
	ConsonantPattern        = `[Cbpdtgkmnfsczhljw][wg]?`
	CodaPattern             = `[Cptkmnjw]g?`
	VowelPattern            = `[Vaeo]+|yu|[iu]`
)

var (
	onsetClusterRe = regexp.MustCompile(`^(` + ConsonantPattern + `)*`)
	nucleusRe      = regexp.MustCompile(`([aeo]+|[iumljw]|yu|ng?)|V|$`)
	consonantUnit  = regexp.MustCompile(`ng?|[kg]w?|[Cbpdtmfsczhljw]`)
)

// Env maps a segment pattern to a pattern matching it in some environment.
type Env func(segment string) string

// PostConsonant matches segment after a consonant, across syllable breaks.
func PostConsonant(segment string) string {
	return fmt.Sprintf(`(%s)\s*(%s)`, ConsonantPattern, segment)
}

// PreConsonant matches segment before a consonant.
func PreConsonant(segment string) string {
	return fmt.Sprintf(`(%s)\s*(%s)`, segment, ConsonantPattern)
}

// PostVowel matches segment after a vowel.
func PostVowel(segment string) string {
	return fmt.Sprintf(`(%s)\s*(%s)`, VowelPattern, segment)
}

// PreVowel matches segment before a vowel.
func PreVowel(segment string) string {
	return fmt.Sprintf(`(%s)\s*(%s)`, segment, VowelPattern)
}

// envs names the environment builders for constraint-set documents.
var envs = map[string]Env{
	"post_consonant": PostConsonant,
	"pre_consonant":  PreConsonant,
	"post_vowel":     PostVowel,
	"pre_vowel":      PreVowel,
}
