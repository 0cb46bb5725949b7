package ctk

import (
	"regexp"
	"strings"
)

// lshkReplacer maps common IPA and Yale spellings onto the LSHK letters
// the parser knows.
var lshkReplacer = strings.NewReplacer(
	"a\u02d0", "aa", // aː → aa
	"\u02d0", "", // length mark ː
	"\u0153", "oe", // œ → oe
	"\u00f8", "oe", // ø → oe
	"\u0275", "eo", // ɵ → eo
	"\u014b", "ng", // ŋ → ng
	"\u025b", "e", // ɛ → e
	"\u0254", "o", // ɔ → o
	"\u02b0", "", // aspiration ʰ
	"\u02b7", "w", // labialization ʷ → w
)

// punctRe matches separators that stand for a syllable break in loose
// transcriptions.
var punctRe = regexp.MustCompile(`[-_.,;:!?'"]+`)

// Normalize lower-cases word, maps IPA and Yale letters to LSHK,
// turns punctuation into syllable breaks and collapses whitespace.
func Normalize(word string) string {
	word = strings.ToLower(word)
	word = lshkReplacer.Replace(word)
	word = punctRe.ReplaceAllString(word, " ")
	return strings.Join(strings.Fields(word), " ")
}

// toneRe matches a tone digit closing a syllable.
var toneRe = regexp.MustCompile(`[0-9]+(\s|$)`)

// StripTones removes syllable-final tone digits, giving the toneless
// shape of GEN's candidate outputs.
func StripTones(word string) string {
	return strings.TrimSpace(toneRe.ReplaceAllString(word, "$1"))
}
