package ctk

import "strings"

// TokenKind distinguishes real segments from syllable breaks and
// epenthetic placeholders.
type TokenKind uint8

const (
	TokenSegment TokenKind = iota
	TokenBoundary
	TokenEpenthetic
)

// Token is one atomic component of a word. Resyllabification may pad
// Text with spaces or blank it; Kind and Mark are never changed.
type Token struct {
	Text string
	Kind TokenKind
	// Mark is set for epenthetic tokens only.
	Mark Placeholder
}

var boundary = Token{Text: " ", Kind: TokenBoundary}

func segmentToken(s string) Token { return Token{Text: s, Kind: TokenSegment} }

func epentheticToken(p Placeholder) Token {
	return Token{Text: p.String(), Kind: TokenEpenthetic, Mark: p}
}

// blank reports whether t carries no segment: an empty slot or a bare
// syllable break.
func (t Token) blank() bool {
	return t.Text == "" || t.Text == " "
}

// Componify flattens parsed syllables into atomic tokens. Clusters that
// are not a single known consonant or nucleus are split into their
// units. Tones are dropped and a boundary token separates syllables.
// Empty onsets and codas are kept as empty tokens.
func Componify(sylls []Syllable) []Token {
	var tokens []Token
	for i, s := range sylls {
		tokens = append(tokens, splitConsonants(s.Onset)...)
		if len([]rune(s.Nucleus)) > 1 && !wholeNuclei.Has(s.Nucleus) {
			for _, r := range s.Nucleus {
				tokens = append(tokens, segmentToken(string(r)))
			}
		} else {
			tokens = append(tokens, segmentToken(s.Nucleus))
		}
		tokens = append(tokens, splitConsonants(s.Coda)...)
		if i != len(sylls)-1 {
			tokens = append(tokens, boundary)
		}
	}
	return tokens
}

func splitConsonants(cluster string) []Token {
	if len([]rune(cluster)) <= 1 || Consonants.Has(cluster) {
		return []Token{segmentToken(cluster)}
	}
	units := consonantUnit.FindAllString(cluster, -1)
	tokens := make([]Token, len(units))
	for i, u := range units {
		tokens[i] = segmentToken(u)
	}
	return tokens
}

// joinTokens concatenates token texts into a candidate output.
func joinTokens(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Texts returns the token texts in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// insertToken returns a copy of tokens with t inserted at k.
func insertToken(tokens []Token, k int, t Token) []Token {
	out := make([]Token, 0, len(tokens)+1)
	out = append(out, tokens[:k]...)
	out = append(out, t)
	return append(out, tokens[k:]...)
}

// removeToken returns a copy of tokens without the token at k.
func removeToken(tokens []Token, k int) []Token {
	out := make([]Token, 0, len(tokens)-1)
	out = append(out, tokens[:k]...)
	return append(out, tokens[k+1:]...)
}
