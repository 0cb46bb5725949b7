package ctk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResyllabify(t *testing.T) {
	tests := []struct {
		name string
		word string
		k    int
		want string
	}{
		{"word-initial before onset", "sam1", 0, "V sam"},
		{"after onset before vowel", "sam1", 1, "sV am"},
		{"after vowel", "sam1", 2, "sa Vm"},
		{"after onset before nasal", "sm", 0, "V sm"},
		{"consonant cluster follows", "sm", 1, "sVm"},
		{"vowel before consonant", "samp1", 3, "sa mVp"},
		{"break before consonant", "sam1 kat1", 4, "sa mV kat"},
		{"after onset across break", "sam1 kat1", 5, "sam kV at"},
		{"vowel-initial syllable", "sam1 aa1", 5, "sam V aa"},
		{"obstruent coda merged", "sat1 aa1", 5, "satV aa"},
		{"empty onset", "am", 1, "V am"},
	}
	for _, tt := range tests {
		got := vowelEpenthesis(Componify(ParseWord(tt.word)), tt.k)
		assert.Equal(t, tt.want, got, "%s: %q at %d", tt.name, tt.word, tt.k)
	}
}

func TestResyllabifyShortRightContext(t *testing.T) {
	// a lone coda with no segment to its left
	tokens := []Token{segmentToken(""), epentheticToken(EpVowel), segmentToken("m")}
	Resyllabify(tokens, 1)
	assert.Equal(t, "Vm ", joinTokens(tokens))
}
