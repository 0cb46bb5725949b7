package ctk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentCheck(t *testing.T) {
	onset := ComponentCheck([]Slot{SlotOnset}, []string{""}, true)
	assert.Equal(t, 0, onset("s.a.m."))
	assert.Equal(t, 1, onset("s.a.m. .V.."))
	assert.Equal(t, 2, onset(".aa.. .V.."))

	noCoda := ComponentCheck([]Slot{SlotCoda}, []string{""}, false)
	assert.Equal(t, 1, noCoda("s.a.m."))
	assert.Equal(t, 2, noCoda("s.a.m.1 k.a.t.1"))
	assert.Equal(t, 0, noCoda("s.a.. m.V.."))

	nasal := ComponentCheck([]Slot{SlotOnset, SlotCoda}, []string{"m", "n", "ng"}, true)
	assert.Equal(t, 2, nasal("m.a.n."))
	assert.Equal(t, 0, nasal(""))
}

func TestPhonotactic(t *testing.T) {
	fn, err := Phonotactic("ng$")
	require.NoError(t, err)
	assert.Equal(t, 1, fn("hœng"))
	assert.Equal(t, 0, fn("hœn"))

	obs, err := Phonotactic(`[bpdtgkfhczs]\s*[bpdtgkfhczs]`)
	require.NoError(t, err)
	assert.Equal(t, 1, obs("sat kaa"))
	assert.Equal(t, 2, obs("sk tp"))

	_, err = Phonotactic("(")
	assert.Error(t, err)
}

func TestCountingPatternsRejectEmptyMatch(t *testing.T) {
	_, err := Phonotactic("a*")
	assert.ErrorIs(t, err, ErrEmptyMatch)
	_, err = Phonotactic("^")
	assert.ErrorIs(t, err, ErrEmptyMatch)

	_, err = GenericDep(nil, nil, "V?")
	assert.ErrorIs(t, err, ErrEmptyMatch)

	_, err = GenericMax("[ptk]*", "", "")
	assert.ErrorIs(t, err, ErrEmptyMatch)

	aa, err := Phonotactic("a+")
	require.NoError(t, err)
	assert.Equal(t, 1, aa("baaa"))
}

func TestGenericDep(t *testing.T) {
	bare, err := GenericDep(nil, nil, "V")
	require.NoError(t, err)
	assert.Equal(t, 1, bare("V sam"))
	assert.Equal(t, 0, bare("sam"))

	post, err := GenericDep(PostConsonant, nil, "V")
	require.NoError(t, err)
	assert.Equal(t, 1, post("sa mV"))
	assert.Equal(t, 0, post("V sam"))

	pre, err := GenericDep(nil, PreVowel, "V")
	require.NoError(t, err)
	assert.Equal(t, 1, pre("sV am"))
	assert.Equal(t, 0, pre("V sam"), "V before a consonant")
	assert.Equal(t, 0, pre("sa mV"))

	both, err := GenericDep(PostConsonant, PreVowel, "V")
	require.NoError(t, err)
	assert.Equal(t, 1, both("sV am"))
	assert.Equal(t, 0, both("sa mV"))
	assert.Equal(t, 0, both("V sam"))

	preC, err := GenericDep(nil, PreConsonant, "C")
	require.NoError(t, err)
	assert.Equal(t, 1, preC("Csam"))

	postV, err := GenericDep(PostVowel, nil, "C")
	require.NoError(t, err)
	assert.Equal(t, 1, postV("saCm"))
	assert.Equal(t, 0, postV("samC"), "C after a consonant")
}

func TestGenericMax(t *testing.T) {
	cons, err := GenericMax("[bpdtgkmnfsczhljw][wg]?", "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, cons("sam1", "sam"))
	assert.Equal(t, 1, cons("sam1", "am"))
	assert.Equal(t, 2, cons("sam1", "a"))
	assert.Equal(t, 0, cons("sam1", "V sam"))
	assert.Equal(t, 1, cons("sam1", ""))

	postA, err := GenericMax("m", "a", "")
	require.NoError(t, err)
	assert.Equal(t, 1, postA("sam1", "sa"))
	assert.Equal(t, 0, postA("sam1", "saVm"))
	assert.Equal(t, 0, postA("sam1", "sa m"))
	assert.Equal(t, 0, postA("sik1", "si"), "environment absent from input")

	preK, err := GenericMax("m", "", "k")
	require.NoError(t, err)
	assert.Equal(t, 1, preK("sam1 kat1", "sa kat"))
	assert.Equal(t, 0, preK("sam1 kat1", "sam kat"))

	both, err := GenericMax("m", "a", "k")
	require.NoError(t, err)
	assert.Equal(t, 1, both("sam1 kat1", "sa kat"))
	assert.Equal(t, 0, both("sam1 kat1", "samV kat"))

	_, err = GenericMax("[", "", "")
	assert.Error(t, err)
}

func TestGenericMaxIdentity(t *testing.T) {
	patterns := []struct{ seg, l, r string }{
		{"[ptk]", "", ""},
		{"[ptk]", "a", ""},
		{"m", "", "k"},
		{"m", "a", "k"},
		{"[aeiou]", "[Cbpdtgkmnfsczhljw]", ""},
	}
	inputs := []string{"sam1", "sam1 kat1", "sik1 faan6", "kwong2 jyut6", "aa3"}
	for _, p := range patterns {
		fn, err := GenericMax(p.seg, p.l, p.r)
		require.NoError(t, err)
		for _, in := range inputs {
			assert.Equal(t, 0, fn(in, in), "GenericMax(%q, %q, %q) on %q", p.seg, p.l, p.r, in)
		}
	}
}
