package ctk

// Resyllabify places syllable breaks around an epenthetic vowel freshly
// inserted at tokens[k]. It looks at up to three tokens of left context
// and two of right context and pads or blanks neighbouring token texts
// in place. The cases are tried in order:
//
//  1. no segment to the left: break after the vowel, or after the
//     following consonant when a cluster follows; an obstruent three
//     tokens back was a misread coda, so the two tokens between are blanked
//  2. consonant to the left: break after the vowel before it, no break
//     before a consonant cluster, otherwise break after the new vowel
//  3. break then consonant to the left: move the break before that
//     consonant and break after the new vowel
//  4. vowel to the left: break before the new vowel
func Resyllabify(tokens []Token, k int) {
	var before []Token
	switch {
	case k >= 3:
		before = tokens[k-3 : k]
	case k >= 2:
		before = tokens[k-2 : k]
	default:
		before = tokens[:k]
	}
	// snapshot, since the cases below write into tokens
	before = append([]Token(nil), before...)

	end := k + 3
	if end > len(tokens) {
		end = len(tokens)
	}
	after := append([]Token(nil), tokens[k+1:end]...)

	last := func(i int) string { return textAt(before, len(before)-i) }

	switch {
	case allBlank(before):
		if Vowels.Has(textAt(after, 0)) || resyllabifyOpeners.Has(textAt(after, 1)) {
			tokens[k].Text += " "
		} else {
			tokens[k+1].Text += " "
		}
		if len(before) == 3 && Obstruents.Has(before[0].Text) {
			tokens[k-1].Text = ""
			tokens[k-2].Text = ""
		}

	case Consonants.Has(last(1)):
		switch {
		case len(before) > 1 && Vowels.Has(last(2)):
			tokens[k-2].Text += " "
		case len(after) > 1 && Consonants.Has(after[0].Text) && !Vowels.Has(after[1].Text):
		default:
			tokens[k].Text += " "
		}

	case last(1) == " " && Consonants.Has(last(2)):
		tokens[k-1].Text = ""
		tokens[k-2].Text = " " + tokens[k-2].Text
		tokens[k].Text += " "

	case Vowels.Has(last(1)):
		tokens[k].Text = " " + tokens[k].Text
	}
}

// allBlank reports whether the last two tokens of ctx, if any, carry no
// segment.
func allBlank(ctx []Token) bool {
	if len(ctx) > 2 {
		ctx = ctx[len(ctx)-2:]
	}
	for _, t := range ctx {
		if !t.blank() {
			return false
		}
	}
	return true
}

// textAt returns the text of tokens[i], or "" when i is out of range.
func textAt(tokens []Token, i int) string {
	if i < 0 || i >= len(tokens) {
		return ""
	}
	return tokens[i].Text
}
