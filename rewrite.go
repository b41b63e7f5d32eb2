package syllabify

// rewrite resolves the phonological role of every letter of one letter run.
// The run must already be in precomposed (combined) form.
//
// The three passes run in a fixed order: silent-alef detection feeds the
// consonantal-yud context check, which in turn feeds the vowel-adjacency
// test for syllabic sonorants.
func rewrite(run []rune) []Letter {
	letters := make([]Letter, len(run))
	for i, r := range run {
		letters[i] = Letter{Rune: r}
	}
	markSilentAlef(letters)
	markConsonantYud(letters)
	markSyllabicSonorants(letters)
	return letters
}

// markSilentAlef tags the unpronounced alef of Hassidic orthography: a
// run-initial alef before a vowel letter, or an alef between tsvey vovn
// and a vov-type vowel.
func markSilentAlef(letters []Letter) {
	if len(letters) >= 2 && letters[0].Rune == letterAlef &&
		isOneOf(letters[1].Rune, silentAlefInitialContext) {
		letters[0].Role = RoleSilentAlef
	}
	for i := 1; i < len(letters)-1; i++ {
		if letters[i].Rune == letterAlef && letters[i-1].Rune == letterTsveyVovn &&
			isOneOf(letters[i+1].Rune, silentAlefAfterVovContext) {
			letters[i].Role = RoleSilentAlef
		}
	}
}

// markConsonantYud tags each yud standing before a vowel letter as the
// consonant /j/; all remaining yuds stay vocalic.
func markConsonantYud(letters []Letter) {
	for i := 0; i < len(letters)-1; i++ {
		if letters[i].Rune != letterYud || letters[i].Role != RolePlain {
			continue
		}
		next := letters[i+1]
		if next.Role == RolePlain && isOneOf(next.Rune, consonantYudContext) {
			letters[i].Role = RoleConsonantYud
		}
	}
}

// markSyllabicSonorants tags each nun or lamed with no adjacent vowel
// letter as its own syllable nucleus. Final nun only checks the preceding
// letter. A word cannot open with a syllabic sonorant, so a run-initial
// nun or lamed is reverted to its plain reading.
func markSyllabicSonorants(letters []Letter) {
	for i := range letters {
		l := letters[i]
		if l.Role != RolePlain {
			continue
		}
		prevVowel := i > 0 && isVowelLetter(letters[i-1])
		nextVowel := i+1 < len(letters) && isVowelLetter(letters[i+1])
		switch l.Rune {
		case letterNun, letterLamed:
			if !prevVowel && !nextVowel {
				letters[i].Role = RoleSyllabic
			}
		case letterFinalNun:
			if !prevVowel {
				letters[i].Role = RoleSyllabic
			}
		}
	}
	if len(letters) > 0 && letters[0].Role == RoleSyllabic &&
		(letters[0].Rune == letterNun || letters[0].Rune == letterLamed) {
		letters[0].Role = RolePlain
	}
}

// isVowelLetter reports whether l reads as a vowel letter for the purpose
// of the sonorant adjacency test. Letters already resolved to a consonantal
// or silent role do not count.
func isVowelLetter(l Letter) bool {
	return l.Role == RolePlain && isOneOf(l.Rune, vowelLetterContext)
}

func isOneOf(r rune, set []rune) bool {
	for _, s := range set {
		if r == s {
			return true
		}
	}
	return false
}
