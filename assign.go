package syllabify

import (
	"errors"
	"fmt"
)

// Syllable is one assigned syllable: an optional consonant onset, exactly
// one nucleus, and an optional consonant coda.
type Syllable struct {
	Onset   []Letter
	Nucleus Letter
	Coda    []Letter
}

// Letters returns the letters of the syllable in word order.
func (s Syllable) Letters() []Letter {
	letters := make([]Letter, 0, len(s.Onset)+1+len(s.Coda))
	letters = append(letters, s.Onset...)
	letters = append(letters, s.Nucleus)
	letters = append(letters, s.Coda...)
	return letters
}

// ErrNoNucleus reports a letter run without any vocalic nucleus.
var ErrNoNucleus = errors.New("no vocalic nucleus in letter run")

// NonPhonemeError reports a letter outside both the vowel and the
// consonant inventory of the active pattern set.
type NonPhonemeError struct {
	Rune rune
}

func (e *NonPhonemeError) Error() string {
	return fmt.Sprintf("letter %q is outside the phoneme inventory", e.Rune)
}

// assign splits word into syllables by the Maximum Onset Principle.
//
// Each vowel letter opens a new syllable. The consonant run accumulated
// since the previous nucleus is split so that the longest admissible
// suffix becomes the new syllable's onset; leftover leading consonants
// extend the previous syllable's coda. The consonants before the first
// nucleus always go to the first onset, admissible or not.
func assign(patterns *PatternSet, word []Letter) ([]Syllable, error) {
	var syllables []Syllable
	var internuclei []Letter
	for _, l := range word {
		switch {
		case patterns.IsVowel(l):
			split := 0
			for ; split < len(internuclei); split++ {
				if len(syllables) == 0 || patterns.HasOnset(internuclei[split:]) {
					break
				}
			}
			if len(syllables) > 0 && split > 0 {
				last := &syllables[len(syllables)-1]
				last.Coda = append(last.Coda, internuclei[:split]...)
			}
			onset := append([]Letter(nil), internuclei[split:]...)
			syllables = append(syllables, Syllable{Onset: onset, Nucleus: l})
			internuclei = internuclei[:0]
		case patterns.IsConsonant(l):
			internuclei = append(internuclei, l)
		default:
			return nil, &NonPhonemeError{Rune: l.Rune}
		}
	}
	if len(syllables) == 0 {
		return nil, ErrNoNucleus
	}
	last := &syllables[len(syllables)-1]
	last.Coda = append(last.Coda, internuclei...)
	return syllables, nil
}
