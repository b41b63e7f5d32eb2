package syllabify

import (
	"strings"
	"unicode"

	"github.com/joliciel/syllabify/chars"
)

// Boundary marks syllable boundaries in the output of Syllabify.
const Boundary = '|'

// Syllabifier adds syllable boundaries to Yiddish words.
//
// A Syllabifier is stateless apart from its immutable pattern set and is
// safe for concurrent use.
type Syllabifier struct {
	patterns *PatternSet
}

// New creates a Syllabifier for the given system.
func New(system System) (*Syllabifier, error) {
	patterns, err := NewPatternSet(system)
	if err != nil {
		return nil, err
	}
	return FromPatterns(patterns), nil
}

// FromPatterns wraps an existing pattern set, which may be shared between
// several syllabifiers.
func FromPatterns(patterns *PatternSet) *Syllabifier {
	return &Syllabifier{patterns: patterns}
}

// Patterns returns the pattern set in use.
func (sy *Syllabifier) Patterns() *PatternSet {
	return sy.patterns
}

// Syllabify returns word with the Boundary mark inserted at every syllable
// boundary. Punctuation runs pass through untouched, and the output is in
// separated (multi-codepoint) character form.
//
// A word containing a letter outside the modeled inventories is returned
// unchanged. A letter run that cannot be assigned (no nucleus, or an
// unknown letter) is likewise emitted unmodified.
func (sy *Syllabifier) Syllabify(word string) string {
	combined := chars.Combine(word)
	if strings.ContainsAny(combined, disallowedLetters) {
		return word
	}
	var out strings.Builder
	for _, run := range splitRuns(combined) {
		if run.letters {
			out.WriteString(sy.syllabifyRun(run.text))
		} else {
			out.WriteString(run.text)
		}
	}
	return chars.Separate(out.String())
}

// syllabifyRun boundary-marks one letter run.
func (sy *Syllabifier) syllabifyRun(text string) string {
	remainder, prefix := stripPrefix(text, sy.patterns.prefixes)
	syllables, err := assign(sy.patterns, rewrite([]rune(remainder)))
	if err != nil {
		tracer().Debugf("cannot syllabify %q: %v", text, err)
		return text
	}
	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteRune(Boundary)
	}
	written := 0
	for i, syllable := range syllables {
		for _, l := range syllable.Letters() {
			b.WriteRune(l.Rune)
			written++
		}
		// A single leading letter never stands alone as a syllable.
		if i < len(syllables)-1 && written > 1 {
			b.WriteRune(Boundary)
		}
	}
	return b.String()
}

type textRun struct {
	text    string
	letters bool
}

// splitRuns splits a token into alternating letter and non-letter runs,
// preserving all input characters.
func splitRuns(s string) []textRun {
	var runs []textRun
	var current []rune
	letters := false
	for _, r := range s {
		w := isLetterRune(r)
		if len(current) > 0 && w != letters {
			runs = append(runs, textRun{text: string(current), letters: letters})
			current = current[:0]
		}
		current = append(current, r)
		letters = w
	}
	if len(current) > 0 {
		runs = append(runs, textRun{text: string(current), letters: letters})
	}
	return runs
}

func isLetterRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
