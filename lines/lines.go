// Package lines fills fixed-width text lines, breaking words only at
// phonologically valid syllable boundaries.
package lines

import (
	"strings"
	"unicode/utf8"

	"github.com/joliciel/syllabify"
)

// HyphenMark is appended where a word is broken across lines.
const HyphenMark = '־' // U+05BE hebrew punctuation maqaf

// DefaultWidth is the maximum line width used when none is configured.
const DefaultWidth = 66

// Hyphenator fills lines up to a fixed width, consulting a Syllabifier
// for the legal break points inside words.
type Hyphenator struct {
	syl   *syllabify.Syllabifier
	width int
}

// NewHyphenator wraps syl with a maximum line width of width code points.
// A non-positive width selects DefaultWidth.
func NewHyphenator(syl *syllabify.Syllabifier, width int) *Hyphenator {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Hyphenator{syl: syl, width: width}
}

// BreakLines greedily fills the words of text into lines of at most the
// configured width. Input lines are processed independently, with no
// reflow across them. A word that does not fit is broken after its
// longest fitting syllable prefix and continued on the next line with a
// HyphenMark at the break; a word with no fitting syllable prefix starts
// a line of its own, exceeding the width if it is unbreakable.
func (h *Hyphenator) BreakLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = h.fillLine(out, line)
	}
	return out
}

// fillLine distributes the words of one input line.
func (h *Hyphenator) fillLine(out []string, line string) []string {
	chunk := ""
	for _, word := range strings.Fields(line) {
		clen := utf8.RuneCountInString(chunk)
		sep := 0
		if chunk != "" {
			sep = 1
		}
		if clen+sep+utf8.RuneCountInString(word) <= h.width {
			if sep == 1 {
				chunk += " "
			}
			chunk += word
			continue
		}
		syllables := strings.Split(h.syl.Syllabify(word), string(syllabify.Boundary))
		cumulative := make([]int, len(syllables))
		total := 0
		for i, s := range syllables {
			total += utf8.RuneCountInString(s)
			cumulative[i] = total
		}
		// longest syllable prefix that still fits, hyphen mark included
		best := -1
		for i := len(syllables) - 1; i >= 0; i-- {
			if clen+sep+cumulative[i]+1 <= h.width {
				best = i
				break
			}
		}
		if best >= 0 {
			if sep == 1 {
				chunk += " "
			}
			chunk += strings.Join(syllables[:best+1], "") + string(HyphenMark)
			out = append(out, chunk)
			chunk = strings.Join(syllables[best+1:], "")
		} else {
			if chunk != "" {
				out = append(out, chunk)
			}
			chunk = word
		}
	}
	if chunk != "" {
		out = append(out, chunk)
	}
	return out
}
