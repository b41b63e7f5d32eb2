/*
Package syllabify assigns phonologically motivated syllable boundaries to
Yiddish words written in Hebrew script, including Hassidic spelling variants.

Words are normalized to precomposed Unicode letters, ambiguous letters are
resolved to a phonological role (consonantal vs. vocalic yud, syllabic vs.
plain nun and lamed, silent alef), and syllables are then assigned by the
Maximum Onset Principle against a table of admissible onset clusters. Two
onset inventories are supported: the one given by Jacobs (2005:115-7) and the
rule of Yankev Viler as cited by Jacobs (2005:125). A closed class of verbal
prefixes is split off before assignment and reattached with a boundary mark.

Subpackage chars converts between multi-codepoint and precomposed letter
forms, subpackage lines fills fixed-width text lines breaking only at
syllable boundaries, and subpackage wordlist tokenizes running text into the
one-word-per-line lists consumed by the word-list mode.

Further Reading

	Jacobs, Neil G. (2005). Yiddish: A Linguistic Introduction. CUP.
	https://en.wikipedia.org/wiki/Maximal_onset_principle
*/
package syllabify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'syllabify'
func tracer() tracing.Trace {
	return tracing.Select("syllabify")
}
