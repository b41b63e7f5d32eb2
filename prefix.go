package syllabify

import "strings"

// stripPrefix removes the first registered prefix that word properly starts
// with, returning the remainder and the matched prefix. Table order encodes
// priority, not prefix length. A word equal to a prefix is never stripped,
// and at most one prefix is removed.
func stripPrefix(word string, prefixes []string) (remainder, prefix string) {
	for _, p := range prefixes {
		if word != p && strings.HasPrefix(word, p) {
			return word[len(p):], p
		}
	}
	return word, ""
}
