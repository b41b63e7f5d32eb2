package syllabify

import (
	"fmt"
	"strings"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/sets/hashset"
)

// System selects one of the two published syllabification traditions.
type System int

const (
	// Jacobs uses the full onset inventory of Jacobs (2005:115-7).
	Jacobs System = iota
	// Viler uses the syllabification rule of Yankev Viler, as cited by
	// Jacobs (2005:125), with infrequent onsets removed.
	Viler
)

func (s System) String() string {
	switch s {
	case Jacobs:
		return "jacobs"
	case Viler:
		return "viler"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem maps a system name to its System value.
func ParseSystem(name string) (System, error) {
	switch name {
	case "jacobs":
		return Jacobs, nil
	case "viler":
		return Viler, nil
	}
	return 0, fmt.Errorf("unknown syllabification system %q", name)
}

// PatternSet bundles the letter inventories, the admissible onset clusters
// and the prefix table of one syllabification system.
//
// A PatternSet is immutable after construction and may be shared read-only
// between any number of concurrent syllabifications.
type PatternSet struct {
	system     System
	vowels     *hashset.Set // nucleus phonemes
	consonants *hashset.Set // consonant phonemes
	onsets     *trie.Trie   // concrete onset spellings, keyed by phoneme runes
	onsetCount int
	prefixes   []string
}

// NewPatternSet builds the pattern tables for the given system.
//
// Abstract onset templates ("Sh T R") are expanded into every concrete
// spelling through the transliteration table (Cartesian product over the
// spelling variants of each label). The resulting onset table additionally
// admits the empty onset and every singleton consonant, which guarantees
// that Maximum Onset assignment always has a fallback.
func NewPatternSet(system System) (*PatternSet, error) {
	var templates []string
	switch system {
	case Jacobs:
		templates = jacobsOnsets
	case Viler:
		templates = vilerOnsets
	default:
		return nil, fmt.Errorf("unknown syllabification system %d", int(system))
	}
	ps := &PatternSet{
		system:     system,
		vowels:     hashset.New(),
		consonants: hashset.New(),
		onsets:     trie.New(),
		prefixes:   prefixTable,
	}
	for _, r := range vowelPhonemes {
		ps.vowels.Add(r)
	}
	for _, r := range consonantPhonemes {
		ps.consonants.Add(r)
	}
	for _, template := range templates {
		for _, spelling := range expandOnset(template) {
			ps.addOnset(spelling)
		}
	}
	for _, r := range consonantPhonemes {
		ps.addOnset(string(r))
	}
	tracer().Infof("pattern set %s: %d onsets, %d vowels, %d consonants, %d prefixes",
		system, ps.onsetCount, ps.vowels.Size(), ps.consonants.Size(), len(ps.prefixes))
	return ps, nil
}

// expandOnset enumerates the concrete spellings of one space-separated
// onset template.
func expandOnset(template string) []string {
	spellings := []string{""}
	for _, label := range strings.Fields(template) {
		variants := transliterations[label]
		next := make([]string, 0, len(spellings)*len(variants))
		for _, prefix := range spellings {
			for _, v := range variants {
				next = append(next, prefix+v)
			}
		}
		spellings = next
	}
	return spellings
}

func (ps *PatternSet) addOnset(spelling string) {
	if _, found := ps.onsets.Find(spelling); found {
		return
	}
	ps.onsets.Add(spelling, nil)
	ps.onsetCount++
}

// System returns the system this set was built for.
func (ps *PatternSet) System() System {
	return ps.system
}

// IsVowel reports whether l can fill a syllable nucleus.
func (ps *PatternSet) IsVowel(l Letter) bool {
	return ps.vowels.Contains(l.phoneme())
}

// IsConsonant reports whether l belongs to the consonant inventory.
func (ps *PatternSet) IsConsonant(l Letter) bool {
	return ps.consonants.Contains(l.phoneme())
}

// HasOnset reports whether cluster is an admissible syllable onset.
// The empty cluster is always admissible.
func (ps *PatternSet) HasOnset(cluster []Letter) bool {
	if len(cluster) == 0 {
		return true
	}
	_, found := ps.onsets.Find(phonemeKey(cluster))
	return found
}

// Prefixes returns the registered prefix table in priority order.
// The returned slice is shared and must not be modified.
func (ps *PatternSet) Prefixes() []string {
	return ps.prefixes
}
