package syllabify

// Role is the resolved phonological role of a letter within one word.
//
// Most letters keep RolePlain; the rewriting pass promotes the polyvalent
// letters (yud, nun, lamed, alef) to a disambiguated role so that the
// pattern tables can treat them as the phoneme they stand for.
type Role uint8

const (
	// RolePlain marks a letter read off the standard inventory.
	RolePlain Role = iota
	// RoleConsonantYud marks a yud acting as the consonant /j/.
	RoleConsonantYud
	// RoleSyllabic marks a nun or lamed serving as its own nucleus.
	RoleSyllabic
	// RoleSilentAlef marks an unpronounced alef (Hassidic orthography).
	RoleSilentAlef
)

// Letter is one atomic Yiddish grapheme in precomposed form, tagged with
// its resolved phonological role.
type Letter struct {
	Rune rune
	Role Role
}

// phoneme returns the rune keying this letter in the pattern tables.
// Disambiguated roles map to reserved marker runes outside the Hebrew
// block, so they can never collide with a real letter.
func (l Letter) phoneme() rune {
	switch l.Role {
	case RoleConsonantYud:
		return markerConsonantYud
	case RoleSilentAlef:
		return markerSilentAlef
	case RoleSyllabic:
		switch l.Rune {
		case letterNun:
			return markerSyllabicNun
		case letterFinalNun:
			return markerSyllabicFinalNun
		case letterLamed:
			return markerSyllabicLamed
		}
	}
	return l.Rune
}

// phonemeKey builds the pattern-table key for a consonant cluster.
func phonemeKey(cluster []Letter) string {
	key := make([]rune, len(cluster))
	for i, l := range cluster {
		key[i] = l.phoneme()
	}
	return string(key)
}
