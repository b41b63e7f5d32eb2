package syllabify

// Letter runes referenced by the rewriting rules.
const (
	letterAlef      = 'א'
	letterYud       = 'י'
	letterNun       = 'נ'
	letterFinalNun  = 'ן'
	letterLamed     = 'ל'
	letterTsveyVovn = 'װ'
)

// Marker runes reserved for disambiguated roles. They sit outside the
// Hebrew block and can never collide with a real letter.
const (
	markerConsonantYud     = 'j'
	markerSilentAlef       = 'ạ'
	markerSyllabicNun      = 'ņ'
	markerSyllabicFinalNun = 'Ņ'
	markerSyllabicLamed    = 'ļ'
)

// disallowedLetters gate words of the Hebrew-Aramaic component with
// unpredictable vowel readings; such words pass through unchanged. The
// check runs on combined text, where only khes and sof occur as bare
// codepoints. Pointed letters (veys, kof, sin, tof) combine into
// presentation forms that belong to the phoneme inventory and
// syllabify normally.
const disallowedLetters = "חת"

// vowelPhonemes lists every nucleus phoneme, syllabic sonorant markers
// included.
var vowelPhonemes = []rune("אאַעיאָוײײַױיִוּņŅļ")

// consonantPhonemes lists every consonant phoneme, the consonantal-yud
// and silent-alef markers included.
var consonantPhonemes = []rune("ạבבֿגדהװזחטjכּכךלמםנןסעפּפֿפףצץקרששׂתּת")

// Context sets for the rewriting rules, in precomposed form.
var (
	// vowelLetterContext are the plain vowel letters checked by the
	// sonorant adjacency test.
	vowelLetterContext = []rune("אאַעיאָוײײַױיִוּ")

	// consonantYudContext: a yud before one of these reads as /j/.
	consonantYudContext = []rune("אַאָאועיִײַײױ")

	// silentAlefInitialContext: a word-initial alef before one of these
	// is unpronounced in Hassidic orthography.
	silentAlefInitialContext = []rune("יוײױײַוּ")

	// silentAlefAfterVovContext: likewise for an alef between tsvey
	// vovn and a vov-type vowel.
	silentAlefAfterVovContext = []rune("וױוּ")
)

// transliterations maps the abstract phoneme labels of the onset
// templates to their concrete spellings (historical and Hassidic
// variants included). Non-final letter forms only.
var transliterations = map[string][]string{
	"A":  {"אַ"},
	"Ay": {"ײַ"},
	"B":  {"ב"},
	"D":  {"ד"},
	"E":  {"ע"},
	"Ey": {"ײ"},
	"F":  {"פֿ", "פ"},
	"G":  {"ג"},
	"H":  {"ה"},
	"I":  {"יִ", "י"},
	"K":  {"ק", "כּ"},
	"Kh": {"כ", "ח"},
	"L":  {"ל"},
	"M":  {"מ"},
	"N":  {"נ"},
	"O":  {"אָ"},
	"Oy": {"ױ"},
	"P":  {"פּ"},
	"R":  {"ר"},
	"S":  {"ס", "שׂ", "ת"},
	"Sh": {"ש"},
	"T":  {"ט", "תּ"},
	"Ts": {"צ"},
	"U":  {"ו", "וּ"},
	"V":  {"װ", "בֿ"},
	"Y":  {"j"},
	"Z":  {"ז"},
	"Zh": {"זש"},
}

// jacobsOnsets are the admissible syllable onsets of Jacobs (2005:115-7),
// as abstract templates over transliteration labels.
var jacobsOnsets = []string{
	"P T", "P L", "P R", "P N", "P S", "P Sh", "P Kh",
	"P L", "P K", "T R", "T M", "B D", "B L", "B R",
	"B G", "D L", "D N", "T N", "T L", "T K", "T V",
	"T F", "T Kh", "D R", "D V", "K N", "K T", "K D",
	"K L", "K S", "K R", "K V", "G N", "G L", "G R",
	"G V", "G Z", "F L", "F R", "V L", "V R", "S M",
	"S F", "S V", "S N", "S T", "S D", "S K", "S P",
	"S Kh", "S R", "S L", "Z M", "Z N", "Z G", "Z R",
	"Z L", "Z B", "Sh M", "Sh V", "Sh F", "Sh N", "Sh T",
	"Sh P", "Sh K", "Sh Kh", "Sh R", "Sh L", "Sh T Sh", "Zh M",
	"Zh L", "Kh M", "Kh V", "Kh Sh", "Kh S", "Kh L", "Kh K",
	"Kh Ts", "Kh N", "Kh R", "Ts L", "Ts N", "Ts D", "Ts V",
	"T Sh V", "M R", "M L", "Sh P R", "Sh T R", "Sh K R", "Sh P L",
	"Sh K L", "S P R", "S T R", "S K R", "S P L", "S K L", "T Sh",
	"D Zh",
}

// vilerOnsets follow the syllabification rule of Yankev Viler, cited by
// Jacobs (2005:125), with infrequent onsets removed.
var vilerOnsets = []string{
	"P L", "P R", "T L", "T R", "B L", "B R", "D R",
	"K L", "K N", "K R", "G L", "G R", "F L", "F R",
	"S M", "S N", "S T", "S K", "S P", "S L", "Sh M",
	"Sh N", "Sh T", "Sh P", "Sh K", "Sh R", "Sh L", "Sh P R",
	"Sh T R", "Sh K R", "Sh P L", "Sh K L", "S P R", "S T R", "S K R",
	"S P L", "S K L", "T Sh", "D Zh",
}

// prefixTable is the closed class of separable prefixes, in priority
// order: longer and pointed spellings come before the shorter and
// unpointed spellings they overlap with. First match wins.
var prefixTable = []string{
	"אַדורכ", "אדורכ", "דורכ", "אַהינ", "אהינ", "אַהער",
	"אהער", "אַװעק", "אװעק", "אױס", "אומ", "אונטער",
	"אױפֿ", "אױפ", "אַנטקעגנ", "אנטקעגנ", "אַקעגנ", "אקעגנ",
	"קעגנ", "איבער", "אײַנ", "אײנ", "אָנ", "אנ",
	"אַנידער", "אנידער", "אָפּ", "אפ", "אַראָפּ", "אראָפ",
	"אראפ", "אַרױס", "ארױס", "אַרומ", "ארומ", "אַרױפֿ",
	"אַרױפ", "ארױפ", "אַריבער", "אריבער", "אַרײַנ", "אַרײנ",
	"ארײנ", "בײַ", "בײ", "מיט", "נאָכ", "נאכ",
	"פֿונאַנדער", "פונאַנדער", "פונאנדער", "פֿאַנאַנדער", "פאַנאַנדער", "פאנאנדער",
	"פֿאָר", "פאָר", "פאר", "פֿאָרױס", "פאָרױס", "פארױס",
	"אַפֿער", "אַפער", "אפער", "אַפֿיר", "אַפיר", "אפיר",
	"פֿיר", "פיר", "צוזאַמענ", "צוזאמענ", "צונױפֿ", "צונױפ",
	"צוריק", "צו", "קריק", "קאַריק", "קאריק", "פֿאַרבײַ",
	"פאַרבײ", "פארבײ", "אַנט", "אנט", "באַ", "בא",
	"גע", "דער", "פֿאַר", "פאַר", "פאר", "צע",
}
