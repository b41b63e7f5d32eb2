// Package chars converts Yiddish text between multi-codepoint and
// precomposed Unicode letter forms.
//
// The combined forms live in the Hebrew ligature and presentation
// blocks (U+05F0..U+05F2, U+FB1D..U+FB4E). Those presentation forms are
// composition exclusions, so the standard Unicode normalization forms
// never produce them; conversion runs over a fixed table instead, in
// registration order.
package chars

import "strings"

// combinations maps each two-codepoint digraph (base letter plus
// diacritic, or doubled letter) to its precomposed codepoint.
var combinations = []struct{ separated, composed string }{
	{"אַ", "אַ"},
	{"אָ", "אָ"},
	{"בֿ", "בֿ"},
	{"וּ", "וּ"},
	{"וו", "װ"},
	{"וי", "ױ"},
	{"יִ", "יִ"},
	{"יי", "ײ"},
	{"ײַ", "ײַ"},
	{"כּ", "כּ"},
	{"פּ", "פּ"},
	{"פֿ", "פֿ"},
	{"שׂ", "שׂ"},
	{"תּ", "תּ"},
}

// separations inverts combinations for all entries except the ligatures
// װ, ױ and ײ, which stay permanently composed.
var separations = []struct{ separated, composed string }{
	{"אַ", "אַ"},
	{"אָ", "אָ"},
	{"בֿ", "בֿ"},
	{"וּ", "וּ"},
	{"יִ", "יִ"},
	{"ײַ", "ײַ"},
	{"כּ", "כּ"},
	{"פּ", "פּ"},
	{"פֿ", "פֿ"},
	{"שׂ", "שׂ"},
	{"תּ", "תּ"},
}

// Combine maps every multi-codepoint letter form in text to its
// precomposed codepoint. Unmatched input passes through unchanged.
func Combine(text string) string {
	for _, c := range combinations {
		text = strings.ReplaceAll(text, c.separated, c.composed)
	}
	return text
}

// Separate expands precomposed letters back to their multi-codepoint
// form. It inverts Combine except for the three permanent ligatures.
func Separate(text string) string {
	for _, c := range separations {
		text = strings.ReplaceAll(text, c.composed, c.separated)
	}
	return text
}
