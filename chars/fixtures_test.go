package chars

// charsFixtures pair raw input with its combined and separated forms.
var charsFixtures = []struct {
	raw       string
	combined  string
	separated string
}{
	{"וואוינען", "װאױנען", "װאױנען"},
	{"אַרױסגעלאָפֿן", "אַרױסגעלאָפֿן", "אַרױסגעלאָפֿן"},
	{"ייִדיש", "ייִדיש", "ייִדיש"},
	{"פּונקט", "פּונקט", "פּונקט"},
	{"שבת", "שבת", "שבת"},
}
