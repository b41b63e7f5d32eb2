package lines

// lineFixtures lock in greedy fill behavior for a few widths,
// including an unbreakable word wider than the line.
var lineFixtures = []struct {
	text  string
	width int
	want  []string
}{
	{
		text:  "אױסגעמוטשעט אַרױסגעלאָפֿן אָװנטברױט זומער קינדער",
		width: 20,
		want: []string{
			"אױסגעמוטשעט אַרױסגע־",
			"לאָפֿן אָװנטברױט זו־",
			"מער קינדער",
		},
	},
	{
		text:  "קינדער קינדער",
		width: 7,
		want: []string{
			"קינדער",
			"קינדער",
		},
	},
	{
		text:  "שטראָם",
		width: 3,
		want: []string{
			"שטראָם",
		},
	},
	{
		text:  "זומער זומער\nקינדער",
		width: 13,
		want: []string{
			"זומער זומער",
			"קינדער",
		},
	},
}
