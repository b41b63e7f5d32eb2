package syllabify

// Fixture expectations below were produced with the historical
// implementation of the Jacobs and Viler syllabifications and are
// locked in as reference behavior.

var jacobsFixtures = []struct {
	word string
	want string
}{
	{"אױסגעמוטשעט", "אױס|גע|מו|טשעט"},
	{"אַרױסגעלאָפֿן", "אַרױס|גע|לאָ|פֿן"},
	{"אָװנטברױט", "אָװנט|ברױט"},
	{"געגאַנגען", "גע|גאַנ|גען"},
	{"שרײַבן", "שרײַ|בן"},
	{"מענטשן", "מענ|טשן"},
	{"זומער", "זו|מער"},
	{"קינדער", "קינ|דער"},
	{"אונטערגעגאנגען", "אונטער|גע|גאנ|גען"},
	{"איד", "איד"},
	{"וואוינען", "װאױ|נען"},
	{"באַשװערן", "באַ|שװע|רן"},
	{"פֿײגל", "פֿײ|גל"},
	{"יאָר", "יאָר"},
	{"צוריקגעקומען", "צוריק|גע|קו|מען"},
	{"דורכפֿאַל", "דורכ|פֿאַל"},
	{"נומרע", "נו|מרע"},
	{"גע", "גע"},
	{"צו", "צו"},
	{"א", "א"},
	{"בגד", "בגד"},
	{"מאָרגן,", "מאָר|גן,"},
	{"abc", "abc"},
	{" באַשערט ", " באַ|שערט "},
	{"בֿעטן", "בֿע|טן"},
	{"האבֿער", "הא|בֿער"},
}

var vilerFixtures = []struct {
	word string
	want string
}{
	{"נומרע", "נומ|רע"},
	{"עזרא", "עז|רא"},
	{"אױסגעמוטשעט", "אױס|גע|מו|טשעט"},
}

// rewriteFixtures pair a combined letter run with its phoneme-marker
// rendering after role resolution.
var rewriteFixtures = []struct {
	run  string
	want string
}{
	{"איד", "ạיד"},
	{"װאױנען", "װạױנען"},
	{"נדן", "נדŅ"},
	{"פֿײגל", "פֿײגļ"},
	{"מײדל", "מײדļ"},
	{"יאָר", "jאָר"},
	{"מאנגל", "מאנגļ"},
	{"בױם", "בױם"},
}

var prefixFixtures = []struct {
	word      string
	remainder string
	prefix    string
}{
	{"צוריקגעקומען", "געקומען", "צוריק"},
	{"דורכפֿאַל", "פֿאַל", "דורכ"},
	{"אױסגעמוטשעט", "געמוטשעט", "אױס"},
	{"גע", "גע", ""},
	{"עזרא", "עזרא", ""},
	{"באַשװערן", "שװערן", "באַ"},
}

// Concrete spellings used by the pattern-table tests: shin-tes-resh spells
// the template "Sh T R", tes-shin spells "T Sh", zayen-shin-mem spells
// "Zh M". No onset template yields resh followed by tes.
const (
	onsetShTR     = "שטר"
	onsetTSh      = "טש"
	onsetZhM      = "זשמ"
	clusterReshT  = "רט"
	singletonBeys = "ב"
)

// disallowedFixtures contain a bare khes or sof and must pass through
// byte-for-byte.
var disallowedFixtures = []string{
	"שבת",
	"חדר",
	"תמיד",
}

// Words used structurally by the assigner tests.
const (
	wordZumer   = "זומער"
	wordMentshn = "מענטשן"
	wordBeged   = "בגד"
)
