package preprocess

// replacement is one entry of the slang normalization dictionary.
type replacement struct {
	slang    string
	standard string
}

// normalizationDict maps informal Indonesian spellings to their standard form.
// Entries are applied in order, so an earlier replacement is never revisited
// by a later one ("bkin" becomes "bikin", not "membuat").
var normalizationDict = []replacement{
	{"aja", "saja"}, {"aj", "saja"}, {"bbrp", "beberapa"}, {"bgt", "banget"},
	{"bgtu", "begitu"}, {"bikin", "membuat"}, {"bkin", "bikin"}, {"blm", "belum"},
	{"brp", "berapa"}, {"bs", "bisa"}, {"btw", "omong-omong"}, {"dgn", "dengan"},
	{"dlm", "dalam"}, {"dpt", "dapat"}, {"dr", "dari"}, {"dah", "sudah"}, {"emang", "memang"},
	{"ga", "tidak"}, {"gak", "tidak"}, {"gk", "tidak"}, {"kalo", "kalau"},
	{"klu", "kalau"}, {"klo", "kalau"}, {"km", "kamu"}, {"kmrn", "kemarin"},
	{"krn", "karena"}, {"liat", "lihat"}, {"lg", "lagi"}, {"lho", "loh"},
	{"makasih", "terima kasih"}, {"mksh", "terima kasih"}, {"nah", ""},
	{"ngga", "tidak"}, {"nggak", "tidak"}, {"nih", "ini"}, {"ny", "nya"},
	{"ok", "oke"}, {"oke", "oke"}, {"okey", "oke"}, {"org", "orang"},
	{"pdhl", "padahal"}, {"pls", "tolong"}, {"sampe", "sampai"},
	{"sdh", "sudah"}, {"sih", ""}, {"sm", "sama"}, {"smua", "semua"},
	{"sy", "saya"}, {"td", "tadi"}, {"tdk", "tidak"}, {"thx", "terima kasih"},
	{"tp", "tapi"}, {"trs", "terus"}, {"udh", "sudah"}, {"udah", "sudah"},
	{"utk", "untuk"}, {"y", "ya"}, {"yaampun", "ya ampun"}, {"yg", "yang"},
}

// stopwords contains Indonesian function words removed before stemming.
var stopwords = map[string]struct{}{
	// Conjunctions
	"dan": {}, "atau": {}, "tetapi": {}, "serta": {}, "lalu": {}, "kemudian": {},
	"namun": {}, "sehingga": {}, "agar": {},
	// Prepositions
	"di": {}, "ke": {}, "dari": {}, "pada": {}, "dengan": {}, "tanpa": {},
	"untuk": {}, "bagi": {}, "dalam": {}, "antara": {},
	// Determiners and articles
	"itu": {}, "ini": {}, "sebuah": {}, "seorang": {}, "para": {}, "sang": {},
	// Pronouns
	"yang": {}, "apa": {}, "siapa": {}, "mana": {},
	// Particles and interjections
	"lah": {}, "kah": {}, "pun": {}, "dong": {}, "deh": {}, "loh": {}, "kok": {},
	"ya": {}, "nah": {}, "hmm": {}, "oh": {}, "eh": {},
	// Time words
	"sekarang": {}, "kemarin": {}, "besok": {}, "nanti": {},
	// Restrictive adverbs
	"saja": {}, "hanya": {}, "bahkan": {},
}

// IsStopword reports whether word is removed by the pipeline.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
