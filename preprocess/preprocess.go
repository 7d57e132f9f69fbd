// Package preprocess turns raw social-media posts into the normalized token
// stream the sentiment classifier was trained on.
//
// The pipeline runs seven steps in a fixed order: cleaning, case folding,
// slang normalization, tokenization, stopword removal, stemming and removal of
// one-letter tokens. The output only contains lower-case ASCII letters, single
// spaces and the hyphen produced by the "omong-omong" normalization.
//
// All functions are safe for concurrent use by multiple goroutines.
package preprocess

import (
	"regexp"
	"strings"
	"sync"

	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/delta/pon-sentimen-dashboard/utils"
)

// unicodeSpace is a character class body matching every Unicode space
// separator, not only the ASCII ones RE2 puts in \s.
const unicodeSpace = `\s\p{Z}\x{85}`

var (
	urlPattern        = regexp.MustCompile(`https?://[^` + unicodeSpace + `]+|www\.[^` + unicodeSpace + `]+`)
	entityPattern     = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	mentionPattern    = regexp.MustCompile(`@[A-Za-z0-9_]+`)
	hashtagPattern    = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	retweetPattern    = regexp.MustCompile(`^RT[` + unicodeSpace + `]+`)
	digitPattern      = regexp.MustCompile(`[0-9]`)
	nonAlphaPattern   = regexp.MustCompile(`[^A-Za-z ]`)
	newlinePattern    = regexp.MustCompile(`[\n\r]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	emojiPattern      = regexp.MustCompile(`[` +
		`\x{1F1E0}-\x{1F1FF}` +
		`\x{1F300}-\x{1F5FF}` +
		`\x{1F600}-\x{1F64F}` +
		`\x{1F680}-\x{1F6FF}` +
		`\x{1F700}-\x{1F77F}` +
		`\x{1F780}-\x{1F7FF}` +
		`\x{1F800}-\x{1F8FF}` +
		`\x{1F900}-\x{1F9FF}` +
		`\x{1FA00}-\x{1FA6F}` +
		`\x{1FA70}-\x{1FAFF}` +
		`\x{2702}-\x{27B0}` +
		`]+`)

	// RE2 has no lookaround, so the dot splitter uses regexp2.
	innerDotPattern = regexp2.MustCompile(`(?<=\w)\.(?=\w)`, regexp2.None)

	// normalizationPatterns holds one whole-word matcher per normalizationDict entry.
	normalizationPatterns []*regexp.Regexp
)

func init() {
	normalizationPatterns = make([]*regexp.Regexp, len(normalizationDict))
	for i, r := range normalizationDict {
		normalizationPatterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(r.slang) + `\b`)
	}
}

// Pipeline runs the preparation steps with a given stemmer.
type Pipeline struct {
	stemmer Stemmer
}

// NewPipeline returns a pipeline using stemmer for step six.
// A nil stemmer leaves tokens unstemmed.
func NewPipeline(stemmer Stemmer) *Pipeline {
	if stemmer == nil {
		stemmer = StemmerFunc(func(w string) string { return w })
	}
	return &Pipeline{stemmer: stemmer}
}

// Prepare runs every step and joins the resulting tokens with single spaces.
func (p *Pipeline) Prepare(text string) string {
	return strings.Join(p.Tokens(text), " ")
}

// Tokens runs every step and returns the final token list.
func (p *Pipeline) Tokens(text string) []string {
	text = Clean(text)
	text = CaseFold(text)
	text = Normalize(text)

	tokens := RemoveStopwords(strings.Fields(text))

	out := tokens[:0]
	for _, tok := range tokens {
		stem := p.stemmer.Stem(tok)
		if len(stem) > 1 {
			out = append(out, stem)
		}
	}
	return out
}

// Clean strips URLs, markup, emoji, mentions, hashtags, retweet markers,
// digits and every other non-letter, and collapses whitespace.
// Accented letters are not folded, so they end up as spaces.
func Clean(text string) string {
	text = urlPattern.ReplaceAllString(text, " ")
	text = entityPattern.ReplaceAllString(text, " ")
	text = htmlTagPattern.ReplaceAllString(text, " ")
	if replaced, err := innerDotPattern.Replace(text, " ", -1, -1); err == nil {
		text = replaced
	}
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = emojiPattern.ReplaceAllString(text, " ")
	text = mentionPattern.ReplaceAllString(text, " ")
	text = hashtagPattern.ReplaceAllString(text, " ")
	text = retweetPattern.ReplaceAllString(text, "")
	text = digitPattern.ReplaceAllString(text, " ")
	text = nonAlphaPattern.ReplaceAllString(text, " ")
	text = newlinePattern.ReplaceAllString(text, " ")
	return collapseSpaces(text)
}

// CaseFold lower-cases text with Indonesian casing rules.
func CaseFold(text string) string {
	return cases.Lower(language.Indonesian).String(text)
}

// Normalize replaces informal spellings with their standard form.
// text must already be lower case.
func Normalize(text string) string {
	for i, r := range normalizationDict {
		text = normalizationPatterns[i].ReplaceAllLiteralString(text, r.standard)
	}
	return collapseSpaces(text)
}

// RemoveStopwords filters tokens in place and returns the shortened slice.
func RemoveStopwords(tokens []string) []string {
	out := tokens[:0]
	for _, tok := range tokens {
		if !IsStopword(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func collapseSpaces(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

var (
	defaultPipeline *Pipeline
	defaultOnce     sync.Once
	logger          = logrus.NewEntry(utils.Logger)
)

// Init builds the package-level pipeline with a cached Sastrawi stemmer.
func Init(config *utils.Config) {
	defaultOnce.Do(func() {
		logger = utils.Logger.WithFields(logrus.Fields{
			"module": "preprocess",
		})
		defaultPipeline = newDefaultPipeline(config.CacheSize)
	})
}

func newDefaultPipeline(cacheSize int) *Pipeline {
	stemmer := NewSastrawiStemmer()
	if cacheSize > 0 {
		cached, err := NewCachedStemmer(stemmer, cacheSize)
		if err != nil {
			logger.Warnf("Stem cache disabled: %v", err)
		} else {
			stemmer = cached
		}
	}
	return NewPipeline(stemmer)
}

func getDefault() *Pipeline {
	defaultOnce.Do(func() {
		defaultPipeline = newDefaultPipeline(0)
	})
	return defaultPipeline
}

// Prepare runs the default pipeline on text.
func Prepare(text string) string {
	return getDefault().Prepare(text)
}

// Tokens runs the default pipeline on text and returns the tokens.
func Tokens(text string) []string {
	return getDefault().Tokens(text)
}
