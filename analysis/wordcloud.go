package analysis

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/delta/pon-sentimen-dashboard/models"
)

// MaxCloudWords is the number of words drawn in one word cloud
const MaxCloudWords = 200

// wordPattern skips one-character tokens. Apostrophes are list-literal
// quotes in the stored text, so they never join a word.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Word is one entry of a word cloud. Weight is Count relative to the most
// frequent word, in (0, 1].
type Word struct {
	Text   string  `json:"text"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

// Cloud is the frequency table of one word cloud
type Cloud struct {
	Sentimen models.Sentimen `json:"sentimen"`
	Color    string          `json:"color"`
	Words    []Word          `json:"words"`
}

// WordCloud builds the cloud of the stopword-free text of one class.
// Purely numeric tokens are ignored and words are counted case-insensitively.
func WordCloud(tweets []models.Tweet, label models.Sentimen) Cloud {
	cloud := Cloud{Sentimen: label, Color: label.Color(), Words: []Word{}}

	totals := make(map[string]int)
	for _, t := range filterBy(tweets, label) {
		for _, w := range wordPattern.FindAllString(t.SwremoveText, -1) {
			if isNumeric(w) {
				continue
			}
			totals[strings.ToLower(w)]++
		}
	}

	ranked := rankDesc(totals, MaxCloudWords)
	if len(ranked) == 0 {
		return cloud
	}

	top := float64(ranked[0].count)
	for _, kc := range ranked {
		cloud.Words = append(cloud.Words, Word{
			Text:   kc.key,
			Count:  kc.count,
			Weight: float64(kc.count) / top,
		})
	}
	return cloud
}

func isNumeric(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
