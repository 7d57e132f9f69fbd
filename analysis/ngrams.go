package analysis

import (
	"fmt"
	"strings"

	"github.com/delta/pon-sentimen-dashboard/models"
)

// NGramCount is the frequency of one n-gram within one class
type NGramCount struct {
	NGram     string          `json:"ngram"`
	Sentimen  models.Sentimen `json:"sentimen"`
	Frekuensi int             `json:"frekuensi"`
	Color     string          `json:"color"`
}

// NGramResult backs one n-gram bar chart
type NGramResult struct {
	N       int          `json:"n"`
	Column  string       `json:"column"`
	Rows    []NGramCount `json:"rows"`
	Order   []string     `json:"order"`
	BarMode string       `json:"bar_mode"`
}

// NGrams counts n-grams of the stopword-free text of each selected class.
// Posts of a class are joined before counting, so an n-gram may span two
// consecutive posts. Only the topN n-grams by total frequency across the
// selected classes are kept; Order lists them highest first.
func NGrams(tweets []models.Tweet, filter models.Sentimen, n, topN int) NGramResult {
	res := NGramResult{
		N:       n,
		Column:  "n-gram",
		BarMode: BarStack,
	}
	if filter != models.All {
		res.Column = fmt.Sprintf("%d-gram", n)
		res.BarMode = BarRelative
	}
	if n < 1 {
		return res
	}

	labels := models.LabelsFor(filter)
	perLabel := make(map[models.Sentimen]map[string]int, len(labels))
	totals := make(map[string]int)

	for _, label := range labels {
		var tokens []string
		for _, t := range tweets {
			if t.Sentimen == label {
				tokens = append(tokens, listTokens(t.SwremoveText)...)
			}
		}

		counts := make(map[string]int)
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			counts[gram]++
			totals[gram]++
		}
		perLabel[label] = counts
	}

	res.Order = keys(rankDesc(totals, topN))

	for _, gram := range res.Order {
		for _, label := range labels {
			if f := perLabel[label][gram]; f > 0 {
				res.Rows = append(res.Rows, NGramCount{
					NGram:     gram,
					Sentimen:  label,
					Frekuensi: f,
					Color:     label.Color(),
				})
			}
		}
	}

	return res
}
