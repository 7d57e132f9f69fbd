// Package analysis aggregates the labelled dataset into the tables behind
// every dashboard chart.
//
// All functions are pure: they read a slice of posts and return new values,
// so callers may share one dataset snapshot across goroutines. Ties in every
// ranking are broken alphabetically so results are deterministic.
package analysis

import (
	"sort"
	"strings"

	"github.com/delta/pon-sentimen-dashboard/models"
)

// BarMode values understood by the dashboard charts
const (
	BarStack    = "stack"
	BarRelative = "relative"
	BarGroup    = "group"
)

// listNoise removes the brackets, quotes and commas of exported list literals
// such as "['pon', 'aceh']".
var listNoise = strings.NewReplacer("[", " ", "]", " ", "'", "", ",", " ")

// listTokens splits an exported list literal into its items
func listTokens(s string) []string {
	return strings.Fields(listNoise.Replace(s))
}

// filterBy returns the posts labelled filter. models.All keeps every post.
func filterBy(tweets []models.Tweet, filter models.Sentimen) []models.Tweet {
	if filter == models.All {
		return tweets
	}
	out := make([]models.Tweet, 0, len(tweets))
	for _, t := range tweets {
		if t.Sentimen == filter {
			out = append(out, t)
		}
	}
	return out
}

type keyCount struct {
	key   string
	count int
}

// rankDesc orders totals by count, highest first, and keeps at most topN.
// topN <= 0 keeps everything.
func rankDesc(totals map[string]int, topN int) []keyCount {
	ranked := make([]keyCount, 0, len(totals))
	for k, c := range totals {
		ranked = append(ranked, keyCount{k, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].key < ranked[j].key
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func keys(ranked []keyCount) []string {
	out := make([]string, len(ranked))
	for i, kc := range ranked {
		out[i] = kc.key
	}
	return out
}
