package analysis

import (
	"sort"

	"github.com/delta/pon-sentimen-dashboard/models"
)

// UserCount is the number of posts of one user within one class
type UserCount struct {
	User     string          `json:"user"`
	Sentimen models.Sentimen `json:"sentimen"`
	Jumlah   int             `json:"jumlah"`
	Color    string          `json:"color"`
}

// UserResult backs the most-active-users chart
type UserResult struct {
	Rows    []UserCount `json:"rows"`
	Order   []string    `json:"order"`
	BarMode string      `json:"bar_mode"`
}

// TopUsers finds the topN users with the most posts in the filtered data.
// Every user gets one row per class present among them, zero included.
// Names are prefixed with "@" and Order runs from the smallest total to the
// largest, the bottom-up order of a horizontal bar chart.
func TopUsers(tweets []models.Tweet, filter models.Sentimen, topN int) UserResult {
	res := UserResult{BarMode: BarStack}
	if filter != models.All {
		res.BarMode = BarGroup
	}

	tweets = filterBy(tweets, filter)

	totals := make(map[string]int)
	for _, t := range tweets {
		totals[t.Username]++
	}
	top := rankDesc(totals, topN)

	selected := make(map[string]map[models.Sentimen]int, len(top))
	for _, kc := range top {
		selected[kc.key] = make(map[models.Sentimen]int)
	}

	present := make(map[models.Sentimen]int)
	for _, t := range tweets {
		if perUser, ok := selected[t.Username]; ok {
			perUser[t.Sentimen]++
			present[t.Sentimen]++
		}
	}
	columns := sortedLabels(present)

	sort.SliceStable(top, func(i, j int) bool {
		if top[i].count != top[j].count {
			return top[i].count < top[j].count
		}
		return top[i].key < top[j].key
	})

	for _, kc := range top {
		name := "@" + kc.key
		res.Order = append(res.Order, name)
		for _, s := range columns {
			res.Rows = append(res.Rows, UserCount{
				User:     name,
				Sentimen: s,
				Jumlah:   selected[kc.key][s],
				Color:    s.Color(),
			})
		}
	}

	return res
}

// MentionCount is how often an account was mentioned within one class
type MentionCount struct {
	Mention  string          `json:"mention"`
	Sentimen models.Sentimen `json:"sentimen"`
	Jumlah   int             `json:"jumlah"`
	Color    string          `json:"color"`
}

// MentionResult backs the most-mentioned-accounts chart
type MentionResult struct {
	Rows  []MentionCount `json:"rows"`
	Order []string       `json:"order"`
}

// TopMentions ranks mentioned accounts by total mentions in the filtered data
// and keeps the topN. Rows are grouped by mention then class. The result is
// empty when no post mentions anyone.
func TopMentions(tweets []models.Tweet, filter models.Sentimen, topN int) MentionResult {
	var res MentionResult

	perMention := make(map[string]map[models.Sentimen]int)
	totals := make(map[string]int)
	for _, t := range filterBy(tweets, filter) {
		for _, m := range listTokens(t.Mention) {
			if perMention[m] == nil {
				perMention[m] = make(map[models.Sentimen]int)
			}
			perMention[m][t.Sentimen]++
			totals[m]++
		}
	}
	if len(totals) == 0 {
		return res
	}

	res.Order = keys(rankDesc(totals, topN))

	grouped := append([]string(nil), res.Order...)
	sort.Strings(grouped)
	for _, m := range grouped {
		for _, s := range sortedLabels(perMention[m]) {
			res.Rows = append(res.Rows, MentionCount{
				Mention:  m,
				Sentimen: s,
				Jumlah:   perMention[m][s],
				Color:    s.Color(),
			})
		}
	}

	return res
}

// sortedLabels returns the map keys in alphabetical order
func sortedLabels(m map[models.Sentimen]int) []models.Sentimen {
	out := make([]models.Sentimen, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
