package analysis

import (
	"fmt"
	"strings"

	"github.com/delta/pon-sentimen-dashboard/models"
)

// SearchRow is one row of the data table
type SearchRow struct {
	Username string          `json:"username"`
	FullText string          `json:"full_text"`
	Sentimen models.Sentimen `json:"sentimen"`
}

// SearchResult is the data table plus the status line shown above it
type SearchResult struct {
	Query   string      `json:"query"`
	Matched int         `json:"matched"`
	Message string      `json:"message,omitempty"`
	Rows    []SearchRow `json:"rows"`
}

// Search keeps the posts whose text or username contains query,
// ignoring case. query is matched literally. An empty query returns every post
// without a status message.
func Search(tweets []models.Tweet, query string) SearchResult {
	res := SearchResult{Query: query}
	needle := strings.ToLower(strings.TrimSpace(query))

	res.Rows = make([]SearchRow, 0, len(tweets))
	for _, t := range tweets {
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.FullText), needle) &&
			!strings.Contains(strings.ToLower(t.Username), needle) {
			continue
		}
		res.Rows = append(res.Rows, SearchRow{
			Username: t.Username,
			FullText: t.FullText,
			Sentimen: t.Sentimen,
		})
	}
	res.Matched = len(res.Rows)

	if needle != "" {
		if res.Matched == 0 {
			res.Message = "Tidak ada data yang cocok ditemukan."
		} else {
			res.Message = fmt.Sprintf("Ditemukan %d data yang cocok.", res.Matched)
		}
	}
	return res
}
