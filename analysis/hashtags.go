package analysis

import (
	"hash/fnv"
	"strings"

	"github.com/delta/pon-sentimen-dashboard/models"
)

// HashtagCount is one row of the hashtag frequency table
type HashtagCount struct {
	Hashtag   string `json:"hashtag"`
	Frekuensi int    `json:"frekuensi"`
	Color     string `json:"color"`
}

// Hashtags counts lower-cased hashtags of the filtered posts, most frequent
// first. With a class filter every entry takes the class color; for models.All
// each hashtag gets a palette color chosen from a hash of its text, so the
// same tag keeps its color between page loads.
func Hashtags(tweets []models.Tweet, filter models.Sentimen) []HashtagCount {
	totals := make(map[string]int)
	for _, t := range filterBy(tweets, filter) {
		for _, tag := range listTokens(t.Hashtag) {
			totals[strings.ToLower(tag)]++
		}
	}

	palette := models.Palette()
	ranked := rankDesc(totals, 0)
	out := make([]HashtagCount, 0, len(ranked))
	for _, kc := range ranked {
		color := filter.Color()
		if filter == models.All {
			color = paletteColor(palette, kc.key)
		}
		out = append(out, HashtagCount{
			Hashtag:   kc.key,
			Frekuensi: kc.count,
			Color:     color,
		})
	}
	return out
}

func paletteColor(palette []string, word string) string {
	h := fnv.New32a()
	h.Write([]byte(word))
	return palette[h.Sum32()%uint32(len(palette))]
}
