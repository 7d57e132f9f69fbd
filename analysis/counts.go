package analysis

import (
	"fmt"
	"sort"

	"github.com/delta/pon-sentimen-dashboard/models"
)

// Counts holds the headline numbers of the dashboard
type Counts struct {
	Total   int `json:"total"`
	Positif int `json:"positif"`
	Netral  int `json:"netral"`
	Negatif int `json:"negatif"`
}

// Count tallies posts per class
func Count(tweets []models.Tweet) Counts {
	c := Counts{Total: len(tweets)}
	for _, t := range tweets {
		switch t.Sentimen {
		case models.Positif:
			c.Positif++
		case models.Netral:
			c.Netral++
		case models.Negatif:
			c.Negatif++
		}
	}
	return c
}

// SentimenShare is one bar (or pie slice) of the sentiment distribution
type SentimenShare struct {
	Sentimen   models.Sentimen `json:"sentimen"`
	Jumlah     int             `json:"jumlah"`
	Persentase float64         `json:"persentase"`
	Label      string          `json:"label"`
	Color      string          `json:"color"`
}

// Distribution returns one share per class present, largest first.
// Label reads like "Positif (45.0%)".
func Distribution(tweets []models.Tweet) []SentimenShare {
	counts := make(map[models.Sentimen]int)
	for _, t := range tweets {
		counts[t.Sentimen]++
	}

	shares := make([]SentimenShare, 0, len(counts))
	for s, n := range counts {
		pct := float64(n) / float64(len(tweets)) * 100
		shares = append(shares, SentimenShare{
			Sentimen:   s,
			Jumlah:     n,
			Persentase: pct,
			Label:      fmt.Sprintf("%s (%.1f%%)", s, pct),
			Color:      s.Color(),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Jumlah != shares[j].Jumlah {
			return shares[i].Jumlah > shares[j].Jumlah
		}
		return shares[i].Sentimen < shares[j].Sentimen
	})
	return shares
}
