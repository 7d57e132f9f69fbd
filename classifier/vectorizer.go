package classifier

import (
	"math"
	"regexp"
	"strings"

	"github.com/gonum/floats"
)

// termPattern picks words of two or more characters, the vectorizer's default
var termPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer turns prepared text into a sparse TF-IDF vector
type Vectorizer struct {
	vocabulary  map[string]int
	idf         []float64
	minN, maxN  int
	sublinearTF bool
	l2          bool
}

// Size is the number of columns of the vectors produced by Transform
func (v *Vectorizer) Size() int {
	return len(v.idf)
}

// terms lists the n-grams of text, lower-cased, in order of appearance
func (v *Vectorizer) terms(text string) []string {
	words := termPattern.FindAllString(strings.ToLower(text), -1)

	var out []string
	for n := v.minN; n <= v.maxN; n++ {
		for i := 0; i+n <= len(words); i++ {
			out = append(out, strings.Join(words[i:i+n], " "))
		}
	}
	return out
}

// Transform returns the TF-IDF weights of text keyed by vocabulary column.
// Terms outside the vocabulary are ignored. The result is empty, never nil,
// when no term is known.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	counts := make(map[int]float64)
	for _, term := range v.terms(text) {
		if col, ok := v.vocabulary[term]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return counts
	}

	cols := make([]int, 0, len(counts))
	weights := make([]float64, 0, len(counts))
	for col, tf := range counts {
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		cols = append(cols, col)
		weights = append(weights, tf*v.idf[col])
	}

	if v.l2 {
		if norm := floats.Norm(weights, 2); norm > 0 {
			floats.Scale(1/norm, weights)
		}
	}

	for i, col := range cols {
		counts[col] = weights[i]
	}
	return counts
}
