package preprocess

import (
	sastrawi "github.com/RadhiFadlillah/go-sastrawi"
	lru "github.com/hashicorp/golang-lru"
)

// Stemmer reduces a lower-case word to its root form.
type Stemmer interface {
	Stem(word string) string
}

// StemmerFunc adapts a plain function to the Stemmer interface.
type StemmerFunc func(word string) string

func (f StemmerFunc) Stem(word string) string {
	return f(word)
}

// NewSastrawiStemmer returns the Indonesian Sastrawi stemmer backed by its
// bundled root-word dictionary.
func NewSastrawiStemmer() Stemmer {
	return sastrawi.NewStemmer(sastrawi.DefaultDictionary())
}

// cachedStemmer memoises another stemmer. Sastrawi walks several affix
// removal rules per word and dashboard text repeats a small vocabulary.
type cachedStemmer struct {
	next  Stemmer
	cache *lru.Cache
}

// NewCachedStemmer wraps next with an LRU cache of the given size.
func NewCachedStemmer(next Stemmer, size int) (Stemmer, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &cachedStemmer{next: next, cache: cache}, nil
}

func (c *cachedStemmer) Stem(word string) string {
	if v, ok := c.cache.Get(word); ok {
		return v.(string)
	}
	stem := c.next.Stem(word)
	c.cache.Add(word, stem)
	return stem
}
