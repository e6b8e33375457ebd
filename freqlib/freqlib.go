// Package freqlib counts word frequencies over review text and ranks them
package freqlib

import (
	"regexp"
	"sort"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

// DefaultStopwords are the uninformative words dropped before counting
var DefaultStopwords = []string{
	"the", "and", "was", "were", "are", "had", "have", "has",
	"that", "this", "with", "for", "but", "not", "you", "all",
	"can", "her", "his", "our", "out", "day", "get", "use",
	"man", "new", "now", "way", "may", "say", "each", "which",
}

// DefaultMinLen is the shortest word counted
const DefaultMinLen = 3

// Term is one ranked word
type Term struct {
	Word  string
	Count int
}

// Options tune a Counter
type Options struct {
	Stopwords []string
	MinLen    int
	Stem      bool // reduce words to their Snowball stem after stopword filtering
}

// Counter tallies words, remembering first-seen order to break ties
type Counter struct {
	stopwords map[string]struct{}
	minLen    int
	stem      bool

	counts  map[string]int
	order   []string
	scanned int
}

// NewCounter returns an empty counter. A zero MinLen means DefaultMinLen and a
// nil Stopwords means DefaultStopwords.
func NewCounter(opts Options) *Counter {
	stopwords := opts.Stopwords
	if stopwords == nil {
		stopwords = DefaultStopwords
	}
	minLen := opts.MinLen
	if minLen <= 0 {
		minLen = DefaultMinLen
	}

	c := &Counter{
		stopwords: make(map[string]struct{}, len(stopwords)),
		minLen:    minLen,
		stem:      opts.Stem,
		counts:    make(map[string]int),
	}
	for _, w := range stopwords {
		c.stopwords[strings.ToLower(w)] = struct{}{}
	}

	return c
}

// reWord matches what a regex word boundary delimits: letters, digits and underscore
var reWord = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Words returns the lowercase ASCII alphabetic words of text at least minLen long
func Words(text string, minLen int) []string {
	var words []string
	for _, w := range reWord.FindAllString(strings.ToLower(text), -1) {
		if len(w) >= minLen && isASCIIAlpha(w) {
			words = append(words, w)
		}
	}
	return words
}

func isASCIIAlpha(w string) bool {
	for i := 0; i < len(w); i++ {
		c := w[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Add counts the words of text; an empty text is skipped
func (c *Counter) Add(text string) {
	if text == "" {
		return
	}
	for _, w := range Words(text, c.minLen) {
		c.scanned++
		if _, stop := c.stopwords[w]; stop {
			continue
		}
		if c.stem {
			w = snowballeng.Stem(w, false)
		}
		if c.counts[w] == 0 {
			c.order = append(c.order, w)
		}
		c.counts[w]++
	}
}

// AddAll counts every text
func (c *Counter) AddAll(texts []string) {
	for _, t := range texts {
		c.Add(t)
	}
}

// Count returns the tally for word
func (c *Counter) Count(word string) int {
	return c.counts[word]
}

// Scanned is the number of qualifying words seen, stopwords included
func (c *Counter) Scanned() int {
	return c.scanned
}

// Len is the number of distinct counted words
func (c *Counter) Len() int {
	return len(c.order)
}

// Top returns the n most frequent words, ties in first-seen order. n <= 0 returns all.
func (c *Counter) Top(n int) []Term {
	terms := make([]Term, len(c.order))
	for i, w := range c.order {
		terms[i] = Term{Word: w, Count: c.counts[w]}
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Count > terms[j].Count
	})

	if n > 0 && n < len(terms) {
		terms = terms[:n]
	}
	return terms
}

// Top counts texts with opts and returns the n most frequent words
func Top(texts []string, n int, opts Options) []Term {
	c := NewCounter(opts)
	c.AddAll(texts)
	return c.Top(n)
}
