// Package negationlib paraphrases sentences by swapping their first adjective
// for a negated antonym: "The room was clean." becomes "The room was not dirty."
package negationlib

import (
	"fmt"
	"strings"

	"goReviewLab/lexiconlib"
	"goReviewLab/taglib"
)

// Negation is the word prefixed to the antonym
const Negation = "not"

// Result describes one paraphrase
type Result struct {
	Original    string
	Generated   string
	Adjective   string // replaced token, empty when nothing was replaced
	Replacement string // "not <antonym>"
	Index       int    // token position of the replacement, -1 when nothing was replaced
	Replaced    bool
}

// Negator rewrites sentences with a tagger and an antonym lexicon
type Negator struct {
	tagger  taglib.Tagger
	lexicon lexiconlib.Lexicon
}

// New returns a Negator
func New(tagger taglib.Tagger, lexicon lexiconlib.Lexicon) *Negator {
	return &Negator{tagger: tagger, lexicon: lexicon}
}

// Negate returns sentence with its first antonym-bearing adjective replaced
func (n *Negator) Negate(sentence string) (string, error) {
	r, err := n.NegateDetailed(sentence)
	if err != nil {
		return "", err
	}
	return r.Generated, nil
}

// NegateDetailed is Negate reporting what was replaced. Adjectives without any
// antonym are skipped; at most one token is replaced.
func (n *Negator) NegateDetailed(sentence string) (Result, error) {
	r := Result{Original: sentence, Index: -1}

	tokens, err := n.tagger.Tag(sentence)
	if err != nil {
		return r, err
	}
	words := taglib.Words(tokens)

	for i, tok := range tokens {
		if !taglib.IsAdjective(tok.Tag) {
			continue
		}
		antonyms, err := n.lexicon.Antonyms(tok.Text, lexiconlib.Adjective)
		if err != nil {
			return r, fmt.Errorf("antonyms of %q: %w", tok.Text, err)
		}
		if len(antonyms) == 0 {
			continue
		}

		r.Adjective = tok.Text
		r.Replacement = Negation + " " + strings.ReplaceAll(antonyms[0], "_", " ")
		r.Index = i
		r.Replaced = true
		words[i] = r.Replacement
		break
	}

	r.Generated = Reassemble(words)
	return r, nil
}

// applied in order, each over the whole string
var punctuationFixups = [][2]string{
	{" ,", ","},
	{" .", "."},
	{" 's", "'s"},
}

// Reassemble joins words with single spaces, then glues the punctuation of
// punctuationFixups back to the preceding word
func Reassemble(words []string) string {
	s := strings.Join(words, " ")
	for _, fix := range punctuationFixups {
		s = strings.ReplaceAll(s, fix[0], fix[1])
	}
	return s
}
