// Package lexiconlib looks up antonyms in a lexical database.
//
// The WordNet reader works on the plain dict files distributed by Princeton
// (index.<pos>, data.<pos>, <pos>.exc). Ensure fetches them once when absent.
package lexiconlib

import (
	"errors"
	"strings"
)

// POS is a WordNet part of speech
type POS byte

// WordNet parts of speech
const (
	Noun      POS = 'n'
	Verb      POS = 'v'
	Adjective POS = 'a'
	Adverb    POS = 'r'
)

// ErrUnknownPOS is returned for a POS the lexicon has no files for
var ErrUnknownPOS = errors.New("unknown part of speech")

// fileSuffix is the dict file suffix holding pos entries
func (p POS) fileSuffix() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adj"
	case Adverb:
		return "adv"
	}
	return ""
}

func (p POS) String() string {
	if s := p.fileSuffix(); s != "" {
		return s
	}
	return "pos(" + string(rune(p)) + ")"
}

// Lexicon returns antonym candidates for a word, across all its senses for pos.
// The first element is the preferred candidate; an unknown word yields no candidates.
type Lexicon interface {
	Antonyms(word string, pos POS) ([]string, error)
}

// normalize lowercases word and joins multiword expressions the WordNet way
func normalize(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
}
