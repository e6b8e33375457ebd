// Package taglib splits review text into sentences and part-of-speech tagged tokens
package taglib

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Token is a word and its Penn Treebank tag
type Token struct {
	Text string
	Tag  string
}

// Tagger tokenizes a sentence and tags every token
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// SentenceSplitter splits text into sentences
type SentenceSplitter interface {
	Sentences(text string) ([]string, error)
}

// IsAdjective tells whether tag marks an adjective (base, comparative or superlative)
func IsAdjective(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS":
		return true
	}
	return false
}

// Words returns the token texts in order
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}
	return words
}

// ProseTagger implements Tagger and SentenceSplitter with prose's pretrained
// English models. The models ship inside the library, so nothing is downloaded.
type ProseTagger struct{}

// NewProseTagger returns a ready to use tagger
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tag tokenizes and tags text as a single sentence
func (p *ProseTagger) Tag(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("tag %q: %w", text, err)
	}

	var tokens []Token
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}

	return tokens, nil
}

// Sentences splits text into sentences
func (p *ProseTagger) Sentences(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false))
	if err != nil {
		return nil, fmt.Errorf("split sentences: %w", err)
	}

	var sentences []string
	for _, s := range doc.Sentences() {
		sentences = append(sentences, s.Text)
	}

	return sentences, nil
}
