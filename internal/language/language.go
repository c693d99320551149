
// Package language holds the language resources the keyword pipeline is
// built on: a lemmatizer and a stop-word set.
package language

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer maps a surface form to its dictionary form. Implementations
// must be idempotent: Lemma(Lemma(w)) == Lemma(w).
type Lemmatizer interface {
	Lemma(word string) string
}

// English is a dictionary lemmatizer for English text.
type English struct {
	dict *golem.Lemmatizer
}

func NewEnglish() (*English, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("language: load english dictionary: %w", err)
	}
	return &English{dict: dict}, nil
}

// maxLemmaHops bounds the walk to a fixed point for dictionaries where a
// lemma itself has a different lemma.
const maxLemmaHops = 4

func (e *English) Lemma(word string) string {
	if word == "" {
		return word
	}
	cur := word
	for i := 0; i < maxLemmaHops; i++ {
		next := e.dict.Lemma(cur)
		if next == "" || next == cur {
			return cur
		}
		cur = next
	}
	return cur
}

// DictLemmatizer looks words up in a fixed table and returns unknown words
// unchanged.
type DictLemmatizer map[string]string

func (d DictLemmatizer) Lemma(word string) string {
	if l, ok := d[word]; ok {
		return l
	}
	return word
}

//go:embed english.txt
var englishRaw []byte

type StopWords map[string]struct{}

func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// NewStopWords builds a set from words, lowercased.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// EnglishStopWords returns a fresh copy of the embedded English stop-word list.
func EnglishStopWords() StopWords {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(englishRaw))
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	return NewStopWords(words...)
}
