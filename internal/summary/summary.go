
// Package summary turns a web page into a ranked list of representative
// keywords.
//
// Text is grouped by the tag it appears under, and each tag is weighted by how
// little of the page's text it holds, so sparse tags such as title and
// headings outrank bulky containers. Words and adjacent word pairs are scored
// with those weights, merged by lemma and stripped of stop words.
package summary

import (
	"context"
	"io"
	"time"

	"github.com/PuerkitoBio/goquery"

	"brightedge-url-classifier/internal/crawler"
	"brightedge-url-classifier/internal/language"
	"brightedge-url-classifier/internal/models"
	"brightedge-url-classifier/internal/parser"
)

// DefaultIgnoreWords are dropped in addition to the stop-word list.
var DefaultIgnoreWords = []string{"", " ", "  "}

// Config is shared by every page and never mutated after construction.
type Config struct {
	ImportantTags []string
	IgnoredTags   []string
	IgnoreWords   []string
	// SkipMarkers identify script-driven pages that are not fetched.
	SkipMarkers []string
	Lemmatizer  language.Lemmatizer
	StopWords   language.StopWords
}

// DefaultConfig uses the standard tag sets and the given language resources.
func DefaultConfig(lem language.Lemmatizer, stop language.StopWords) Config {
	return Config{
		ImportantTags: parser.DefaultImportantTags,
		IgnoredTags:   parser.DefaultIgnoredTags,
		IgnoreWords:   DefaultIgnoreWords,
		SkipMarkers:   crawler.DefaultSkipMarkers,
		Lemmatizer:    lem,
		StopWords:     stop,
	}
}

type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (io.ReadCloser, string, string, time.Duration, error)
}

type Summarizer struct {
	cfg     Config
	fetcher Fetcher
	parser  *parser.Parser
}

func New(cfg Config, f Fetcher) *Summarizer {
	return &Summarizer{cfg: cfg, fetcher: f, parser: parser.New()}
}

// Summarize fetches rawURL and returns its top n keywords. Failures are
// models.ErrScriptDriven, *models.FetchError or *models.ParseError.
func (s *Summarizer) Summarize(ctx context.Context, rawURL string, n int) (models.Summary, error) {
	target := crawler.NormalizeURL(rawURL)
	if crawler.ScriptDriven(target, s.cfg.SkipMarkers) {
		return models.Summary{}, models.ErrScriptDriven
	}

	body, _, contentType, _, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return models.Summary{}, crawler.AsFetchError(target, err)
	}
	defer body.Close()

	doc, err := s.parser.Parse(body, contentType)
	if err != nil {
		return models.Summary{}, &models.ParseError{URL: target, Err: err}
	}

	sum := s.FromDocument(doc, n)
	sum.URL = target
	return sum, nil
}

// FromDocument prunes doc in place and summarizes what is left.
func (s *Summarizer) FromDocument(doc *goquery.Document, n int) models.Summary {
	scores := s.Scores(doc)
	return models.Summary{
		Keywords: TopKeywords(scores, n),
		Text:     parser.LowerText(doc),
	}
}

// Scores prunes doc in place and returns its lemmatized, filtered keyword
// scores.
func (s *Summarizer) Scores(doc *goquery.Document) map[string]float64 {
	doc = parser.Prune(doc, s.cfg.IgnoredTags)
	groups := parser.GroupByTag(doc, s.cfg.ImportantTags)
	weigher := newTagWeigher(doc, s.cfg.ImportantTags)

	freq := BuildFrequencies(groups, weigher.weight)
	lemmas := Lemmatize(freq, s.cfg.Lemmatizer)
	FilterStopWords(lemmas, s.cfg.StopWords, s.cfg.IgnoreWords)
	return lemmas
}
