
// Package pipeline classifies batches of URLs one at a time.
//
// Per URL the decision runs:
//
//  1. URL rules (whole URL, then URL tokens), then the retailer list.
//  2. A retailer URL is refined from its page: PRODUCT DETAIL when the page
//     mentions a specification or description, PRODUCT CATEGORY otherwise,
//     and PRODUCT DETAIL when the page is unavailable.
//  3. A URL with no match is classified from its page keywords, if the page
//     is available.
//
// A failure on one URL never stops the batch; it yields an empty
// classification for that URL.
package pipeline

import (
	"context"
	"errors"
	"strings"

	"brightedge-url-classifier/internal/classifier"
	"brightedge-url-classifier/internal/models"
	"brightedge-url-classifier/pkg/logger"
)

// DefaultKeywordCount is how many top keywords are taken from a page.
const DefaultKeywordCount = 30

// ErrEmptyURL is recorded for input rows without a URL.
var ErrEmptyURL = errors.New("empty url")

type Summarizer interface {
	Summarize(ctx context.Context, rawURL string, n int) (models.Summary, error)
}

type Pipeline struct {
	classifier   *classifier.Classifier
	summarizer   Summarizer
	keywordCount int
	log          *logger.Logger
}

func New(cl *classifier.Classifier, sum Summarizer, keywordCount int, l *logger.Logger) *Pipeline {
	if keywordCount <= 0 {
		keywordCount = DefaultKeywordCount
	}
	if l == nil {
		l = logger.Nop()
	}
	return &Pipeline{classifier: cl, summarizer: sum, keywordCount: keywordCount, log: l}
}

// Classify returns the result for one URL. number is the 1-based position of
// the URL in its batch.
func (p *Pipeline) Classify(ctx context.Context, number int, u string) models.Result {
	log := p.log.With("url", u).With("number", number)
	log.Infof("processing")

	res := models.Result{Number: number, URL: u}
	if strings.TrimSpace(u) == "" {
		log.Warnf("skipping row without url")
		res.Error = ErrEmptyURL.Error()
		return res
	}
	cat, ok := p.classifier.ClassifyURL(u)

	switch {
	case ok && cat == models.Retailer:
		sum, err := p.summarizer.Summarize(ctx, u, p.keywordCount)
		if err != nil {
			p.logFailure(log, err)
			res.Classification = models.ProductDetail
			res.Error = err.Error()
			break
		}
		res.Keywords = sum.Keywords
		res.Classification = classifier.RefineRetailer(sum.Text)

	case ok:
		res.Classification = cat

	default:
		sum, err := p.summarizer.Summarize(ctx, u, p.keywordCount)
		if err != nil {
			p.logFailure(log, err)
			res.Error = err.Error()
			break
		}
		res.Keywords = sum.Keywords
		if cat, ok := p.classifier.ClassifyKeywords(sum.Keywords); ok {
			res.Classification = cat
		}
	}

	log.Infof("done, classification %q", res.Classification)
	return res
}

// Run classifies urls in order, handing each result to emit as soon as it is
// ready. It stops early only if ctx is cancelled or emit fails.
func (p *Pipeline) Run(ctx context.Context, urls []string, emit func(models.Result) error) error {
	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(p.Classify(ctx, i+1, u)); err != nil {
			return err
		}
	}
	return nil
}

// ClassifyAll is Run collecting every result.
func (p *Pipeline) ClassifyAll(ctx context.Context, urls []string) ([]models.Result, error) {
	out := make([]models.Result, 0, len(urls))
	err := p.Run(ctx, urls, func(r models.Result) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func (p *Pipeline) logFailure(log *logger.Logger, err error) {
	var fe *models.FetchError
	var pe *models.ParseError
	switch {
	case errors.Is(err, models.ErrScriptDriven):
		log.Infof("skipped script-driven page")
	case errors.As(err, &fe):
		log.Warnf("page unavailable: %v", err)
	case errors.As(err, &pe):
		log.Warnf("page unparseable: %v", err)
	default:
		log.Errorf("summarize failed: %v", err)
	}
}
