
package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brightedge-url-classifier/internal/classifier"
	"brightedge-url-classifier/internal/crawler"
	"brightedge-url-classifier/internal/language"
	"brightedge-url-classifier/internal/models"
	"brightedge-url-classifier/internal/summary"
)

type fakeSummarizer struct {
	pages map[string]models.Summary
	calls []string
}

func (f *fakeSummarizer) Summarize(_ context.Context, u string, _ int) (models.Summary, error) {
	f.calls = append(f.calls, u)
	if s, ok := f.pages[u]; ok {
		return s, nil
	}
	return models.Summary{}, &models.FetchError{URL: u, Status: http.StatusNotFound}
}

func newPipeline(sum Summarizer) *Pipeline {
	cl := classifier.New(classifier.DefaultRules(), classifier.NewRetailerList([]string{"www.bestshop.com"}))
	return New(cl, sum, 0, nil)
}

func TestDirectURLMatchSkipsFetch(t *testing.T) {
	fs := &fakeSummarizer{}
	res := newPipeline(fs).Classify(context.Background(), 1, "www.example.com/press/2020-news")
	assert.Equal(t, models.PressRelease, res.Classification)
	assert.Empty(t, fs.calls)
}

func TestRetailerWithSpecificationIsProductDetail(t *testing.T) {
	u := "https://www.bestshop.com/tv/oled-55"
	fs := &fakeSummarizer{pages: map[string]models.Summary{
		u: {Keywords: []string{"oled"}, Text: "oled tv specification"},
	}}
	res := newPipeline(fs).Classify(context.Background(), 1, u)
	assert.Equal(t, models.ProductDetail, res.Classification)
	assert.Equal(t, []string{"oled"}, res.Keywords)
}

func TestRetailerListingIsProductCategory(t *testing.T) {
	u := "https://www.bestshop.com/tv"
	fs := &fakeSummarizer{pages: map[string]models.Summary{
		u: {Keywords: []string{"tv"}, Text: "all televisions"},
	}}
	res := newPipeline(fs).Classify(context.Background(), 1, u)
	assert.Equal(t, models.ProductCategory, res.Classification)
}

func TestRetailerFetchFailureDefaultsToProductDetail(t *testing.T) {
	fs := &fakeSummarizer{}
	res := newPipeline(fs).Classify(context.Background(), 1, "https://www.bestshop.com/tv")
	assert.Equal(t, models.ProductDetail, res.Classification)
	assert.NotEmpty(t, res.Error)
}

func TestKeywordFallback(t *testing.T) {
	u := "https://www.example.org/p/123"
	fs := &fakeSummarizer{pages: map[string]models.Summary{
		u: {Keywords: []string{"quarterly", "earnings release"}},
	}}
	res := newPipeline(fs).Classify(context.Background(), 1, u)
	assert.Equal(t, models.PressRelease, res.Classification)
}

func TestNoClassification(t *testing.T) {
	u := "https://www.example.org/p/123"
	fs := &fakeSummarizer{pages: map[string]models.Summary{u: {Keywords: []string{"widget"}}}}
	res := newPipeline(fs).Classify(context.Background(), 1, u)
	assert.Empty(t, res.Classification)
	assert.Empty(t, res.Error)

	res = newPipeline(&fakeSummarizer{}).Classify(context.Background(), 2, "https://www.example.org/gone")
	assert.Empty(t, res.Classification)
	assert.NotEmpty(t, res.Error)
}

func TestRunKeepsOrderAndIsolatesFailures(t *testing.T) {
	urls := []string{"https://www.example.org/gone", "example.com/manual", "https://www.bestshop.com/x"}
	results, err := newPipeline(&fakeSummarizer{}).ClassifyAll(context.Background(), urls)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i+1, r.Number)
		assert.Equal(t, urls[i], r.URL)
	}
	assert.Equal(t, models.Category(""), results[0].Classification)
	assert.Equal(t, models.Documentation, results[1].Classification)
	assert.Equal(t, models.ProductDetail, results[2].Classification)
}

func TestBlankURLKeepsItsRow(t *testing.T) {
	fs := &fakeSummarizer{}
	results, err := newPipeline(fs).ClassifyAll(context.Background(), []string{"a.com/doc", "  ", "b.com/store"})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 2, results[1].Number)
	assert.Empty(t, results[1].Classification)
	assert.Equal(t, ErrEmptyURL.Error(), results[1].Error)
	assert.Equal(t, 3, results[2].Number)
	assert.Equal(t, models.StoreLocator, results[2].Classification)
	assert.Empty(t, fs.calls)
}

func TestRunStopsOnEmitError(t *testing.T) {
	boom := errors.New("disk full")
	n := 0
	err := newPipeline(&fakeSummarizer{}).Run(context.Background(), []string{"a.com/doc", "b.com/doc"}, func(models.Result) error {
		n++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
}

func TestEndToEndRetailerPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>OLED TV</title></head>
<body><div>Product Specification</div><script>var s = "x";</script></body></html>`))
	}))
	defer ts.Close()

	host := strings.TrimPrefix(ts.URL, "http://")
	cl := classifier.New(classifier.DefaultRules(), classifier.NewRetailerList([]string{"www." + host}))
	client := crawler.NewHTTPClient(5*time.Second, 2*time.Second, 1<<20)
	sum := summary.New(summary.DefaultConfig(language.DictLemmatizer{}, language.EnglishStopWords()), client)

	res := New(cl, sum, 10, nil).Classify(context.Background(), 1, ts.URL+"/tv/oled")
	assert.Equal(t, models.ProductDetail, res.Classification)
	assert.Contains(t, res.Keywords, "specification")
	assert.Empty(t, res.Error)
}
