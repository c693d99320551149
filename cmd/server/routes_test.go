
package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brightedge-url-classifier/internal/app"
	"brightedge-url-classifier/internal/classifier"
	"brightedge-url-classifier/internal/config"
	"brightedge-url-classifier/internal/language"
	"brightedge-url-classifier/internal/models"
	"brightedge-url-classifier/pkg/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Quarterly Results</title></head><body><h1>Earnings Release</h1></body></html>`))
	}))
	t.Cleanup(site.Close)

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	a := app.Assemble(cfg, classifier.DefaultRules(), []string{"www.bestshop.com"}, language.DictLemmatizer{}, logger.Nop())
	return newRouter(a, cfg.Keywords, logger.Nop()), site
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(path string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestClassify(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, postJSON("/classify", map[string]string{"url": "www.example.com/press/2020-news"}))
	require.Equal(t, http.StatusOK, w.Code)

	var res models.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, models.PressRelease, res.Classification)

	w = do(r, postJSON("/classify", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyBatchUsesPageKeywords(t *testing.T) {
	r, site := newTestRouter(t)
	w := do(r, postJSON("/classify/batch", map[string][]string{"urls": {site.URL + "/q3", "example.com/manual"}}))
	require.Equal(t, http.StatusOK, w.Code)

	var res []models.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 2)
	assert.Equal(t, models.PressRelease, res[0].Classification)
	assert.Equal(t, models.Documentation, res[1].Classification)
	assert.Equal(t, 2, res[1].Number)
}

func TestUpload(t *testing.T) {
	r, _ := newTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "sample_urls.tsv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("example.com/store-locator\nexample.com/compare\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/classify/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := do(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Number\tClassification\tURL",
		"1\tSTORE LOCATOR\texample.com/store-locator",
		"2\tPRODUCT COMPARISON\texample.com/compare",
	}, lines)
}

func TestKeywords(t *testing.T) {
	r, site := newTestRouter(t)
	w := do(r, postJSON("/keywords", map[string]any{"url": site.URL, "count": 2}))
	require.Equal(t, http.StatusOK, w.Code)

	var sum models.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Len(t, sum.Keywords, 2)

	w = do(r, postJSON("/keywords", map[string]any{"url": "https://www.example.com/page.jsp"}))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
