
package crawler

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
	"golang.org/x/time/rate"

	"brightedge-url-classifier/internal/models"
)

const DefaultUserAgent = "brightedge-url-classifier/1.0 (+https://example.com)"

var (
	ErrNonHTML     = errors.New("non-html content")
	ErrDisallowed  = errors.New("disallowed by robots.txt")
	errInvalidURL  = errors.New("invalid url")
	robotsBodySize = int64(512 * 1024)
)

type HTTPClient struct {
	client    *http.Client
	sizeCap   int64
	userAgent string
	limiter   *rate.Limiter

	respectRobots bool
	robotsMu      sync.Mutex
	robots        map[string]*robotstxt.RobotsData
}

type Option func(*HTTPClient)

// WithRateLimit spaces requests to at most rps per second. rps <= 0 disables
// limiting.
func WithRateLimit(rps float64) Option {
	return func(h *HTTPClient) {
		if rps > 0 {
			h.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithRobots makes Fetch refuse URLs the host's robots.txt disallows.
func WithRobots(enabled bool) Option {
	return func(h *HTTPClient) { h.respectRobots = enabled }
}

func WithUserAgent(ua string) Option {
	return func(h *HTTPClient) {
		if ua != "" {
			h.userAgent = ua
		}
	}
}

func NewHTTPClient(timeout, dialTimeout time.Duration, sizeCap int64, opts ...Option) *HTTPClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	h := &HTTPClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		sizeCap:   sizeCap,
		userAgent: DefaultUserAgent,
		robots:    map[string]*robotstxt.RobotsData{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Fetch GETs rawURL and returns its body, final URL, content type and the
// time taken. Every failure is a *models.FetchError.
func (h *HTTPClient) Fetch(ctx context.Context, rawURL string) (io.ReadCloser, string, string, time.Duration, error) {
	start := time.Now()
	fail := func(status int, err error) (io.ReadCloser, string, string, time.Duration, error) {
		return nil, "", "", 0, &models.FetchError{URL: rawURL, Status: status, Err: err}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fail(0, errInvalidURL)
	}
	if h.respectRobots && !h.allowed(ctx, u) {
		return fail(0, ErrDisallowed)
	}
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return fail(0, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fail(0, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return fail(resp.StatusCode, fmt.Errorf("http status %d", resp.StatusCode))
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if !strings.Contains(mediaType, "text/html") && !strings.Contains(mediaType, "application/xhtml+xml") && mediaType != "" {
		// still allow if empty (some servers omit), otherwise reject non-html
		resp.Body.Close()
		return fail(0, ErrNonHTML)
	}

	var body io.Reader = resp.Body
	closers := []io.Closer{resp.Body}
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return fail(0, err)
		}
		body = gz
		closers = append([]io.Closer{gz}, closers...)
	}

	// enforce a size cap
	rc := &cappedBody{Reader: io.LimitReader(body, h.sizeCap), closers: closers}
	return rc, resp.Request.URL.String(), contentType, time.Since(start), nil
}

type cappedBody struct {
	io.Reader
	closers []io.Closer // decoder first, then the response body
}

func (c *cappedBody) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// allowed reports whether the robots.txt of u's host permits fetching u.
// Hosts without a readable robots.txt allow everything.
func (h *HTTPClient) allowed(ctx context.Context, u *url.URL) bool {
	key := u.Scheme + "://" + u.Host

	h.robotsMu.Lock()
	data, seen := h.robots[key]
	h.robotsMu.Unlock()

	if !seen {
		data = h.loadRobots(ctx, key)
		h.robotsMu.Lock()
		h.robots[key] = data
		h.robotsMu.Unlock()
	}
	if data == nil {
		return true
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, h.userAgent)
}

func (h *HTTPClient) loadRobots(ctx context.Context, base string) *robotstxt.RobotsData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/robots.txt", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", h.userAgent)
	resp, err := h.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, robotsBodySize))
	if err != nil {
		return nil
	}
	data, err := robotstxt.FromBytes(raw)
	if err != nil {
		return nil
	}
	return data
}
