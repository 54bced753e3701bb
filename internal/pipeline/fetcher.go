package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ppiankov/legisearch/internal/model"
	"github.com/ppiankov/legisearch/internal/util"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ErrSourceUnavailable means the roster page could not be retrieved
var ErrSourceUnavailable = eris.New("source unavailable")

// SourceError describes why the roster page could not be retrieved
type SourceError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *SourceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("source unavailable: %s returned %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("source unavailable: %s: %v", e.URL, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrSourceUnavailable
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// FetchResult holds the fetched page
type FetchResult struct {
	HTML        []byte
	StatusCode  int
	ContentType string
	FinalURL    string
}

// Fetcher performs the single roster GET
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	limiter    *util.HostLimiter
}

// NewFetcher creates a Fetcher from configuration
func NewFetcher(cfg *model.Config) *Fetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy)
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	client := &http.Client{
		Timeout:   cfg.HTTP.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 3 {
				return eris.New("stopped after 3 redirects")
			}
			return nil
		},
	}

	f := &Fetcher{
		httpClient: client,
		userAgent:  cfg.HTTP.UserAgent,
		maxBytes:   cfg.HTTP.MaxBodyBytes,
		limiter:    util.NewHostLimiter(cfg.Rate.RequestsPerSecond, cfg.Rate.Burst),
	}
	if cfg.Robots.Enabled {
		f.robots = util.NewRobotsChecker(client, cfg.HTTP.UserAgent, time.Hour, f.limiter)
	}
	return f
}

// Fetch retrieves rawURL. Only a complete 200 response succeeds; every
// failure matches ErrSourceUnavailable. The robots.txt request and the page
// request share one host limiter, so a crawl delay holds back the page.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, &SourceError{URL: rawURL, Err: err}
		}
		if !allowed {
			return nil, &SourceError{URL: rawURL, Err: eris.New("disallowed by robots.txt")}
		}
		f.limiter.SetCrawlDelay(rawURL, delay)
	}

	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, &SourceError{URL: rawURL, Err: eris.Wrap(err, "rate limit wait")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &SourceError{URL: rawURL, Err: eris.Wrap(err, "create request")}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &SourceError{URL: rawURL, Err: eris.Wrap(err, "fetch")}
	}
	defer func() { _ = resp.Body.Close() }()

	zap.L().Debug("roster page fetched",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &SourceError{URL: rawURL, StatusCode: resp.StatusCode, Err: eris.Errorf("unexpected status: %s", resp.Status)}
	}

	// one byte past the limit tells a full page from a truncated one
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, &SourceError{URL: rawURL, Err: eris.Wrap(err, "read body")}
	}
	if int64(len(body)) > f.maxBytes {
		return nil, &SourceError{URL: rawURL, Err: eris.Errorf("body exceeds %d bytes", f.maxBytes)}
	}

	return &FetchResult{
		HTML:        body,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
	}, nil
}

// proxyFunc prefers explicit proxies and falls back to HTTP_PROXY/HTTPS_PROXY
func proxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
