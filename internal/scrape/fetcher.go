package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// browserHeaders mimic a real browser; several storefronts answer 403 to
// anything barer than this.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9,es;q=0.8",
	"Referer":                   "https://www.google.com/",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "cross-site",
	"Cache-Control":             "max-age=0",
}

var jsonHeaders = map[string]string{
	"Accept":          "application/json",
	"Accept-Language": "en-US,en;q=0.9",
}

// Page is the raw result of one fetch.
type Page struct {
	URL        string
	FinalURL   string
	StatusCode int
	Body       []byte
}

// Fetcher retrieves a URL on behalf of a strategy. Implementations own
// politeness throttling; strategies just ask for pages.
type Fetcher interface {
	FetchHTML(ctx context.Context, rawURL string) (Page, error)
	FetchJSON(ctx context.Context, rawURL string) (Page, error)
}

// CollyFetcher implements Fetcher on top of a shared Colly collector. Each
// request runs on a clone of the base collector so per-request handlers
// never leak between fetches.
type CollyFetcher struct {
	base    *colly.Collector
	limiter *rate.Limiter
	retry   retryPolicy
	logger  *zap.Logger
}

// NewCollyFetcher builds a fetcher from the shared options.
func NewCollyFetcher(opts Options, logger *zap.Logger) (*CollyFetcher, error) {
	if opts.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be > 0")
	}
	base := colly.NewCollector(colly.UserAgent(opts.UserAgent))
	base.AllowURLRevisit = true
	base.WithTransport(&http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          32,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: opts.RequestTimeout,
		ForceAttemptHTTP2:     true,
	})
	base.SetRequestTimeout(opts.RequestTimeout)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.RequestDelay), 1)
	}

	return &CollyFetcher{
		base:    base,
		limiter: limiter,
		retry:   newRetryPolicy(),
		logger:  logger,
	}, nil
}

// FetchHTML retrieves a page with browser-like headers.
func (f *CollyFetcher) FetchHTML(ctx context.Context, rawURL string) (Page, error) {
	return f.fetch(ctx, rawURL, browserHeaders)
}

// FetchJSON retrieves a page advertising a JSON accept header.
func (f *CollyFetcher) FetchJSON(ctx context.Context, rawURL string) (Page, error) {
	return f.fetch(ctx, rawURL, jsonHeaders)
}

func (f *CollyFetcher) fetch(ctx context.Context, rawURL string, headers map[string]string) (Page, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return Page{}, fmt.Errorf("politeness wait: %w", err)
		}
		requestsTotal.Inc()

		page, err := f.visit(ctx, rawURL, headers)
		if err == nil {
			return page, nil
		}
		requestErrorsTotal.Inc()
		lastErr = err

		if !f.retry.shouldRetry(err, attempt) {
			break
		}
		delay := f.retry.backoff(attempt)
		f.logger.Debug("Retrying fetch",
			zap.String("url", rawURL),
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Page{}, ctx.Err()
		case <-timer.C:
		}
	}
	return Page{}, lastErr
}

func (f *CollyFetcher) visit(ctx context.Context, rawURL string, headers map[string]string) (Page, error) {
	collector := f.base.Clone()

	resultCh := make(chan fetchResult, 1)
	var once sync.Once
	send := func(res fetchResult) {
		once.Do(func() { resultCh <- res })
	}

	collector.OnRequest(func(r *colly.Request) {
		for k, v := range headers {
			r.Headers.Set(k, v)
		}
	})
	collector.OnResponse(func(r *colly.Response) {
		send(fetchResult{page: Page{
			URL:        rawURL,
			FinalURL:   r.Request.URL.String(),
			StatusCode: r.StatusCode,
			Body:       append([]byte{}, r.Body...),
		}})
	})
	collector.OnError(func(r *colly.Response, err error) {
		if err == nil {
			err = errors.New("unknown colly error")
		}
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		send(fetchResult{err: &fetchError{status: status, err: err}})
	})

	if err := collector.Visit(rawURL); err != nil {
		return Page{}, fmt.Errorf("visit %s: %w", rawURL, err)
	}
	collector.Wait()

	select {
	case res := <-resultCh:
		if err := ctx.Err(); err != nil {
			return Page{}, err
		}
		if res.err != nil {
			return Page{}, res.err
		}
		if res.page.StatusCode != http.StatusOK {
			return Page{}, &fetchError{status: res.page.StatusCode, err: errors.New("non-200 response")}
		}
		return res.page, nil
	default:
		return Page{}, errors.New("fetch produced no result")
	}
}

type fetchResult struct {
	page Page
	err  error
}

// fetchError carries the HTTP status alongside the underlying error so the
// retry policy can treat 4xx and transport failures differently.
type fetchError struct {
	status int
	err    error
}

func (e *fetchError) Error() string {
	if e.status > 0 {
		return fmt.Sprintf("http %d: %v", e.status, e.err)
	}
	return e.err.Error()
}

func (e *fetchError) Unwrap() error { return e.err }
