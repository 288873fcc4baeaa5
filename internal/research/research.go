// Package research gathers product facts from manufacturer pages and web
// search, with caching so repeated generations stay cheap.
package research

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"hiregen/internal/core"
	"hiregen/internal/logger"
)

// ErrResearchTimeout indicates an outbound research request exceeded its
// deadline. Callers treat this differently from other failures since the
// source may simply be slow rather than missing.
var ErrResearchTimeout = errors.New("research request timed out")

// Source gathers facts about a product from the outside world.
type Source interface {
	FetchManufacturerFacts(ctx context.Context, websiteURL, productName string) core.FactBundle
	FetchSearchFacts(ctx context.Context, productName, category string) core.FactBundle
}

// Options configures an Adapter.
type Options struct {
	Timeout   time.Duration
	RateLimit time.Duration
	UserAgent string
}

// Adapter is the live research source. It performs at most one HTTP request
// per fact fetch and caches bundles by URL and product name.
type Adapter struct {
	client    *http.Client
	userAgent string
	rateLimit time.Duration

	mu       sync.Mutex
	lastCall time.Time

	cacheMu sync.RWMutex
	cache   map[string]core.FactBundle
}

// NewAdapter creates a research adapter with sensible defaults for any
// unset option.
func NewAdapter(opts Options) *Adapter {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 2 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	}
	return &Adapter{
		client:    &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
		rateLimit: opts.RateLimit,
		cache:     map[string]core.FactBundle{},
	}
}

// FetchManufacturerFacts scrapes features and specifications from a
// manufacturer product page. Failures produce an empty bundle rather than
// aborting generation.
func (a *Adapter) FetchManufacturerFacts(ctx context.Context, websiteURL, productName string) core.FactBundle {
	if websiteURL == "" {
		return core.EmptyFactBundle("no manufacturer website on record")
	}

	cacheKey := websiteURL + "|" + productName
	if bundle, ok := a.cached(cacheKey); ok {
		logger.Debug("Research cache hit", "url", websiteURL, "product", productName)
		return bundle
	}

	body, err := a.get(ctx, websiteURL)
	if err != nil {
		if errors.Is(err, ErrResearchTimeout) {
			logger.Warn("Manufacturer page timed out", "url", websiteURL)
			return a.storeFailure(cacheKey, err)
		}
		logger.Warn("Manufacturer page fetch failed", "url", websiteURL, "error", err)
		return a.storeFailure(cacheKey, err)
	}

	bundle := parseManufacturerPage(body, websiteURL)
	a.store(cacheKey, bundle)

	logger.Info("Manufacturer research completed",
		"url", websiteURL,
		"features", len(bundle.Features),
		"specs", len(bundle.Specifications))

	return bundle
}

// FetchSearchFacts runs a single web search for the product and distills the
// result snippets into a fact bundle.
func (a *Adapter) FetchSearchFacts(ctx context.Context, productName, category string) core.FactBundle {
	query := strings.TrimSpace(productName + " " + category + " specifications")

	cacheKey := "search|" + query
	if bundle, ok := a.cached(cacheKey); ok {
		logger.Debug("Research cache hit", "query", query)
		return bundle
	}

	results, err := a.search(ctx, query, 5)
	if err != nil {
		if errors.Is(err, ErrResearchTimeout) {
			logger.Warn("Search timed out", "query", query)
			return a.storeFailure(cacheKey, err)
		}
		logger.Warn("Search failed", "query", query, "error", err)
		return a.storeFailure(cacheKey, err)
	}

	bundle := bundleFromSearchResults(results)
	a.store(cacheKey, bundle)

	logger.Info("Search research completed", "query", query, "features", len(bundle.Features))

	return bundle
}

func (a *Adapter) cached(key string) (core.FactBundle, bool) {
	a.cacheMu.RLock()
	defer a.cacheMu.RUnlock()
	bundle, ok := a.cache[key]
	return bundle, ok
}

func (a *Adapter) store(key string, bundle core.FactBundle) {
	a.cacheMu.Lock()
	defer a.cacheMu.Unlock()
	a.cache[key] = bundle
}

// storeFailure caches an empty bundle for a failed fetch, so batch
// generations do not re-fetch a source that just failed.
func (a *Adapter) storeFailure(key string, err error) core.FactBundle {
	bundle := core.EmptyFactBundle(err.Error())
	bundle.TimedOut = errors.Is(err, ErrResearchTimeout)
	a.store(key, bundle)
	return bundle
}

// get performs a single GET with rate limiting. There are no retries: a slow
// or failing source should degrade the bundle, not stall the pipeline.
func (a *Adapter) get(ctx context.Context, rawURL string) (string, error) {
	a.throttle()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-GB,en;q=0.5")

	resp, err := a.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", ErrResearchTimeout
		}
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		if isTimeout(err) {
			return "", ErrResearchTimeout
		}
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

func (a *Adapter) throttle() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if elapsed := time.Since(a.lastCall); elapsed < a.rateLimit {
		time.Sleep(a.rateLimit - elapsed)
	}
	a.lastCall = time.Now()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
