package research

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"hiregen/internal/core"
)

// searchResult is one parsed entry from the search results page.
type searchResult struct {
	URL     string
	Title   string
	Snippet string
}

// HTML patterns for the DuckDuckGo results page. These may need adjustment
// if the page structure changes.
var (
	resultPattern  = regexp.MustCompile(`<div class="result[^"]*"[^>]*>(.*?)</div>`)
	titlePattern   = regexp.MustCompile(`<a[^>]*class="result__a"[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	snippetPattern = regexp.MustCompile(`<a[^>]*class="result__snippet"[^>]*>(.*?)</a>`)
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
)

// search runs one DuckDuckGo HTML search. A blocked or failed request is an
// error; there are no retries.
func (a *Adapter) search(ctx context.Context, query string, maxResults int) ([]searchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("b", "0")
	params.Set("kl", "uk-en")

	body, err := a.get(ctx, "https://html.duckduckgo.com/html/?"+params.Encode())
	if err != nil {
		return nil, err
	}

	if strings.Contains(strings.ToLower(body), "captcha") {
		return nil, fmt.Errorf("search blocked by CAPTCHA")
	}

	return parseSearchResults(body, maxResults), nil
}

func parseSearchResults(html string, maxResults int) []searchResult {
	var results []searchResult

	for _, match := range resultPattern.FindAllStringSubmatch(html, -1) {
		if len(results) >= maxResults {
			break
		}
		resultHTML := match[1]

		titleMatch := titlePattern.FindStringSubmatch(resultHTML)
		if len(titleMatch) < 3 {
			continue
		}

		finalURL := extractFinalURL(titleMatch[1])
		if finalURL == "" {
			continue
		}

		result := searchResult{
			URL:   finalURL,
			Title: cleanHTMLText(titleMatch[2]),
		}
		if snippetMatch := snippetPattern.FindStringSubmatch(resultHTML); len(snippetMatch) >= 2 {
			result.Snippet = cleanHTMLText(snippetMatch[1])
		}

		results = append(results, result)
	}

	return results
}

// extractFinalURL resolves DuckDuckGo's redirect URLs of the form
// /l/?uddg=https%3A//example.com/... to the target URL.
func extractFinalURL(redirectURL string) string {
	if strings.HasPrefix(redirectURL, "/l/?") || strings.HasPrefix(redirectURL, "//duckduckgo.com/l/?") {
		parsed, err := url.Parse(redirectURL)
		if err != nil {
			return ""
		}
		if uddg := parsed.Query().Get("uddg"); uddg != "" {
			decoded, err := url.QueryUnescape(uddg)
			if err != nil {
				return ""
			}
			return decoded
		}
	}
	if strings.HasPrefix(redirectURL, "http") {
		return redirectURL
	}
	return ""
}

func cleanHTMLText(html string) string {
	text := tagPattern.ReplaceAllString(html, "")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&#x27;", "'")
	return strings.TrimSpace(text)
}

// bundleFromSearchResults distills result snippets into facts. Snippets are
// short marketing or spec fragments, so they map onto features.
func bundleFromSearchResults(results []searchResult) core.FactBundle {
	bundle := core.FactBundle{Specifications: map[string]string{}}

	for _, result := range results {
		snippet := strings.TrimSpace(result.Snippet)
		if len(snippet) < minFeatureLength {
			continue
		}
		if len(snippet) > maxFeatureLength {
			snippet = snippet[:maxFeatureLength]
			if idx := strings.LastIndex(snippet, " "); idx > 0 {
				snippet = snippet[:idx]
			}
		}
		bundle.Features = append(bundle.Features, snippet)
		if bundle.SourceURL == "" {
			bundle.SourceURL = result.URL
		}
		if len(bundle.Features) >= maxScrapedFeatures {
			break
		}
	}

	bundle.Found = len(bundle.Features) > 0
	if !bundle.Found {
		bundle.Err = "no usable search results"
	}
	return bundle
}
