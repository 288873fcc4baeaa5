package research

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hiregen/internal/core"
)

const (
	maxScrapedFeatures = 5
	minFeatureLength   = 10
	maxFeatureLength   = 200
)

// parseManufacturerPage extracts the company name, feature bullets, and spec
// tables from a manufacturer product page.
func parseManufacturerPage(html, sourceURL string) core.FactBundle {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return core.EmptyFactBundle("failed to parse manufacturer page: " + err.Error())
	}

	bundle := core.FactBundle{
		CompanyName:    extractCompanyName(doc),
		Features:       extractFeatureBullets(doc),
		Specifications: extractSpecTables(doc),
		SourceURL:      sourceURL,
	}
	bundle.Found = len(bundle.Features) > 0 || len(bundle.Specifications) > 0
	if !bundle.Found {
		bundle.Err = "no usable facts on manufacturer page"
	}
	return bundle
}

// extractCompanyName tries the usual metadata spots before falling back to
// the page title.
func extractCompanyName(doc *goquery.Document) string {
	if name, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	if name, ok := doc.Find(`meta[name="application-name"]`).Attr("content"); ok {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	// Titles like "GX390 | Honda Engines" carry the brand after a separator.
	for _, separator := range []string{" | ", " - ", " – "} {
		if idx := strings.LastIndex(title, separator); idx >= 0 {
			return strings.TrimSpace(title[idx+len(separator):])
		}
	}
	return title
}

// extractFeatureBullets collects list items of plausible feature length.
func extractFeatureBullets(doc *goquery.Document) []string {
	var features []string
	doc.Find("ul li, ol li").EachWithBreak(func(_ int, selection *goquery.Selection) bool {
		text := strings.Join(strings.Fields(selection.Text()), " ")
		if len(text) < minFeatureLength || len(text) > maxFeatureLength {
			return true
		}
		// Navigation and cookie banners produce link-only list items.
		if selection.Find("a").Length() > 0 && len(selection.Find("a").Text()) >= len(text)/2 {
			return true
		}
		features = append(features, text)
		return len(features) < maxScrapedFeatures
	})
	return features
}

// extractSpecTables reads two-column table rows as spec key/value pairs.
func extractSpecTables(doc *goquery.Document) map[string]string {
	specs := map[string]string{}
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() != 2 {
			return
		}
		key := strings.Join(strings.Fields(cells.Eq(0).Text()), " ")
		value := strings.Join(strings.Fields(cells.Eq(1).Text()), " ")
		if key == "" || value == "" || len(key) > 50 {
			return
		}
		if _, exists := specs[key]; !exists {
			specs[key] = value
		}
	})
	return specs
}
