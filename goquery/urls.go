package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resolveURLs rewrites anchor and image URLs under sel to absolute URLs.
// Anchors pointing at non-HTTP schemes keep an empty href.
func resolveURLs(sel *goquery.Selection, base *url.URL) {
	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href == "" {
			return
		}
		if isNonHTTPLink(href) {
			a.SetAttr("href", "")
			return
		}
		a.SetAttr("href", resolveURL(base, href))
	})
	sel.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		img.SetAttr("src", resolveURL(base, src))
	})
}

// resolveURL resolves a relative URL against a base URL.
// Returns href unchanged if it cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be dropped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
