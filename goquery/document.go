// Package goquery implements the markup normalizer and the two table
// extractors on top of CSS-selector queries. No fetching happens here:
// extractors receive raw HTML and return ordered records or a coded error.
package goquery

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dcravo/tabelle"
)

// Parse builds a queryable document from raw markup. Returns EMALFORMED if
// the body cannot be parsed as markup at all; an expected section being
// absent is the extractors' concern, not Parse's.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, tabelle.Errorf(tabelle.EMALFORMED, "parse markup: %v", err)
	}
	return doc, nil
}

// resolveURL resolves an href against the base URL. Returns the empty
// string when either side is unparseable, so callers can treat it as "no
// link" rather than failing the row.
func resolveURL(baseURL, href string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// cellText returns the trimmed text content of a selection.
func cellText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
