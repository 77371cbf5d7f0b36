package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Structural patterns the extractor matches against. The index page lists
// one row per state in its first wikitable with the state link in the third
// column; each state page carries an infobox whose "Capital" row holds the
// value we want.
const (
	indexTableSelector = "table.wikitable"
	indexLinkColumn    = 2
	headingSelector    = "h1"
	infoboxRowSelector = "table.infobox tr"
	capitalKeyword     = "Capital"
)

// DiscoverLinks returns the target URLs of the anchors in the link column of
// the index table, in document order. Relative hrefs are resolved against
// baseURL. No matches yields an empty slice, not an error.
func DiscoverLinks(doc *goquery.Document, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %s: %w", baseURL, err)
	}

	var links []string
	doc.Find(indexTableSelector).First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		anchor := row.Find("td").Eq(indexLinkColumn).Find("a").First()
		href, ok := anchor.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())
	})
	return links, nil
}

// ExtractRecord reads the page heading and the infobox capital row into a
// Record. A page without a capital row gets the CapitalUnknown sentinel.
func ExtractRecord(doc *goquery.Document, sourceURL string) Record {
	name := strings.TrimSpace(doc.Find(headingSelector).First().Text())

	capital := CapitalUnknown
	doc.Find(infoboxRowSelector).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		label := row.Find("th").First().Text()
		if !strings.Contains(label, capitalKeyword) {
			return true
		}
		capital = strings.TrimSpace(row.Find("td").First().Text())
		return false
	})

	return Record{
		Name:      name,
		Capital:   capital,
		SourceURL: sourceURL,
	}
}
