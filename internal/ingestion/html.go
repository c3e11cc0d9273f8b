package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockElements = "p, div, li, tr, br, h1, h2, h3, h4, h5, h6, section, article, header, footer"

// extractHTML returns the visible text of an HTML résumé and the targets of its anchors
func extractHTML(data []byte) (string, []string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()

	links := newLinkSet()
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return
		}
		links.add(href)
	})

	// Block elements end a line in the rendered text
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	text := body.Text()
	links.add(TextLinks(text)...)

	return text, links.list(), nil
}
