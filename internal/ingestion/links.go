package ingestion

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var inlineURLPattern = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>()"']+`)

// linkSet keeps links unique in first-seen order
type linkSet struct {
	seen  map[string]bool
	order []string
}

func newLinkSet() *linkSet {
	return &linkSet{seen: make(map[string]bool)}
}

func (s *linkSet) add(links ...string) {
	for _, link := range links {
		link = strings.TrimSpace(link)
		if link == "" || s.seen[link] {
			continue
		}
		s.seen[link] = true
		s.order = append(s.order, link)
	}
}

func (s *linkSet) list() []string {
	return s.order
}

// ExtractPDFLinks returns the URIs of every link annotation in a PDF plus the URLs
// written in its page text, deduplicated in first-seen order.
func ExtractPDFLinks(data []byte) ([]string, error) {
	_, links, err := extractPDF(data)
	if err != nil {
		return nil, err
	}
	return links, nil
}

// TextLinks finds URLs written inline in text, trimming trailing punctuation.
func TextLinks(text string) []string {
	links := newLinkSet()
	for _, match := range inlineURLPattern.FindAllString(text, -1) {
		links.add(strings.TrimRight(match, ".,;:|"))
	}
	return links.list()
}

// annotationLinks reads /Annots entries carrying a URI action or a bare /URI key
func annotationLinks(page pdf.Page) []string {
	annots := page.V.Key("Annots")

	var links []string
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if uri := annot.Key("A").Key("URI").Text(); uri != "" {
			links = append(links, uri)
			continue
		}
		if uri := annot.Key("URI").Text(); uri != "" {
			links = append(links, uri)
		}
	}
	return links
}
