package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// openPDF opens a PDF held in memory. The reader panics on some malformed
// cross-reference tables, which is reported as an error here.
func openPDF(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}
	return reader, nil
}

// extractPDF returns the page texts joined by newlines and the document's hyperlinks
func extractPDF(data []byte) (string, []string, error) {
	reader, err := openPDF(data)
	if err != nil {
		return "", nil, err
	}

	var pages []string
	links := newLinkSet()
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := pageText(page)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		pages = append(pages, text)

		links.add(annotationLinks(page)...)
		links.add(TextLinks(text)...)
	}

	return strings.Join(pages, "\n"), links.list(), nil
}

// pageText rebuilds the lines of a page from its text rows, top to bottom
func pageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		for _, word := range row.Content {
			sb.WriteString(word.S)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n"), nil
}
