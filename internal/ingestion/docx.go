package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxLineBreaks = strings.NewReplacer("</w:p>", "\n", "<w:br/>", "\n", "<w:cr/>", "\n", "<w:tab/>", "\t")
	xmlTags        = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX returns the body text of a Word document, one paragraph per line
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return flattenWordXML(doc.Editable().GetContent()), nil
}

// flattenWordXML turns WordprocessingML into plain text. Runs inside a paragraph
// are concatenated; paragraphs and breaks become newlines.
func flattenWordXML(content string) string {
	content = docxLineBreaks.Replace(content)
	content = xmlTags.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
