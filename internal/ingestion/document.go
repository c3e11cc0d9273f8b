// Package ingestion converts uploaded résumé documents into plain text and hyperlinks.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonathan/mockmate/internal/logger"
	"github.com/jonathan/mockmate/internal/types"
)

// Kind is the document format, named the way the unreadable sentinel names it
type Kind string

// Supported document kinds
const (
	KindPDF  Kind = "PDF"
	KindDOCX Kind = "DOCX"
	KindText Kind = "TXT"
	KindHTML Kind = "HTML"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var kindsByExtension = map[string]Kind{
	".pdf":  KindPDF,
	".docx": KindDOCX,
	".txt":  KindText,
	".html": KindHTML,
	".htm":  KindHTML,
}

// UnsupportedFileTypeError is returned for documents that are not PDF, DOCX, text or HTML
type UnsupportedFileTypeError struct {
	Filename string
	Detected string
}

func (e *UnsupportedFileTypeError) Error() string {
	return "Unsupported file type"
}

// Document is the text view of one uploaded résumé
type Document struct {
	Text     string
	Links    []string
	Metadata *Metadata
}

// Readable reports whether real text was extracted.
func (d *Document) Readable() bool {
	return !types.IsUnreadable(d.Text)
}

// DetectKind picks the document kind from the filename extension. Files without an
// extension are sniffed from their content.
func DetectKind(filename string, data []byte) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" {
		if kind, ok := kindsByExtension[ext]; ok {
			return kind, nil
		}
		return "", &UnsupportedFileTypeError{Filename: filename, Detected: ext}
	}

	detected := mimetype.Detect(data)
	switch {
	case detected.Is("application/pdf"):
		return KindPDF, nil
	case detected.Is(docxMIME):
		return KindDOCX, nil
	case detected.Is("text/html"):
		return KindHTML, nil
	case detected.Is("text/plain"):
		return KindText, nil
	}
	return "", &UnsupportedFileTypeError{Filename: filename, Detected: detected.String()}
}

// ParseDocument extracts cleaned text and hyperlinks from a document. Documents that
// open but hold no text, and documents the format library cannot open, yield the
// unreadable sentinel text instead of an error.
func ParseDocument(filename string, data []byte) (*Document, error) {
	kind, err := DetectKind(filename, data)
	if err != nil {
		return nil, err
	}

	metadata := NewMetadata(filename, kind, data)
	doc := &Document{Metadata: metadata}

	var raw string
	switch kind {
	case KindPDF:
		raw, doc.Links, err = extractPDF(data)
	case KindDOCX:
		raw, err = extractDOCX(data)
	case KindHTML:
		raw, doc.Links, err = extractHTML(data)
	case KindText:
		raw = string(data)
	}
	if err != nil {
		logger.Warn().Err(err).Str("filename", filename).Str("kind", string(kind)).Msg("document could not be read")
		metadata.Warnings = append(metadata.Warnings, err.Error())
	}

	doc.Text = CleanText(raw)
	if kind != KindPDF && kind != KindHTML {
		doc.Links = TextLinks(doc.Text)
	}
	if doc.Text == "" {
		doc.Text = types.UnreadableText(string(kind))
	}

	metadata.Readable = doc.Readable()
	metadata.Links = doc.Links

	logger.Debug().
		Str("filename", filename).
		Str("kind", string(kind)).
		Int("chars", len(doc.Text)).
		Int("links", len(doc.Links)).
		Msg("document parsed")

	return doc, nil
}

// ReadDocument reads a document from disk and parses it
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseDocument(filepath.Base(path), data)
}
