package processor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrExtractionFailed is returned when no extractor in the chain produced
// usable text.
var ErrExtractionFailed = errors.New("text extraction failed")

const (
	// Uploads smaller than this cannot be a real document.
	minDocumentBytes = 100
	// Extracted text must exceed this many runes to count as usable.
	minUsableRunes = 50
)

// Extractor converts a raw document into plain text. Implementations are
// tried in order; the first one whose output is usable wins.
type Extractor struct {
	Name    string
	Extract func(raw []byte) (string, error)
}

// DefaultExtractors is the standard fallback chain: PDF first, then plain
// UTF-8 text.
func DefaultExtractors() []Extractor {
	return []Extractor{
		{Name: "pdf", Extract: extractPDF},
		{Name: "plaintext", Extract: extractPlainText},
	}
}

// ExtractText runs the extractor chain over raw bytes. On success it
// returns the text and a diagnostic naming the extractor; on failure the
// diagnostic explains the likely cause without stack detail.
func ExtractText(raw []byte, extractors []Extractor) (string, string, error) {
	if len(raw) < minDocumentBytes {
		return "", "파일이 비어있거나 손상됨", ErrExtractionFailed
	}
	for _, ex := range extractors {
		text, err := ex.Extract(raw)
		if err != nil {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(text)) > minUsableRunes {
			diag := fmt.Sprintf("%s로 추출 완료 (%d자)", ex.Name, utf8.RuneCountInString(text))
			return text, diag, nil
		}
	}
	return "", "텍스트 추출 실패 — 스캔 PDF이거나 보안 설정된 파일", ErrExtractionFailed
}

// extractPDF pulls plain text out of a PDF using ledongthuc/pdf.
func extractPDF(raw []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var buf bytes.Buffer
	b, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract plain text: %w", err)
	}
	if _, err := buf.ReadFrom(b); err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return buf.String(), nil
}

// extractPlainText accepts the bytes as-is when they are valid UTF-8.
func extractPlainText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", errors.New("not valid UTF-8 text")
	}
	return string(raw), nil
}
