package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"researchhub/internal/util"
)

// Sentinel is stored as the extracted text when both strategies fail, so an
// upload never fails on an unreadable PDF.
const Sentinel = "Error extracting text from PDF"

// TextFromPDF pulls plain text from a PDF on disk. It tries whole-document
// extraction first and falls back to page-by-page extraction; on a double
// failure it returns Sentinel instead of an error.
func TextFromPDF(path string) string {
	if text, err := wholeDocumentText(path); err == nil && text != "" {
		return text
	}
	if text, err := perPageText(path); err == nil && text != "" {
		return text
	}
	return Sentinel
}

func wholeDocumentText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", fmt.Errorf("read extracted text: %w", err)
	}
	return util.SanitizeText(buf.String()), nil
}

func perPageText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var parts []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = util.SanitizeText(text); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "", util.ErrNoExtractableText
	}
	return strings.Join(parts, "\n"), nil
}
