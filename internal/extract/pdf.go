// Package extract converts uploaded resume files into plain text for scoring.
package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// MaxUploadBytes is the largest resume file the engine accepts.
const MaxUploadBytes = 5 * 1024 * 1024

// ExtractionError represents a failure to pull text out of an uploaded file.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// PDFText extracts plain text from a PDF stream. The pdf library requires a
// ReadSeeker plus size, so the stream is spooled to a temp file first.
// Layout noise (multi-column artifacts, stray whitespace) is left for the
// scoring core's normalizer to deal with.
func PDFText(r io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "ats-scan-*.pdf")
	if err != nil {
		return "", &ExtractionError{Message: "create temp file", Cause: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, io.LimitReader(r, MaxUploadBytes)); err != nil {
		tmp.Close()
		return "", &ExtractionError{Message: "write temp file", Cause: err}
	}
	tmp.Close()

	text, err := pdfFileText(tmpPath)
	if err != nil {
		return "", &ExtractionError{Message: "read pdf", Cause: err}
	}
	return CleanText(text), nil
}

func pdfFileText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}
