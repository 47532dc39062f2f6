// Package extract supplies plain text for the scan pipeline from the
// supported document formats: TXT, CSV and PDF. TXT and CSV content is read
// verbatim so the byte offsets reported in findings line up with the file;
// PDF text comes from the embedded text layer only, never from active
// content. The core pipeline depends on this package only through the string
// it returns.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxBytes is the upload-policy ceiling applied before the core ever
// sees the text.
const DefaultMaxBytes = 10 << 20

var (
	// ErrUnsupported is returned for file types no extractor handles.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrTooLarge is returned when a file exceeds the size ceiling.
	ErrTooLarge = errors.New("file exceeds size limit")
)

// Options tunes extraction.
type Options struct {
	// MaxBytes caps the file size. Zero means DefaultMaxBytes.
	MaxBytes int64
}

func (o Options) maxBytes() int64 {
	if o.MaxBytes > 0 {
		return o.MaxBytes
	}
	return DefaultMaxBytes
}

// ForPath extracts text from a supported file, picking the extractor by
// suffix and falling back to a MIME guess.
func ForPath(path string, opts Options) (string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if st.Size() > opts.maxBytes() {
		return "", fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, filepath.Base(path), st.Size(), opts.maxBytes())
	}

	switch kind(path) {
	case "text", "csv":
		return fromPlain(path)
	case "pdf":
		return fromPDF(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
}

// kind classifies a path into text, csv, pdf or "".
func kind(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return "text"
	case ".csv":
		return "csv"
	case ".pdf":
		return "pdf"
	}
	switch mime.TypeByExtension(filepath.Ext(path)) {
	case "text/plain":
		return "text"
	case "text/csv":
		return "csv"
	case "application/pdf":
		return "pdf"
	}
	return ""
}

// fromPlain reads TXT and CSV files verbatim. Rows are not reparsed: the
// offsets in findings must match the bytes on disk.
func fromPlain(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// fromPDF extracts the text layer of a PDF.
func fromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

var safeNameRe = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SafeFilename strips characters that are unsafe in report file names.
func SafeFilename(name string) string {
	cleaned := safeNameRe.ReplaceAllString(name, "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "upload"
	}
	return cleaned
}
