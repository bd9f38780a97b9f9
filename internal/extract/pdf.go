package extract

import (
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"
)

// PageText is one page of raw text with its 1-based page number.
type PageText struct {
	Number int
	Text   string
}

// PageSource yields raw text per page for a requested range. A page that
// cannot be decoded is skipped, not fatal to the run.
type PageSource interface {
	NumPages() int
	Pages(start, end int) []PageText
	Close() error
}

type pdfSource struct {
	path   string
	reader *pdf.Reader
	closer interface{ Close() error }
	logger *slog.Logger
}

// OpenPDF opens a PDF file as a PageSource.
func OpenPDF(path string, logger *slog.Logger) (PageSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	return &pdfSource{path: path, reader: r, closer: f, logger: logger}, nil
}

func (s *pdfSource) NumPages() int { return s.reader.NumPage() }

// Pages returns text for pages [start, end], 1-based inclusive, clamped to
// the document. Per-page extraction failures are logged and skipped.
func (s *pdfSource) Pages(start, end int) []PageText {
	if start < 1 {
		start = 1
	}
	if n := s.reader.NumPage(); end > n || end < 1 {
		end = n
	}

	var out []PageText
	for num := start; num <= end; num++ {
		page := s.reader.Page(num)
		if page.V.IsNull() {
			s.logger.Warn("page has no content, skipping", "path", s.path, "page", num)
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			s.logger.Warn("page decode failed, skipping", "path", s.path, "page", num, "error", err)
			continue
		}
		out = append(out, PageText{Number: num, Text: text})
	}
	return out
}

func (s *pdfSource) Close() error { return s.closer.Close() }
