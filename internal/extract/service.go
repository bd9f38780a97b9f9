package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/loans-extractor/internal/repository"
)

// Result summarizes one extraction pass.
type Result struct {
	PagesRead  int
	Candidates int
	Inserted   int
	Duplicates int
}

// Service walks a page range, splits each page into loan-entry paragraphs and
// records them. Re-running over an overlapping range is a no-op for
// already-seen paragraphs (fingerprint dedupe in the store).
type Service struct {
	splitter   *Splitter
	paragraphs repository.ParagraphRepository
	logger     *slog.Logger
}

func NewService(splitter *Splitter, paragraphs repository.ParagraphRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{splitter: splitter, paragraphs: paragraphs, logger: logger}
}

// ExtractRange reads pages [start, end] from src and stores new paragraphs
// as PENDING. Page order and within-page order are preserved by insertion
// order, so ascending ids follow document order.
func (s *Service) ExtractRange(ctx context.Context, src PageSource, start, end int) (Result, error) {
	began := time.Now()
	var res Result

	for _, page := range src.Pages(start, end) {
		res.PagesRead++
		for _, candidate := range s.splitter.SplitPage(page.Text) {
			res.Candidates++
			_, inserted, err := s.paragraphs.InsertIfAbsent(ctx, page.Number, candidate)
			if err != nil {
				return res, err
			}
			if inserted {
				res.Inserted++
			} else {
				res.Duplicates++
			}
		}
		if page.Number%50 == 0 {
			s.logger.Info("extract.progress", "page", page.Number, "inserted", res.Inserted)
		}
	}

	s.logger.Info("extract.done",
		"pages", res.PagesRead,
		"candidates", res.Candidates,
		"inserted", res.Inserted,
		"duplicates", res.Duplicates,
		"elapsed_ms", time.Since(began).Milliseconds(),
	)
	return res, nil
}
