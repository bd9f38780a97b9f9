package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"

	"github.com/joseph-ayodele/loans-extractor/internal/common"
	"github.com/joseph-ayodele/loans-extractor/internal/entity"
	"github.com/joseph-ayodele/loans-extractor/internal/llm"
	"github.com/joseph-ayodele/loans-extractor/internal/repository"
)

// Summary reports what one scheduler invocation did.
type Summary struct {
	Batches   int
	Processed int
	Done      int
	Errors    int
	Loans     int
}

// Scheduler drains PENDING paragraphs in fixed-size batches, driving the
// field extractor one call at a time under a pacing delay. Execution is
// strictly sequential: the external service's rate limit is the binding
// constraint, not local compute.
type Scheduler struct {
	cfg        common.PipelineConfig
	paragraphs repository.ParagraphRepository
	extractor  llm.FieldExtractor
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewScheduler(
	cfg common.PipelineConfig,
	paragraphs repository.ParagraphRepository,
	extractor llm.FieldExtractor,
	logger *slog.Logger,
) *Scheduler {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.APIDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.APIDelay), 1)
	}
	return &Scheduler{
		cfg:        cfg,
		paragraphs: paragraphs,
		extractor:  extractor,
		limiter:    limiter,
		logger:     logger,
	}
}

// Run processes every PENDING paragraph in the page range, ascending id
// order, until none remain. Per-item failures are recorded on the row and
// never abort the batch; only store failures abort the run.
func (s *Scheduler) Run(ctx context.Context, pages repository.PageRange) (Summary, error) {
	began := time.Now()
	var sum Summary

	for {
		batch, err := s.paragraphs.FetchPending(ctx, s.cfg.BatchSize, pages)
		if err != nil {
			return sum, err
		}
		if len(batch) == 0 {
			break
		}
		sum.Batches++

		// Flip the whole batch to PROCESSING up front: a crash mid-batch
		// leaves these rows visibly in-flight for the operator, not silently
		// re-queued.
		ids := make([]int, len(batch))
		for i, p := range batch {
			ids[i] = p.ID
		}
		if err := s.paragraphs.MarkProcessing(ctx, ids); err != nil {
			return sum, err
		}

		for _, p := range batch {
			if err := s.limiter.Wait(ctx); err != nil {
				return sum, err
			}
			if err := s.processOne(ctx, p, &sum); err != nil {
				return sum, err
			}
			sum.Processed++
		}

		s.logger.Info("pipeline.batch.done",
			"batch", sum.Batches,
			"processed", sum.Processed,
			"done", sum.Done,
			"errors", sum.Errors,
		)
	}

	s.logger.Info("pipeline.run.done",
		"batches", sum.Batches,
		"processed", sum.Processed,
		"done", sum.Done,
		"errors", sum.Errors,
		"loans", sum.Loans,
		"elapsed_ms", time.Since(began).Milliseconds(),
	)
	return sum, nil
}

// processOne runs the extraction call for a single paragraph and persists the
// outcome. The returned error is non-nil only for store-level failures.
func (s *Scheduler) processOne(ctx context.Context, p *entity.Paragraph, sum *Summary) error {
	loans, raw, err := s.extractWithRetry(ctx, p)
	if err != nil {
		detail := err.Error()
		s.logger.Error("pipeline.item.failed",
			"paragraph_id", p.ID,
			"page", p.PageNumber,
			"transient", common.IsTransient(err),
			"validation", common.IsValidation(err),
			"raw", truncate(string(raw), 256),
			"error", err,
		)
		if merr := s.paragraphs.MarkError(ctx, p.ID, detail); merr != nil {
			return merr
		}
		sum.Errors++
		return nil
	}

	if err := s.paragraphs.MarkDone(ctx, p.ID, loans); err != nil {
		return err
	}
	sum.Done++
	sum.Loans += len(loans)
	s.logger.Info("pipeline.item.done",
		"paragraph_id", p.ID,
		"page", p.PageNumber,
		"loans", len(loans),
	)
	return nil
}

// extractWithRetry retries transient service failures a bounded number of
// times with the same pacing delay. Validation failures retry only when
// cfg.RetryValidation is set.
func (s *Scheduler) extractWithRetry(ctx context.Context, p *entity.Paragraph) ([]*entity.Loan, []byte, error) {
	var (
		loans []*entity.Loan
		raw   []byte
	)
	err := retry.Do(
		func() error {
			var err error
			loans, raw, err = s.extractor.ExtractLoans(ctx, p.Content)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(s.cfg.MaxAttempts)),
		retry.Delay(s.cfg.APIDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			if common.IsValidation(err) {
				return s.cfg.RetryValidation
			}
			return common.IsTransient(err)
		}),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn("pipeline.item.retry",
				"paragraph_id", p.ID,
				"attempt", n+1,
				"error", err,
			)
		}),
	)
	return loans, raw, err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func (s *Summary) String() string {
	return fmt.Sprintf("batches=%d processed=%d done=%d errors=%d loans=%d",
		s.Batches, s.Processed, s.Done, s.Errors, s.Loans)
}
