package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/joseph-ayodele/loans-extractor/constants"
	"github.com/joseph-ayodele/loans-extractor/internal/common"
	"github.com/joseph-ayodele/loans-extractor/internal/entity"
	"github.com/joseph-ayodele/loans-extractor/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore is an in-memory ParagraphRepository tracking state transitions.
type fakeStore struct {
	rows        map[int]*entity.Paragraph
	order       []int
	loans       map[int]int // paragraph id -> loan count
	errDetail   map[int]string
	failMarking bool
}

func newFakeStore(pending ...string) *fakeStore {
	s := &fakeStore{
		rows:      map[int]*entity.Paragraph{},
		loans:     map[int]int{},
		errDetail: map[int]string{},
	}
	for i, content := range pending {
		id := i + 1
		s.rows[id] = &entity.Paragraph{
			ID:         id,
			PageNumber: i + 1,
			Content:    content,
			Status:     string(constants.StatusPending),
		}
		s.order = append(s.order, id)
	}
	return s
}

func (s *fakeStore) InsertIfAbsent(context.Context, int, string) (int, bool, error) {
	panic("scheduler must not insert")
}

func (s *fakeStore) FetchPending(_ context.Context, limit int, _ repository.PageRange) ([]*entity.Paragraph, error) {
	var out []*entity.Paragraph
	for _, id := range s.order {
		if len(out) == limit {
			break
		}
		if p := s.rows[id]; p.Status == string(constants.StatusPending) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeStore) MarkProcessing(_ context.Context, ids []int) error {
	if s.failMarking {
		return common.NewAppError("STORE_ERROR", "mark processing", common.ErrStore)
	}
	for _, id := range ids {
		s.rows[id].Status = string(constants.StatusProcessing)
	}
	return nil
}

func (s *fakeStore) MarkDone(_ context.Context, id int, loans []*entity.Loan) error {
	s.rows[id].Status = string(constants.StatusDone)
	s.loans[id] = len(loans)
	return nil
}

func (s *fakeStore) MarkError(_ context.Context, id int, detail string) error {
	s.rows[id].Status = string(constants.StatusError)
	s.errDetail[id] = detail
	return nil
}

func (s *fakeStore) Reset(context.Context, repository.ResetScope) (int, error) {
	return 0, nil
}

func (s *fakeStore) Stats(context.Context) (repository.Stats, error) {
	return repository.Stats{}, nil
}

func (s *fakeStore) status(id int) string { return s.rows[id].Status }

// fakeExtractor scripts per-content outcomes and counts calls.
type fakeExtractor struct {
	calls   map[string]int
	outcome func(content string, attempt int) ([]*entity.Loan, error)
}

func newFakeExtractor(outcome func(content string, attempt int) ([]*entity.Loan, error)) *fakeExtractor {
	return &fakeExtractor{calls: map[string]int{}, outcome: outcome}
}

func (f *fakeExtractor) ExtractLoans(_ context.Context, text string) ([]*entity.Loan, []byte, error) {
	f.calls[text]++
	loans, err := f.outcome(text, f.calls[text])
	return loans, []byte("{}"), err
}

func oneLoan() []*entity.Loan {
	bank := "Банк"
	return []*entity.Loan{{BankName: &bank}}
}

func cfg() common.PipelineConfig {
	return common.PipelineConfig{BatchSize: 2, MaxAttempts: 3}
}

func TestScheduler_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("drains all pending rows across batches", func(t *testing.T) {
		store := newFakeStore("a", "b", "c", "d", "e")
		ext := newFakeExtractor(func(string, int) ([]*entity.Loan, error) {
			return oneLoan(), nil
		})

		sum, err := NewScheduler(cfg(), store, ext, testLogger()).Run(ctx, repository.PageRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.Batches != 3 || sum.Processed != 5 || sum.Done != 5 || sum.Loans != 5 {
			t.Errorf("summary = %+v", sum)
		}
		for id := 1; id <= 5; id++ {
			if got := store.status(id); got != "DONE" {
				t.Errorf("row %d status = %s", id, got)
			}
		}
	})

	t.Run("zero extracted loans still completes the row", func(t *testing.T) {
		store := newFakeStore("no loan facts here")
		ext := newFakeExtractor(func(string, int) ([]*entity.Loan, error) {
			return nil, nil
		})

		sum, err := NewScheduler(cfg(), store, ext, testLogger()).Run(ctx, repository.PageRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.status(1) != "DONE" {
			t.Errorf("status = %s, want DONE", store.status(1))
		}
		if sum.Loans != 0 || sum.Done != 1 {
			t.Errorf("summary = %+v", sum)
		}
	})

	t.Run("one failure does not abort the batch", func(t *testing.T) {
		store := newFakeStore("good", "bad", "good2")
		ext := newFakeExtractor(func(content string, _ int) ([]*entity.Loan, error) {
			if content == "bad" {
				return nil, fmt.Errorf("schema validation failed: %w", common.ErrValidation)
			}
			return oneLoan(), nil
		})

		sum, err := NewScheduler(cfg(), store, ext, testLogger()).Run(ctx, repository.PageRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.Done != 2 || sum.Errors != 1 {
			t.Errorf("summary = %+v", sum)
		}
		if store.status(2) != "ERROR" {
			t.Errorf("failed row status = %s", store.status(2))
		}
		if store.errDetail[2] == "" {
			t.Error("error detail not recorded")
		}
		if store.status(1) != "DONE" || store.status(3) != "DONE" {
			t.Error("healthy rows must still complete")
		}
	})

	t.Run("transient errors are retried", func(t *testing.T) {
		store := newFakeStore("flaky")
		ext := newFakeExtractor(func(_ string, attempt int) ([]*entity.Loan, error) {
			if attempt < 3 {
				return nil, fmt.Errorf("mistral status 429: %w", common.ErrTransient)
			}
			return oneLoan(), nil
		})

		sum, err := NewScheduler(cfg(), store, ext, testLogger()).Run(ctx, repository.PageRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ext.calls["flaky"] != 3 {
			t.Errorf("calls = %d, want 3", ext.calls["flaky"])
		}
		if sum.Done != 1 || sum.Errors != 0 {
			t.Errorf("summary = %+v", sum)
		}
	})

	t.Run("transient errors exhaust attempts then mark error", func(t *testing.T) {
		store := newFakeStore("down")
		ext := newFakeExtractor(func(string, int) ([]*entity.Loan, error) {
			return nil, fmt.Errorf("mistral status 503: %w", common.ErrTransient)
		})

		sum, err := NewScheduler(cfg(), store, ext, testLogger()).Run(ctx, repository.PageRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ext.calls["down"] != 3 {
			t.Errorf("calls = %d, want 3", ext.calls["down"])
		}
		if store.status(1) != "ERROR" || sum.Errors != 1 {
			t.Errorf("status = %s, summary = %+v", store.status(1), sum)
		}
	})

	t.Run("validation errors are not retried by default", func(t *testing.T) {
		store := newFakeStore("garbled")
		ext := newFakeExtractor(func(string, int) ([]*entity.Loan, error) {
			return nil, fmt.Errorf("unmarshal fields: %w", common.ErrValidation)
		})

		_, err := NewScheduler(cfg(), store, ext, testLogger()).Run(ctx, repository.PageRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ext.calls["garbled"] != 1 {
			t.Errorf("calls = %d, want 1 (no retry)", ext.calls["garbled"])
		}
		if store.status(1) != "ERROR" {
			t.Errorf("status = %s, want ERROR", store.status(1))
		}
	})

	t.Run("validation retry can be enabled", func(t *testing.T) {
		store := newFakeStore("garbled once")
		ext := newFakeExtractor(func(_ string, attempt int) ([]*entity.Loan, error) {
			if attempt == 1 {
				return nil, fmt.Errorf("schema validation failed: %w", common.ErrValidation)
			}
			return oneLoan(), nil
		})

		c := cfg()
		c.RetryValidation = true
		sum, err := NewScheduler(c, store, ext, testLogger()).Run(ctx, repository.PageRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ext.calls["garbled once"] != 2 {
			t.Errorf("calls = %d, want 2", ext.calls["garbled once"])
		}
		if sum.Done != 1 {
			t.Errorf("summary = %+v", sum)
		}
	})

	t.Run("store failures abort the run", func(t *testing.T) {
		store := newFakeStore("a")
		store.failMarking = true
		ext := newFakeExtractor(func(string, int) ([]*entity.Loan, error) {
			return oneLoan(), nil
		})

		_, err := NewScheduler(cfg(), store, ext, testLogger()).Run(ctx, repository.PageRange{})
		if err == nil {
			t.Fatal("expected store error to abort")
		}
		if !errors.Is(err, common.ErrStore) {
			t.Errorf("error = %v, want store error", err)
		}
	})

	t.Run("calls are paced by the configured delay", func(t *testing.T) {
		store := newFakeStore("a", "b", "c")
		ext := newFakeExtractor(func(string, int) ([]*entity.Loan, error) {
			return oneLoan(), nil
		})

		c := cfg()
		c.BatchSize = 3
		c.APIDelay = 20 * time.Millisecond
		start := time.Now()
		if _, err := NewScheduler(c, store, ext, testLogger()).Run(ctx, repository.PageRange{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// first call is immediate, the next two wait out the delay
		if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
			t.Errorf("elapsed = %v, want >= 40ms", elapsed)
		}
	})

	t.Run("empty store is a no-op", func(t *testing.T) {
		store := newFakeStore()
		ext := newFakeExtractor(func(string, int) ([]*entity.Loan, error) {
			t.Error("extractor must not be called")
			return nil, nil
		})

		sum, err := NewScheduler(cfg(), store, ext, testLogger()).Run(ctx, repository.PageRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.Batches != 0 || sum.Processed != 0 {
			t.Errorf("summary = %+v", sum)
		}
	})
}
