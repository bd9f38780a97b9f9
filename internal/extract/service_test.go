package extract

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/joseph-ayodele/loans-extractor/internal/entity"
	"github.com/joseph-ayodele/loans-extractor/internal/repository"
)

type fakePages struct {
	pages []PageText
}

func (f *fakePages) NumPages() int { return len(f.pages) }

func (f *fakePages) Pages(start, end int) []PageText {
	var out []PageText
	for _, p := range f.pages {
		if (start == 0 || p.Number >= start) && (end == 0 || p.Number <= end) {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakePages) Close() error { return nil }

// insertRecorder deduplicates by (page, content), the way the real store
// deduplicates by fingerprint.
type insertRecorder struct {
	seen map[string]int
	next int
}

func newInsertRecorder() *insertRecorder {
	return &insertRecorder{seen: map[string]int{}}
}

func (r *insertRecorder) InsertIfAbsent(_ context.Context, page int, content string) (int, bool, error) {
	key := repository.Fingerprint(page, content)
	if id, ok := r.seen[key]; ok {
		return id, false, nil
	}
	r.next++
	r.seen[key] = r.next
	return r.next, true, nil
}

func (r *insertRecorder) FetchPending(context.Context, int, repository.PageRange) ([]*entity.Paragraph, error) {
	return nil, nil
}
func (r *insertRecorder) MarkProcessing(context.Context, []int) error { return nil }

func (r *insertRecorder) MarkDone(context.Context, int, []*entity.Loan) error { return nil }

func (r *insertRecorder) MarkError(context.Context, int, string) error { return nil }
func (r *insertRecorder) Reset(context.Context, repository.ResetScope) (int, error) {
	return 0, nil
}
func (r *insertRecorder) Stats(context.Context) (repository.Stats, error) {
	return repository.Stats{}, nil
}

func extractLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractRange(t *testing.T) {
	src := &fakePages{pages: []PageText{
		{Number: 1, Text: loanEntry},
		{Number: 2, Text: cardEntry},
		{Number: 3, Text: "Сводная информация, записей нет."},
	}}
	store := newInsertRecorder()
	svc := NewService(NewSplitter(SplitterConfig{MinLen: 20}), store, extractLogger())

	t.Run("first pass inserts every candidate", func(t *testing.T) {
		res, err := svc.ExtractRange(context.Background(), src, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PagesRead != 3 {
			t.Errorf("PagesRead = %d, want 3", res.PagesRead)
		}
		if res.Candidates != 2 || res.Inserted != 2 || res.Duplicates != 0 {
			t.Errorf("result = %+v", res)
		}
	})

	t.Run("re-run over the same range only counts duplicates", func(t *testing.T) {
		res, err := svc.ExtractRange(context.Background(), src, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Inserted != 0 || res.Duplicates != 2 {
			t.Errorf("result = %+v", res)
		}
	})

	t.Run("page range restricts the pass", func(t *testing.T) {
		res, err := svc.ExtractRange(context.Background(), src, 2, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PagesRead != 1 || res.Candidates != 1 {
			t.Errorf("result = %+v", res)
		}
	})
}
