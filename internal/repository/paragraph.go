package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/joseph-ayodele/loans-extractor/constants"
	"github.com/joseph-ayodele/loans-extractor/gen/ent"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/loan"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
	"github.com/joseph-ayodele/loans-extractor/internal/common"
	"github.com/joseph-ayodele/loans-extractor/internal/entity"
	"github.com/joseph-ayodele/loans-extractor/internal/utils"
)

// PageRange restricts an operation to source pages [Start, End], 1-based
// inclusive. The zero value means no restriction.
type PageRange struct {
	Start int
	End   int
}

func (r PageRange) bounded() bool { return r.Start > 0 || r.End > 0 }

// ResetScope selects rows for an operator reset. Zero values widen the scope.
type ResetScope struct {
	IDs   []int
	Pages PageRange
	// IncludeErrors also resets ERROR rows, not just stuck PROCESSING ones.
	IncludeErrors bool
}

// Stats are the end-of-run counters.
type Stats struct {
	Total      int
	Pending    int
	Processing int
	Done       int
	Errors     int
	Loans      int
}

// ParagraphRepository owns the persisted paragraph lifecycle. Only the batch
// scheduler transitions status; extraction only inserts.
type ParagraphRepository interface {
	InsertIfAbsent(ctx context.Context, pageNumber int, content string) (id int, inserted bool, err error)
	FetchPending(ctx context.Context, limit int, pages PageRange) ([]*entity.Paragraph, error)
	MarkProcessing(ctx context.Context, ids []int) error
	MarkDone(ctx context.Context, id int, loans []*entity.Loan) error
	MarkError(ctx context.Context, id int, detail string) error
	Reset(ctx context.Context, scope ResetScope) (int, error)
	Stats(ctx context.Context) (Stats, error)
}

type paragraphRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewParagraphRepository(client *ent.Client, logger *slog.Logger) ParagraphRepository {
	return &paragraphRepo{client: client, logger: logger}
}

// Fingerprint returns the deduplication key for a paragraph: sha256 over the
// page number and the normalized content, hex-encoded.
func Fingerprint(pageNumber int, content string) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(pageNumber)))
	h.Write([]byte{'\n'})
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}

func (r *paragraphRepo) InsertIfAbsent(ctx context.Context, pageNumber int, content string) (int, bool, error) {
	fp := Fingerprint(pageNumber, content)

	existing, err := r.client.Paragraph.Query().
		Where(paragraph.Fingerprint(fp)).
		Only(ctx)
	switch {
	case err == nil:
		return existing.ID, false, nil
	case !ent.IsNotFound(err):
		return 0, false, common.NewAppError("STORE_ERROR", "lookup fingerprint", common.ErrStore)
	}

	created, err := r.client.Paragraph.Create().
		SetPageNumber(pageNumber).
		SetContent(content).
		SetFingerprint(fp).
		SetStatus(string(constants.StatusPending)).
		Save(ctx)
	if err != nil {
		// lost a race on the unique index; fall back to the winner's row
		if ent.IsConstraintError(err) {
			winner, qerr := r.client.Paragraph.Query().
				Where(paragraph.Fingerprint(fp)).
				Only(ctx)
			if qerr == nil {
				return winner.ID, false, nil
			}
		}
		r.logger.Error("paragraph insert failed", "page", pageNumber, "error", err)
		return 0, false, common.NewAppError("STORE_ERROR", "insert paragraph", common.ErrStore)
	}
	return created.ID, true, nil
}

func (r *paragraphRepo) FetchPending(ctx context.Context, limit int, pages PageRange) ([]*entity.Paragraph, error) {
	q := r.client.Paragraph.Query().
		Where(paragraph.Status(string(constants.StatusPending)))
	if pages.bounded() {
		if pages.Start > 0 {
			q = q.Where(paragraph.PageNumberGTE(pages.Start))
		}
		if pages.End > 0 {
			q = q.Where(paragraph.PageNumberLTE(pages.End))
		}
	}
	rows, err := q.Order(ent.Asc(paragraph.FieldID)).Limit(limit).All(ctx)
	if err != nil {
		r.logger.Error("fetch pending failed", "error", err)
		return nil, common.NewAppError("STORE_ERROR", "fetch pending", common.ErrStore)
	}

	out := make([]*entity.Paragraph, len(rows))
	for i, row := range rows {
		out[i] = utils.ToParagraph(row)
	}
	return out, nil
}

func (r *paragraphRepo) MarkProcessing(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.client.Paragraph.Update().
		Where(
			paragraph.IDIn(ids...),
			paragraph.Status(string(constants.StatusPending)),
		).
		SetStatus(string(constants.StatusProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("mark processing failed", "ids", ids, "error", err)
		return common.NewAppError("STORE_ERROR", "mark processing", common.ErrStore)
	}
	return nil
}

// MarkDone writes the loan rows and the DONE flip as one transaction.
// Loans from a previous pass over the same paragraph are replaced, never
// accumulated.
func (r *paragraphRepo) MarkDone(ctx context.Context, id int, loans []*entity.Loan) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return common.NewAppError("STORE_ERROR", "begin tx", common.ErrStore)
	}

	if err := r.markDoneTx(ctx, tx, id, loans); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "paragraph_id", id, "error", rerr)
		}
		r.logger.Error("mark done failed", "paragraph_id", id, "error", err)
		return common.NewAppError("STORE_ERROR", "mark done", common.ErrStore)
	}
	if err := tx.Commit(); err != nil {
		r.logger.Error("commit failed", "paragraph_id", id, "error", err)
		return common.NewAppError("STORE_ERROR", "commit mark done", common.ErrStore)
	}
	return nil
}

func (r *paragraphRepo) markDoneTx(ctx context.Context, tx *ent.Tx, id int, loans []*entity.Loan) error {
	if _, err := tx.Loan.Delete().Where(loan.ParagraphID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("delete stale loans: %w", err)
	}
	for _, l := range loans {
		c := tx.Loan.Create().
			SetParagraphID(id).
			SetNillableBankName(l.BankName).
			SetNillableDealDate(l.DealDate).
			SetNillableDealType(l.DealType).
			SetNillableLoanType(l.LoanType).
			SetNillableCardUsage(l.CardUsage).
			SetNillableLoanAmount(l.LoanAmount).
			SetNillableLoanCurrency(l.LoanCurrency).
			SetNillableTerminationDate(l.TerminationDate).
			SetNillableLoanStatus(l.LoanStatus)
		if _, err := c.Save(ctx); err != nil {
			return fmt.Errorf("insert loan: %w", err)
		}
	}
	_, err := tx.Paragraph.UpdateOneID(id).
		SetStatus(string(constants.StatusDone)).
		ClearErrorDetail().
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("flip status: %w", err)
	}
	return nil
}

func (r *paragraphRepo) MarkError(ctx context.Context, id int, detail string) error {
	_, err := r.client.Paragraph.UpdateOneID(id).
		SetStatus(string(constants.StatusError)).
		SetErrorDetail(detail).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("mark error failed", "paragraph_id", id, "error", err)
		return common.NewAppError("STORE_ERROR", "mark error", common.ErrStore)
	}
	return nil
}

// Reset flips stuck PROCESSING (and optionally ERROR) rows back to PENDING so
// a future run reconsiders them. Explicit operator action; a paid external
// call is never silently re-issued.
func (r *paragraphRepo) Reset(ctx context.Context, scope ResetScope) (int, error) {
	statuses := []string{string(constants.StatusProcessing)}
	if scope.IncludeErrors {
		statuses = append(statuses, string(constants.StatusError))
	}

	q := r.client.Paragraph.Update().
		Where(paragraph.StatusIn(statuses...))
	if len(scope.IDs) > 0 {
		q = q.Where(paragraph.IDIn(scope.IDs...))
	}
	if scope.Pages.bounded() {
		if scope.Pages.Start > 0 {
			q = q.Where(paragraph.PageNumberGTE(scope.Pages.Start))
		}
		if scope.Pages.End > 0 {
			q = q.Where(paragraph.PageNumberLTE(scope.Pages.End))
		}
	}

	n, err := q.SetStatus(string(constants.StatusPending)).
		ClearErrorDetail().
		ClearProcessedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("reset failed", "error", err)
		return 0, common.NewAppError("STORE_ERROR", "reset paragraphs", common.ErrStore)
	}
	r.logger.Info("paragraphs reset", "count", n, "include_errors", scope.IncludeErrors)
	return n, nil
}

func (r *paragraphRepo) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	count := func(status constants.ParagraphStatus) (int, error) {
		return r.client.Paragraph.Query().
			Where(paragraph.Status(string(status))).
			Count(ctx)
	}

	var err error
	if s.Total, err = r.client.Paragraph.Query().Count(ctx); err != nil {
		return s, common.NewAppError("STORE_ERROR", "count paragraphs", common.ErrStore)
	}
	if s.Pending, err = count(constants.StatusPending); err != nil {
		return s, common.NewAppError("STORE_ERROR", "count pending", common.ErrStore)
	}
	if s.Processing, err = count(constants.StatusProcessing); err != nil {
		return s, common.NewAppError("STORE_ERROR", "count processing", common.ErrStore)
	}
	if s.Done, err = count(constants.StatusDone); err != nil {
		return s, common.NewAppError("STORE_ERROR", "count done", common.ErrStore)
	}
	if s.Errors, err = count(constants.StatusError); err != nil {
		return s, common.NewAppError("STORE_ERROR", "count errors", common.ErrStore)
	}
	if s.Loans, err = r.client.Loan.Query().Count(ctx); err != nil {
		return s, common.NewAppError("STORE_ERROR", "count loans", common.ErrStore)
	}
	return s, nil
}
