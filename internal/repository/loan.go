package repository

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/loans-extractor/constants"
	"github.com/joseph-ayodele/loans-extractor/gen/ent"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/loan"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/predicate"
	"github.com/joseph-ayodele/loans-extractor/internal/common"
	"github.com/joseph-ayodele/loans-extractor/internal/entity"
	"github.com/joseph-ayodele/loans-extractor/internal/utils"
)

// LoanRepository is the read side consumed by the exporter.
type LoanRepository interface {
	ListCompleted(ctx context.Context, pages PageRange) ([]*entity.ExportRow, error)
}

type loanRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewLoanRepository(client *ent.Client, logger *slog.Logger) LoanRepository {
	return &loanRepo{client: client, logger: logger}
}

// ListCompleted returns loans whose paragraph is DONE, joined with the page
// number, ordered by paragraph id then loan id for repeatable exports.
func (r *loanRepo) ListCompleted(ctx context.Context, pages PageRange) ([]*entity.ExportRow, error) {
	paraFilter := []predicate.Paragraph{
		paragraph.Status(string(constants.StatusDone)),
	}
	if pages.bounded() {
		if pages.Start > 0 {
			paraFilter = append(paraFilter, paragraph.PageNumberGTE(pages.Start))
		}
		if pages.End > 0 {
			paraFilter = append(paraFilter, paragraph.PageNumberLTE(pages.End))
		}
	}

	rows, err := r.client.Loan.Query().
		Where(loan.HasParagraphWith(paraFilter...)).
		WithParagraph().
		Order(ent.Asc(loan.FieldParagraphID), ent.Asc(loan.FieldID)).
		All(ctx)
	if err != nil {
		r.logger.Error("list completed failed", "error", err)
		return nil, common.NewAppError("STORE_ERROR", "list completed", common.ErrStore)
	}

	out := make([]*entity.ExportRow, 0, len(rows))
	for _, row := range rows {
		page := 0
		if row.Edges.Paragraph != nil {
			page = row.Edges.Paragraph.PageNumber
		}
		out = append(out, &entity.ExportRow{
			Loan:       *utils.ToLoan(row),
			PageNumber: page,
		})
	}
	return out, nil
}
