package utils

import (
	"github.com/joseph-ayodele/loans-extractor/gen/ent"
	"github.com/joseph-ayodele/loans-extractor/internal/entity"
)

func ToParagraph(e *ent.Paragraph) *entity.Paragraph {
	return &entity.Paragraph{
		ID:          e.ID,
		PageNumber:  e.PageNumber,
		Content:     e.Content,
		Fingerprint: e.Fingerprint,
		Status:      e.Status,
		ErrorDetail: e.ErrorDetail,
		ExtractedAt: e.ExtractedAt,
		ProcessedAt: e.ProcessedAt,
	}
}

func ToLoan(e *ent.Loan) *entity.Loan {
	return &entity.Loan{
		ID:              e.ID,
		ParagraphID:     e.ParagraphID,
		BankName:        e.BankName,
		DealDate:        e.DealDate,
		DealType:        e.DealType,
		LoanType:        e.LoanType,
		CardUsage:       e.CardUsage,
		LoanAmount:      e.LoanAmount,
		LoanCurrency:    e.LoanCurrency,
		TerminationDate: e.TerminationDate,
		LoanStatus:      e.LoanStatus,
		ExtractedAt:     e.ExtractedAt,
	}
}
