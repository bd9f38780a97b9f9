package llm

import (
	"errors"
	"testing"
	"time"

	"github.com/joseph-ayodele/loans-extractor/internal/common"
)

func TestCoerceLoan(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		loan, err := CoerceLoan(LoanFields{
			BankName:              "ПАО Сбербанк",
			DealDate:              "15-03-2019",
			DealType:              "Договор займа (кредита)",
			LoanType:              "Потребительский кредит",
			LoanAmount:            "250000,00 RUB",
			TerminationDate:       "15-03-2024",
			ActualTerminationDate: "10-01-2024",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loan == nil {
			t.Fatal("expected a loan")
		}
		if *loan.BankName != "ПАО Сбербанк" {
			t.Errorf("bank_name = %q", *loan.BankName)
		}
		wantDeal := time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC)
		if !loan.DealDate.Equal(wantDeal) {
			t.Errorf("deal_date = %v, want %v", loan.DealDate, wantDeal)
		}
		if *loan.LoanAmount != 250000.00 {
			t.Errorf("loan_amount = %v", *loan.LoanAmount)
		}
		if *loan.LoanCurrency != "RUB" {
			t.Errorf("loan_currency = %q", *loan.LoanCurrency)
		}
		// both termination dates present: the loan is closed
		if *loan.LoanStatus != "Closed" {
			t.Errorf("loan_status = %q, want Closed", *loan.LoanStatus)
		}
	})

	t.Run("open-ended termination date means active", func(t *testing.T) {
		loan, err := CoerceLoan(LoanFields{
			BankName:        "АО Тинькофф Банк",
			TerminationDate: "31-12-9999",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loan.TerminationDate != nil {
			t.Errorf("sentinel date must map to nil, got %v", loan.TerminationDate)
		}
		if *loan.LoanStatus != "Active" {
			t.Errorf("loan_status = %q, want Active", *loan.LoanStatus)
		}
	})

	t.Run("not-available sentinel maps to nil", func(t *testing.T) {
		loan, err := CoerceLoan(LoanFields{
			BankName:        "Банк",
			DealDate:        "Н/Д",
			TerminationDate: "н/д",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loan.DealDate != nil || loan.TerminationDate != nil {
			t.Errorf("Н/Д must map to nil, got %v / %v", loan.DealDate, loan.TerminationDate)
		}
	})

	t.Run("termination without actual termination stays active", func(t *testing.T) {
		loan, err := CoerceLoan(LoanFields{
			BankName:        "Банк",
			TerminationDate: "01-06-2030",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *loan.LoanStatus != "Active" {
			t.Errorf("loan_status = %q, want Active", *loan.LoanStatus)
		}
	})

	t.Run("explicit status wins over derivation", func(t *testing.T) {
		loan, err := CoerceLoan(LoanFields{
			BankName:        "Банк",
			TerminationDate: "31-12-9999",
			LoanStatus:      "Closed",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *loan.LoanStatus != "Closed" {
			t.Errorf("loan_status = %q, want explicit Closed", *loan.LoanStatus)
		}
	})

	t.Run("malformed date is a validation error", func(t *testing.T) {
		_, err := CoerceLoan(LoanFields{
			BankName: "Банк",
			DealDate: "2019-03-15",
		})
		if err == nil {
			t.Fatal("expected error for ISO-ordered date")
		}
		if !errors.Is(err, common.ErrValidation) {
			t.Errorf("error is not a validation error: %v", err)
		}
	})

	t.Run("unparseable amount nulls both fields", func(t *testing.T) {
		loan, err := CoerceLoan(LoanFields{
			BankName:   "Банк",
			LoanAmount: "не указана",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loan.LoanAmount != nil || loan.LoanCurrency != nil {
			t.Errorf("expected nil amount/currency, got %v / %v", loan.LoanAmount, loan.LoanCurrency)
		}
	})

	t.Run("empty record is skipped", func(t *testing.T) {
		loan, err := CoerceLoan(LoanFields{LoanStatus: "Active"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loan != nil {
			t.Fatalf("record without bank, date or amount must be skipped, got %+v", loan)
		}
	})
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in       string
		amount   float64
		currency string
		ok       bool
	}{
		{"50000,00 RUB", 50000.00, "RUB", true},
		{"1234.5 USD", 1234.5, "USD", true},
		{"300000RUB", 300000, "RUB", true},
		{"1 000 000,00 RUB", 1000000.00, "RUB", true},
		{"50000,00 rub", 50000.00, "RUB", true},
		{"", 0, "", false},
		{"RUB", 0, "", false},
		{"пятьдесят тысяч RUB", 0, "", false},
		{"50000,00", 0, "", false},
	}
	for _, tc := range cases {
		amount, currency := parseAmount(tc.in)
		if !tc.ok {
			if amount != nil || currency != nil {
				t.Errorf("parseAmount(%q) = %v %v, want nil", tc.in, amount, currency)
			}
			continue
		}
		if amount == nil || currency == nil {
			t.Errorf("parseAmount(%q) = nil, want %v %v", tc.in, tc.amount, tc.currency)
			continue
		}
		if *amount != tc.amount || *currency != tc.currency {
			t.Errorf("parseAmount(%q) = %v %v, want %v %v", tc.in, *amount, *currency, tc.amount, tc.currency)
		}
	}
}
