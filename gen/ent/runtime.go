// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/joseph-ayodele/loans-extractor/db/ent/schema"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/loan"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	loanFields := schema.Loan{}.Fields()
	_ = loanFields
	// loanDescLoanCurrency is the schema descriptor for loan_currency field.
	loanDescLoanCurrency := loanFields[7].Descriptor()
	// loan.LoanCurrencyValidator is a validator for the "loan_currency" field. It is called by the builders before save.
	loan.LoanCurrencyValidator = func() func(string) error {
		validators := loanDescLoanCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(loan_currency string) error {
			for _, fn := range fns {
				if err := fn(loan_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// loanDescExtractedAt is the schema descriptor for extracted_at field.
	loanDescExtractedAt := loanFields[10].Descriptor()
	// loan.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	loan.DefaultExtractedAt = loanDescExtractedAt.Default.(func() time.Time)
	paragraphFields := schema.Paragraph{}.Fields()
	_ = paragraphFields
	// paragraphDescPageNumber is the schema descriptor for page_number field.
	paragraphDescPageNumber := paragraphFields[0].Descriptor()
	// paragraph.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	paragraph.PageNumberValidator = paragraphDescPageNumber.Validators[0].(func(int) error)
	// paragraphDescContent is the schema descriptor for content field.
	paragraphDescContent := paragraphFields[1].Descriptor()
	// paragraph.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	paragraph.ContentValidator = paragraphDescContent.Validators[0].(func(string) error)
	// paragraphDescFingerprint is the schema descriptor for fingerprint field.
	paragraphDescFingerprint := paragraphFields[2].Descriptor()
	// paragraph.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	paragraph.FingerprintValidator = func() func(string) error {
		validators := paragraphDescFingerprint.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fingerprint string) error {
			for _, fn := range fns {
				if err := fn(fingerprint); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// paragraphDescStatus is the schema descriptor for status field.
	paragraphDescStatus := paragraphFields[3].Descriptor()
	// paragraph.DefaultStatus holds the default value on creation for the status field.
	paragraph.DefaultStatus = paragraphDescStatus.Default.(string)
	// paragraph.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	paragraph.StatusValidator = paragraphDescStatus.Validators[0].(func(string) error)
	// paragraphDescExtractedAt is the schema descriptor for extracted_at field.
	paragraphDescExtractedAt := paragraphFields[5].Descriptor()
	// paragraph.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	paragraph.DefaultExtractedAt = paragraphDescExtractedAt.Default.(func() time.Time)
}
