package llm

import "testing"

func TestLoanSchemaValidation(t *testing.T) {
	valid := [][]byte{
		[]byte(`[]`),
		[]byte(`[{"bank_name":"Банк"}]`),
		[]byte(`[{"bank_name":"Банк","deal_date":"15-03-2019","loan_amount":"250000,00 RUB","card_usage":true}]`),
		[]byte(`[{"bank_name":"Банк","termination_date":"31-12-9999"}]`),
		[]byte(`[{"bank_name":"Банк","deal_date":"Н/Д"}]`),
	}
	for _, doc := range valid {
		if err := ValidateLoanReply(doc); err != nil {
			t.Errorf("expected valid: %s: %v", doc, err)
		}
	}

	invalid := [][]byte{
		[]byte(`{"bank_name":"Банк"}`),                               // object, not array
		[]byte(`[{}]`),                                               // bank_name required
		[]byte(`[{"bank_name":""}]`),                                 // bank_name empty
		[]byte(`[{"bank_name":"Банк","deal_date":"2019-03-15"}]`),    // ISO date order
		[]byte(`[{"bank_name":"Банк","loan_amount":"много денег"}]`), // free-text amount
		[]byte(`[{"bank_name":"Банк","card_usage":"Да"}]`),           // string, not bool
		[]byte(`[{"bank_name":"Банк","note":"x"}]`),                  // unknown key
	}
	for _, doc := range invalid {
		if err := ValidateLoanReply(doc); err == nil {
			t.Errorf("expected invalid: %s", doc)
		}
	}
}
