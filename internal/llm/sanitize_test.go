package llm

import (
	"encoding/json"
	"testing"
)

func decodeSanitized(t *testing.T, doc []byte) []map[string]any {
	t.Helper()
	var items []map[string]any
	if err := json.Unmarshal(doc, &items); err != nil {
		t.Fatalf("sanitized document is not a JSON array: %v\n%s", err, doc)
	}
	return items
}

func TestSanitizeReply(t *testing.T) {
	t.Run("strips markdown fences", func(t *testing.T) {
		out, _, err := SanitizeReply([]byte("```json\n[{\"bank_name\":\"Банк\"}]\n```"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := decodeSanitized(t, out)
		if len(items) != 1 || items[0]["bank_name"] != "Банк" {
			t.Errorf("got %v", items)
		}
	})

	t.Run("bare object becomes one-item array", func(t *testing.T) {
		out, _, err := SanitizeReply([]byte(`{"bank_name":"Банк"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items := decodeSanitized(t, out); len(items) != 1 {
			t.Errorf("got %v", items)
		}
	})

	t.Run("null reply becomes empty array", func(t *testing.T) {
		out, _, err := SanitizeReply([]byte(`null`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items := decodeSanitized(t, out); len(items) != 0 {
			t.Errorf("got %v", items)
		}
	})

	t.Run("card_usage strings become booleans", func(t *testing.T) {
		out, touched, err := SanitizeReply([]byte(`[{"bank_name":"Банк","card_usage":"Да"},{"bank_name":"Банк","card_usage":"нет"}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := decodeSanitized(t, out)
		if items[0]["card_usage"] != true || items[1]["card_usage"] != false {
			t.Errorf("card_usage not coerced: %v", items)
		}
		if len(touched) == 0 {
			t.Error("expected card_usage in touched fields")
		}
	})

	t.Run("null and empty optionals are dropped", func(t *testing.T) {
		out, _, err := SanitizeReply([]byte(`[{"bank_name":"Банк","deal_date":null,"loan_type":"  "}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := decodeSanitized(t, out)
		if _, ok := items[0]["deal_date"]; ok {
			t.Error("null deal_date survived")
		}
		if _, ok := items[0]["loan_type"]; ok {
			t.Error("blank loan_type survived")
		}
	})

	t.Run("unknown keys are removed", func(t *testing.T) {
		out, touched, err := SanitizeReply([]byte(`[{"bank_name":"Банк","confidence":0.9}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := decodeSanitized(t, out)
		if _, ok := items[0]["confidence"]; ok {
			t.Error("unknown key survived")
		}
		if len(touched) == 0 {
			t.Error("expected removal recorded in touched fields")
		}
	})

	t.Run("currency suffix is upper-cased", func(t *testing.T) {
		out, _, err := SanitizeReply([]byte(`[{"bank_name":"Банк","loan_amount":"50000,00 rub"}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := decodeSanitized(t, out)
		if items[0]["loan_amount"] != "50000,00 RUB" {
			t.Errorf("loan_amount = %v", items[0]["loan_amount"])
		}
	})

	t.Run("numeric amount without currency is dropped", func(t *testing.T) {
		out, _, err := SanitizeReply([]byte(`[{"bank_name":"Банк","loan_amount":50000}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := decodeSanitized(t, out)
		if _, ok := items[0]["loan_amount"]; ok {
			t.Error("bare numeric amount survived")
		}
	})

	t.Run("garbage is an error", func(t *testing.T) {
		if _, _, err := SanitizeReply([]byte("here are the loans you asked for")); err == nil {
			t.Fatal("expected decode error")
		}
	})
}

func TestSanitizedReplyValidates(t *testing.T) {
	// the end-to-end contract: a messy but salvageable reply passes schema
	// validation after one sanitize pass
	raw := []byte("```json\n" +
		`{"bank_name":" ПАО Сбербанк ","deal_date":"15-03-2019","card_usage":"Да","loan_amount":"250000,00 rub","termination_date":null,"note":"extra"}` +
		"\n```")
	if err := ValidateLoanReply(raw); err == nil {
		t.Fatal("raw reply should not validate strictly")
	}
	cleaned, _, err := SanitizeReply(raw)
	if err != nil {
		t.Fatalf("sanitize failed: %v", err)
	}
	if err := ValidateLoanReply(cleaned); err != nil {
		t.Fatalf("sanitized reply still fails validation: %v", err)
	}
}
