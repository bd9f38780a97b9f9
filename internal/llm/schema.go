package llm

// BuildLoanJSONSchema returns the JSON-Schema (draft 2020-12 subset) for the
// model reply: an array of loan objects. An empty array is a valid reply
// (paragraph with no loan facts). We pass this to the model as a structured
// output constraint and also use it locally to validate.
func BuildLoanJSONSchema() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": loanItemSchema(),
	}
}

func loanItemSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"bank_name":               map[string]any{"type": "string", "minLength": 1},
			"deal_date":               dateProp(),
			"deal_type":               map[string]any{"type": "string"},
			"loan_type":               map[string]any{"type": "string"},
			"card_usage":              map[string]any{"type": "boolean"},
			"loan_amount":             amountProp(),
			"termination_date":        dateProp(),
			"actual_termination_date": dateProp(),
			"loan_status":             map[string]any{"type": "string"},
		},
		"required": []string{"bank_name"},
	}
}

// dateProp accepts DD-MM-YYYY, including the 31-12-9999 sentinel, plus the
// report's "Н/Д" not-available marker.
func dateProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^(\d{2}-\d{2}-\d{4}|Н/Д)$`,
	}
}

// amountProp accepts "number,currency" with comma or dot decimals,
// e.g. "50000,00 RUB".
func amountProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d+(?:[.,]\d{1,2})?\s*[A-Z]{3}$`,
	}
}
