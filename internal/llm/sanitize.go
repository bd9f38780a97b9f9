package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

var optionalKeys = []string{
	"deal_date", "deal_type", "loan_type", "card_usage",
	"loan_amount", "termination_date", "actual_termination_date", "loan_status",
}

var allowedKeys = map[string]struct{}{
	"bank_name": {}, "deal_date": {}, "deal_type": {}, "loan_type": {},
	"card_usage": {}, "loan_amount": {}, "termination_date": {},
	"actual_termination_date": {}, "loan_status": {},
}

// SanitizeReply normalizes a model reply that fails strict validation, so the
// document can still validate. Only optional fields are touched:
//   - markdown code fences are stripped, a bare object becomes a 1-item array
//   - null / "" optionals are dropped
//   - card_usage strings ("Да"/"Нет"/"true"/"false") are coerced to booleans
//   - unknown keys are removed (additionalProperties is false)
//   - strings are trimmed, currency suffixes upper-cased
//
// Returns the cleaned document and the list of touched fields.
func SanitizeReply(doc []byte) ([]byte, []string, error) {
	trimmed := stripFences(doc)

	items, err := decodeItems(trimmed)
	if err != nil {
		return nil, nil, err
	}

	var touched []string
	for _, m := range items {
		touched = append(touched, sanitizeItem(m)...)
	}

	out, err := json.Marshal(items)
	if err != nil {
		return nil, touched, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, touched, nil
}

// stripFences removes a surrounding markdown code fence if present.
func stripFences(doc []byte) []byte {
	s := strings.TrimSpace(string(doc))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	return []byte(s)
}

func decodeItems(doc []byte) ([]map[string]any, error) {
	s := strings.TrimSpace(string(doc))
	if strings.HasPrefix(s, "{") {
		var m map[string]any
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			return nil, fmt.Errorf("sanitize: decode object: %w", err)
		}
		return []map[string]any{m}, nil
	}
	var items []map[string]any
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("sanitize: decode array: %w", err)
	}
	if items == nil {
		items = []map[string]any{}
	}
	return items, nil
}

func sanitizeItem(m map[string]any) []string {
	var touched []string

	// card_usage may arrive as the report's raw "Да"/"Нет"
	if v, ok := m["card_usage"]; ok {
		switch t := v.(type) {
		case bool:
			// fine as-is
		case string:
			switch strings.ToLower(strings.TrimSpace(t)) {
			case "да", "true", "yes":
				m["card_usage"] = true
			case "нет", "false", "no":
				m["card_usage"] = false
			default:
				delete(m, "card_usage")
			}
			touched = append(touched, "card_usage")
		default:
			delete(m, "card_usage")
			touched = append(touched, "card_usage")
		}
	}

	// the amount must be the report's "number,currency" string; bare numbers
	// carry no currency and are dropped
	switch v := m["loan_amount"].(type) {
	case string:
		s := strings.TrimSpace(v)
		if len(s) > 3 {
			cur := s[len(s)-3:]
			if up := strings.ToUpper(cur); up != cur {
				s = s[:len(s)-3] + up
				touched = append(touched, "loan_amount")
			}
		}
		m["loan_amount"] = s
	case nil:
	default:
		delete(m, "loan_amount")
		touched = append(touched, "loan_amount")
	}

	// drop null / empty optionals
	for _, k := range optionalKeys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			touched = append(touched, k)
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") {
				delete(m, k)
				touched = append(touched, k)
			} else {
				m[k] = s
			}
		}
	}

	// trim the required field too
	if v, ok := m["bank_name"].(string); ok {
		m["bank_name"] = strings.TrimSpace(v)
	}

	// remove unknown keys
	for k := range m {
		if _, ok := allowedKeys[k]; !ok {
			delete(m, k)
			touched = append(touched, k)
		}
	}
	return touched
}
