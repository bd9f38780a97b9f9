package llm

import "strings"

// BuildSystemPrompt composes the fixed instruction template for loan-field
// extraction. The reports flatten each entry into a run of labels followed by
// their values at fixed word offsets, so the prompt carries the label → field
// mapping table instead of asking the model to guess the layout.
func BuildSystemPrompt() string {
	parts := []string{
		"You are an expert financial data parser that extracts loan information from Russian credit reports.",
		"The input text is a flattened table: field labels appear in the text followed by their values at fixed word offsets.",

		"Use these exact field mappings:",
		`"Полное наименование" -> bank_name (e.g. "АО Райффайзенбанк");`,
		`"Дата сделки" -> deal_date (e.g. "18-05-2024");`,
		`"Тип сделки" -> deal_type (e.g. "Договор займа (кредита)");`,
		`"Вид займа (кредита)" -> loan_type (e.g. "Иной заем (кредит)");`,
		`"Использование платежной карты" -> card_usage ("Да" -> true, "Нет" -> false);`,
		`"Сумма и валюта" -> loan_amount (e.g. "50000,00 RUB");`,
		`"Дата прекращения по условиям" -> termination_date;`,
		`"Дата фактического прекращения" -> actual_termination_date.`,

		"Return ONLY a JSON array with one object per loan described in the text, matching the provided JSON Schema.",
		"If the text describes no loan at all, return an empty array [].",
		"Dates use DD-MM-YYYY.",
		`Keep amounts in their original "number,currency" form (e.g. "50000,00 RUB").`,
		"Preserve Russian characters in bank names.",
		`Keep the sentinel values as-is: "31-12-9999" and "Н/Д" must not be invented or dropped.`,
		"Never output null. If a field is not present, omit it.",

		"Example input:",
		`"1. Акционерное общество Райффайзенбанк - Договор займа (кредита) Полное наименование ОГРН/ИНН Вид ... Дата сделки Тип сделки Вид займа (кредита) Использование платежной карты Сумма и валюта Дата прекращения по условиям сделки 18-05-2024 Договор займа (кредита) Иной заем (кредит) Да 50000,00 RUB 31-12-9999"`,
		"Example output:",
		`[{"bank_name":"Акционерное общество Райффайзенбанк","deal_date":"18-05-2024","deal_type":"Договор займа (кредита)","loan_type":"Иной заем (кредит)","card_usage":true,"loan_amount":"50000,00 RUB","termination_date":"31-12-9999"}]`,
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages one paragraph for extraction.
func BuildUserPrompt(paragraphText string) string {
	var b strings.Builder
	b.WriteString("Parse the following credit-report entry and return ONLY valid JSON:\n\n")
	b.WriteString(strings.TrimSpace(paragraphText))
	return b.String()
}
