package entity

import "time"

// Paragraph represents an extracted report paragraph for data transfer between layers.
type Paragraph struct {
	ID          int        `json:"id"`
	PageNumber  int        `json:"page_number"`
	Content     string     `json:"content"`
	Fingerprint string     `json:"fingerprint"`
	Status      string     `json:"status"`
	ErrorDetail *string    `json:"error_detail,omitempty"`
	ExtractedAt time.Time  `json:"extracted_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
