package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/loans-extractor/internal/common"
	"github.com/joseph-ayodele/loans-extractor/internal/entity"
	"github.com/joseph-ayodele/loans-extractor/internal/llm"
)

// ExtractLoans implements llm.FieldExtractor over Mistral chat/completions.
// The reply is validated strictly against the loan schema, optionally
// sanitized and re-validated, then coerced field by field.
func (c *Client) ExtractLoans(ctx context.Context, paragraphText string) ([]*entity.Loan, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(paragraphText),
	)

	schema := llm.BuildLoanJSONSchema()
	body := chatRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		ResponseFormat: &responseFormat{
			Type: "json_object",
		},
		Messages: []chatMessage{
			{Role: "system", Content: llm.BuildSystemPrompt()},
			{Role: "user", Content: llm.BuildUserPrompt(paragraphText)},
			{Role: "system", Content: "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	raw, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, err
	}

	var cc chatResponse
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("decode mistral response: %w", common.ErrValidation)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw", truncate(string(raw), 512),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("no choices in mistral response: %w", common.ErrValidation)
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	// Validate strictly first.
	if err := llm.ValidateLoanReply(content); err != nil {
		if c.cfg.StrictValidation {
			return nil, content, c.validationFailed(rid, start, content, err)
		}
		cleaned, touched, sErr := llm.SanitizeReply(content)
		if sErr != nil {
			c.logger.Error("llm.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, content, fmt.Errorf("sanitize failed: %w", common.ErrValidation)
		}
		if vErr := llm.ValidateLoanReply(cleaned); vErr != nil {
			return nil, content, c.validationFailed(rid, start, content, vErr)
		}
		c.logger.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "touched", touched,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		content = cleaned
	}

	var fields []llm.LoanFields
	if err := json.Unmarshal(content, &fields); err != nil {
		c.logger.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, content, fmt.Errorf("unmarshal fields: %w", common.ErrValidation)
	}

	loans := make([]*entity.Loan, 0, len(fields))
	for i, f := range fields {
		loan, err := llm.CoerceLoan(f)
		if err != nil {
			c.logger.Error("llm.extract.coerce_failed",
				"req_id", rid, "item", i, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, content, fmt.Errorf("coerce loan %d: %w", i, err)
		}
		if loan != nil {
			loans = append(loans, loan)
		}
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"loans", len(loans),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return loans, content, nil
}

func (c *Client) validationFailed(rid string, start time.Time, content []byte, err error) error {
	c.logger.Error("llm.extract.schema_validation_failed",
		"req_id", rid, "error", err, "content", truncate(string(content), 512),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fmt.Errorf("schema validation failed: %v: %w", err, common.ErrValidation)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// timeouts and connection resets are worth a paced retry
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, fmt.Errorf("mistral request timeout: %w", common.ErrTransient)
		}
		return nil, fmt.Errorf("mistral http error: %v: %w", err, common.ErrTransient)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("mistral response body close error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(raw)
		var er errorResponse
		if json.Unmarshal(raw, &er) == nil && er.Error.Message != "" {
			msg = er.Error.Message
		}
		if isTransientStatus(resp.StatusCode) {
			return nil, fmt.Errorf("mistral status %d: %s: %w", resp.StatusCode, msg, common.ErrTransient)
		}
		return nil, fmt.Errorf("mistral status %d: %s", resp.StatusCode, msg)
	}
	return raw, nil
}

// isTransientStatus reports whether a retry under the pacing delay can help.
func isTransientStatus(code int) bool {
	return code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests ||
		code >= 500
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

// Mistral chat API types

type chatRequest struct {
	Model          string          `json:"model"`
	Temperature    float32         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Messages       []chatMessage   `json:"messages"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Verify interface
var _ llm.FieldExtractor = (*Client)(nil)
