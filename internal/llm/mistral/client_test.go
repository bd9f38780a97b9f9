package mistral

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/joseph-ayodele/loans-extractor/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chatReply(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"content": content}},
		},
	})
	return b
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "mistral-large-latest",
		Timeout: 5 * time.Second,
	}, testLogger())
}

func TestClient_ExtractLoans(t *testing.T) {
	t.Run("successful extraction", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if r.Method != http.MethodPost {
				t.Errorf("unexpected method: %s", r.Method)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
				t.Errorf("unexpected authorization: %s", auth)
			}
			var req chatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("bad request body: %v", err)
			}
			if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
				t.Errorf("response_format not requested: %+v", req.ResponseFormat)
			}
			if len(req.Messages) != 3 {
				t.Errorf("expected 3 messages, got %d", len(req.Messages))
			}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(chatReply(
				`[{"bank_name":"ПАО Сбербанк","deal_date":"15-03-2019","loan_amount":"250000,00 RUB","termination_date":"31-12-9999"}]`,
			))
		})

		loans, raw, err := client.ExtractLoans(context.Background(), "1. ПАО Сбербанк - Потребит. кредит ...")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(loans) != 1 {
			t.Fatalf("expected 1 loan, got %d", len(loans))
		}
		if *loans[0].BankName != "ПАО Сбербанк" {
			t.Errorf("bank_name = %q", *loans[0].BankName)
		}
		if *loans[0].LoanStatus != "Active" {
			t.Errorf("loan_status = %q, want Active", *loans[0].LoanStatus)
		}
		if len(raw) == 0 {
			t.Error("raw reply not returned")
		}
	})

	t.Run("zero loans is a valid outcome", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(chatReply(`[]`))
		})
		loans, _, err := client.ExtractLoans(context.Background(), "Сводная информация без займов")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(loans) != 0 {
			t.Fatalf("expected 0 loans, got %d", len(loans))
		}
	})

	t.Run("fenced reply is sanitized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(chatReply(
				"```json\n{\"bank_name\":\"Банк\",\"card_usage\":\"Да\"}\n```",
			))
		})
		loans, _, err := client.ExtractLoans(context.Background(), "текст")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(loans) != 1 {
			t.Fatalf("expected 1 loan, got %d", len(loans))
		}
		if loans[0].CardUsage == nil || !*loans[0].CardUsage {
			t.Errorf("card_usage = %v, want true", loans[0].CardUsage)
		}
	})

	t.Run("rate limit is transient", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"rate_limit"}}`))
		})
		_, _, err := client.ExtractLoans(context.Background(), "текст")
		if err == nil {
			t.Fatal("expected error")
		}
		if !common.IsTransient(err) {
			t.Errorf("429 must classify transient: %v", err)
		}
		if !strings.Contains(err.Error(), "rate limit exceeded") {
			t.Errorf("error body message lost: %v", err)
		}
	})

	t.Run("server error is transient", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, _, err := client.ExtractLoans(context.Background(), "текст")
		if !common.IsTransient(err) {
			t.Errorf("502 must classify transient: %v", err)
		}
	})

	t.Run("bad request is not transient", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid model","type":"invalid_request"}}`))
		})
		_, _, err := client.ExtractLoans(context.Background(), "текст")
		if err == nil {
			t.Fatal("expected error")
		}
		if common.IsTransient(err) {
			t.Errorf("400 must not classify transient: %v", err)
		}
	})

	t.Run("unsalvageable reply is a validation error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(chatReply("вот список ваших займов"))
		})
		_, raw, err := client.ExtractLoans(context.Background(), "текст")
		if err == nil {
			t.Fatal("expected error")
		}
		if !common.IsValidation(err) {
			t.Errorf("prose reply must classify validation: %v", err)
		}
		if len(raw) == 0 {
			t.Error("raw reply must be returned for diagnostics")
		}
	})

	t.Run("empty choices is a validation error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})
		_, _, err := client.ExtractLoans(context.Background(), "текст")
		if !common.IsValidation(err) {
			t.Errorf("empty choices must classify validation: %v", err)
		}
	})
}
