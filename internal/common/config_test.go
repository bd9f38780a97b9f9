package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Database.DSN != "credit_history.db" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Pipeline.BatchSize != 5 {
		t.Errorf("BatchSize = %d, want 5", cfg.Pipeline.BatchSize)
	}
	if cfg.Pipeline.APIDelay != time.Second {
		t.Errorf("APIDelay = %v, want 1s", cfg.Pipeline.APIDelay)
	}
	if cfg.Pipeline.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Pipeline.MaxAttempts)
	}
	if cfg.Pipeline.RetryValidation {
		t.Error("RetryValidation must default to false")
	}
	if cfg.Extract.MinParagraphLen != 100 {
		t.Errorf("MinParagraphLen = %d, want 100", cfg.Extract.MinParagraphLen)
	}
	if cfg.LLM.Model != "mistral-large-latest" {
		t.Errorf("Model = %q", cfg.LLM.Model)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BATCH_SIZE", "10")
	t.Setenv("API_DELAY", "2.5")
	t.Setenv("MAX_ATTEMPTS", "5")
	t.Setenv("RETRY_VALIDATION", "true")
	t.Setenv("MISTRAL_TIMEOUT", "90s")

	cfg := LoadConfig()
	if cfg.Pipeline.BatchSize != 10 {
		t.Errorf("BatchSize = %d", cfg.Pipeline.BatchSize)
	}
	// bare numbers are seconds, duration strings also accepted
	if cfg.Pipeline.APIDelay != 2500*time.Millisecond {
		t.Errorf("APIDelay = %v, want 2.5s", cfg.Pipeline.APIDelay)
	}
	if cfg.LLM.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.LLM.Timeout)
	}
	if cfg.Pipeline.MaxAttempts != 5 || !cfg.Pipeline.RetryValidation {
		t.Errorf("pipeline overrides not applied: %+v", cfg.Pipeline)
	}
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database: DatabaseConfig{DSN: "test.db"},
			Pipeline: PipelineConfig{BatchSize: 5, APIDelay: time.Second, MaxAttempts: 3},
			LLM:      LLMConfig{APIKey: "key"},
		}
	}

	if err := base().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.LLM.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing API key accepted")
	}

	cfg = base()
	cfg.Database.DSN = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing DSN accepted")
	}

	cfg = base()
	cfg.Pipeline.BatchSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero batch size accepted")
	}

	cfg = base()
	cfg.Pipeline.APIDelay = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Error("negative delay accepted")
	}
}
