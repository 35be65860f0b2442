package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LlmProvider != "gemini" {
		t.Fatalf("expected default provider gemini, got %q", cfg.LlmProvider)
	}
	if cfg.LlmRetries != 0 {
		t.Fatalf("expected retries off by default, got %d", cfg.LlmRetries)
	}
	if cfg.LlmTimeout != 90*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.LlmTimeout)
	}
	if !cfg.LlmParallel {
		t.Fatal("expected parallel generation by default")
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL", "gpt-4.1-mini")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("LLM_PARALLEL", "false")
	t.Setenv("SESSION_TTL", "10m")
	t.Setenv("SESSION_MAX", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LlmProvider != "openai" || cfg.LlmModel != "gpt-4.1-mini" {
		t.Fatalf("unexpected llm config: %+v", cfg)
	}
	if cfg.LlmTimeout != 5*time.Second || cfg.SessionTTL != 10*time.Minute {
		t.Fatalf("unexpected durations: %s %s", cfg.LlmTimeout, cfg.SessionTTL)
	}
	if cfg.LlmParallel {
		t.Fatal("expected LLM_PARALLEL=false to disable parallel generation")
	}
	if cfg.SessionMax != 3 {
		t.Fatalf("unexpected session max %d", cfg.SessionMax)
	}
}

func TestLoadConfig_BadDuration(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unparsable LLM_TIMEOUT")
	}
}
