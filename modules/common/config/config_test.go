package config

import (
	"reflect"
	"testing"
	"time"
)

func TestGeminiAPIKeyListDedupes(t *testing.T) {
	c := &Config{GeminiAPIKeys: " key-a, key-b ,,key-a", GeminiAPIKey: "key-b"}
	want := []string{"key-a", "key-b"}
	if got := c.GeminiAPIKeyList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("GeminiAPIKeyList = %v, want %v", got, want)
	}

	c = &Config{}
	if got := c.GeminiAPIKeyList(); len(got) != 0 {
		t.Fatalf("empty config should have no keys, got %v", got)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_BACKEND", "")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_API_KEYS", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("RETRY_MAX_ATTEMPTS", "")
	t.Setenv("RETRY_INITIAL_DELAY_MS", "")
	t.Setenv("RETRY_MAX_JITTER_MS", "")
	t.Setenv("WORKER_CONCURRENCY", "")
	t.Setenv("JOB_TTL_MINUTES", "")
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GeminiBackend != BackendGemini {
		t.Fatalf("backend = %q, want %q", cfg.GeminiBackend, BackendGemini)
	}
	if cfg.RetryMaxAttempts != 5 || cfg.RetryInitialDelay() != 10*time.Second || cfg.RetryMaxJitter() != time.Second {
		t.Fatalf("unexpected retry defaults: %+v", cfg)
	}
	if cfg.JobTTL() != time.Hour {
		t.Fatalf("JobTTL = %v, want 1h", cfg.JobTTL())
	}
	if cfg.MaxUploadBytes() != 10<<20 {
		t.Fatalf("MaxUploadBytes = %d, want default 10MB", cfg.MaxUploadBytes())
	}
	if cfg.RedisEnabled() || cfg.StorageEnabled() {
		t.Fatalf("redis and storage should be disabled by default")
	}
	if GetConfig() != cfg {
		t.Fatalf("GetConfig should return the loaded config")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"missing api key": {"GEMINI_BACKEND": "gemini", "GEMINI_API_KEY": "", "GEMINI_API_KEYS": ""},
		"vertex project":  {"GEMINI_BACKEND": "vertex", "VERTEXAI_PROJECT": ""},
		"unknown backend": {"GEMINI_BACKEND": "openai", "GEMINI_API_KEY": "k"},
		"supabase key":    {"GEMINI_API_KEY": "k", "SUPABASE_URL": "https://x.supabase.co", "SUPABASE_SERVICE_KEY": ""},
		"zero attempts":   {"GEMINI_API_KEY": "k", "RETRY_MAX_ATTEMPTS": "0"},
		"zero job ttl":    {"GEMINI_API_KEY": "k", "JOB_TTL_MINUTES": "0"},
		"negative ttl":    {"GEMINI_API_KEY": "k", "JOB_TTL_MINUTES": "-5"},
		"zero upload":     {"GEMINI_API_KEY": "k", "MAX_UPLOAD_MB": "0"},
		"negative upload": {"GEMINI_API_KEY": "k", "MAX_UPLOAD_MB": "-1"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"GEMINI_BACKEND", "GEMINI_API_KEY", "GEMINI_API_KEYS", "SUPABASE_URL", "RETRY_MAX_ATTEMPTS", "JOB_TTL_MINUTES", "MAX_UPLOAD_MB", "WORKER_CONCURRENCY"} {
				t.Setenv(key, "")
			}
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestVertexBackendNeedsNoAPIKey(t *testing.T) {
	t.Setenv("GEMINI_BACKEND", "VERTEX")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEYS", "")
	t.Setenv("VERTEXAI_PROJECT", "my-project")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("RETRY_MAX_ATTEMPTS", "")
	t.Setenv("JOB_TTL_MINUTES", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GeminiBackend != BackendVertex || cfg.VertexAILocation != "us-central1" {
		t.Fatalf("unexpected vertex config: backend=%q location=%q", cfg.GeminiBackend, cfg.VertexAILocation)
	}
}

func TestRedisAddrAndTTL(t *testing.T) {
	c := &Config{RedisHost: "cache.internal", RedisPort: "6380", JobTTLMinutes: 15}
	if c.GetRedisAddr() != "cache.internal:6380" {
		t.Fatalf("GetRedisAddr = %q", c.GetRedisAddr())
	}
	if !c.RedisEnabled() {
		t.Fatalf("RedisEnabled should be true when host is set")
	}
	if c.JobTTL() != 15*time.Minute {
		t.Fatalf("JobTTL = %v", c.JobTTL())
	}
}
