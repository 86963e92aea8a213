package config

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so the ambient environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY",
		"FROSTDESK_HTTP_ADDR",
		"FROSTDESK_DB_DSN",
		"FROSTDESK_REDIS_ADDR",
		"SPEECH_SERVICE_URL",
		"SPEECH_API_KEY",
		"SPEECH_LISTEN_SECONDS",
		"SPEECH_MAX_ATTEMPTS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresGeminiKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() must fail when GEMINI_API_KEY is absent")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("error should name the missing variable, got %q", err)
	}
}

func TestLoadRejectsSpeechURLWithoutKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SPEECH_SERVICE_URL", "https://speech.example.com")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() must fail when SPEECH_SERVICE_URL is set without SPEECH_API_KEY")
	}
	if !strings.Contains(err.Error(), "SPEECH_API_KEY") {
		t.Errorf("error should name the missing variable, got %q", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if !strings.Contains(cfg.DB.DSN, "frostdesk") {
		t.Errorf("DB.DSN = %q", cfg.DB.DSN)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("Redis.Addr should default to disabled, got %q", cfg.Redis.Addr)
	}
	if cfg.AI.GeminiKey != "test-key" {
		t.Errorf("AI.GeminiKey = %q", cfg.AI.GeminiKey)
	}
	if cfg.Speech.ListenSeconds != 10 || cfg.Speech.MaxAttempts != 3 {
		t.Errorf("Speech defaults = %+v", cfg.Speech)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("FROSTDESK_HTTP_ADDR", ":9090")
	t.Setenv("FROSTDESK_REDIS_ADDR", "localhost:6379")
	t.Setenv("SPEECH_SERVICE_URL", "https://speech.example.com")
	t.Setenv("SPEECH_API_KEY", "speech-key")
	t.Setenv("SPEECH_LISTEN_SECONDS", "5")
	t.Setenv("SPEECH_MAX_ATTEMPTS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
	if cfg.Speech.ServiceURL != "https://speech.example.com" || cfg.Speech.APIKey != "speech-key" {
		t.Errorf("Speech = %+v", cfg.Speech)
	}
	if cfg.Speech.ListenSeconds != 5 || cfg.Speech.MaxAttempts != 2 {
		t.Errorf("Speech numbers = %+v", cfg.Speech)
	}
}
