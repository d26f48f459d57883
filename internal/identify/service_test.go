package identify

import (
	"testing"
)

func TestNewServiceDefaults(t *testing.T) {
	t.Setenv("DISCNAMER_PROVIDER", "")
	t.Setenv("CLAUDE_MODEL", "")

	service, err := NewService("", "")
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	if service.Provider() != "anthropic" {
		t.Errorf("default provider = %q, want anthropic", service.Provider())
	}
	if service.Model() != "claude-sonnet-4-20250514" {
		t.Errorf("default model = %q, want claude-sonnet-4-20250514", service.Model())
	}
}

func TestNewServiceProviderFromEnv(t *testing.T) {
	t.Setenv("DISCNAMER_PROVIDER", "ollama")
	t.Setenv("OLLAMA_MODEL", "")

	service, err := NewService("", "")
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	if service.Provider() != "ollama" {
		t.Errorf("provider = %q, want ollama", service.Provider())
	}
	if service.Model() != "llava:13b" {
		t.Errorf("model = %q, want llava:13b", service.Model())
	}
}

func TestNewServiceExplicitModelWins(t *testing.T) {
	service, err := NewService("openai", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	if service.Model() != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", service.Model())
	}
}

func TestNewServiceUnsupportedProvider(t *testing.T) {
	if _, err := NewService("replicate", ""); err == nil {
		t.Error("expected error for unsupported provider, got nil")
	}
}

func TestCheckCredentials(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		envVar   string
		value    string
		wantErr  bool
	}{
		{
			name:     "anthropic key present",
			provider: "anthropic",
			envVar:   "CLAUDE_API",
			value:    "sk-test",
			wantErr:  false,
		},
		{
			name:     "anthropic key missing",
			provider: "anthropic",
			envVar:   "CLAUDE_API",
			value:    "",
			wantErr:  true,
		},
		{
			name:     "openai key missing",
			provider: "openai",
			envVar:   "OPENAI_API_KEY",
			value:    "",
			wantErr:  true,
		},
		{
			name:     "gemini key present",
			provider: "gemini",
			envVar:   "GEMINI_API_KEY",
			value:    "test-key",
			wantErr:  false,
		},
		{
			name:     "ollama needs no key",
			provider: "ollama",
			envVar:   "OLLAMA_URL",
			value:    "",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			service, err := NewService(tt.provider, "some-model")
			if err != nil {
				t.Fatalf("NewService failed: %v", err)
			}

			err = service.CheckCredentials()
			if tt.wantErr && err == nil {
				t.Error("expected credential error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected credential error: %v", err)
			}
		})
	}
}
