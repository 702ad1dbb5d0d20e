package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rendevu.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calcom.BaseURL != "https://api.cal.com/v2" {
		t.Errorf("Calcom.BaseURL = %v, want https://api.cal.com/v2", cfg.Calcom.BaseURL)
	}
	if cfg.Calcom.APIVersion != "2024-06-11" {
		t.Errorf("Calcom.APIVersion = %v, want 2024-06-11", cfg.Calcom.APIVersion)
	}
	if cfg.Calcom.Timeout != 30*time.Second {
		t.Errorf("Calcom.Timeout = %v, want 30s", cfg.Calcom.Timeout)
	}
	if cfg.AI.Provider != "anthropic" {
		t.Errorf("AI.Provider = %v, want anthropic", cfg.AI.Provider)
	}
	if cfg.HTTP.Addr != ":3000" {
		t.Errorf("HTTP.Addr = %v, want :3000", cfg.HTTP.Addr)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %v, want info", cfg.Log.Level)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
	if err := cfg.RequireCalcom(); err == nil {
		t.Error("RequireCalcom() should fail without an API key")
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("CALCOM_API_KEY", "cal_live_123")
	t.Setenv("CALCOM_API_BASE_URL", "http://localhost:9999/v2")
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("AI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("HTTP_ADDR", ":8081")
	t.Setenv("ENV", "production")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calcom.APIKey != "cal_live_123" {
		t.Errorf("Calcom.APIKey = %v, want cal_live_123", cfg.Calcom.APIKey)
	}
	if cfg.Calcom.BaseURL != "http://localhost:9999/v2" {
		t.Errorf("Calcom.BaseURL = %v", cfg.Calcom.BaseURL)
	}
	if cfg.AI.Model != "gpt-4o-mini" {
		t.Errorf("AI.Model = %v, want gpt-4o-mini", cfg.AI.Model)
	}
	if got := cfg.AIAPIKey(); got != "sk-openai" {
		t.Errorf("AIAPIKey() = %v, want sk-openai", got)
	}
	if got := cfg.AIBaseURL(); got != "http://localhost:8080/v1" {
		t.Errorf("AIBaseURL() = %v", got)
	}
	if cfg.HTTP.Addr != ":8081" {
		t.Errorf("HTTP.Addr = %v, want :8081", cfg.HTTP.Addr)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if err := cfg.RequireCalcom(); err != nil {
		t.Errorf("RequireCalcom() error = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		wantErr  bool
		errMsg   string
		validate func(*testing.T, *Config)
	}{
		{
			name: "file values",
			content: `
calcom:
  api_key: from-file
  timeout: 5s
ai:
  provider: openai
  openai_api_key: sk-file
log:
  level: debug
`,
			validate: func(t *testing.T, c *Config) {
				if c.Calcom.APIKey != "from-file" {
					t.Errorf("Calcom.APIKey = %v, want from-file", c.Calcom.APIKey)
				}
				if c.Calcom.Timeout != 5*time.Second {
					t.Errorf("Calcom.Timeout = %v, want 5s", c.Calcom.Timeout)
				}
				if c.AIAPIKey() != "sk-file" {
					t.Errorf("AIAPIKey() = %v, want sk-file", c.AIAPIKey())
				}
				if c.Log.Level != "debug" {
					t.Errorf("Log.Level = %v, want debug", c.Log.Level)
				}
			},
		},
		{
			name: "environment overrides file",
			content: `
calcom:
  api_key: from-file
`,
			env: map[string]string{"CALCOM_API_KEY": "from-env"},
			validate: func(t *testing.T, c *Config) {
				if c.Calcom.APIKey != "from-env" {
					t.Errorf("Calcom.APIKey = %v, want from-env", c.Calcom.APIKey)
				}
			},
		},
		{
			name: "invalid provider",
			content: `
ai:
  provider: gemini
`,
			wantErr: true,
			errMsg:  "invalid AI provider",
		},
		{
			name: "invalid log level",
			content: `
log:
  level: chatty
`,
			wantErr: true,
			errMsg:  "invalid log level",
		},
		{
			name:    "malformed yaml",
			content: "calcom: [unterminated",
			wantErr: true,
			errMsg:  "failed to read config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(writeConfig(t, tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Load() error = %v, want containing %q", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing explicit file")
	}
}

func TestLoadSearchesHomeConfigDir(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "rendevu")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rendevu.yaml"), []byte("http:\n  addr: \":4000\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Addr != ":4000" {
		t.Errorf("HTTP.Addr = %v, want :4000", cfg.HTTP.Addr)
	}
}
