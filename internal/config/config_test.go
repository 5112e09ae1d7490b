package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if config.Language != "en_au" {
		t.Errorf("Expected default language 'en_au', got '%s'", config.Language)
	}

	if config.AI.Provider != "" {
		t.Errorf("Expected no default provider, got '%s'", config.AI.Provider)
	}

	if config.AI.APIKeys == nil {
		t.Error("Expected APIKeys to be initialized")
	}

	if config.GetBaseURL(ProviderOpenAI) == "" {
		t.Error("Expected a default base URL for openai")
	}

	if config.GetDefaultModel(ProviderClaude) == "" {
		t.Error("Expected a default model for claude")
	}
}

func TestParseProvider(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Provider
		hasError bool
	}{
		{
			name:     "OpenAI lowercase",
			input:    "openai",
			expected: ProviderOpenAI,
			hasError: false,
		},
		{
			name:     "OpenAI mixed case",
			input:    "OpenAI",
			expected: ProviderOpenAI,
			hasError: false,
		},
		{
			name:     "Claude with spaces",
			input:    "  Claude  ",
			expected: ProviderClaude,
			hasError: false,
		},
		{
			name:     "Unknown provider",
			input:    "gemini",
			hasError: true,
		},
		{
			name:     "Empty string",
			input:    "",
			hasError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider, err := ParseProvider(tc.input)

			if tc.hasError {
				if err == nil {
					t.Errorf("Expected error for '%s', but got none", tc.input)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for '%s': %v", tc.input, err)
				}
				if provider != tc.expected {
					t.Errorf("Expected provider '%s', got '%s'", tc.expected, provider)
				}
			}
		})
	}
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	configDir := t.TempDir()

	config, err := LoadConfig(configDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if config == nil {
		t.Fatal("Expected config to be created")
	}

	if _, err := os.Stat(filepath.Join(configDir, DefaultConfigFile)); err != nil {
		t.Errorf("Expected config file to be written: %v", err)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	configDir := t.TempDir()

	config := DefaultConfig()
	config.SetProvider(ProviderClaude, "claude-3-5-sonnet-20241022")
	config.SetAPIKey(ProviderClaude, "secret-key")
	config.SetBaseURL(ProviderClaude, "http://localhost:8080")
	config.SetLanguage("zh_cn")

	if err := SaveConfig(config, configDir); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadConfig(configDir)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.AI.Provider != ProviderClaude {
		t.Errorf("Expected provider 'claude', got '%s'", loaded.AI.Provider)
	}
	if loaded.GetAPIKey(ProviderClaude) != "secret-key" {
		t.Errorf("Expected API key to round-trip, got '%s'", loaded.GetAPIKey(ProviderClaude))
	}
	if loaded.GetBaseURL(ProviderClaude) != "http://localhost:8080" {
		t.Errorf("Expected base URL to round-trip, got '%s'", loaded.GetBaseURL(ProviderClaude))
	}
	if loaded.Language != "zh_cn" {
		t.Errorf("Expected language 'zh_cn', got '%s'", loaded.Language)
	}
}

func TestLoadConfig_InitializesMaps(t *testing.T) {
	configDir := t.TempDir()

	// Minimal file with no maps
	content := []byte("language: en_au\nai:\n  provider: openai\n")
	if err := os.WriteFile(filepath.Join(configDir, DefaultConfigFile), content, 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	loaded, err := LoadConfig(configDir)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.AI.APIKeys == nil || loaded.AI.BaseURLs == nil || loaded.AI.DefaultModels == nil {
		t.Error("Expected all maps to be initialized after load")
	}
}

func TestModelFor(t *testing.T) {
	config := DefaultConfig()

	// Falls back to the provider default when no model is set
	if got := config.ModelFor(ProviderOpenAI); got != "gpt-4o-mini" {
		t.Errorf("Expected default model 'gpt-4o-mini', got '%s'", got)
	}

	// Explicit model wins for the active provider
	config.SetProvider(ProviderOpenAI, "gpt-4o")
	if got := config.ModelFor(ProviderOpenAI); got != "gpt-4o" {
		t.Errorf("Expected configured model 'gpt-4o', got '%s'", got)
	}

	// Other providers still use their defaults
	if got := config.ModelFor(ProviderClaude); got != "claude-3-5-sonnet-20241022" {
		t.Errorf("Expected claude default model, got '%s'", got)
	}
}

func TestFormatProviderInfo(t *testing.T) {
	config := DefaultConfig()

	if got := config.FormatProviderInfo(); got != "not configured" {
		t.Errorf("Expected 'not configured', got '%s'", got)
	}

	config.SetProvider(ProviderOpenAI, "gpt-4o")
	if got := config.FormatProviderInfo(); got != "openai/gpt-4o" {
		t.Errorf("Expected 'openai/gpt-4o', got '%s'", got)
	}
}
