package cli

import (
	"strings"
	"testing"

	"noteai/internal/i18n"
)

func TestGetI18nString(t *testing.T) {
	if got := getI18nString(nil, "any_key", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback with nil manager, got '%s'", got)
	}

	mgr, err := i18n.NewManager(i18n.DefaultLanguage)
	if err != nil {
		t.Fatalf("Failed to create i18n manager: %v", err)
	}
	got := getI18nString(mgr, "app_short_description", "fallback")
	if got == "fallback" || got == "" {
		t.Errorf("Expected localized string, got '%s'", got)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "2026-01-01", "abc123")

	if !strings.Contains(rootCmd.Version, "1.2.3") {
		t.Errorf("Expected version string to contain '1.2.3', got '%s'", rootCmd.Version)
	}
	if !strings.Contains(rootCmd.Version, "abc123") {
		t.Errorf("Expected version string to contain commit, got '%s'", rootCmd.Version)
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range []string{"providers", "set-provider", "status"} {
		if !names[expected] {
			t.Errorf("Expected subcommand '%s' to be registered", expected)
		}
	}
}
