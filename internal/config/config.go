package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "config.yaml"

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Language: "en_au",
		AI: AIConfig{
			APIKeys: make(map[string]string),
			BaseURLs: map[string]string{
				string(ProviderOpenAI): "https://api.openai.com/v1",
				string(ProviderClaude): "https://api.anthropic.com/v1",
			},
			DefaultModels: map[string]string{
				string(ProviderOpenAI): "gpt-4o-mini",
				string(ProviderClaude): "claude-3-5-sonnet-20241022",
			},
		},
	}
}

// ParseProvider normalizes a provider name to a known Provider
func ParseProvider(name string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(name))) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderClaude:
		return ProviderClaude, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", name)
	}
}

// SupportedProviders lists all known provider names
func SupportedProviders() []Provider {
	return []Provider{ProviderOpenAI, ProviderClaude}
}

// LoadConfig loads configuration from the config directory
func LoadConfig(configDir string) (*Config, error) {
	configPath := filepath.Join(configDir, DefaultConfigFile)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create default config if no file exists
		config := DefaultConfig()
		if err := SaveConfig(config, configDir); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure maps are initialized
	if config.AI.APIKeys == nil {
		config.AI.APIKeys = make(map[string]string)
	}
	if config.AI.BaseURLs == nil {
		config.AI.BaseURLs = make(map[string]string)
	}
	if config.AI.DefaultModels == nil {
		config.AI.DefaultModels = make(map[string]string)
	}

	// Set default language if not specified
	if config.Language == "" {
		config.Language = "en_au"
	}

	return &config, nil
}

// SaveConfig saves configuration to the config directory
func SaveConfig(config *Config, configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, DefaultConfigFile)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetProvider sets the current provider and model
func (c *Config) SetProvider(provider Provider, model string) {
	c.AI.Provider = provider
	c.AI.Model = model
}

// SetAPIKey sets an API key for a provider
func (c *Config) SetAPIKey(provider Provider, apiKey string) {
	if c.AI.APIKeys == nil {
		c.AI.APIKeys = make(map[string]string)
	}
	c.AI.APIKeys[string(provider)] = apiKey
}

// GetAPIKey gets an API key for a provider
func (c *Config) GetAPIKey(provider Provider) string {
	if c.AI.APIKeys == nil {
		return ""
	}
	return c.AI.APIKeys[string(provider)]
}

// SetBaseURL sets a base URL for a provider
func (c *Config) SetBaseURL(provider Provider, baseURL string) {
	if c.AI.BaseURLs == nil {
		c.AI.BaseURLs = make(map[string]string)
	}
	c.AI.BaseURLs[string(provider)] = baseURL
}

// GetBaseURL gets a base URL for a provider
func (c *Config) GetBaseURL(provider Provider) string {
	if c.AI.BaseURLs == nil {
		return ""
	}
	return c.AI.BaseURLs[string(provider)]
}

// GetDefaultModel gets the default model for a provider
func (c *Config) GetDefaultModel(provider Provider) string {
	if c.AI.DefaultModels == nil {
		return ""
	}
	return c.AI.DefaultModels[string(provider)]
}

// ModelFor returns the configured model for a provider, falling back to the default
func (c *Config) ModelFor(provider Provider) string {
	if c.AI.Provider == provider && c.AI.Model != "" {
		return c.AI.Model
	}
	return c.GetDefaultModel(provider)
}

// SetLanguage sets the language for the configuration
func (c *Config) SetLanguage(language string) {
	c.Language = language
}

// FormatProviderInfo returns formatted provider and model information
func (c *Config) FormatProviderInfo() string {
	if c.AI.Provider == "" {
		return "not configured"
	}
	return fmt.Sprintf("%s/%s", c.AI.Provider, c.ModelFor(c.AI.Provider))
}
