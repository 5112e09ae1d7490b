package ai

import (
	"context"
	"fmt"
	"sync"

	"noteai/internal/config"
)

// Manager owns the active AI client and the persisted configuration.
// At most one client is active at a time; commands executed while no
// client is bound fail with ErrProviderNotConfigured.
type Manager struct {
	mu        sync.RWMutex
	config    *config.Config
	configDir string
	client    Client
}

// NewManager creates a new AI manager
func NewManager(configDir string) (*Manager, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load AI config: %w", err)
	}

	manager := &Manager{
		config:    cfg,
		configDir: configDir,
	}

	// Try to initialize client, but don't fail if it's not possible.
	// This allows the manager to be created even if API keys aren't configured yet
	_ = manager.initializeClient()

	return manager, nil
}

// NewManagerWithValidation creates a new AI manager and requires valid client initialization
func NewManagerWithValidation(configDir string) (*Manager, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load AI config: %w", err)
	}

	manager := &Manager{
		config:    cfg,
		configDir: configDir,
	}

	if err := manager.initializeClient(); err != nil {
		return nil, fmt.Errorf("failed to initialize AI client: %w", err)
	}

	return manager, nil
}

// initializeClient binds the client matching the configured provider
func (m *Manager) initializeClient() error {
	provider := m.config.AI.Provider
	if provider == "" {
		return ErrProviderNotConfigured
	}

	client, err := m.buildClient(provider, m.config.GetAPIKey(provider))
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.client = client
	m.mu.Unlock()

	return nil
}

// buildClient constructs the client variant for a provider name. The
// name is validated before the credential check, so a config file
// naming an unrecognized vendor fails as UnsupportedProviderError even
// when no key is stored for it.
func (m *Manager) buildClient(provider config.Provider, apiKey string) (Client, error) {
	if _, err := config.ParseProvider(string(provider)); err != nil {
		return nil, &UnsupportedProviderError{Name: string(provider)}
	}

	if apiKey == "" {
		return nil, fmt.Errorf("%s API key not configured: %w", provider, ErrProviderNotConfigured)
	}

	baseURL := m.config.GetBaseURL(provider)
	model := m.config.ModelFor(provider)

	switch provider {
	case config.ProviderClaude:
		return NewClaudeClient(apiKey, baseURL, model), nil
	default:
		return NewOpenAIClient(apiKey, baseURL, model), nil
	}
}

// IsConfigured checks if the manager has an active client
func (m *Manager) IsConfigured() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client != nil
}

// EnsureConfigured reinitializes the client if needed
func (m *Manager) EnsureConfigured() error {
	if m.IsConfigured() {
		return nil
	}
	return m.initializeClient()
}

// ActiveProvider returns the name of the active client, or "" when unbound
func (m *Manager) ActiveProvider() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.client == nil {
		return ""
	}
	return m.client.Name()
}

// SetProvider swaps the active provider. The name is case-insensitive;
// an unrecognized name fails with UnsupportedProviderError and leaves
// the previous client untouched. An empty apiKey falls back to the key
// already stored for that provider.
func (m *Manager) SetProvider(name, apiKey string) error {
	provider, err := config.ParseProvider(name)
	if err != nil {
		return &UnsupportedProviderError{Name: name}
	}

	if apiKey == "" {
		apiKey = m.config.GetAPIKey(provider)
	}

	client, err := m.buildClient(provider, apiKey)
	if err != nil {
		return err
	}

	m.mu.Lock()
	old := m.client
	m.client = client
	m.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}

	m.config.SetProvider(provider, m.config.ModelFor(provider))
	m.config.SetAPIKey(provider, apiKey)

	return config.SaveConfig(m.config, m.configDir)
}

// SetAPIKey stores an API key for a provider
func (m *Manager) SetAPIKey(name, apiKey string) error {
	provider, err := config.ParseProvider(name)
	if err != nil {
		return &UnsupportedProviderError{Name: name}
	}

	m.config.SetAPIKey(provider, apiKey)

	// Re-initialize client if this is the current provider
	if provider == m.config.AI.Provider {
		_ = m.initializeClient()
	}

	return config.SaveConfig(m.config, m.configDir)
}

// SetBaseURL stores a base URL override for a provider
func (m *Manager) SetBaseURL(name, baseURL string) error {
	provider, err := config.ParseProvider(name)
	if err != nil {
		return &UnsupportedProviderError{Name: name}
	}

	m.config.SetBaseURL(provider, baseURL)

	// Re-initialize client if this is the current provider
	if provider == m.config.AI.Provider {
		_ = m.initializeClient()
	}

	return config.SaveConfig(m.config, m.configDir)
}

// SetModel stores the model for the current provider
func (m *Manager) SetModel(model string) error {
	provider := m.config.AI.Provider
	if provider == "" {
		return ErrProviderNotConfigured
	}

	m.config.SetProvider(provider, model)
	_ = m.initializeClient()

	return config.SaveConfig(m.config, m.configDir)
}

// ExecuteAICommand routes a command to the active client. The command
// set is closed; unknown commands fail before any client method is
// invoked, and a missing client fails before any network call. The
// active client is captured before blocking, so a concurrent
// SetProvider only affects later invocations.
func (m *Manager) ExecuteAICommand(ctx context.Context, command Command, text, style string) (string, error) {
	command, err := ParseCommand(string(command))
	if err != nil {
		return "", err
	}

	m.mu.RLock()
	client := m.client
	m.mu.RUnlock()

	if client == nil {
		return "", ErrProviderNotConfigured
	}

	switch command {
	case CommandSummarize:
		return client.Summarize(ctx, text)
	case CommandImprove:
		return client.Improve(ctx, text)
	case CommandStyle:
		if style == "" {
			style = DefaultStyle
		}
		return client.Restyle(ctx, text, style)
	case CommandComplete:
		return client.Complete(ctx, text)
	default:
		return "", &UnknownCommandError{Command: command}
	}
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *config.Config {
	return m.config
}
