package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Manager struct {
	configDir string
}

func NewManager() *Manager {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get user home directory: %v", err))
	}

	configDir := filepath.Join(home, ".config", "noteai")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		panic(fmt.Sprintf("failed to create config directory: %v", err))
	}

	return &Manager{
		configDir: configDir,
	}
}

// NewManagerWithDir creates a manager rooted at an explicit directory
func NewManagerWithDir(configDir string) (*Manager, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &Manager{configDir: configDir}, nil
}

func (m *Manager) GetConfigDir() string {
	return m.configDir
}

// NotebookPath returns the default notebook database path
func (m *Manager) NotebookPath() string {
	return filepath.Join(m.configDir, "notebook.db")
}
