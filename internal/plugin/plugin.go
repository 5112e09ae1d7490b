// Package plugin owns the top-level lifecycle: it builds the AI
// manager from persisted settings and registers the command surface
// once the host signals readiness.
package plugin

import (
	"fmt"

	"noteai/internal/ai"
	"noteai/internal/command"
	"noteai/internal/host"
	"noteai/internal/i18n"
)

type Plugin struct {
	host      host.Host
	manager   *ai.Manager
	registrar *command.Registrar
}

// New constructs the plugin against a host and a settings directory.
// Manager construction is lenient: a missing API key leaves the
// manager unconfigured rather than failing the load, so the user can
// still reach the settings commands.
func New(h host.Host, configDir string, i18nMgr *i18n.Manager) (*Plugin, error) {
	manager, err := ai.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI manager: %w", err)
	}

	registrar := command.NewRegistrar(h.Editor(), h.App(), manager, i18nMgr)

	return &Plugin{
		host:      h,
		manager:   manager,
		registrar: registrar,
	}, nil
}

// Load registers commands, toolbar and settings schema once the host
// is ready
func (p *Plugin) Load() error {
	return p.host.Ready(func() error {
		return p.registrar.RegisterAll()
	})
}

// Manager returns the AI manager for host-side configuration commands
func (p *Plugin) Manager() *ai.Manager {
	return p.manager
}

// Registrar returns the command registrar for direct invocation
func (p *Plugin) Registrar() *command.Registrar {
	return p.registrar
}
