package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"noteai/internal/ai"
	"noteai/internal/host"
	"noteai/internal/i18n"
)

// Descriptor binds a user-visible label to an AI command key
type Descriptor struct {
	Key   ai.Command
	Label string
}

// Registrar owns the plugin's user-invocable commands. Every command
// runs the same pipeline: read selection, notify, execute, insert the
// result after the current block. Errors surface as one notification
// and never leave a partial block behind.
type Registrar struct {
	editor  host.Editor
	app     host.App
	manager *ai.Manager
	i18nMgr *i18n.Manager
}

// NewRegistrar creates a registrar over the injected host surfaces
func NewRegistrar(editor host.Editor, app host.App, manager *ai.Manager, i18nMgr *i18n.Manager) *Registrar {
	return &Registrar{
		editor:  editor,
		app:     app,
		manager: manager,
		i18nMgr: i18nMgr,
	}
}

// Descriptors returns the commands the plugin exposes
func (r *Registrar) Descriptors() []Descriptor {
	return []Descriptor{
		{Key: ai.CommandSummarize, Label: r.i18nMgr.Get("cmd_summarize_label")},
		{Key: ai.CommandImprove, Label: r.i18nMgr.Get("cmd_improve_label")},
		{Key: ai.CommandStyle, Label: r.i18nMgr.Get("cmd_style_label")},
		{Key: ai.CommandComplete, Label: r.i18nMgr.Get("cmd_complete_label")},
	}
}

// RegisterAll wires slash commands, the toolbar item and the settings
// schema into the host
func (r *Registrar) RegisterAll() error {
	for _, desc := range r.Descriptors() {
		key := desc.Key
		err := r.editor.RegisterSlashCommand(desc.Label, func() {
			r.Run(context.Background(), key, "")
		})
		if err != nil {
			return fmt.Errorf("failed to register slash command %s: %w", key, err)
		}
	}

	item := host.UIItem{
		Key:   "noteai-toolbar",
		Title: r.i18nMgr.Get("toolbar_title"),
		Icon:  "🤖",
	}
	if err := r.app.RegisterUIItem(item); err != nil {
		return fmt.Errorf("failed to register toolbar item: %w", err)
	}

	fields := []host.SettingField{
		{
			Key:         "provider",
			Type:        "enum",
			Title:       r.i18nMgr.Get("setting_provider_title"),
			Description: r.i18nMgr.Get("setting_provider_description"),
			Default:     "openai",
		},
		{
			Key:         "apiKey",
			Type:        "string",
			Title:       r.i18nMgr.Get("setting_api_key_title"),
			Description: r.i18nMgr.Get("setting_api_key_description"),
		},
	}
	if err := r.app.RegisterSettingsSchema(fields); err != nil {
		return fmt.Errorf("failed to register settings schema: %w", err)
	}

	return nil
}

// Run executes one AI command end to end. It is the sole recovery
// point: any failure becomes a user-visible notification.
func (r *Registrar) Run(ctx context.Context, key ai.Command, style string) {
	if err := r.run(ctx, key, style); err != nil {
		r.app.ShowMsg(r.userMessage(err), host.MsgError)
	}
}

func (r *Registrar) run(ctx context.Context, key ai.Command, style string) error {
	text, err := r.editor.GetSelectedText()
	if err != nil {
		return fmt.Errorf("failed to read selection: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return ai.ErrNoSelection
	}

	// Fire-and-forget progress signal
	provider := r.manager.ActiveProvider()
	if provider == "" {
		provider = "AI"
	}
	r.app.ShowMsg(r.i18nMgr.GetWithArgs("ai_working", provider), host.MsgInfo)

	result, err := r.manager.ExecuteAICommand(ctx, key, text, style)
	if err != nil {
		return err
	}

	current, err := r.editor.GetCurrentBlock()
	if err != nil {
		return fmt.Errorf("failed to locate current block: %w", err)
	}

	if _, err := r.editor.InsertBlock(current.ID, result); err != nil {
		return fmt.Errorf("failed to insert result block: %w", err)
	}

	r.app.ShowMsg(r.i18nMgr.Get("ai_result_inserted"), host.MsgSuccess)
	return nil
}

// userMessage maps an error to the notification text shown to the user
func (r *Registrar) userMessage(err error) string {
	var unsupported *ai.UnsupportedProviderError
	var unknown *ai.UnknownCommandError

	switch {
	case errors.Is(err, ai.ErrNoSelection):
		return r.i18nMgr.Get("no_text_selected")
	case errors.Is(err, ai.ErrProviderNotConfigured):
		return r.i18nMgr.Get("provider_not_configured")
	case errors.As(err, &unsupported):
		return r.i18nMgr.GetWithArgs("unsupported_provider", unsupported.Name)
	case errors.As(err, &unknown):
		return r.i18nMgr.GetWithArgs("unknown_ai_command", string(unknown.Command))
	default:
		return err.Error()
	}
}
