package command

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"noteai/internal/ai"
	"noteai/internal/config"
	"noteai/internal/host"
	"noteai/internal/i18n"
)

// fakeEditor is an in-memory host editor
type fakeEditor struct {
	selection    string
	currentBlock host.Block
	inserted     []host.Block
	slashLabels  []string
}

func (e *fakeEditor) GetSelectedText() (string, error) {
	return e.selection, nil
}

func (e *fakeEditor) GetCurrentBlock() (host.Block, error) {
	return e.currentBlock, nil
}

func (e *fakeEditor) InsertBlock(afterID, content string) (host.Block, error) {
	block := host.Block{ID: afterID + "-sibling", Content: content}
	e.inserted = append(e.inserted, block)
	return block, nil
}

func (e *fakeEditor) RegisterSlashCommand(label string, action func()) error {
	e.slashLabels = append(e.slashLabels, label)
	return nil
}

// fakeApp records notifications and registrations
type fakeApp struct {
	messages []string
	levels   []host.MsgLevel
	uiItems  []host.UIItem
	schema   []host.SettingField
}

func (a *fakeApp) ShowMsg(text string, level host.MsgLevel) {
	a.messages = append(a.messages, text)
	a.levels = append(a.levels, level)
}

func (a *fakeApp) RegisterUIItem(item host.UIItem) error {
	a.uiItems = append(a.uiItems, item)
	return nil
}

func (a *fakeApp) RegisterSettingsSchema(fields []host.SettingField) error {
	a.schema = fields
	return nil
}

func newTestI18n(t *testing.T) *i18n.Manager {
	t.Helper()

	mgr, err := i18n.NewManager(i18n.DefaultLanguage)
	if err != nil {
		t.Fatalf("Failed to create i18n manager: %v", err)
	}
	return mgr
}

// newTestRegistrar wires a registrar against a mock vendor endpoint
func newTestRegistrar(t *testing.T, vendorURL string) (*Registrar, *fakeEditor, *fakeApp) {
	t.Helper()

	configDir := t.TempDir()
	cfg := config.DefaultConfig()
	if vendorURL != "" {
		cfg.SetProvider(config.ProviderOpenAI, "gpt-4o-mini")
		cfg.SetAPIKey(config.ProviderOpenAI, "test-key")
		cfg.SetBaseURL(config.ProviderOpenAI, vendorURL)
	}
	if err := config.SaveConfig(cfg, configDir); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	manager, err := ai.NewManager(configDir)
	if err != nil {
		t.Fatalf("Failed to create AI manager: %v", err)
	}

	editor := &fakeEditor{currentBlock: host.Block{ID: "block-1", Content: "source"}}
	app := &fakeApp{}
	registrar := NewRegistrar(editor, app, manager, newTestI18n(t))

	return registrar, editor, app
}

func TestRun_SummarizeInsertsSiblingBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"A fox jumps."}}]}`))
	}))
	defer server.Close()

	registrar, editor, app := newTestRegistrar(t, server.URL)
	editor.selection = "The quick brown fox jumps."

	registrar.Run(context.Background(), ai.CommandSummarize, "")

	if len(editor.inserted) != 1 {
		t.Fatalf("Expected one inserted block, got %d", len(editor.inserted))
	}
	if editor.inserted[0].Content != "A fox jumps." {
		t.Errorf("Expected inserted content 'A fox jumps.', got '%s'", editor.inserted[0].Content)
	}
	if !strings.HasPrefix(editor.inserted[0].ID, "block-1") {
		t.Errorf("Expected result inserted after block-1, got ID '%s'", editor.inserted[0].ID)
	}
	if len(app.levels) == 0 || app.levels[len(app.levels)-1] != host.MsgSuccess {
		t.Errorf("Expected final success notification, got levels %v", app.levels)
	}
}

func TestRun_NoSelection(t *testing.T) {
	var vendorCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendorCalled = true
		w.Write([]byte(`{"choices":[{"message":{"content":"never"}}]}`))
	}))
	defer server.Close()

	testCases := []struct {
		name      string
		selection string
	}{
		{
			name:      "Empty selection",
			selection: "",
		},
		{
			name:      "Whitespace-only selection",
			selection: "   \n\t",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			registrar, editor, app := newTestRegistrar(t, server.URL)
			editor.selection = tc.selection

			registrar.Run(context.Background(), ai.CommandSummarize, "")

			if vendorCalled {
				t.Error("Expected no network call when nothing is selected")
			}
			if len(editor.inserted) != 0 {
				t.Errorf("Expected no inserted blocks, got %d", len(editor.inserted))
			}
			if len(app.messages) != 1 {
				t.Fatalf("Expected exactly one notification, got %v", app.messages)
			}
			if app.messages[0] != "No text selected. Please select some text first." {
				t.Errorf("Unexpected notification: '%s'", app.messages[0])
			}
			if app.levels[0] != host.MsgError {
				t.Errorf("Expected error level, got '%s'", app.levels[0])
			}
		})
	}
}

func TestRun_ProviderNotConfigured(t *testing.T) {
	registrar, editor, app := newTestRegistrar(t, "")
	editor.selection = "some text"

	registrar.Run(context.Background(), ai.CommandImprove, "")

	if len(editor.inserted) != 0 {
		t.Errorf("Expected no inserted blocks, got %d", len(editor.inserted))
	}
	last := app.messages[len(app.messages)-1]
	if !strings.Contains(last, "No AI provider configured") {
		t.Errorf("Expected provider-not-configured notification, got '%s'", last)
	}
}

func TestRun_VendorFailureLeavesDocumentUnchanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	registrar, editor, app := newTestRegistrar(t, server.URL)
	editor.selection = "some text"

	registrar.Run(context.Background(), ai.CommandComplete, "")

	if len(editor.inserted) != 0 {
		t.Errorf("Expected no inserted blocks after vendor failure, got %d", len(editor.inserted))
	}
	last := app.messages[len(app.messages)-1]
	if !strings.Contains(last, "502") {
		t.Errorf("Expected notification to carry the vendor status, got '%s'", last)
	}
	if app.levels[len(app.levels)-1] != host.MsgError {
		t.Error("Expected final notification at error level")
	}
}

func TestRun_StylePassesArgument(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []ai.ChatMessage `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil && len(body.Messages) > 0 {
			gotPrompt = body.Messages[len(body.Messages)-1].Content
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"styled"}}]}`))
	}))
	defer server.Close()

	registrar, editor, _ := newTestRegistrar(t, server.URL)
	editor.selection = "some text"

	registrar.Run(context.Background(), ai.CommandStyle, "pirate")

	if !strings.Contains(gotPrompt, "pirate style") {
		t.Errorf("Expected prompt to request pirate style, got '%s'", gotPrompt)
	}
}

func TestRegisterAll(t *testing.T) {
	registrar, editor, app := newTestRegistrar(t, "")

	if err := registrar.RegisterAll(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(editor.slashLabels) != 4 {
		t.Fatalf("Expected four slash commands, got %v", editor.slashLabels)
	}
	if len(app.uiItems) != 1 {
		t.Errorf("Expected one toolbar item, got %d", len(app.uiItems))
	}
	if len(app.schema) != 2 {
		t.Errorf("Expected provider and apiKey settings fields, got %d", len(app.schema))
	}
}
