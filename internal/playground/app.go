// Package playground is a local stand-in for the note-taking host:
// a readline REPL over a sqlite notebook that implements the host ABI
// the plugin is written against.
package playground

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"noteai/internal/ai"
	"noteai/internal/config"
	"noteai/internal/host"
	"noteai/internal/i18n"
	"noteai/internal/notebook"
	"noteai/internal/plugin"

	"github.com/chzyer/readline"
)

type App struct {
	rl        *readline.Instance
	store     *notebook.Store
	configDir string
	plug      *plugin.Plugin
	i18nMgr   *i18n.Manager
	renderer  *MarkdownRenderer

	// Editor state: what the user "selected" and where the cursor is
	selection      string
	currentBlockID string

	// Registrations received from the plugin
	slashLabels []string
	uiItems     []host.UIItem
	schema      []host.SettingField
}

// NewApp creates a playground over the default config directory
func NewApp() (*App, error) {
	configMgr := config.NewManager()
	return NewAppWithPaths(configMgr.GetConfigDir(), configMgr.NotebookPath())
}

// NewAppWithPaths creates a playground over explicit config and
// notebook locations
func NewAppWithPaths(configDir, notebookPath string) (*App, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	i18nMgr, err := i18n.NewManager(cfg.Language)
	if err != nil {
		// Fallback to default language if i18n fails
		i18nMgr, err = i18n.NewManager(i18n.DefaultLanguage)
		if err != nil {
			return nil, fmt.Errorf("failed to load messages: %w", err)
		}
	}

	store, err := notebook.Open(notebookPath)
	if err != nil {
		return nil, err
	}

	app := &App{
		store:     store,
		configDir: configDir,
		i18nMgr:   i18nMgr,
		renderer:  NewMarkdownRenderer(i18nMgr),
	}

	plug, err := plugin.New(app, configDir, i18nMgr)
	if err != nil {
		store.Close()
		return nil, err
	}
	app.plug = plug

	if err := plug.Load(); err != nil {
		store.Close()
		return nil, err
	}

	return app, nil
}

// Editor returns the playground's editing surface
func (a *App) Editor() host.Editor { return (*editorAPI)(a) }

// App returns the playground's application surface
func (a *App) App() host.App { return (*appAPI)(a) }

// Ready runs fn immediately; the playground is ready once constructed
func (a *App) Ready(fn func() error) error { return fn() }

// Run starts the interactive loop
func (a *App) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "noteai > ",
		AutoComplete: newCompleter(),
		HistoryFile:  filepath.Join(a.configDir, "playground_history.txt"),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	a.rl = rl
	defer rl.Close()
	defer a.store.Close()

	fmt.Print(a.i18nMgr.Get("playground_welcome"))

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		quit, err := a.processLine(line)
		if err != nil {
			fmt.Printf(a.i18nMgr.Get("main_error"), err)
		}
		if quit {
			break
		}
	}

	fmt.Print(a.i18nMgr.Get("playground_goodbye"))
	return nil
}

// processLine handles one input line; plain text becomes a new block
func (a *App) processLine(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	if strings.HasPrefix(line, "/") {
		return a.processCommand(line)
	}

	block, err := a.store.Append(line)
	if err != nil {
		return false, err
	}

	// New block becomes cursor position and selection
	a.currentBlockID = block.ID
	a.selection = block.Content

	fmt.Printf(a.i18nMgr.Get("block_added"), block.Position, block.ID)
	return false, nil
}

func (a *App) processCommand(line string) (bool, error) {
	parts := strings.Fields(line)

	switch parts[0] {
	case "/help":
		a.printHelp()
	case "/quit", "/exit":
		return true, nil
	case "/blocks":
		return false, a.handleListBlocks()
	case "/select":
		return false, a.handleSelect(parts[1:])
	case "/summarize":
		a.runAI(ai.CommandSummarize, "")
	case "/improve":
		a.runAI(ai.CommandImprove, "")
	case "/style":
		a.runAI(ai.CommandStyle, strings.Join(parts[1:], " "))
	case "/complete":
		a.runAI(ai.CommandComplete, "")
	case "/config":
		return false, a.handleConfig(parts[1:])
	default:
		fmt.Printf(a.i18nMgr.Get("unknown_command"), parts[0])
	}

	return false, nil
}

func (a *App) printHelp() {
	fmt.Print(a.i18nMgr.Get("playground_help"))
	if len(a.slashLabels) > 0 {
		fmt.Print(a.i18nMgr.Get("registered_commands_header"))
		for _, label := range a.slashLabels {
			fmt.Printf("  - %s\n", label)
		}
	}
}

// runAI dispatches through the plugin's command layer, exactly as the
// real host would when a slash command fires
func (a *App) runAI(command ai.Command, style string) {
	a.plug.Registrar().Run(context.Background(), command, style)
}

func (a *App) handleListBlocks() error {
	blocks, err := a.store.List()
	if err != nil {
		return err
	}

	if len(blocks) == 0 {
		fmt.Print(a.i18nMgr.Get("no_blocks"))
		return nil
	}

	var md strings.Builder
	for _, block := range blocks {
		marker := " "
		if block.ID == a.currentBlockID {
			marker = "*"
		}
		md.WriteString(fmt.Sprintf("%s %d. %s\n", marker, block.Position, block.Content))
	}

	fmt.Print(a.i18nMgr.Get("blocks_header"))
	fmt.Print(a.renderer.Render(md.String()))
	return nil
}

func (a *App) handleSelect(args []string) error {
	if len(args) != 1 {
		fmt.Print(a.i18nMgr.Get("select_usage"))
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf(a.i18nMgr.Get("invalid_block_number"), args[0])
		return nil
	}

	blocks, err := a.store.List()
	if err != nil {
		return err
	}
	if n < 1 || n > len(blocks) {
		fmt.Printf(a.i18nMgr.Get("invalid_block_number"), args[0])
		return nil
	}

	block := blocks[n-1]
	a.currentBlockID = block.ID
	a.selection = block.Content

	fmt.Printf(a.i18nMgr.Get("block_selected"), n, truncate(block.Content, 60))
	return nil
}

func (a *App) handleConfig(args []string) error {
	if len(args) == 0 || args[0] != "ai" {
		fmt.Print(a.i18nMgr.Get("ai_config_help"))
		return nil
	}
	return a.handleConfigAI(args[1:])
}

func (a *App) handleConfigAI(args []string) error {
	if len(args) == 0 {
		fmt.Print(a.i18nMgr.Get("ai_config_help"))
		return nil
	}

	manager := a.plug.Manager()

	switch args[0] {
	case "status":
		cfg := manager.GetConfig()
		if manager.ActiveProvider() == "" {
			fmt.Print(a.i18nMgr.Get("ai_status_not_configured"))
		} else {
			fmt.Printf(a.i18nMgr.Get("ai_status_provider"), manager.ActiveProvider())
			fmt.Printf(a.i18nMgr.Get("ai_status_model"), cfg.ModelFor(cfg.AI.Provider))
		}
		fmt.Printf(a.i18nMgr.Get("ai_status_config_dir"), a.configDir)

	case "provider":
		if len(args) < 2 {
			fmt.Print(a.i18nMgr.Get("ai_config_help"))
			return nil
		}
		apiKey := ""
		if len(args) > 2 {
			apiKey = args[2]
		}
		if err := manager.SetProvider(args[1], apiKey); err != nil {
			a.App().ShowMsg(a.configErrorMessage(err, args[1]), host.MsgError)
			return nil
		}
		fmt.Printf(a.i18nMgr.Get("provider_updated"), manager.ActiveProvider())

	case "api-key":
		if len(args) < 3 {
			fmt.Print(a.i18nMgr.Get("ai_config_help"))
			return nil
		}
		if err := manager.SetAPIKey(args[1], args[2]); err != nil {
			a.App().ShowMsg(a.configErrorMessage(err, args[1]), host.MsgError)
			return nil
		}
		fmt.Printf(a.i18nMgr.Get("api_key_updated"), args[1])

	case "base-url":
		if len(args) < 3 {
			fmt.Print(a.i18nMgr.Get("ai_config_help"))
			return nil
		}
		if err := manager.SetBaseURL(args[1], args[2]); err != nil {
			a.App().ShowMsg(a.configErrorMessage(err, args[1]), host.MsgError)
			return nil
		}
		fmt.Printf(a.i18nMgr.Get("base_url_updated"), args[1])

	case "model":
		if len(args) < 2 {
			fmt.Print(a.i18nMgr.Get("ai_config_help"))
			return nil
		}
		if err := manager.SetModel(args[1]); err != nil {
			a.App().ShowMsg(a.configErrorMessage(err, args[1]), host.MsgError)
			return nil
		}
		fmt.Printf(a.i18nMgr.Get("model_updated"), args[1])

	default:
		fmt.Print(a.i18nMgr.Get("ai_config_help"))
	}

	return nil
}

func (a *App) configErrorMessage(err error, name string) string {
	var unsupported *ai.UnsupportedProviderError
	switch {
	case errors.As(err, &unsupported):
		return a.i18nMgr.GetWithArgs("unsupported_provider", unsupported.Name)
	case errors.Is(err, ai.ErrProviderNotConfigured):
		return a.i18nMgr.Get("provider_not_configured")
	default:
		return err.Error()
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// editorAPI implements host.Editor over the playground state
type editorAPI App

func (e *editorAPI) GetSelectedText() (string, error) {
	return e.selection, nil
}

func (e *editorAPI) GetCurrentBlock() (host.Block, error) {
	if e.currentBlockID != "" {
		block, err := e.store.Get(e.currentBlockID)
		if err != nil {
			return host.Block{}, err
		}
		return host.Block{ID: block.ID, Content: block.Content}, nil
	}

	last, err := e.store.Last()
	if err != nil {
		return host.Block{}, err
	}
	if last == nil {
		return host.Block{}, fmt.Errorf("notebook is empty")
	}
	return host.Block{ID: last.ID, Content: last.Content}, nil
}

func (e *editorAPI) InsertBlock(afterID, content string) (host.Block, error) {
	block, err := e.store.InsertAfter(afterID, content)
	if err != nil {
		return host.Block{}, err
	}

	fmt.Print(e.renderer.Render(content))
	return host.Block{ID: block.ID, Content: block.Content}, nil
}

func (e *editorAPI) RegisterSlashCommand(label string, action func()) error {
	e.slashLabels = append(e.slashLabels, label)
	return nil
}

// appAPI implements host.App over the terminal
type appAPI App

func (p *appAPI) ShowMsg(text string, level host.MsgLevel) {
	switch level {
	case host.MsgError:
		fmt.Printf("❌ %s\n", text)
	case host.MsgWarning:
		fmt.Printf("⚠️  %s\n", text)
	default:
		fmt.Println(text)
	}
}

func (p *appAPI) RegisterUIItem(item host.UIItem) error {
	p.uiItems = append(p.uiItems, item)
	return nil
}

func (p *appAPI) RegisterSettingsSchema(fields []host.SettingField) error {
	p.schema = fields
	return nil
}
