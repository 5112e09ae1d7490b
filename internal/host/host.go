// Package host declares the boundary between the plugin core and the
// note-taking application that loads it. The real app and the local
// playground both satisfy these interfaces; the plugin never reaches
// for a global host object.
package host

// MsgLevel classifies a user-visible notification
type MsgLevel string

const (
	MsgInfo    MsgLevel = "info"
	MsgSuccess MsgLevel = "success"
	MsgWarning MsgLevel = "warning"
	MsgError   MsgLevel = "error"
)

// Block is a single document block as the host exposes it
type Block struct {
	ID      string
	Content string
}

// UIItem describes a toolbar entry registered by the plugin
type UIItem struct {
	Key   string
	Title string
	Icon  string
}

// SettingField describes one entry of the plugin's settings schema
type SettingField struct {
	Key         string
	Type        string
	Title       string
	Description string
	Default     string
}

// Editor is the host's document-editing surface
type Editor interface {
	// GetSelectedText returns the current selection, empty when nothing
	// is selected.
	GetSelectedText() (string, error)

	// GetCurrentBlock returns the block owning the selection or cursor.
	GetCurrentBlock() (Block, error)

	// InsertBlock inserts content as a new sibling block after afterID
	// and returns the created block.
	InsertBlock(afterID, content string) (Block, error)

	// RegisterSlashCommand exposes a labeled action in the host's
	// slash-command menu.
	RegisterSlashCommand(label string, action func()) error
}

// App is the host's application-level surface
type App interface {
	// ShowMsg surfaces a transient notification. Fire-and-forget; the
	// host owns display and dismissal.
	ShowMsg(text string, level MsgLevel)

	// RegisterUIItem adds a toolbar entry.
	RegisterUIItem(item UIItem) error

	// RegisterSettingsSchema declares the plugin's settings fields so
	// the host can render its settings UI.
	RegisterSettingsSchema(fields []SettingField) error
}

// Host aggregates the surfaces a loaded plugin receives
type Host interface {
	Editor() Editor
	App() App

	// Ready invokes fn once the host finished loading the plugin.
	Ready(fn func() error) error
}
