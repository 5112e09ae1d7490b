package playground

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"noteai/internal/i18n"
)

// MarkdownRenderer renders markdown for the terminal with consistent styling
type MarkdownRenderer struct {
	width   int
	i18nMgr *i18n.Manager
}

// NewMarkdownRenderer creates a renderer sized to the terminal
func NewMarkdownRenderer(i18nMgr *i18n.Manager) *MarkdownRenderer {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 100 // fallback width
	}

	return &MarkdownRenderer{
		width:   width,
		i18nMgr: i18nMgr,
	}
}

// Render returns terminal-styled markdown, falling back to the plain
// source when rendering is unavailable
func (mr *MarkdownRenderer) Render(markdown string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(mr.width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return mr.i18nMgr.Get("markdown_render_failed") + markdown
	}

	out, err := r.Render(markdown)
	if err != nil {
		return mr.i18nMgr.Get("markdown_render_failed") + markdown
	}

	return out
}
