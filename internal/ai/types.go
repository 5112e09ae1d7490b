package ai

import (
	"context"
	"fmt"
	"strings"
)

// Command identifies one of the user-invocable AI operations
type Command string

const (
	CommandSummarize Command = "summarize"
	CommandImprove   Command = "improve"
	CommandStyle     Command = "style"
	CommandComplete  Command = "complete"
)

// DefaultStyle is used when the style command is invoked without an argument
const DefaultStyle = "professional"

// ChatMessage represents a chat message
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client interface for AI vendors. Each operation issues exactly one
// network request and returns the trimmed completion text.
type Client interface {
	Name() string
	Summarize(ctx context.Context, text string) (string, error)
	Improve(ctx context.Context, text string) (string, error)
	Restyle(ctx context.Context, text, style string) (string, error)
	Complete(ctx context.Context, text string) (string, error)
	Close() error
}

// ParseCommand normalizes a command string to a known Command
func ParseCommand(s string) (Command, error) {
	switch Command(strings.ToLower(strings.TrimSpace(s))) {
	case CommandSummarize:
		return CommandSummarize, nil
	case CommandImprove:
		return CommandImprove, nil
	case CommandStyle:
		return CommandStyle, nil
	case CommandComplete:
		return CommandComplete, nil
	default:
		return "", &UnknownCommandError{Command: Command(s)}
	}
}

// Commands returns the closed set of supported commands
func Commands() []Command {
	return []Command{CommandSummarize, CommandImprove, CommandStyle, CommandComplete}
}

// FormatCommandList returns the supported commands joined for display
func FormatCommandList() string {
	commands := Commands()
	parts := make([]string, len(commands))
	for i, c := range commands {
		parts[i] = string(c)
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
