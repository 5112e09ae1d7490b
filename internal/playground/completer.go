package playground

import "github.com/chzyer/readline"

// newCompleter builds tab completion for the playground's slash commands
func newCompleter() readline.AutoCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("/help"),
		readline.PcItem("/quit"),
		readline.PcItem("/exit"),
		readline.PcItem("/blocks"),
		readline.PcItem("/select"),
		readline.PcItem("/summarize"),
		readline.PcItem("/improve"),
		readline.PcItem("/style",
			readline.PcItem("professional"),
			readline.PcItem("casual"),
			readline.PcItem("academic"),
		),
		readline.PcItem("/complete"),
		readline.PcItem("/config",
			readline.PcItem("ai",
				readline.PcItem("status"),
				readline.PcItem("provider",
					readline.PcItem("openai"),
					readline.PcItem("claude"),
				),
				readline.PcItem("api-key",
					readline.PcItem("openai"),
					readline.PcItem("claude"),
				),
				readline.PcItem("base-url",
					readline.PcItem("openai"),
					readline.PcItem("claude"),
				),
				readline.PcItem("model"),
			),
		),
	)
}
