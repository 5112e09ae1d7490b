package ai

import "fmt"

// systemPrompt frames every request so vendors return the transformed
// text without preamble or commentary.
const systemPrompt = "You are a writing assistant embedded in a note-taking app. " +
	"Reply with the requested text only, without explanations or preamble."

func summarizePrompt(text string) string {
	return fmt.Sprintf("provide a concise summary of the following text:\n\n%s", text)
}

func improvePrompt(text string) string {
	return fmt.Sprintf("improve the following text while maintaining its core message:\n\n%s", text)
}

func restylePrompt(text, style string) string {
	if style == "" {
		style = DefaultStyle
	}
	return fmt.Sprintf("rewrite the following text in a %s style:\n\n%s", style, text)
}

func completePrompt(text string) string {
	return fmt.Sprintf("complete the following text naturally:\n\n%s", text)
}
