package ai

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions the command layer branches on
var (
	// ErrNoSelection indicates the editor had no selected text
	ErrNoSelection = errors.New("no text selected")

	// ErrProviderNotConfigured indicates no active provider is bound
	ErrProviderNotConfigured = errors.New("AI provider not configured")
)

// UnsupportedProviderError indicates an unrecognized provider name
type UnsupportedProviderError struct {
	Name string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider: %s", e.Name)
}

// UnknownCommandError indicates a command outside the supported set
type UnknownCommandError struct {
	Command Command
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown AI command: %s", e.Command)
}

// RequestError wraps a failed vendor request, either a transport failure
// or a non-2xx response. Status carries the vendor's status text.
type RequestError struct {
	Provider   string
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s request failed with status %s: %s", e.Provider, e.Status, e.Body)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ResponseParseError indicates a malformed or empty vendor payload
type ResponseParseError struct {
	Provider string
	Err      error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", e.Provider, e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}
