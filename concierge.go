// Package concierge is a conversational-assistant front end. It sends
// prompts to a text-generation provider and interprets the returned text,
// separating ordinary conversation from embedded tool invocations so the
// user never sees bare call syntax.
package concierge

import (
	"errors"

	"github.com/voyant-ai/concierge/src/parse"
)

// Type aliases preserving one import for callers of the public API.
type (
	ToolSpec = parse.ToolSpec
	ToolCall = parse.ToolCall
	Result   = parse.Result
)

var (
	// ErrNotConfigured means no generation provider is available, usually a
	// missing or invalid credential. Recoverable: supply credentials and retry.
	ErrNotConfigured = errors.New("model not configured")

	// ErrGenerationFailed wraps a transport or API failure from the provider.
	// The session never retries; the caller decides.
	ErrGenerationFailed = errors.New("generation request failed")
)
