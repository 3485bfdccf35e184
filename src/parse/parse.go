// Package parse turns raw language-model output into user-visible content
// plus structured tool invocations. Model output is untrusted by nature, so
// every routine in this package is best-effort: malformed fragments degrade
// to plain text and nothing here ever returns an error.
package parse

// ToolSpec describes a tool the model may invoke, as presented in the
// system prompt. Execution is the host's concern.
type ToolSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToolCall is a single extracted invocation. IDs are assigned sequentially
// (call_0, call_1, ...) in the order calls are discovered.
type ToolCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// Result is the outcome of segmenting one model response.
type Result struct {
	Content string     `json:"content"`
	Calls   []ToolCall `json:"tool_calls,omitempty"`
}
