package parse

import (
	"fmt"
	"strings"
)

// Segment separates narration from invocation syntax in one model response.
// Conventions are applied in priority order: whole-response standalone call,
// then line-wise standalone calls, then inline TOOL_CALL markers. Calls are
// only extracted for names present in tools; call-shaped text naming an
// unknown tool stays in the content untouched. The returned content is never
// empty when the response or any extracted call was non-empty.
func Segment(raw string, tools []ToolSpec) Result {
	if len(tools) == 0 {
		return Result{Content: raw}
	}

	registered := make(map[string]bool, len(tools))
	for _, spec := range tools {
		registered[spec.Name] = true
	}

	trimmed := strings.TrimSpace(raw)

	// The model produced only a tool call, no narration. Synthesize the
	// user-visible sentence so the bare syntax never reaches the user.
	if name, rawArgs, ok := matchStandalone(trimmed); ok && registered[name] {
		call := ToolCall{ID: "call_0", Name: name, Args: ParseArgs(rawArgs)}
		return Result{
			Content: Describe(call.Name, call.Args),
			Calls:   []ToolCall{call},
		}
	}

	var calls []ToolCall
	var pieces []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, rawArgs, ok := matchStandalone(line); ok && registered[name] {
			args := ParseArgs(rawArgs)
			calls = append(calls, ToolCall{
				ID:   fmt.Sprintf("call_%d", len(calls)),
				Name: name,
				Args: args,
			})
			pieces = append(pieces, Describe(name, args))
			continue
		}
		pieces = append(pieces, line)
	}
	content := strings.Join(pieces, " ")

	// Inline markers are located in the original text so discovery order is
	// left to right, then excised from the assembled content.
	for _, m := range findInline(trimmed) {
		if !registered[m.Name] {
			continue
		}
		calls = append(calls, ToolCall{
			ID:   fmt.Sprintf("call_%d", len(calls)),
			Name: m.Name,
			Args: ParseArgs(m.RawArgs),
		})
		content = excise(content, m.Text)
	}

	if len(calls) == 0 {
		return Result{Content: trimmed}
	}

	content = strings.Join(strings.Fields(content), " ")
	if content == "" {
		content = Describe(calls[0].Name, calls[0].Args)
	}
	return Result{Content: content, Calls: calls}
}

// excise removes one occurrence of the matched call text from content. The
// content has had its lines trimmed and space-joined, so a match that
// spanned lines in the original is retried with its whitespace collapsed.
func excise(content, matched string) string {
	if strings.Contains(content, matched) {
		return strings.Replace(content, matched, " ", 1)
	}
	collapsed := strings.Join(strings.Fields(matched), " ")
	return strings.Replace(content, collapsed, " ", 1)
}
