package parse

import "regexp"

// The model is instructed to signal invocations in one of three textual
// conventions, tried in priority order by the segmenter:
//
//  1. the whole response is exactly `name(args)`,
//  2. a single line is exactly `name(args)`,
//  3. `TOOL_CALL: name(args)` embedded anywhere in narration.
//
// Argument text always stops at the first closing parenthesis; a literal
// `)` inside an argument value truncates the match. Known limitation.
var (
	standaloneRe = regexp.MustCompile(`^(\w+)\s*\(\s*([^)]*?)\s*\)$`)
	inlineRe     = regexp.MustCompile(`TOOL_CALL:\s*(\w+)\s*\(\s*([^)]*?)\s*\)`)
)

// matchStandalone reports whether text, as a whole, is a bare invocation.
// The caller is expected to have trimmed surrounding whitespace.
func matchStandalone(text string) (name, rawArgs string, ok bool) {
	m := standaloneRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// inlineMatch is one TOOL_CALL occurrence inside a larger response. Text is
// the exact matched substring, kept so the segmenter can excise it from the
// user-visible content.
type inlineMatch struct {
	Text    string
	Name    string
	RawArgs string
}

// findInline returns every prefixed invocation in text, left to right.
func findInline(text string) []inlineMatch {
	var matches []inlineMatch
	for _, idx := range inlineRe.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, inlineMatch{
			Text:    text[idx[0]:idx[1]],
			Name:    text[idx[2]:idx[3]],
			RawArgs: text[idx[4]:idx[5]],
		})
	}
	return matches
}
