package concierge

import (
	"fmt"
	"strings"
)

const defaultSystemPrompt = "You are a helpful and friendly AI customer support assistant. " +
	"Always respond with natural, conversational language. " +
	"Explain what you're doing in a helpful way."

// formatInstructions is the contract between the system prompt and the
// parser in src/parse: the model is told to narrate first and to signal
// invocations with the TOOL_CALL convention the segmenter recognizes.
const formatInstructions = "\n\nIMPORTANT: When you need to use a tool, ALWAYS:\n" +
	"1. First provide a helpful natural language response explaining what you're doing\n" +
	"2. Then call the tool using this format: TOOL_CALL: tool_name(arg1='value1', arg2='value2')\n" +
	"\nExamples:\n" +
	"User: 'Search for flights from Paris to London'\n" +
	"Assistant: I'll search for flights from Paris to London for you.\n" +
	"TOOL_CALL: search_flights(departure_airport='CDG', arrival_airport='LHR')\n" +
	"\nUser: 'Book hotel 123'\n" +
	"Assistant: I'll book hotel ID 123 for you right away.\n" +
	"TOOL_CALL: book_hotel(hotel_id=123)\n" +
	"\nNEVER respond with just a bare function call. Always include helpful natural language."

// buildSystemPrompt augments the persona with the tool catalog and the
// formatting rules. Without tools the persona is passed through untouched.
func buildSystemPrompt(systemPrompt string, tools []ToolSpec) string {
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = defaultSystemPrompt
	}
	if len(tools) == 0 {
		return systemPrompt
	}

	var sb strings.Builder
	sb.Grow(2048)
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nYou have access to these tools:\n")
	for _, spec := range tools {
		description := spec.Description
		if strings.TrimSpace(description) == "" {
			description = "No description"
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", spec.Name, description))
	}
	sb.WriteString(formatInstructions)
	return sb.String()
}

// buildInstructionBlock assembles the single text block handed to the
// generation provider: system prompt, prior history, then the current
// exchange with an open Assistant: slot for the model to complete.
func buildInstructionBlock(systemPrompt, historyText, prompt string) string {
	var sb strings.Builder
	sb.Grow(len(systemPrompt) + len(historyText) + len(prompt) + 64)

	sb.WriteString("System: ")
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")

	if historyText != "" {
		sb.WriteString(historyText)
	}

	sb.WriteString("User: ")
	sb.WriteString(prompt)
	sb.WriteString("\nAssistant: ")
	return sb.String()
}
