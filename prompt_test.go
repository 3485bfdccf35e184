package concierge

import (
	"strings"
	"testing"
)

func TestBuildSystemPromptDefaultsPersona(t *testing.T) {
	got := buildSystemPrompt("", nil)
	if got != defaultSystemPrompt {
		t.Fatalf("unexpected prompt: %q", got)
	}
}

func TestBuildSystemPromptWithoutToolsOmitsFormatRules(t *testing.T) {
	got := buildSystemPrompt("You are a travel agent.", nil)
	if got != "You are a travel agent." {
		t.Fatalf("unexpected prompt: %q", got)
	}
	if strings.Contains(got, "TOOL_CALL") {
		t.Fatalf("format rules should be absent without tools")
	}
}

func TestBuildSystemPromptListsTools(t *testing.T) {
	got := buildSystemPrompt("", []ToolSpec{
		{Name: "book_hotel", Description: "Book a hotel by ID"},
		{Name: "mystery_tool"},
	})
	if !strings.Contains(got, "- book_hotel: Book a hotel by ID\n") {
		t.Fatalf("tool listing missing:\n%s", got)
	}
	if !strings.Contains(got, "- mystery_tool: No description\n") {
		t.Fatalf("missing description fallback absent:\n%s", got)
	}
	for _, example := range []string{
		"TOOL_CALL: search_flights(departure_airport='CDG', arrival_airport='LHR')",
		"TOOL_CALL: book_hotel(hotel_id=123)",
	} {
		if !strings.Contains(got, example) {
			t.Fatalf("worked example missing:\n%s", got)
		}
	}
	if !strings.Contains(got, "NEVER respond with just a bare function call") {
		t.Fatalf("narration rule missing:\n%s", got)
	}
}

func TestBuildInstructionBlock(t *testing.T) {
	got := buildInstructionBlock("persona", "User: before\n", "now")
	want := "System: persona\n\nUser: before\nUser: now\nAssistant: "
	if got != want {
		t.Fatalf("unexpected block: %q", got)
	}
}
