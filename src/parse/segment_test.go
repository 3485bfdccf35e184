package parse

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

var travelTools = []ToolSpec{
	{Name: "search_flights", Description: "Search for flights between two airports"},
	{Name: "book_hotel", Description: "Book a hotel by ID"},
	{Name: "web_search_tool", Description: "Search the web"},
}

func TestSegmentPlainTextPassesThrough(t *testing.T) {
	raw := "Your booking is confirmed.\nHave a pleasant trip!"
	res := Segment(raw, travelTools)
	if len(res.Calls) != 0 {
		t.Fatalf("unexpected calls: %#v", res.Calls)
	}
	if res.Content != raw {
		t.Fatalf("content changed: %q", res.Content)
	}
}

func TestSegmentNoToolsReturnsRawVerbatim(t *testing.T) {
	raw := "  search_flights(departure_airport='CDG')  "
	res := Segment(raw, nil)
	if res.Content != raw || len(res.Calls) != 0 {
		t.Fatalf("expected verbatim pass-through, got %#v", res)
	}
}

func TestSegmentStandaloneCall(t *testing.T) {
	res := Segment("search_flights(departure_airport='CDG', arrival_airport='LHR')", travelTools)
	if res.Content != "I'll search for flights from CDG to LHR for you." {
		t.Fatalf("unexpected content: %q", res.Content)
	}
	want := []ToolCall{{
		ID:   "call_0",
		Name: "search_flights",
		Args: map[string]any{"departure_airport": "CDG", "arrival_airport": "LHR"},
	}}
	if !reflect.DeepEqual(res.Calls, want) {
		t.Fatalf("unexpected calls: %#v", res.Calls)
	}
	if strings.ContainsAny(res.Content, "()") {
		t.Fatalf("call syntax leaked into content: %q", res.Content)
	}
}

func TestSegmentUnregisteredCallStaysText(t *testing.T) {
	raw := "transmogrify(level=9)"
	res := Segment(raw, travelTools)
	if len(res.Calls) != 0 {
		t.Fatalf("unexpected calls: %#v", res.Calls)
	}
	if res.Content != raw {
		t.Fatalf("unexpected content: %q", res.Content)
	}
}

func TestSegmentLineWiseCalls(t *testing.T) {
	raw := "Here is what I found.\nbook_hotel(hotel_id=42)\nAnything else?"
	res := Segment(raw, travelTools)
	if len(res.Calls) != 1 || res.Calls[0].Name != "book_hotel" || res.Calls[0].ID != "call_0" {
		t.Fatalf("unexpected calls: %#v", res.Calls)
	}
	want := "Here is what I found. I'll book hotel ID 42 for you. Anything else?"
	if res.Content != want {
		t.Fatalf("unexpected content: %q", res.Content)
	}
}

func TestSegmentInlineMarker(t *testing.T) {
	raw := "I'll check that.\nTOOL_CALL: book_hotel(hotel_id=123)"
	res := Segment(raw, travelTools)
	if len(res.Calls) != 1 {
		t.Fatalf("unexpected calls: %#v", res.Calls)
	}
	call := res.Calls[0]
	if call.ID != "call_0" || call.Name != "book_hotel" || call.Args["hotel_id"] != 123 {
		t.Fatalf("unexpected call: %#v", call)
	}
	if !strings.Contains(res.Content, "I'll check that.") {
		t.Fatalf("narration lost: %q", res.Content)
	}
	if strings.Contains(res.Content, "TOOL_CALL") {
		t.Fatalf("marker leaked into content: %q", res.Content)
	}
}

func TestSegmentMultipleInlineMarkersOrdered(t *testing.T) {
	raw := "Let me look into both.\n" +
		"TOOL_CALL: search_flights(departure_airport='CDG', arrival_airport='LHR')\n" +
		"And the hotel too.\n" +
		"TOOL_CALL: book_hotel(hotel_id=7)"
	res := Segment(raw, travelTools)
	if len(res.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %#v", res.Calls)
	}
	for i, call := range res.Calls {
		if call.ID != fmt.Sprintf("call_%d", i) {
			t.Fatalf("ids out of order: %#v", res.Calls)
		}
	}
	if res.Calls[0].Name != "search_flights" || res.Calls[1].Name != "book_hotel" {
		t.Fatalf("calls out of order: %#v", res.Calls)
	}
	if strings.Contains(res.Content, "TOOL_CALL") {
		t.Fatalf("marker leaked into content: %q", res.Content)
	}
	if !strings.Contains(res.Content, "Let me look into both.") || !strings.Contains(res.Content, "And the hotel too.") {
		t.Fatalf("narration lost: %q", res.Content)
	}
}

func TestSegmentInlineOnlyResponseSynthesizesContent(t *testing.T) {
	res := Segment("TOOL_CALL: book_hotel(hotel_id=9)", travelTools)
	if len(res.Calls) != 1 {
		t.Fatalf("unexpected calls: %#v", res.Calls)
	}
	if res.Content != "I'll book hotel ID 9 for you." {
		t.Fatalf("unexpected content: %q", res.Content)
	}
}

func TestSegmentInlineUnknownToolKeepsText(t *testing.T) {
	raw := "One moment.\nTOOL_CALL: transmogrify(level=9)"
	res := Segment(raw, travelTools)
	if len(res.Calls) != 0 {
		t.Fatalf("unexpected calls: %#v", res.Calls)
	}
	if res.Content != raw {
		t.Fatalf("unexpected content: %q", res.Content)
	}
}

func TestSegmentIdempotentOnSynthesizedContent(t *testing.T) {
	inputs := []string{
		"search_flights(departure_airport='CDG', arrival_airport='LHR')",
		"I'll check that.\nTOOL_CALL: book_hotel(hotel_id=123)",
		"book_hotel(hotel_id=42)\nTOOL_CALL: web_search_tool(query='late checkout')",
	}
	for _, raw := range inputs {
		first := Segment(raw, travelTools)
		second := Segment(first.Content, travelTools)
		if len(second.Calls) != 0 {
			t.Fatalf("re-segmenting %q discovered calls: %#v", first.Content, second.Calls)
		}
		if second.Content != first.Content {
			t.Fatalf("content not stable: %q vs %q", first.Content, second.Content)
		}
	}
}

func TestSegmentMixedLineAndInlineOrdering(t *testing.T) {
	raw := "book_hotel(hotel_id=1)\nAlso checking flights.\nTOOL_CALL: search_flights(departure_airport='OSL', arrival_airport='TXL')"
	res := Segment(raw, travelTools)
	if len(res.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %#v", res.Calls)
	}
	if res.Calls[0].Name != "book_hotel" || res.Calls[1].Name != "search_flights" {
		t.Fatalf("line-wise calls must precede inline calls: %#v", res.Calls)
	}
	if res.Calls[0].ID != "call_0" || res.Calls[1].ID != "call_1" {
		t.Fatalf("unexpected ids: %#v", res.Calls)
	}
}

func TestSegmentBlankResponse(t *testing.T) {
	res := Segment("   \n  ", travelTools)
	if len(res.Calls) != 0 || res.Content != "" {
		t.Fatalf("unexpected result: %#v", res)
	}
}
