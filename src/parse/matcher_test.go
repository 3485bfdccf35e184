package parse

import "testing"

func TestMatchStandalone(t *testing.T) {
	name, rawArgs, ok := matchStandalone("book_hotel(hotel_id=5)")
	if !ok || name != "book_hotel" || rawArgs != "hotel_id=5" {
		t.Fatalf("unexpected match: %q %q %v", name, rawArgs, ok)
	}

	for _, text := range []string{
		"book_hotel(hotel_id=5) please",
		"please book_hotel(hotel_id=5)",
		"book_hotel",
		"(hotel_id=5)",
	} {
		if _, _, ok := matchStandalone(text); ok {
			t.Fatalf("%q should not match the standalone convention", text)
		}
	}
}

func TestFindInlineStopsAtFirstParen(t *testing.T) {
	// A literal ')' inside an argument truncates the match.
	matches := findInline("TOOL_CALL: web_search_tool(query='a (small) town')")
	if len(matches) != 1 {
		t.Fatalf("unexpected matches: %#v", matches)
	}
	if matches[0].RawArgs != "query='a (small" {
		t.Fatalf("args should stop at the first ')': %q", matches[0].RawArgs)
	}
}

func TestFindInlineMultiple(t *testing.T) {
	matches := findInline("x TOOL_CALL: a(k=1) y TOOL_CALL: b(k=2) z")
	if len(matches) != 2 || matches[0].Name != "a" || matches[1].Name != "b" {
		t.Fatalf("unexpected matches: %#v", matches)
	}
}
