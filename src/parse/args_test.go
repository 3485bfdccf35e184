package parse

import (
	"reflect"
	"testing"
)

func TestParseArgsCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want map[string]any
	}{
		{"a=1", map[string]any{"a": 1}},
		{"a=1.5", map[string]any{"a": 1.5}},
		{"a=true", map[string]any{"a": true}},
		{"a=False", map[string]any{"a": false}},
		{"a=hello", map[string]any{"a": "hello"}},
		{"", map[string]any{}},
		{"   ", map[string]any{}},
	}
	for _, tc := range cases {
		got := ParseArgs(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseArgs(%q) = %#v, want %#v", tc.raw, got, tc.want)
		}
	}
}

func TestParseArgsQuoting(t *testing.T) {
	got := ParseArgs(`departure_airport='CDG', arrival_airport="LHR", hotel_id=123`)
	want := map[string]any{
		"departure_airport": "CDG",
		"arrival_airport":   "LHR",
		"hotel_id":          123,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected args: %#v", got)
	}
}

func TestParseArgsQuotedValueKeepsInnerContent(t *testing.T) {
	got := ParseArgs(`query='flights to Paris, France'`)
	if got["query"] != "flights to Paris, France" {
		t.Fatalf("quoted comma not preserved: %#v", got)
	}
}

func TestParseArgsTrailingComma(t *testing.T) {
	got := ParseArgs("a=1, b=2,")
	if len(got) != 2 || got["a"] != 1 || got["b"] != 2 {
		t.Fatalf("unexpected args: %#v", got)
	}
}

func TestParseArgsDuplicateKeyKeepsLast(t *testing.T) {
	got := ParseArgs("a=1, a=2")
	if got["a"] != 2 {
		t.Fatalf("expected last occurrence to win, got %#v", got)
	}
}

func TestParseArgsSkipsMalformedFragments(t *testing.T) {
	got := ParseArgs("garbage, a=1, also garbage")
	if len(got) != 1 || got["a"] != 1 {
		t.Fatalf("unexpected args: %#v", got)
	}
}

func TestParseArgsNumericShapes(t *testing.T) {
	got := ParseArgs("a=1.2.3, b=.5, c=12a")
	if got["a"] != "1.2.3" {
		t.Fatalf("multi-dot value should stay a string: %#v", got["a"])
	}
	if got["b"] != 0.5 {
		t.Fatalf("leading-dot float not coerced: %#v", got["b"])
	}
	if got["c"] != "12a" {
		t.Fatalf("mixed token should stay a string: %#v", got["c"])
	}
}
