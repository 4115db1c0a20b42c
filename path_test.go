package deep

import (
	"reflect"
	"testing"
)

// TestParsePathBasic tests plain dotted paths
func TestParsePathBasic(t *testing.T) {
	got := ParsePath("level1.level2.level3.0")
	want := Path{"level1", "level2", "level3", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Single key
	got = ParsePath("name")
	if len(got) != 1 || got[0] != "name" {
		t.Errorf("Expected [name], got %v", got)
	}

	// Digit-only segments stay strings at parse time
	got = ParsePath("0.1.2")
	want = Path{"0", "1", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestParsePathEscapes tests escaped separator and escape characters
func TestParsePathEscapes(t *testing.T) {
	got := ParsePath("lev\\.el1.lev\\\\el2.level3")
	want := Path{"lev.el1", "lev\\el2", "level3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Two escapes make a literal escape, the separator stays a separator
	got = ParsePath("a\\\\.b")
	want = Path{"a\\", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Three escapes make a literal escape followed by a literal separator
	got = ParsePath("a\\\\\\.b")
	want = Path{"a\\.b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Unescaped escape characters elsewhere are kept as-is
	got = ParsePath("a\\b.c")
	want = Path{"a\\b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Trailing lone escape is kept
	got = ParsePath("a\\")
	want = Path{"a\\"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestParsePathEscapeRuns tests long runs of escape characters
func TestParsePathEscapeRuns(t *testing.T) {
	tests := []struct {
		path string
		want Path
	}{
		{"a\\\\\\\\.b", Path{"a\\\\", "b"}},          // four escapes: two literals, split
		{"a\\\\\\\\\\.b", Path{"a\\\\.b"}},           // five escapes: two literals, escaped sep
		{"\\\\\\\\\\\\.b", Path{"\\\\\\", "b"}},      // six escapes: three literals, split
		{"\\.\\.\\.", Path{"..."}},                   // every separator escaped
		{"\\\\.\\\\.\\\\", Path{"\\", "\\", "\\"}},   // every segment a literal escape
	}
	for _, tt := range tests {
		got := ParsePath(tt.path)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParsePath(%q): expected %q, got %q", tt.path, tt.want, got)
		}
	}
}

// TestParsePathEdgeCases tests empty keys from empty, leading, trailing
// and doubled separators
func TestParsePathEdgeCases(t *testing.T) {
	got := ParsePath("")
	if len(got) != 1 || got[0] != "" {
		t.Errorf("Expected one empty key, got %v", got)
	}

	got = ParsePath(".a.")
	want := Path{"", "a", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	got = ParsePath("a..b")
	want = Path{"a", "", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestParsePathSpecs tests the non-string path specification forms
func TestParsePathSpecs(t *testing.T) {
	// A Path passes through unchanged
	p := Path{"a", "b"}
	if got := ParsePath(p); !reflect.DeepEqual(got, p) {
		t.Errorf("Expected passthrough, got %v", got)
	}

	// []string converts directly, no splitting of embedded separators
	got := ParsePath([]string{"a.b", "c"})
	want := Path{"a.b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// []any stringifies integer keys
	got = ParsePath([]any{"a", 1, "b"})
	want = Path{"a", "1", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Anything else degrades to an empty sequence
	if got := ParsePath(42); len(got) != 0 {
		t.Errorf("Expected empty sequence for int spec, got %v", got)
	}
	if got := ParsePath(nil); len(got) != 0 {
		t.Errorf("Expected empty sequence for nil spec, got %v", got)
	}
}

// TestEscapeKey tests the escape helper and its round trip through the
// parser
func TestEscapeKey(t *testing.T) {
	if got := EscapeKey("plain"); got != "plain" {
		t.Errorf("Expected no escaping, got %q", got)
	}
	if got := EscapeKey("a.b"); got != "a\\.b" {
		t.Errorf("Expected escaped separator, got %q", got)
	}
	if got := EscapeKey("a\\b"); got != "a\\\\b" {
		t.Errorf("Expected doubled escape, got %q", got)
	}

	// Round trip: escaping then parsing reproduces the key exactly
	keys := []string{"plain", "a.b", "a\\b", "a\\.b", "\\", ".", "..", "\\\\", ""}
	for _, key := range keys {
		got := ParsePath(EscapeKey(key))
		if len(got) != 1 || got[0] != key {
			t.Errorf("Round trip of %q: got %q", key, got)
		}
	}
}

// TestJoinPath tests building path strings from literal keys
func TestJoinPath(t *testing.T) {
	if got := JoinPath("config", "foo.bar"); got != "config.foo\\.bar" {
		t.Errorf("Expected escaped join, got %q", got)
	}
	if got := JoinPath(); got != "" {
		t.Errorf("Expected empty path, got %q", got)
	}

	// Round trip through the parser
	keys := Path{"a.b", "c\\d", "plain", ""}
	got := ParsePath(JoinPath(keys...))
	if !reflect.DeepEqual(got, keys) {
		t.Errorf("Round trip: expected %q, got %q", keys, got)
	}

	// Path.String is the same operation
	if keys.String() != JoinPath(keys...) {
		t.Error("Expected Path.String to match JoinPath")
	}
}
