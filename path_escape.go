package deep

import "strings"

// EscapeKey escapes a literal key so that ParsePath treats embedded
// separator and escape characters as part of the key. Escape characters
// are doubled before separators are escaped; the reverse order would
// re-escape the separator's own escape.
func EscapeKey(name string) string {
	if !strings.ContainsAny(name, string(Escape)+string(Separator)) {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) * 2)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == Escape || c == Separator {
			b.WriteByte(Escape)
		}
		b.WriteByte(c)
	}
	return b.String()
}

// JoinPath joins literal keys into a path string after escaping each one.
// Example: JoinPath("config", "foo.bar") -> "config.foo\\.bar".
func JoinPath(keys ...string) string {
	if len(keys) == 0 {
		return ""
	}
	escaped := make([]string, len(keys))
	for i, k := range keys {
		escaped[i] = EscapeKey(k)
	}
	return strings.Join(escaped, string(Separator))
}
