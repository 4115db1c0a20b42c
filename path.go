package deep

import (
	"fmt"
	"strconv"
	"strings"
)

// Path characters. Fixed; keys containing either character are written
// with EscapeKey.
const (
	Separator = '.'
	Escape    = '\\'
)

// Path is a parsed, ordered key sequence. Keys are kept as strings; an
// all-digit key acts as an index when the container at that step is
// sequence-like.
type Path []string

// String rebuilds a path string from the keys, escaping as needed.
func (p Path) String() string {
	return JoinPath(p...)
}

// ParsePath converts a path specification into a key sequence. A Path or
// []string is returned as-is, a []any of strings and non-negative integers
// is stringified element-wise, and a string is split on unescaped
// separators. Any other specification yields an empty sequence rather
// than an error.
func ParsePath(spec any) Path {
	switch p := spec.(type) {
	case Path:
		return p
	case []string:
		return Path(p)
	case string:
		return splitPath(p)
	case []any:
		keys := make(Path, 0, len(p))
		for _, k := range p {
			switch k := k.(type) {
			case string:
				keys = append(keys, k)
			case int:
				keys = append(keys, strconv.Itoa(k))
			default:
				keys = append(keys, fmt.Sprint(k))
			}
		}
		return keys
	default:
		return nil
	}
}

// splitPath splits on every separator not preceded by an odd run of escape
// characters, resolving escape sequences as it goes. A single forward scan
// consuming escape pairs keeps the odd/even bookkeeping implicit, so runs
// of escapes of any length come out right without lookbehind.
func splitPath(s string) Path {
	keys := make(Path, 0, strings.Count(s, string(Separator))+1)
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == Escape && i+1 < len(s) && (s[i+1] == Escape || s[i+1] == Separator) {
			// escaped escape or escaped separator: emit the literal
			b.WriteByte(s[i+1])
			i++
			continue
		}
		if c == Separator {
			keys = append(keys, b.String())
			b.Reset()
			continue
		}
		// unescaped escape characters elsewhere are kept as-is
		b.WriteByte(c)
	}
	return append(keys, b.String())
}
