// Package deepjson exposes the deep operation set over serialized JSON
// documents, delegating to gjson and sjson so documents never have to be
// decoded into Go containers. Paths use the same dialect as package deep
// and are re-escaped into gjson/sjson syntax before delegation, so one
// path addresses both a live tree and its serialized form.
//
// JSON has no inherited members, so the own/any distinction collapses
// here: In doubles as the ownership test and there is no Own.
package deepjson

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/markalfred/deep"
)

// Translate converts a deep path specification into gjson/sjson path
// syntax. An empty key sequence translates to gjson's root selector.
func Translate(path any) string {
	keys := deep.ParsePath(path)
	if len(keys) == 0 {
		return "@this"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = escapeGJSON(k)
	}
	return strings.Join(parts, ".")
}

// escapeGJSON escapes one literal key for the gjson path syntax. gjson
// gives several bare characters query or modifier meaning, and sjson
// consumes a leading ':' as a force-object-key marker; all of them are
// literal in the deep dialect.
func escapeGJSON(key string) string {
	var b strings.Builder
	b.Grow(len(key) * 2)
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch c {
		case '\\', '.', ':', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Get resolves path against a JSON document.
func Get(json []byte, path any) gjson.Result {
	return gjson.GetBytes(json, Translate(path))
}

// GetString is Get for string input.
func GetString(json string, path any) gjson.Result {
	return gjson.Get(json, Translate(path))
}

// In reports whether path resolves against a JSON document.
func In(json []byte, path any) bool {
	return Get(json, path).Exists()
}

// GetMany resolves multiple paths against the same document.
func GetMany(json []byte, paths ...string) []gjson.Result {
	if len(paths) == 0 {
		return nil
	}
	results := make([]gjson.Result, len(paths))
	for i, path := range paths {
		results[i] = Get(json, path)
	}
	return results
}

// Set stores value at path in a JSON document, returning the rewritten
// document. Missing intermediate containers are created by sjson under
// the same digit-key rule as deep.Set.
func Set(json []byte, path any, value any) ([]byte, error) {
	keys := deep.ParsePath(path)
	if len(keys) == 0 {
		return json, deep.ErrEmptyPath
	}
	return sjson.SetBytes(json, Translate(keys), value)
}

// SetString is Set for string input.
func SetString(json string, path any, value any) (string, error) {
	keys := deep.ParsePath(path)
	if len(keys) == 0 {
		return json, deep.ErrEmptyPath
	}
	return sjson.Set(json, Translate(keys), value)
}

// Delete removes the value at path, returning the rewritten document.
// Deleting a path that does not resolve leaves the document unchanged.
func Delete(json []byte, path any) ([]byte, error) {
	keys := deep.ParsePath(path)
	if len(keys) == 0 {
		return json, deep.ErrEmptyPath
	}
	return sjson.DeleteBytes(json, Translate(keys))
}

// Pluck resolves path against every element of a top-level JSON array
// (or every member of a top-level object, in document order), one result
// per element including non-existent results where the path does not
// resolve.
func Pluck(json []byte, path any) []gjson.Result {
	doc := gjson.ParseBytes(json)
	if !doc.IsArray() && !doc.IsObject() {
		return nil
	}
	p := Translate(path)
	var results []gjson.Result
	doc.ForEach(func(_, item gjson.Result) bool {
		results = append(results, item.Get(p))
		return true
	})
	return results
}
