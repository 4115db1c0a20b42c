// Package deep provides property-path access for nested Go containers.
// Values addressed by a dotted path (or an explicit key sequence) can be
// read, existence-checked, written, and bulk-plucked without manually
// walking each level of the tree.
package deep

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Resolver supplies members that are not stored directly on a container,
// the way an inherited or computed property would be. Keys satisfied only
// through a Resolver are visible to In and Get but not to Has and Own.
type Resolver interface {
	ResolveKey(key string) (any, bool)
}

//------------------------------------------------------------------------------
// CONTAINER CLASSIFICATION
//------------------------------------------------------------------------------

// kind tags a value as one of the traversable container shapes.
type kind uint8

const (
	kindScalar kind = iota
	kindMapping
	kindSequence
)

func kindOf(v any) kind {
	switch v.(type) {
	case nil:
		return kindScalar
	case map[string]any:
		return kindMapping
	case []any:
		return kindSequence
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return kindScalar
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return kindMapping
		}
	case reflect.Slice, reflect.Array:
		return kindSequence
	case reflect.Struct:
		return kindMapping
	}
	return kindScalar
}

// isDigits reports whether key is a non-empty run of ASCII digits, the
// syntactic test for a sequence index.
func isDigits(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return false
		}
	}
	return true
}

// lookupOwn resolves key as a directly-owned member of v: a map entry that
// is present, an in-range sequence index, or an exported field declared on
// the struct type itself.
func lookupOwn(v any, key string) (any, bool) {
	switch c := v.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case []any:
		if i, ok := seqIndex(key, len(c)); ok {
			return c[i], true
		}
		return nil, false
	}
	return reflectLookup(v, key, false)
}

// lookupAny resolves key through any access: own members first, then struct
// fields promoted from embedded types, then a Resolver implementation.
func lookupAny(v any, key string) (any, bool) {
	switch c := v.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case []any:
		if i, ok := seqIndex(key, len(c)); ok {
			return c[i], true
		}
		return nil, false
	}
	if val, ok := reflectLookup(v, key, true); ok {
		return val, true
	}
	if r, ok := v.(Resolver); ok {
		return r.ResolveKey(key)
	}
	return nil, false
}

func seqIndex(key string, length int) (int, bool) {
	if !isDigits(key) {
		return 0, false
	}
	i, err := strconv.Atoi(key)
	if err != nil || i >= length {
		return 0, false
	}
	return i, true
}

// reflectLookup handles typed maps, typed slices/arrays, and structs. When
// promoted is false, struct fields reachable only through an embedded type
// are not considered owned.
func reflectLookup(v any, key string, promoted bool) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		if i, ok := seqIndex(key, rv.Len()); ok {
			return rv.Index(i).Interface(), true
		}
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return nil, false
		}
		if !promoted && len(f.Index) > 1 {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			// nil embedded pointer along the promotion chain
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

//------------------------------------------------------------------------------
// RESULT TYPE
//------------------------------------------------------------------------------

// Result holds the outcome of a lookup. The zero Result is the not-found
// sentinel; a found nil value and a missing path are distinguishable
// through Exists.
type Result struct {
	value  any
	exists bool
}

// Exists reports whether the path resolved to a value.
func (r Result) Exists() bool {
	return r.exists
}

// Value returns the resolved value, or nil when the path did not resolve.
func (r Result) Value() any {
	return r.value
}

// IsNull reports whether the path resolved to a stored nil.
func (r Result) IsNull() bool {
	return r.exists && r.value == nil
}

// String returns the result as a string.
func (r Result) String() string {
	switch v := r.value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the result as an int64.
func (r Result) Int() int64 {
	switch v := r.value.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case uint64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	case bool:
		if v {
			return 1
		}
		return 0
	}
	rv := reflect.ValueOf(r.value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float())
	}
	return 0
}

// Float returns the result as a float64.
func (r Result) Float() float64 {
	switch v := r.value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		n, _ := strconv.ParseFloat(v, 64)
		return n
	case bool:
		if v {
			return 1
		}
		return 0
	}
	rv := reflect.ValueOf(r.value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return 0
}

// Bool returns the result as a boolean.
func (r Result) Bool() bool {
	switch v := r.value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return v != "" && v != "0" && v != "false"
		}
		return b
	case int, int64, uint64, float32, float64:
		return r.Float() != 0
	}
	return false
}

// Array returns the elements of a sequence result as a slice of results.
func (r Result) Array() []Result {
	if !r.exists || kindOf(r.value) != kindSequence {
		return nil
	}
	var results []Result
	r.ForEach(func(_, value Result) bool {
		results = append(results, value)
		return true
	})
	return results
}

// Map returns the entries of a mapping result keyed by member name.
func (r Result) Map() map[string]Result {
	if !r.exists || kindOf(r.value) != kindMapping {
		return nil
	}
	results := make(map[string]Result)
	r.ForEach(func(key, value Result) bool {
		results[key.String()] = value
		return true
	})
	return results
}

// ForEach iterates over each member of a mapping or sequence result.
// Mapping members are visited in sorted key order so iteration is
// deterministic. Return false from the iterator to stop early.
func (r Result) ForEach(iterator func(key, value Result) bool) {
	if !r.exists {
		return
	}
	switch c := r.value.(type) {
	case []any:
		for i, v := range c {
			if !iterator(found(i), found(v)) {
				return
			}
		}
		return
	case map[string]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !iterator(found(k), found(c[k])) {
				return
			}
		}
		return
	}
	rv := reflect.ValueOf(r.value)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !iterator(found(i), found(rv.Index(i).Interface())) {
				return
			}
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		kt := rv.Type().Key()
		for _, k := range keys {
			v := rv.MapIndex(reflect.ValueOf(k).Convert(kt))
			if !iterator(found(k), found(v.Interface())) {
				return
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if !iterator(found(f.Name), found(rv.Field(i).Interface())) {
				return
			}
		}
	}
}

// Get resolves a sub-path against the result's value.
func (r Result) Get(path any) Result {
	if !r.exists {
		return Result{}
	}
	return Get(r.value, path)
}

func found(v any) Result {
	return Result{value: v, exists: true}
}
