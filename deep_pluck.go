package deep

import (
	"reflect"
	"sort"
)

// Pluck resolves the same path against every tree in a collection,
// producing one Result per item in iteration order; items where the path
// does not resolve contribute the not-found Result, so the output length
// always equals the collection length. Sequence collections iterate in
// element order; mapping collections iterate in sorted key order.
func Pluck(collection any, path any) []Result {
	keys := ParsePath(path)
	switch c := collection.(type) {
	case []any:
		results := make([]Result, len(c))
		for i, item := range c {
			results[i] = getParsed(item, keys)
		}
		return results
	case map[string]any:
		names := make([]string, 0, len(c))
		for k := range c {
			names = append(names, k)
		}
		sort.Strings(names)
		results := make([]Result, len(names))
		for i, k := range names {
			results[i] = getParsed(c[k], keys)
		}
		return results
	}
	return pluckReflect(collection, keys)
}

// pluckReflect covers typed slices, arrays, and string-keyed maps.
func pluckReflect(collection any, keys Path) []Result {
	if collection == nil {
		return nil
	}
	rv := reflect.ValueOf(collection)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		results := make([]Result, rv.Len())
		for i := range results {
			results[i] = getParsed(rv.Index(i).Interface(), keys)
		}
		return results
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil
		}
		names := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			names = append(names, k.String())
		}
		sort.Strings(names)
		results := make([]Result, len(names))
		for i, k := range names {
			item := rv.MapIndex(reflect.ValueOf(k).Convert(kt))
			results[i] = getParsed(item.Interface(), keys)
		}
		return results
	}
	return nil
}
