package deep

//------------------------------------------------------------------------------
// LOOKUP OPERATIONS
//------------------------------------------------------------------------------

// In reports whether path resolves against root through any access,
// including struct fields promoted from embedded types and members
// supplied by a Resolver. An empty key sequence is trivially true.
func In(root any, path any) bool {
	_, ok := walk(root, ParsePath(path), lookupAny)
	return ok
}

// Has reports whether path resolves against root through directly-owned
// members only. Has implies In, never the converse.
func Has(root any, path any) bool {
	_, ok := walk(root, ParsePath(path), lookupOwn)
	return ok
}

// Get returns the value at path under root, following any access. A path
// that does not resolve yields the not-found Result; missing intermediate
// containers never panic.
func Get(root any, path any) Result {
	return getParsed(root, ParsePath(path))
}

// Own is Get restricted to directly-owned chains. A value reachable only
// through promoted fields or a Resolver yields the not-found Result.
func Own(root any, path any) Result {
	v, ok := walk(root, ParsePath(path), lookupOwn)
	if !ok {
		return Result{}
	}
	return found(v)
}

// GetMany resolves multiple paths against the same root, one Result per
// path in order.
func GetMany(root any, paths ...string) []Result {
	if len(paths) == 0 {
		return nil
	}
	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i] = Get(root, path)
	}
	return results
}

func getParsed(root any, keys Path) Result {
	v, ok := walk(root, keys, lookupAny)
	if !ok {
		return Result{}
	}
	return found(v)
}

// walk descends the key sequence left to right. The lookup function
// decides the membership rule; a step failing for any reason (scalar
// node, absent key, out-of-range index) ends the walk.
func walk(root any, keys Path, lookup func(any, string) (any, bool)) (any, bool) {
	cur := root
	for _, key := range keys {
		next, ok := lookup(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
