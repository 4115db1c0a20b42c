package deep

import (
	"errors"
	"strconv"
)

// Errors for set operations. Lookups never fail; only writes do.
var (
	ErrEmptyPath        = errors.New("empty path")
	ErrRootNotContainer = errors.New("root is not a mutable container")
	ErrTypeMismatch     = errors.New("cannot store a named key in a sequence")
	ErrIndexRange       = errors.New("sequence index out of range")
)

// Set stores value at path under root, creating missing intermediate
// containers along the way. The container kind created at each step is
// decided by the next key: an all-digit key produces a sequence, anything
// else a mapping. A non-container value found mid-path is overwritten by
// the created container.
//
// Set mutates root in place and returns it. Sequence growth reallocates,
// so when root (or a container on the path) is a []any the returned root
// must be used in place of the original; mapping roots keep their
// identity. Only map[string]any and []any are writable; typed containers
// encountered on the path are replaced like scalars.
//
// Sequence growth is dense: writing index n allocates all n+1 slots,
// nil-padded, so a large index allocates a proportionally large slice.
func Set(root any, path any, value any) (any, error) {
	keys := ParsePath(path)
	if len(keys) == 0 {
		return root, ErrEmptyPath
	}
	switch root.(type) {
	case map[string]any, []any:
	default:
		return root, ErrRootNotContainer
	}
	return assign(root, keys, value)
}

// assign recursively places value under container, returning the possibly
// reallocated container.
func assign(container any, keys Path, value any) (any, error) {
	key := keys[0]
	if len(keys) == 1 {
		return storeAt(container, key, value)
	}
	child := childFor(container, key)
	switch child.(type) {
	case map[string]any, []any:
	default:
		child = newContainer(keys[1])
	}
	child, err := assign(child, keys[1:], value)
	if err != nil {
		return container, err
	}
	return storeAt(container, key, child)
}

// childFor reads the currently stored value without any-access fallbacks;
// auto-vivification only consults what the write would overwrite.
func childFor(container any, key string) any {
	switch c := container.(type) {
	case map[string]any:
		return c[key]
	case []any:
		if i, ok := seqIndex(key, len(c)); ok {
			return c[i]
		}
	}
	return nil
}

// newContainer picks the kind of a vivified container from the key that
// will be stored into it.
func newContainer(nextKey string) any {
	if isDigits(nextKey) {
		return []any{}
	}
	return map[string]any{}
}

// storeAt writes value at key and returns the container, reallocated when
// a sequence has to grow. Growth pads the gap with nils.
func storeAt(container any, key string, value any) (any, error) {
	switch c := container.(type) {
	case map[string]any:
		c[key] = value
		return c, nil
	case []any:
		if !isDigits(key) {
			return c, ErrTypeMismatch
		}
		i, err := atoiIndex(key)
		if err != nil {
			return c, err
		}
		for len(c) <= i {
			c = append(c, nil)
		}
		c[i] = value
		return c, nil
	}
	return container, ErrRootNotContainer
}

func atoiIndex(key string) (int, error) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 {
		return 0, ErrIndexRange
	}
	return i, nil
}
