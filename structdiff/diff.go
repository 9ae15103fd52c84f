// Package structdiff computes flat change lists between two nested design
// token documents, buckets the changes into semantic categories, and derives
// an overall impact level.
//
// Documents are the plain trees produced by JSON/YAML unmarshaling:
// map[string]any mappings, []any sequences, and scalar leaves. A nil value
// is the absent marker. Diffing is a pure recursive walk with no state, so
// everything here is safe for concurrent use.
package structdiff

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Kind classifies a single change.
type Kind string

// Change kinds.
const (
	Added   Kind = "added"
	Removed Kind = "removed"
	Changed Kind = "changed"
)

// Entry is one change at a dotted/indexed path such as "colors.palette[2]".
// Before is set for removed/changed entries, After for added/changed.
type Entry struct {
	Kind   Kind   `json:"kind"`
	Path   string `json:"path"`
	Before any    `json:"before,omitempty"`
	After  any    `json:"after,omitempty"`
}

// Diff walks two documents and returns every addition, removal, and change.
// Identical trees yield nil. A structural shape mismatch (sequence on one
// side, mapping on the other) is reported as a single changed entry at that
// path rather than partially aligned.
func Diff(before, after any) []Entry {
	return walk(before, after, "")
}

func walk(before, after any, path string) []Entry {
	if equalValue(before, after) {
		return nil
	}

	// Absent marker on either side.
	if isAbsent(before) {
		return []Entry{{Kind: Added, Path: path, After: after}}
	}
	if isAbsent(after) {
		return []Entry{{Kind: Removed, Path: path, Before: before}}
	}

	beforeMap, beforeIsMap := before.(map[string]any)
	afterMap, afterIsMap := after.(map[string]any)
	beforeSeq, beforeIsSeq := before.([]any)
	afterSeq, afterIsSeq := after.([]any)

	switch {
	case beforeIsMap && afterIsMap:
		return walkMaps(beforeMap, afterMap, path)
	case beforeIsSeq && afterIsSeq:
		return walkSequences(beforeSeq, afterSeq, path)
	default:
		// Differing scalar leaves, or a shape mismatch: one entry, no
		// recursion.
		return []Entry{{Kind: Changed, Path: path, Before: before, After: after}}
	}
}

func walkMaps(before, after map[string]any, path string) []Entry {
	keys := make([]string, 0, len(before)+len(after))
	seen := make(map[string]bool, len(before)+len(after))
	for k := range before {
		keys = append(keys, k)
		seen[k] = true
	}
	for k := range after {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var entries []Entry
	for _, k := range keys {
		childPath := k
		if path != "" {
			childPath = path + "." + k
		}

		beforeVal, inBefore := before[k]
		afterVal, inAfter := after[k]
		switch {
		case !inBefore:
			entries = append(entries, Entry{Kind: Added, Path: childPath, After: afterVal})
		case !inAfter:
			entries = append(entries, Entry{Kind: Removed, Path: childPath, Before: beforeVal})
		default:
			entries = append(entries, walk(beforeVal, afterVal, childPath)...)
		}
	}
	return entries
}

func walkSequences(before, after []any, path string) []Entry {
	n := len(before)
	if len(after) > n {
		n = len(after)
	}

	var entries []Entry
	for i := 0; i < n; i++ {
		childPath := fmt.Sprintf("%s[%d]", path, i)
		switch {
		case i >= len(before):
			entries = append(entries, Entry{Kind: Added, Path: childPath, After: after[i]})
		case i >= len(after):
			entries = append(entries, Entry{Kind: Removed, Path: childPath, Before: before[i]})
		default:
			entries = append(entries, walk(before[i], after[i], childPath)...)
		}
	}
	return entries
}

// isAbsent reports whether v is the absent marker. Untyped nil and a nil
// inside a non-empty interface (as yaml decoding can produce) both count.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// equalValue compares two leaves or subtrees by value. Numbers compare
// across concrete types so an int 1 from YAML equals a float64 1 from JSON.
func equalValue(a, b any) bool {
	if isAbsent(a) && isAbsent(b) {
		return true
	}
	if na, ok := toFloat(a); ok {
		nb, okB := toFloat(b)
		return okB && na == nb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// FirstSegment returns the leading path segment with any trailing index
// brackets stripped: "colors.palette[2]" -> "colors".
func FirstSegment(path string) string {
	seg := path
	if i := strings.IndexByte(seg, '.'); i >= 0 {
		seg = seg[:i]
	}
	if i := strings.IndexByte(seg, '['); i >= 0 {
		seg = seg[:i]
	}
	return seg
}
