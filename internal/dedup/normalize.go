package dedup

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeString canonicalizes a string for equality comparison: surrounding
// whitespace is trimmed and the result is case-folded, so representation
// differences coming from independent producers do not cause false negatives.
func NormalizeString(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// NormalizeList treats a list as a set: membership matters, order and
// duplicate entries within the same list do not.
func NormalizeList(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, item := range list {
		set[NormalizeString(item)] = struct{}{}
	}
	return set
}

// NormalizeMap reduces a string-keyed map to a set of (key, normalized value)
// pairs, insensitive to insertion order.
func NormalizeMap(m map[string]string) map[string]struct{} {
	set := make(map[string]struct{}, len(m))
	for k, v := range m {
		set[NormalizeString(k)+"\x00"+NormalizeString(v)] = struct{}{}
	}
	return set
}

// EqualStrings reports whether two strings are equal under normalization.
func EqualStrings(a, b string) bool {
	return NormalizeString(a) == NormalizeString(b)
}

// EqualLists reports whether two lists are equal as sets under normalization.
func EqualLists(a, b []string) bool {
	return equalSets(NormalizeList(a), NormalizeList(b))
}

// EqualMaps reports whether two maps are equal as pair sets under
// normalization.
func EqualMaps(a, b map[string]string) bool {
	return equalSets(NormalizeMap(a), NormalizeMap(b))
}

func equalSets(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
