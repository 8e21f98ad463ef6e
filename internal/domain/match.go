package domain

import "strings"

// FindAttributes returns the attribute keys matching query, in attribute order.
// An exact key match wins outright and returns a single-element list; otherwise
// every key with query as a case-insensitive prefix is a candidate.
func FindAttributes(attrs *Attributes, query string) []string {
	if attrs.HasKey(query) {
		return []string{query}
	}
	var matches []string
	for _, key := range attrs.Keys() {
		if hasPrefixFold(key, query) {
			matches = append(matches, key)
		}
	}
	return matches
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
