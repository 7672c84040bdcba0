package common

import "strings"

// SplitAny splits `str` on every occurrence of any of the `separators`, trims whitespace around the parts and
// drops empty ones.
func SplitAny(str string, separators []string) []string {
	parts := []string{str}
	for _, separator := range separators {
		var next []string
		for _, part := range parts {
			next = append(next, strings.Split(part, separator)...)
		}
		parts = next
	}
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
