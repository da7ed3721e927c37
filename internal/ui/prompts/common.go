package prompts

import "strings"

// Unique drops repeated entries and blank ones, keeping first occurrences.
// The category list may name the same category twice; a picker must not.
func Unique(options []string) []string {
	seen := make(map[string]bool, len(options))
	out := make([]string, 0, len(options))
	for _, o := range options {
		if strings.TrimSpace(o) == "" || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}
