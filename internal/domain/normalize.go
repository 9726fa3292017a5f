package domain

import (
	"strings"
)

// NormalizeText prepares text for case-insensitive comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses runs of whitespace into a single space
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// ContainsFold reports whether the normalized haystack contains the normalized needle.
// An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	needle = NormalizeText(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(NormalizeText(haystack), needle)
}
