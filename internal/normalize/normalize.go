package normalize

import (
	"strings"

	"github.com/oggyb/lovespark/internal/model"
)

// Email returns a normalized form of an email address suitable for
// storage and comparisons: trimmed and lower-cased.
func Email(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// Gender lower-cases a gender tag so "Male" and "male" compare equal.
func Gender(g model.Gender) model.Gender {
	return model.Gender(strings.ToLower(strings.TrimSpace(string(g))))
}

// Genders normalizes and deduplicates a gender set, keeping first-seen order.
func Genders(in []model.Gender) []model.Gender {
	out := make([]model.Gender, 0, len(in))
	seen := make(map[model.Gender]bool, len(in))
	for _, g := range in {
		g = Gender(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}

// Tag trims an interest tag or image URL entered by the user.
func Tag(s string) string {
	return strings.TrimSpace(s)
}
