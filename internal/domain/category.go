package domain

import (
	"strings"
)

// Categories is the fixed spending taxonomy. Transactions are bucketed into
// exactly one of these labels; the receipt-extraction prompt embeds the same
// list so the model never invents a new one.
var Categories = []string{
	"Food & Dining",
	"Shopping",
	"Transportation",
	"Health & Fitness",
	"Entertainment",
	"Utilities",
	"Travel",
	"Other",
}

// CanonicalCategory matches a client-supplied category against the taxonomy,
// ignoring case and surrounding whitespace, and returns the canonical label.
// The second return value is false when the category is not in the taxonomy.
func CanonicalCategory(name string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if strings.ToLower(c) == normalized {
			return c, true
		}
	}
	return "", false
}
