package roster

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

func normalizeName(s string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			space = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !space && b.Len() > 0 {
				b.WriteByte(' ')
				space = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func typoBudget(n int) int {
	switch {
	case n < 4:
		return 0
	case n < 8:
		return 1
	default:
		return 2
	}
}

// MatchName reports whether an operator name matches a search string.
// Case, punctuation and spacing are ignored. Search terms of four or more
// letters also match a name word within a small edit distance.
func MatchName(name, search string) bool {
	q := normalizeName(search)
	if q == "" {
		return true
	}
	n := normalizeName(name)
	if strings.Contains(n, q) || strings.Contains(strings.ReplaceAll(n, " ", ""), strings.ReplaceAll(q, " ", "")) {
		return true
	}

	words := strings.Fields(n)
	for _, term := range strings.Fields(q) {
		budget := typoBudget(len([]rune(term)))
		if budget == 0 {
			if !strings.Contains(n, term) {
				return false
			}
			continue
		}
		found := false
		for _, w := range words {
			if strings.HasPrefix(w, term) || levenshtein.ComputeDistance(w, term) <= budget {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
