package match

import "strings"

// NormalizeIdent case-folds an identifier and drops separators (_, -, space).
func NormalizeIdent(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if !isSeparator(r) {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
