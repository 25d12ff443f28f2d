package match

import "fmt"

// MinSimilarity is the lowest NameSimilarity Closest accepts.
const MinSimilarity = 0.5

// Closest returns the candidate most similar to name. Ties keep the earlier
// candidate. Nothing is returned when no candidate reaches MinSimilarity or
// when name itself is a candidate.
func Closest(name string, candidates []string) (string, bool) {
	var (
		best      string
		bestScore float64
	)

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		score := NameSimilarity(name, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint returns ", did you mean %q?" for the closest candidate, or "".
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok {
		return fmt.Sprintf(", did you mean %q?", c)
	}

	return ""
}
