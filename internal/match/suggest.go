package match

// DefaultThreshold is the minimum similarity for a candidate to be suggested.
const DefaultThreshold = 0.6

// Suggest returns the candidate most similar to name, provided its score
// reaches DefaultThreshold. Ties keep the earliest candidate.
func Suggest(name string, candidates []string) (string, bool) {
	return SuggestWithThreshold(name, candidates, DefaultThreshold)
}

// SuggestWithThreshold is Suggest with an explicit minimum score.
func SuggestWithThreshold(name string, candidates []string, threshold float64) (string, bool) {
	best := ""
	bestScore := -1.0

	for _, c := range candidates {
		score := Similarity(name, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < threshold {
		return "", false
	}

	return best, true
}
