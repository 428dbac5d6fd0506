package match

import (
	"sort"
	"strings"
	"unicode"
)

// SuggestMinScore is the minimum similarity for a name to be suggested.
const SuggestMinScore = 0.5

// Suggest ranks pool by similarity to name and returns at most limit
// entries scoring at least SuggestMinScore, best first. Ties are broken
// alphabetically so the output is deterministic.
func Suggest(name string, pool []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	norm := normalizeIdent(name)

	var ranked []scored

	seen := make(map[string]bool, len(pool))

	for _, cand := range pool {
		if cand == name || seen[cand] {
			continue
		}

		seen[cand] = true

		score := similarity(norm, normalizeIdent(cand))
		if score >= SuggestMinScore {
			ranked = append(ranked, scored{name: cand, score: score})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}

// normalizeIdent case-folds an identifier and drops separators, so that
// "GetUserID", "get_user_id" and "getUserId" compare equal.
func normalizeIdent(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// similarity returns 1 - editDistance/maxLen over runes (1.0 = identical).
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(editDistance(ra, rb))/float64(maxLen)
}

// editDistance is the Levenshtein distance using two rolling rows.
func editDistance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
