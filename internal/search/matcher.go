package search

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum 0–100 similarity score for an
// identifier to count as a match.
const DefaultThreshold = 70

// Candidate pairs an identifier with its similarity score against the
// search term.
type Candidate struct {
	Identifier string
	Score      int
}

// Matcher scores a search term against property identifiers.
type Matcher struct {
	threshold int
}

func NewMatcher(threshold int) *Matcher {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Match returns the distinct identifiers scoring at or above the
// threshold, ordered by score descending, then identifier ascending for
// determinism. An empty result is a valid no-match outcome, not an error.
func (m *Matcher) Match(term string, identifiers []string) []Candidate {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}

	seen := make(map[string]struct{}, len(identifiers))
	var out []Candidate

	for _, id := range identifiers {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		score := similarity(needle, strings.ToLower(strings.TrimSpace(id)))
		if score >= m.threshold {
			out = append(out, Candidate{Identifier: id, Score: score})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Identifier < out[j].Identifier
	})
	return out
}

// similarity scores two normalized strings on a 0–100 scale. Partial
// ratio tolerates substrings and small typos ("Aurilia" inside "Aurelia
// Villa C"); token-set ratio tolerates word-order swaps ("Siena Villa"
// vs "Villa Siena"). Exact equality is pinned to 100 so exact matches
// can never fall below the threshold.
func similarity(a, b string) int {
	if a == b {
		return 100
	}
	score := fuzzy.PartialRatio(a, b)
	if ts := fuzzy.TokenSetRatio(a, b); ts > score {
		score = ts
	}
	return score
}
