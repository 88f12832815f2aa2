package tracker

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known name.
const maxSuggestDistance = 3

// suggest returns the closest known name to s, or "" if none is near enough.
func suggest(s string, known []string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, k := range known {
		if strings.HasPrefix(k, s) {
			return k
		}
		if d := levenshtein.ComputeDistance(s, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
