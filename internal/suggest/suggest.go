// Package suggest produces "did you mean" candidates for misspelled option
// and command names.
package suggest

import (
	"github.com/agext/levenshtein"
)

// Nearest returns the candidate closest to the given input, or "" when
// nothing is close enough to be a plausible typo. The distance cutoff
// matches what HCL uses for its own keyword suggestions.
func Nearest(input string, candidates []string) string {
	best := ""
	bestDist := 3
	for _, c := range candidates {
		if dist := levenshtein.Distance(input, c, nil); dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}
