// Package suggest finds the closest match for a mistyped value among a
// set of valid options.
package suggest

import (
	"strings"

	"github.com/agext/levenshtein"
)

// maxDistance is the highest edit distance still considered a likely typo.
const maxDistance = 2

// Search returns the option closest to value, if any option is within
// editing distance of it.
func Search(value string, options []string, caseSensitive bool) (string, bool) {
	if !caseSensitive {
		value = strings.ToLower(value)
	}
	best := ""
	bestDist := maxDistance + 1
	for _, opt := range options {
		cand := opt
		if !caseSensitive {
			cand = strings.ToLower(cand)
		}
		if cand == value {
			continue
		}
		dist := levenshtein.Distance(value, cand, nil)
		if dist < bestDist {
			best = opt
			bestDist = dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
