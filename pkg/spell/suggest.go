// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Minimum similarity (0..1) for a candidate to be suggested.
const minSimilarity = 0.6

// Suggest returns the candidate most similar to word, ignoring case.
// Ties go to the earlier candidate.
func Suggest(word string, candidates []string) (string, bool) {
	var best string
	var bestScore float64

	for _, candidate := range candidates {
		score := levenshtein.Similarity(strings.ToLower(word), strings.ToLower(candidate), nil)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < minSimilarity {
		return "", false
	}
	return best, true
}
