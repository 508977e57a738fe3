// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"math"
	"strings"
)

// distanceBudget normalizes the location penalty: a match that starts n
// characters into the text costs n/distanceBudget on top of its error
// score.
const distanceBudget = 1000.0

// maxPatternLen is the widest pattern the bit-parallel scorer handles.
// Longer patterns fall back to a substring scan.
const maxPatternLen = 32

// score combines an edit-error count and a match location into a single
// value in [0, ~1+]; 0 is a perfect match at the start of the text.
func score(errors, location, patternLen int) float64 {
	accuracy := float64(errors) / float64(patternLen)
	return accuracy + float64(location)/distanceBudget
}

// bitapScore returns the best achievable score for pattern against text
// given the threshold, and whether that score passes it. Matching is
// case-insensitive. A threshold of 0 admits only an exact occurrence of
// the pattern at the very start of the text.
func bitapScore(pattern, text string, threshold float64) (float64, bool) {
	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)

	if pattern == "" || text == "" {
		return 0, false
	}
	if pattern == text {
		return 0, true
	}

	best := math.Inf(1)
	if idx := strings.Index(text, pattern); idx >= 0 {
		best = score(0, idx, len(pattern))
	}

	if len(pattern) <= maxPatternLen {
		if s, ok := wuManber(pattern, text, threshold); ok && s < best {
			best = s
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, best <= threshold
}

// wuManber runs the Wu-Manber k-error bit-parallel search and returns
// the best location-weighted score found, if any. The error budget is
// derived from the threshold: e errors can only pass when
// e/len(pattern) <= threshold.
func wuManber(pattern, text string, threshold float64) (float64, bool) {
	m := len(pattern)
	k := int(threshold * float64(m))
	matchMask := uint64(1) << (m - 1)

	masks := make(map[byte]uint64, m)
	for i := 0; i < m; i++ {
		masks[pattern[i]] |= 1 << i
	}

	r := make([]uint64, k+1)
	best := math.Inf(1)
	found := false

	for i := 0; i < len(text); i++ {
		charMask := masks[text[i]]
		oldPrev := r[0]
		r[0] = ((r[0] << 1) | 1) & charMask
		for d := 1; d <= k; d++ {
			tmp := r[d]
			// Substitution/insertion/deletion transitions plus the
			// exact-extension of the previous state.
			r[d] = (((r[d] << 1) | 1) & charMask) |
				((oldPrev | r[d-1]) << 1) | 1 | oldPrev
			oldPrev = tmp
		}

		for d := 0; d <= k; d++ {
			if r[d]&matchMask == 0 {
				continue
			}
			loc := i - (m - 1)
			if loc < 0 {
				loc = 0
			}
			if s := score(d, loc, m); s < best {
				best = s
				found = true
			}
			break // lower error counts dominate at the same position
		}
	}
	return best, found
}
