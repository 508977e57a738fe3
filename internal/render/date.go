// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"
)

// dateSeparators matches any run of the separators seen in free-form
// export dates: comma, hyphen, slash, space.
var dateSeparators = regexp.MustCompile(`[,\-/ ]+`)

// Year extracts a 4-digit year from a free-form date string. A date with
// separators is split and the last 4-character segment wins; a date
// without separators (a bare year like "1998") is returned unchanged.
// Absent dates and splits with no 4-character segment yield "NA".
func Year(date string) string {
	if date == "" {
		return "NA"
	}
	if !dateSeparators.MatchString(date) {
		return date
	}

	year := ""
	for _, part := range dateSeparators.Split(date, -1) {
		if p := strings.TrimSpace(part); len(p) == 4 {
			year = p
		}
	}
	if year == "" {
		return "NA"
	}
	return year
}
