// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a matched library item into page output: a
// formatted title and an ordered property list. All formatting functions
// are pure and total; missing input degrades to "NA" rather than
// failing, so a sparse record never blocks page creation.
package render

import "github.com/pdiddy/citepage/pkg/types"

// Mode selects between the two author display forms: the short form used
// in page titles and the fully enumerated form used in properties.
type Mode string

const (
	Condense Mode = "condense"
	Complete Mode = "complete"
)

// FormatCreators renders an author list for display. The author count
// governs the branching; the mode only matters from three authors up:
//
//	0 authors:  "NA"
//	1 author:   last name (or display name)
//	2 authors:  "A and B"
//	3+ condense: "A et al."
//	3+ complete: "Last, F., Last, F., ..." for every author
func FormatCreators(creators []types.Creator, mode Mode) string {
	switch len(creators) {
	case 0:
		return "NA"
	case 1:
		return displayName(creators[0])
	case 2:
		return displayName(creators[0]) + " and " + displayName(creators[1])
	}

	if mode == Condense {
		return displayName(creators[0]) + " et al."
	}

	out := ""
	for i, c := range creators {
		if i > 0 {
			out += ", "
		}
		out += completeName(c)
	}
	return out
}

// displayName prefers the split last name, falling back to the single
// display name field.
func displayName(c types.Creator) string {
	if c.LastName != "" {
		return c.LastName
	}
	return c.Name
}

// completeName renders one author for the enumerated form: "Last, F."
// when both parts exist, the lone part when only one does, and the
// display name when neither does.
func completeName(c types.Creator) string {
	switch {
	case c.LastName != "" && c.FirstName != "":
		return c.LastName + ", " + string([]rune(c.FirstName)[:1]) + "."
	case c.LastName != "":
		return c.LastName
	case c.FirstName != "":
		return c.FirstName
	}
	return c.Name
}
