// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match performs fuzzy lookup over a loaded library document.
// Matching follows the host plugin's conventions: a [0, 1] threshold
// where 0 admits only exact matches, a 1000-character distance budget,
// and results ordered best first with original item order breaking ties.
package match

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/citepage/internal/library"
	"github.com/pdiddy/citepage/internal/render"
	"github.com/pdiddy/citepage/pkg/types"
)

// ErrNotFound marks an exact lookup that produced zero results. Callers
// surface it as a "no results found" state, not as a failure.
var ErrNotFound = errors.New("no results found")

// Fields used by the two calling conventions: exact lookup by key and
// interactive free-text search.
var (
	CitekeyFields    = []string{"citekey"}
	AttachmentFields = []string{"attachments.path"}
	FreeTextFields   = []string{"title", "creators.lastName"}
)

// Result is one scored match. Score is 0 for a perfect match and grows
// as the match loosens; Index is the item's position in the library.
type Result struct {
	Item  types.ItemRecord
	Index int
	Score float64
}

// Search scores every item's searchable fields against the query and
// returns matches with score <= threshold, ordered by ascending score.
// The sort is stable, so ties keep the library's item order. An empty
// query yields an empty result set, not an error.
func Search(doc *types.LibraryDocument, query string, fields []string, threshold float64) []Result {
	query = strings.TrimSpace(query)
	if query == "" || doc == nil {
		return nil
	}

	var results []Result
	for i, item := range doc.Items {
		if s, ok := itemScore(item, query, fields, threshold); ok {
			results = append(results, Result{Item: item, Index: i, Score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}

// LookupOne performs an exact-style search (threshold 0) on a single
// field and returns the first hit, or ErrNotFound when the result set is
// empty.
func LookupOne(doc *types.LibraryDocument, key, field string) (types.ItemRecord, error) {
	results := Search(doc, key, []string{field}, 0.0)
	if len(results) == 0 {
		return types.ItemRecord{}, fmt.Errorf("%w: %s %q", ErrNotFound, field, key)
	}
	return results[0].Item, nil
}

// itemScore returns the best passing score across all of the item's
// values for the given fields.
func itemScore(item types.ItemRecord, query string, fields []string, threshold float64) (float64, bool) {
	best := 0.0
	found := false
	for _, field := range fields {
		for _, value := range library.FieldValues(item, field) {
			s, ok := bitapScore(query, value, threshold)
			if !ok {
				continue
			}
			if !found || s < best {
				best = s
				found = true
			}
		}
	}
	return best, found
}

// FormatTable writes matches as a human-readable table to w. exists
// reports whether a page for a citekey is already present in the graph;
// such rows are marked in the Page column.
func FormatTable(results []Result, exists func(citekey string) bool, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-24s  %-4s  %-6s  %-12s  %s\n",
		"Rank", "Title", "Authors", "Year", "Score", "Citekey", "Page")
	fmt.Fprintln(w, strings.Repeat("-", 112))

	for i, r := range results {
		title := r.Item.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		authors := render.FormatCreators(r.Item.Creators, render.Condense)
		if len(authors) > 24 {
			authors = authors[:21] + "..."
		}
		year := render.Year(r.Item.Date)
		mark := ""
		if exists != nil && r.Item.Citekey != "" && exists(r.Item.Citekey) {
			mark = "*"
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-24s  %-4s  %-6.3f  %-12s  %s\n",
			i+1, title, authors, year, r.Score, r.Item.Citekey, mark)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}
