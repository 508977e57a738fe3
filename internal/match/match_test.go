// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/citepage/pkg/types"
)

func libDoc(items ...types.ItemRecord) *types.LibraryDocument {
	return &types.LibraryDocument{
		Collections: map[string]types.Collection{},
		Items:       items,
	}
}

func TestSearchExactCitekey(t *testing.T) {
	doc := libDoc(
		types.ItemRecord{Citekey: "smith2020", Title: "Unrelated"},
		types.ItemRecord{Citekey: "doe2019", Title: "A Study"},
	)

	results := Search(doc, "doe2019", CitekeyFields, 0.0)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Item.Citekey != "doe2019" {
		t.Errorf("top result citekey = %q, want %q", results[0].Item.Citekey, "doe2019")
	}
	if results[0].Score != 0 {
		t.Errorf("score = %v, want 0", results[0].Score)
	}
}

func TestSearchExactNoMatch(t *testing.T) {
	doc := libDoc(types.ItemRecord{Citekey: "doe2019"})

	if results := Search(doc, "nomatch", CitekeyFields, 0.0); len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	doc := libDoc(types.ItemRecord{Citekey: "doe2019"})

	if results := Search(doc, "   ", CitekeyFields, 0.0); results != nil {
		t.Errorf("empty query should yield no results, got %d", len(results))
	}
}

func TestSearchAttachmentPath(t *testing.T) {
	doc := libDoc(
		types.ItemRecord{Citekey: "a"},
		types.ItemRecord{
			Citekey: "b",
			Attachments: []types.Attachment{
				{Title: "Full Text", Path: "/papers/doe2019.pdf"},
			},
		},
	)

	results := Search(doc, "/papers/doe2019.pdf", AttachmentFields, 0.0)
	if len(results) != 1 || results[0].Item.Citekey != "b" {
		t.Fatalf("attachment-path search failed: %+v", results)
	}
}

func TestSearchFuzzyToleratesTypos(t *testing.T) {
	doc := libDoc(
		types.ItemRecord{Citekey: "vaswani2017", Title: "Attention Is All You Need"},
		types.ItemRecord{Citekey: "doe2019", Title: "Completely Different"},
	)

	results := Search(doc, "attenton", FreeTextFields, 0.2)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Item.Citekey != "vaswani2017" {
		t.Errorf("got %q", results[0].Item.Citekey)
	}
	if results[0].Score <= 0 {
		t.Errorf("typo match should have a nonzero score, got %v", results[0].Score)
	}
}

func TestSearchMatchesAuthorLastName(t *testing.T) {
	doc := libDoc(
		types.ItemRecord{
			Citekey:  "doe2019",
			Title:    "A Study",
			Creators: []types.Creator{{LastName: "Castellanos"}},
		},
	)

	results := Search(doc, "castellanos", FreeTextFields, 0.2)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
}

func TestSearchOrdersByScore(t *testing.T) {
	doc := libDoc(
		types.ItemRecord{Citekey: "late", Title: "A fuzzy thing"},
		types.ItemRecord{Citekey: "early", Title: "fuzzy matching"},
	)

	results := Search(doc, "fuzzy", FreeTextFields, 0.2)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Item.Citekey != "early" {
		t.Errorf("best match = %q, want the match at the start of its title", results[0].Item.Citekey)
	}
}

func TestSearchTiesKeepLibraryOrder(t *testing.T) {
	doc := libDoc(
		types.ItemRecord{Citekey: "first", Title: "Same Title"},
		types.ItemRecord{Citekey: "second", Title: "Same Title"},
	)

	results := Search(doc, "Same Title", FreeTextFields, 0.2)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Item.Citekey != "first" || results[1].Item.Citekey != "second" {
		t.Errorf("tie break lost library order: %q, %q",
			results[0].Item.Citekey, results[1].Item.Citekey)
	}
}

func TestLookupOne(t *testing.T) {
	doc := libDoc(types.ItemRecord{Citekey: "doe2019", Title: "A Study"})

	item, err := LookupOne(doc, "doe2019", "citekey")
	if err != nil {
		t.Fatalf("LookupOne: %v", err)
	}
	if item.Title != "A Study" {
		t.Errorf("title = %q", item.Title)
	}

	_, err = LookupOne(doc, "missing", "citekey")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, nil, &buf)
	if got := buf.String(); !strings.Contains(got, "No results found.") {
		t.Errorf("output = %q", got)
	}
}

func TestFormatTableMarksExistingPages(t *testing.T) {
	doc := libDoc(
		types.ItemRecord{Citekey: "doe2019", Title: "A Study", Date: "2019"},
		types.ItemRecord{Citekey: "new2024", Title: "Another", Date: "2024"},
	)
	results := Search(doc, "a", FreeTextFields, 0.2)

	var buf bytes.Buffer
	FormatTable(results, func(citekey string) bool { return citekey == "doe2019" }, &buf)

	out := buf.String()
	if !strings.Contains(out, "doe2019") || !strings.Contains(out, "*") {
		t.Errorf("table should mark the existing page:\n%s", out)
	}
}
