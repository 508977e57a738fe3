// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for citepage: the parsed
// reference library, its items, and the configuration consumed by every
// stage.
package types

import (
	"encoding/json"
	"strings"
)

// LibraryDocument is the parsed root of a Better BibTeX JSON export.
// It is immutable once loaded and replaced wholesale on each load; there
// is no incremental merge.
type LibraryDocument struct {
	// Collections maps a collection key to its record.
	Collections map[string]Collection `json:"collections"`

	// Items holds every bibliographic entry, in export order.
	Items []ItemRecord `json:"items"`
}

// Collection is a named grouping of items in the source library.
type Collection struct {
	// Name is the collection's display name.
	Name string `json:"name"`

	// Items lists the itemIDs of the collection's members.
	Items []Scalar `json:"items"`
}

// Contains reports whether the collection includes the given itemID.
func (c Collection) Contains(itemID Scalar) bool {
	if itemID == "" {
		return false
	}
	for _, id := range c.Items {
		if id == itemID {
			return true
		}
	}
	return false
}

// ItemRecord is one bibliographic entry. Every field except ItemID is
// optional in the export; consumers must tolerate zero values.
type ItemRecord struct {
	// ItemID is the reference manager's opaque identifier, used only for
	// collection membership tests.
	ItemID Scalar `json:"itemID"`

	// Citekey is the stable external key (e.g. "doe2019"). When present
	// it is unique across Items and is the join key into generated pages.
	Citekey string `json:"citekey"`

	// Title is the item's title.
	Title string `json:"title"`

	// Date is a free-form date string, not guaranteed ISO
	// (e.g. "2020-05-01", "May 2020", "1998").
	Date string `json:"date"`

	// Creators lists the item's authors in source order.
	Creators []Creator `json:"creators"`

	// AbstractNote is the abstract text.
	AbstractNote string `json:"abstractNote"`

	// DOI is the Digital Object Identifier.
	DOI string `json:"DOI"`

	// URL is the item's web address.
	URL string `json:"url"`

	// URI is the reference manager's web-library address for the item.
	URI string `json:"uri"`

	// Issue and Volume identify the journal issue and volume.
	Issue  Scalar `json:"issue"`
	Volume Scalar `json:"volume"`

	// ItemType is the entry kind (e.g. "journalArticle", "book").
	ItemType string `json:"itemType"`

	// PublicationTitle is the journal or venue name.
	PublicationTitle string `json:"publicationTitle"`

	// Pages is the page range; NumPages the total page count. At most
	// one is usually populated, depending on ItemType.
	Pages    Scalar `json:"pages"`
	NumPages Scalar `json:"numPages"`

	// Tags lists the item's keywords.
	Tags []Tag `json:"tags"`

	// Attachments lists attached files (PDFs, snapshots).
	Attachments []Attachment `json:"attachments"`

	// Select is a deep-link URL that opens the item in the local
	// reference manager.
	Select string `json:"select"`
}

// Creator is an author record. The export uses either the split
// {lastName, firstName} form or a single display {name}; formatting
// code branches on which fields are present.
type Creator struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Name      string `json:"name"`
}

// Tag is a single keyword attached to an item.
type Tag struct {
	Tag string `json:"tag"`
}

// Attachment is a file attached to an item. A PDF attachment is
// identified by a ".pdf" path extension and a title other than
// "Snapshot".
type Attachment struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// IsPDF reports whether the attachment is a linkable PDF file.
func (a Attachment) IsPDF() bool {
	if a.Path == "" || a.Title == "Snapshot" {
		return false
	}
	return strings.HasSuffix(a.Path, "pdf")
}

// Scalar is a JSON value that exports encode inconsistently as either a
// string or a number (itemIDs, issue, volume, page counts). It decodes
// both to their string form so downstream output never carries native
// numbers.
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Scalar(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = Scalar(n.String())
	return nil
}

// String returns the scalar's string form.
func (s Scalar) String() string { return string(s) }
