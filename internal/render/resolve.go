// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/citepage/pkg/types"
)

// unsupportedValue is stored for a token that is neither a known field
// nor a supplied custom property. A bad entry degrades instead of
// blocking page creation.
const unsupportedValue = "Property isn't supported"

// Supplied carries an explicitly supplied custom-property value. OK
// distinguishes "supplied as empty" (a deliberate fill-in-later
// placeholder) from "not supplied at all".
type Supplied struct {
	Value string
	OK    bool
}

// resolver maps one recognized token to its output. outKey remaps tokens
// whose property key differs from the requested one (kebab-cased keys
// like "item-type"); echoKey keeps the requested key, which also lets a
// custom key borrow a recognized token's value ("mypdf:: pdf"). value
// reports include=false to omit the key entirely.
type resolver struct {
	outKey func(requested string) string
	value  func(item types.ItemRecord, doc *types.LibraryDocument) (value string, include bool)
}

func echoKey(requested string) string { return requested }

func fixedKey(key string) func(string) string {
	return func(string) string { return key }
}

// orNA substitutes the "NA" placeholder for empty values.
func orNA(s string) (string, bool) {
	if s == "" {
		return "NA", true
	}
	return s, true
}

// extraWhitespace collapses runs of whitespace inside abstracts.
var extraWhitespace = regexp.MustCompile(`\s{2,}`)

// builtins is the dispatch table from token name (case-sensitive) to its
// resolver. Tokens not present here are treated as custom properties.
var builtins = map[string]resolver{
	"abstractNote": {
		outKey: fixedKey("abstract"),
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			abstract := strings.TrimSpace(item.AbstractNote)
			abstract = extraWhitespace.ReplaceAllString(abstract, " ")
			abstract = strings.NewReplacer("\r", " ", "\n", " ").Replace(abstract)
			if abstract == "" {
				return "NA", true
			}
			// Quoted to suppress auto-linking in the host editor.
			return fmt.Sprintf("%q", abstract), true
		},
	},
	"authors": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			if len(item.Creators) == 0 {
				return "NA", true
			}
			return `"` + FormatCreators(item.Creators, Complete) + `"`, true
		},
	},
	"collection": {
		outKey: echoKey,
		value: func(item types.ItemRecord, doc *types.LibraryDocument) (string, bool) {
			if doc != nil {
				// Collection keys are scanned in sorted order so the
				// same item always reports the same collection.
				keys := make([]string, 0, len(doc.Collections))
				for k := range doc.Collections {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					if doc.Collections[k].Contains(item.ItemID) {
						return doc.Collections[k].Name, true
					}
				}
			}
			return "NA", true
		},
	},
	"citekey": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			return orNA(item.Citekey)
		},
	},
	"doi": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			return orNA(item.DOI)
		},
	},
	"filePath": {
		outKey: fixedKey("file-path"),
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			if a, ok := pdfAttachment(item); ok {
				return a.Path, true
			}
			return "NA", true
		},
	},
	"pdf": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			if a, ok := pdfAttachment(item); ok {
				return fmt.Sprintf("![%s](%s)", a.Title, a.Path), true
			}
			return "NA", true
		},
	},
	"issue": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			return orNA(item.Issue.String())
		},
	},
	"itemType": {
		outKey: fixedKey("item-type"),
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			return orNA(item.ItemType)
		},
	},
	"journal": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			return orNA(item.PublicationTitle)
		},
	},
	"keywords": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			if len(item.Tags) == 0 {
				return "", false
			}
			tags := make([]string, len(item.Tags))
			for i, t := range item.Tags {
				tags[i] = t.Tag
			}
			return strings.Join(tags, ", "), true
		},
	},
	"localLibrary": {
		outKey: fixedKey("local-library"),
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			if item.Select == "" {
				return "NA", true
			}
			return fmt.Sprintf("[Local library](%s)", item.Select), true
		},
	},
	"pages": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			if item.Pages != "" {
				return item.Pages.String(), true
			}
			if item.NumPages != "" {
				return item.NumPages.String(), true
			}
			return "NA", true
		},
	},
	"title": {
		outKey: fixedKey("zotero-title"),
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			return orNA(item.Title)
		},
	},
	"url": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			return orNA(item.URL)
		},
	},
	"volume": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			return orNA(item.Volume.String())
		},
	},
	"webLibrary": {
		outKey: fixedKey("web-library"),
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			if item.URI == "" {
				return "NA", true
			}
			return fmt.Sprintf("[Web library](%s)", item.URI), true
		},
	},
	"year": {
		outKey: echoKey,
		value: func(item types.ItemRecord, _ *types.LibraryDocument) (string, bool) {
			return Year(item.Date), true
		},
	},
}

// pdfAttachment returns the item's first linkable PDF attachment.
func pdfAttachment(item types.ItemRecord) (types.Attachment, bool) {
	for _, a := range item.Attachments {
		if a.IsPDF() {
			return a, true
		}
	}
	return types.Attachment{}, false
}

// Resolve maps a requested token to its output key and value. Recognized
// tokens resolve from the item (or the document, for collection
// membership). A custom key whose supplied value names a recognized
// token borrows that token's resolver. Anything else is stored verbatim
// when a value was supplied (empty means a deliberate blank), or as the
// unsupported placeholder when nothing was supplied. include=false means
// the key is omitted from the output entirely (only keywords with zero
// tags does this).
func Resolve(item types.ItemRecord, doc *types.LibraryDocument, key string, supplied Supplied) (outKey, value string, include bool) {
	if r, ok := builtins[key]; ok {
		v, inc := r.value(item, doc)
		return r.outKey(key), v, inc
	}

	if supplied.OK {
		if r, ok := builtins[supplied.Value]; ok {
			v, inc := r.value(item, doc)
			return r.outKey(key), v, inc
		}
		return key, supplied.Value, true
	}

	return key, unsupportedValue, true
}
