// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"regexp"
	"strings"

	"github.com/pdiddy/citepage/pkg/types"
)

// ErrEmptyTemplate marks a missing page title template. Rendering aborts
// and no page is created; the caller surfaces it as a configuration
// error.
var ErrEmptyTemplate = errors.New("page title template is empty")

// tokenPattern matches {{token}} placeholders in a template.
var tokenPattern = regexp.MustCompile(`{{[\s\S]*?}}`)

// braceStripper removes literal brace characters from template tokens
// and custom property values.
var braceStripper = strings.NewReplacer("{", "", "}", "")

// RenderTitle expands the title template against an item. Only the
// authors, citekey, title and year tokens are recognized; each is
// resolved independently and substituted at its first occurrence. The
// citekey comes from the override (the selected item's key), not the
// template context; the title has "/" replaced with "_" so the page name
// stays filesystem- and link-safe.
func RenderTitle(item types.ItemRecord, titleTemplate, citekeyOverride string) (string, error) {
	if titleTemplate == "" {
		return "", ErrEmptyTemplate
	}

	title := titleTemplate
	for _, token := range tokenPattern.FindAllString(titleTemplate, -1) {
		var value string
		switch token {
		case "{{authors}}":
			value = FormatCreators(item.Creators, Condense)
		case "{{citekey}}":
			value = citekeyOverride
		case "{{title}}":
			value = strings.ReplaceAll(item.Title, "/", "_")
		case "{{year}}":
			value = Year(item.Date)
		default:
			continue
		}
		if value == "" {
			value = "NA"
		}
		title = strings.Replace(title, token, value, 1)
	}
	return title, nil
}

// RenderProperties resolves the property-list template and the custom
// property template into one ordered property list: library-derived
// properties first, then custom ones. Either template may be empty, in
// which case that half is skipped. Identical inputs always produce an
// identical list.
func RenderProperties(item types.ItemRecord, doc *types.LibraryDocument, propertyTemplate, customTemplate string) Properties {
	var props Properties

	if propertyTemplate != "" {
		for _, token := range tokenPattern.FindAllString(propertyTemplate, -1) {
			key := braceStripper.Replace(token)
			if outKey, value, include := Resolve(item, doc, key, Supplied{}); include {
				props.Set(outKey, value)
			}
		}
	}

	if customTemplate != "" {
		for _, entry := range strings.Split(customTemplate, ";") {
			key, rawValue, ok := strings.Cut(entry, "::")
			if !ok {
				continue // not a key::value entry
			}
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			value := braceStripper.Replace(strings.TrimSpace(rawValue))
			if outKey, v, include := Resolve(item, doc, key, Supplied{Value: value, OK: true}); include {
				props.Set(outKey, v)
			}
		}
	}

	return props
}
