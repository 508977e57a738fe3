// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"time"
)

// LibraryConfig holds settings for loading the reference library export.
type LibraryConfig struct {
	// Path is the location of the Better BibTeX JSON file. It may be a
	// local filesystem path or an http(s) URL. Required.
	Path string `json:"path" yaml:"path"`

	// Timeout is the HTTP request timeout for remote library paths.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// TemplateConfig holds the page templates applied to a matched item.
type TemplateConfig struct {
	// PageTitle is the template for a generated page's title, with
	// {{authors}}, {{citekey}}, {{title}} and {{year}} placeholders.
	// Required.
	PageTitle string `json:"page_title" yaml:"page_title"`

	// PageProperties is a comma-separated list of {{token}} placeholders,
	// each becoming one page property (e.g. "{{authors}}, {{pdf}}, {{year}}").
	PageProperties string `json:"page_properties" yaml:"page_properties"`

	// CustomProperties is a semicolon-separated list of key::value pairs
	// appended after the library-derived properties. An empty value keeps
	// the key as a blank placeholder to fill in later (e.g. "rating::").
	CustomProperties string `json:"custom_properties" yaml:"custom_properties"`
}

// SearchConfig holds settings for interactive library search.
type SearchConfig struct {
	// Threshold is the fuzzy-match looseness in [0.0, 1.0]; 0.0 admits
	// only exact matches (default 0.2).
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// MaxResults limits how many matches are shown (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// GraphConfig holds settings for the local note graph that generated
// pages are written into.
type GraphConfig struct {
	// Dir is the graph root directory, containing pages/ and journals/.
	Dir string `json:"dir" yaml:"dir"`
}

// Config is the full citepage configuration.
type Config struct {
	Library   LibraryConfig  `json:"library" yaml:"library"`
	Templates TemplateConfig `json:"templates" yaml:"templates"`
	Search    SearchConfig   `json:"search" yaml:"search"`
	Graph     GraphConfig    `json:"graph" yaml:"graph"`

	// KeyboardShortcut is the host editor's search-invocation binding.
	// citepage only stores and reports it; the binding itself lives in
	// the host UI (default "mod+alt+z").
	KeyboardShortcut string `json:"keyboard_shortcut" yaml:"keyboard_shortcut"`
}

// Default template and shortcut values, matching the plugin settings
// schema the library export format originates from.
const (
	DefaultPageTitleTemplate      = "{{authors}} ({{year}}) {{title}}"
	DefaultPagePropertiesTemplate = "{{authors}}, {{abstractNote}}, {{pdf}}, {{localLibrary}}, {{year}}"
	DefaultCustomProperties       = "category:: citepage"
	DefaultKeyboardShortcut       = "mod+alt+z"
)

// ApplyDefaults fills unset fields with their defaults. The library path
// and page title template have no safe defaults; Validate reports those.
func (c *Config) ApplyDefaults() {
	if c.Library.Timeout == 0 {
		c.Library.Timeout = 30 * time.Second
	}
	if c.Search.Threshold == 0 {
		c.Search.Threshold = 0.2
	}
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = 20
	}
	if c.Graph.Dir == "" {
		c.Graph.Dir = "graph"
	}
	if c.KeyboardShortcut == "" {
		c.KeyboardShortcut = DefaultKeyboardShortcut
	}
}

// Validate checks that the settings without safe defaults are present.
// Both gaps are reported together so the user can fix them in one pass.
func (c *Config) Validate() error {
	missingPath := c.Library.Path == ""
	missingTitle := c.Templates.PageTitle == ""

	switch {
	case missingPath && missingTitle:
		return errors.New("configuration incomplete: set the path to the library file and a page title template")
	case missingPath:
		return errors.New("configuration incomplete: set the path to the library file")
	case missingTitle:
		return errors.New("configuration incomplete: set a page title template for new pages")
	}
	return nil
}
