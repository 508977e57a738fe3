// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library loads the reference-manager JSON export and exposes
// dot-path access into its items for the match engine.
package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pdiddy/citepage/internal/httputil"
	"github.com/pdiddy/citepage/pkg/types"
)

// ErrMalformedLibrary marks a library file that is missing the required
// top-level shape (a collections map and an items array). The load is
// fatal; no partial library state is retained.
var ErrMalformedLibrary = errors.New("malformed library")

// Load parses a Better BibTeX JSON export from r. It validates only the
// minimum shape: both top-level keys must be present. The returned
// document is a pure snapshot with no mutation operations.
func Load(r io.Reader) (*types.LibraryDocument, error) {
	var raw struct {
		Collections *map[string]types.Collection `json:"collections"`
		Items       *[]types.ItemRecord          `json:"items"`
	}

	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: parsing export: %v", ErrMalformedLibrary, err)
	}
	if raw.Collections == nil {
		return nil, fmt.Errorf("%w: missing top-level \"collections\"", ErrMalformedLibrary)
	}
	if raw.Items == nil {
		return nil, fmt.Errorf("%w: missing top-level \"items\"", ErrMalformedLibrary)
	}

	return &types.LibraryDocument{
		Collections: *raw.Collections,
		Items:       *raw.Items,
	}, nil
}

// LoadPath loads the library from a local file path or an http(s) URL.
// Every search re-reads the file in full; there is no cache, so edits
// made in the reference manager show up on the next call.
func LoadPath(ctx context.Context, cfg types.LibraryConfig) (*types.LibraryDocument, error) {
	if cfg.Path == "" {
		return nil, errors.New("library path not configured")
	}

	if strings.HasPrefix(cfg.Path, "http://") || strings.HasPrefix(cfg.Path, "https://") {
		return loadURL(ctx, cfg)
	}

	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening library file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func loadURL(ctx context.Context, cfg types.LibraryConfig) (*types.LibraryDocument, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Path, nil)
	if err != nil {
		return nil, fmt.Errorf("building library request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("fetching library: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching library: unexpected status %s", resp.Status)
	}
	return Load(resp.Body)
}

// FieldValues resolves a dot-path accessor against an item and returns
// every string value at that path. Supported paths are the searchable
// fields: "citekey", "title", "creators.lastName", "creators.name",
// "attachments.path". Unknown paths resolve to nothing.
func FieldValues(item types.ItemRecord, path string) []string {
	switch path {
	case "citekey":
		return nonEmpty(item.Citekey)
	case "title":
		return nonEmpty(item.Title)
	case "creators.lastName":
		var out []string
		for _, c := range item.Creators {
			out = append(out, strings.TrimSpace(c.LastName))
		}
		return compact(out)
	case "creators.name":
		var out []string
		for _, c := range item.Creators {
			out = append(out, strings.TrimSpace(c.Name))
		}
		return compact(out)
	case "attachments.path":
		var out []string
		for _, a := range item.Attachments {
			out = append(out, a.Path)
		}
		return compact(out)
	}
	return nil
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func compact(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
