// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/citepage/internal/graph"
	"github.com/pdiddy/citepage/internal/library"
	"github.com/pdiddy/citepage/internal/render"
	"github.com/pdiddy/citepage/pkg/types"
)

// openGraph opens the configured note graph with the process streams as
// notification targets.
func openGraph(cfg types.Config) (*graph.Graph, error) {
	return graph.Open(cfg.Graph, os.Stdout, os.Stderr)
}

// loadLibrary loads the library export fresh. Every command call
// re-reads the file so reference-manager edits are always visible.
func loadLibrary(ctx context.Context, cfg types.Config) (*types.LibraryDocument, error) {
	doc, err := library.LoadPath(ctx, cfg.Library)
	if err != nil {
		return nil, fmt.Errorf("loading library: %w", err)
	}
	return doc, nil
}

// createPageForItem renders an item through the configured templates and
// creates its page. An already existing page is reported and left
// untouched. The rendered title is returned for reference insertion.
func createPageForItem(ctx context.Context, cfg types.Config, g *graph.Graph, doc *types.LibraryDocument, item types.ItemRecord) (string, error) {
	title, err := render.RenderTitle(item, cfg.Templates.PageTitle, item.Citekey)
	if err != nil {
		return "", err
	}

	if exists, existing, err := g.PageExists(ctx, item.Citekey); err != nil {
		return "", err
	} else if exists {
		g.Notify(graph.Info, fmt.Sprintf("page already exists: %s", existing))
		return existing, nil
	}

	props := render.RenderProperties(item, doc, cfg.Templates.PageProperties, cfg.Templates.CustomProperties)
	if err := g.CreatePage(ctx, title, props); err != nil {
		return "", err
	}
	return title, nil
}
