// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citepage/internal/graph"
	"github.com/pdiddy/citepage/internal/match"
)

var importCmd = &cobra.Command{
	Use:   "import <pdf>...",
	Short: "Bulk-import items by their attached PDF paths",
	Long: `Import resolves each given PDF file back to its library item by exact
attachment-path match, creates a page per item, and inserts [[title]]
references into today's journal page. Files that match no item are
reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	doc, err := loadLibrary(ctx, cfg)
	if err != nil {
		return err
	}

	g, err := openGraph(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	added := 0
	for _, path := range args {
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			g.Notify(graph.Error, fmt.Sprintf("skipping %s: not a PDF", path))
			continue
		}

		item, err := match.LookupOne(doc, path, "attachments.path")
		if errors.Is(err, match.ErrNotFound) {
			g.Notify(graph.Error, fmt.Sprintf("no library item has attachment %s", path))
			continue
		}
		if err != nil {
			return err
		}

		title, err := createPageForItem(ctx, cfg, g, doc, item)
		if err != nil {
			return err
		}
		if err := g.InsertRef(ctx, title); err != nil {
			return err
		}
		added++
	}

	g.Notify(graph.Info, fmt.Sprintf("Successfully added %d items", added))
	return nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
