// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citepage/internal/graph"
	"github.com/pdiddy/citepage/internal/match"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Fuzzy-search the library by title and author last names",
	Long: `Search fuzzy-matches the query against item titles and author last names
and lists the results best match first. Rows whose citekey already has a
page in the graph are marked in the Page column.

Use --create to render the top hit into a new page directly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	doc, err := loadLibrary(ctx, cfg)
	if err != nil {
		return err
	}

	threshold := cfg.Search.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold, _ = cmd.Flags().GetFloat64("threshold")
	}

	query := strings.Join(args, " ")
	results := match.Search(doc, query, match.FreeTextFields, threshold)
	if cfg.Search.MaxResults > 0 && len(results) > cfg.Search.MaxResults {
		results = results[:cfg.Search.MaxResults]
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	g, err := openGraph(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	match.FormatTable(results, func(citekey string) bool {
		exists, _, err := g.PageExists(ctx, citekey)
		return err == nil && exists
	}, os.Stdout)

	if create, _ := cmd.Flags().GetBool("create"); create && len(results) > 0 {
		title, err := createPageForItem(ctx, cfg, g, doc, results[0].Item)
		if err != nil {
			return err
		}
		g.Notify(graph.Info, "created page: "+title)
	}
	return nil
}

func init() {
	searchCmd.Flags().Float64("threshold", 0.2, "fuzzy-match looseness in [0.0, 1.0]; 0 is exact")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("create", false, "create a page for the top result")

	rootCmd.AddCommand(searchCmd)
}
