// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citepage/internal/match"
)

var citeCmd = &cobra.Command{
	Use:   "cite <citekey>",
	Short: "Insert a bracketed Pandoc citation for an item",
	Long: `Cite looks the item up by exact citekey and inserts the inline citation
form [citekey] at the edit position (today's journal page). No page is
created.`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	doc, err := loadLibrary(ctx, cfg)
	if err != nil {
		return err
	}

	item, err := match.LookupOne(doc, args[0], "citekey")
	if errors.Is(err, match.ErrNotFound) {
		fmt.Println("No results found.")
		return nil
	}
	if err != nil {
		return err
	}

	g, err := openGraph(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	return g.InsertAt(ctx, fmt.Sprintf("[%s]", item.Citekey))
}

func init() {
	rootCmd.AddCommand(citeCmd)
}
