// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citepage/internal/graph"
	"github.com/pdiddy/citepage/internal/match"
)

var addCmd = &cobra.Command{
	Use:   "add <citekey>",
	Short: "Create a page for the item with the given citekey",
	Long: `Add looks the item up by exact citekey, renders it through the page
title and property templates, creates the page, and inserts a [[title]]
reference into today's journal page.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	title, err := createPageForItem(ctx, cfg, g, doc, item)
	if err != nil {
		return err
	}
	if err := g.InsertRef(ctx, title); err != nil {
		return err
	}
	g.Notify(graph.Info, "added page: "+title)
	return nil
}

func init() {
	rootCmd.AddCommand(addCmd)
}
