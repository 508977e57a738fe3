// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citepage/internal/match"
	"github.com/pdiddy/citepage/internal/render"
)

// renderedPage is the show command's output shape: the templated title
// and the ordered property list, exactly as page creation would persist
// them.
type renderedPage struct {
	Title      string            `json:"title" yaml:"title"`
	Properties render.Properties `json:"properties" yaml:"properties"`
}

var showCmd = &cobra.Command{
	Use:   "show <citekey>",
	Short: "Render an item's page without creating it",
	Long: `Show looks the item up by exact citekey and prints the rendered page
title and properties, without touching the graph. Useful for checking
templates before importing.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := loadLibrary(context.Background(), cfg)
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

	title, err := render.RenderTitle(item, cfg.Templates.PageTitle, item.Citekey)
	if err != nil {
		return err
	}
	page := renderedPage{
		Title:      title,
		Properties: render.RenderProperties(item, doc, cfg.Templates.PageProperties, cfg.Templates.CustomProperties),
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(page)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	case "text":
		fmt.Println(page.Title)
		for _, p := range page.Properties {
			fmt.Printf("%s:: %s\n", p.Key, p.Value)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use yaml, json or text", format)
	}
}

func init() {
	showCmd.Flags().String("format", "yaml", "output format: yaml, json or text")

	rootCmd.AddCommand(showCmd)
}
