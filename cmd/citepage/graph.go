// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Manage the local note graph",
}

var graphRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the page index from the pages directory",
	Long: `Rebuild rescans every markdown file under pages/ and refills the citekey
index from each page's citekey:: property. Run it after moving or editing
pages outside citepage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		g, err := openGraph(cfg)
		if err != nil {
			return err
		}
		defer g.Close()

		n, err := g.Rebuild(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %d pages\n", n)
		return nil
	},
}

func init() {
	graphCmd.AddCommand(graphRebuildCmd)
	rootCmd.AddCommand(graphCmd)
}
