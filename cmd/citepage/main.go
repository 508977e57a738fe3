// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citepage CLI: fuzzy search
// over a reference-manager library export and generation of note-graph
// pages from matched items.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citepage/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the citepage CLI.
var rootCmd = &cobra.Command{
	Use:   "citepage",
	Short: "Turn reference-manager items into note-graph pages",
	Long: `citepage searches a Better BibTeX JSON export of your reference library
and renders matched items into note-graph pages: a templated title plus a
templated, ordered set of page properties.

Point it at the export file, set a page title template, and use search,
add, import or cite to bring items into the graph.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citepage.yaml or ~/.config/citepage/config.yaml)")
	rootCmd.PersistentFlags().String("library", "", "path or URL of the library export (overrides config)")
	rootCmd.PersistentFlags().String("graph-dir", "", "note graph directory (overrides config)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citepage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citepage"))
		}
	}

	viper.SetDefault("templates.page_title", types.DefaultPageTitleTemplate)
	viper.SetDefault("templates.page_properties", types.DefaultPagePropertiesTemplate)
	viper.SetDefault("templates.custom_properties", types.DefaultCustomProperties)
	viper.SetDefault("keyboard_shortcut", types.DefaultKeyboardShortcut)

	viper.SetEnvPrefix("CITEPAGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the effective configuration from the config file,
// environment, and persistent flags, and validates the required fields.
func loadConfig() (types.Config, error) {
	cfg := types.Config{
		Library: types.LibraryConfig{
			Path:    viper.GetString("library.path"),
			Timeout: viper.GetDuration("library.timeout"),
		},
		Templates: types.TemplateConfig{
			PageTitle:        viper.GetString("templates.page_title"),
			PageProperties:   viper.GetString("templates.page_properties"),
			CustomProperties: viper.GetString("templates.custom_properties"),
		},
		Search: types.SearchConfig{
			Threshold:  viper.GetFloat64("search.threshold"),
			MaxResults: viper.GetInt("search.max_results"),
		},
		Graph: types.GraphConfig{
			Dir: viper.GetString("graph.dir"),
		},
		KeyboardShortcut: viper.GetString("keyboard_shortcut"),
	}

	if path, _ := rootCmd.PersistentFlags().GetString("library"); path != "" {
		cfg.Library.Path = path
	}
	if dir, _ := rootCmd.PersistentFlags().GetString("graph-dir"); dir != "" {
		cfg.Graph.Dir = dir
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
