package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eliyastein/skills/pkg/catalog"
	"github.com/eliyastein/skills/pkg/config"
	"github.com/eliyastein/skills/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discoverable skills",
	Long: `List every skill discovered under the source tree with its derived name and
description. With --markdown, print the listing in the format handed to
calling agents.`,
	Run: func(cmd *cobra.Command, _ []string) {
		markdown, _ := cmd.Flags().GetBool("markdown")
		listSkills(cmd, markdown)
	},
}

func init() {
	listCmd.Flags().Bool("markdown", false, "Print the agent-facing markdown listing")
	rootCmd.AddCommand(listCmd)
}

func listSkills(cmd *cobra.Command, markdown bool) {
	cfg, err := config.Load()
	if err != nil {
		presenter.Error(err, "Failed to load configuration")
		os.Exit(1)
	}

	builder, err := catalog.NewBuilder(catalog.WithIgnorePatterns(cfg.Ignore...))
	if err != nil {
		presenter.Error(err, "Failed to create catalog builder")
		os.Exit(1)
	}

	entries := builder.Scan(cmd.Context(), cfg.SourceRoot)

	if markdown {
		fmt.Println(catalog.Render(entries))
		return
	}

	if len(entries) == 0 {
		presenter.Info("No skills found under " + cfg.SourceRoot)
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION\tPATH")
	fmt.Fprintln(tw, "----\t-----------\t----")
	for _, entry := range entries {
		description := entry.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Name, description, entry.SourcePath)
	}
	tw.Flush()
}
