package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/eliyastein/skills/pkg/catalog"
	"github.com/eliyastein/skills/pkg/config"
	"github.com/eliyastein/skills/pkg/presenter"
)

var showCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Show a skill's metadata and instructions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showSkill(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showSkill(cmd *cobra.Command, name string) {
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

	var found *catalog.Entry
	for _, entry := range builder.Scan(cmd.Context(), cfg.SourceRoot) {
		if entry.Name == name {
			found = &entry
			break
		}
	}
	if found == nil {
		presenter.Error(errors.Errorf("no skill named %q under %s", name, cfg.SourceRoot), "Skill not found")
		os.Exit(1)
	}

	details, err := catalog.LoadDetails(*found)
	if err != nil {
		presenter.Error(err, "Failed to read skill")
		os.Exit(1)
	}

	presenter.Section(found.Name)
	presenter.Info("Description: " + found.Description)
	presenter.Info("Directory:   " + found.SourcePath)
	if version, ok := details.Metadata["version"]; ok {
		presenter.Info(fmt.Sprintf("Version:     %v", version))
	}
	presenter.Separator()
	fmt.Println(details.Body)
}
