package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eliyastein/skills/pkg/catalog"
	"github.com/eliyastein/skills/pkg/config"
	"github.com/eliyastein/skills/pkg/presenter"
)

type skillHeader struct {
	Name        string    `yaml:"name"`
	Description yaml.Node `yaml:"description"`
}

var newCmd = &cobra.Command{
	Use:   "new <skill-name>",
	Short: "Scaffold a new skill in the source tree",
	Long: `Create <source>/<skill-name>/SKILL.md with a metadata header so the skill is
immediately discoverable.

Examples:
  skills new pdf-tools --description "Work with PDF files"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		description, _ := cmd.Flags().GetString("description")
		newSkill(args[0], description)
	},
}

func init() {
	newCmd.Flags().StringP("description", "d", "", "Description stored in the skill's metadata header")
	rootCmd.AddCommand(newCmd)
}

func newSkill(name, description string) {
	cfg, err := config.Load()
	if err != nil {
		presenter.Error(err, "Failed to load configuration")
		os.Exit(1)
	}

	skillDir := filepath.Join(cfg.SourceRoot, name)
	markerPath := filepath.Join(skillDir, catalog.MarkerFileName)
	if _, err := os.Stat(markerPath); err == nil {
		presenter.Error(errors.Errorf("%s already exists", markerPath), "Skill already exists")
		os.Exit(1)
	}

	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		presenter.Error(err, "Failed to create skill directory")
		os.Exit(1)
	}

	content, err := scaffoldMarker(name, description)
	if err != nil {
		presenter.Error(err, "Failed to render metadata header")
		os.Exit(1)
	}
	if err := os.WriteFile(markerPath, content, 0o644); err != nil {
		presenter.Error(err, "Failed to write marker file")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Created skill %q at %s", name, skillDir))
}

// scaffoldMarker renders the marker file for a new skill. The description is
// emitted as a folded block scalar: its content stays literal text, so
// discovery reads back exactly what was given even when it contains colons
// or quotes that a plain scalar would force yaml to quote.
func scaffoldMarker(name, description string) ([]byte, error) {
	if description == "" {
		description = catalog.PlaceholderDescription
	}
	header, err := yaml.Marshal(skillHeader{
		Name: name,
		Description: yaml.Node{
			Kind:  yaml.ScalarNode,
			Style: yaml.FoldedStyle,
			Value: description + "\n",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal metadata header")
	}

	content := fmt.Sprintf("---\n%s---\n\n# %s\n\n## Instructions\n\nDescribe how to use this skill.\n", header, name)
	return []byte(content), nil
}
