package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/eliyastein/skills/pkg/catalog"
	"github.com/eliyastein/skills/pkg/config"
	"github.com/eliyastein/skills/pkg/installer"
	"github.com/eliyastein/skills/pkg/presenter"
)

var installCmd = &cobra.Command{
	Use:   "install <skill-name>",
	Short: "Install a skill into the local skills directory",
	Long: `Install a skill by its derived name. The skill directory is copied in full,
marker file included, into the install root. Installing an already-installed
skill is a no-op.

Examples:
  skills install pdf-tools
  skills install acme-deploy --install-root /opt/agent/skills`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		installSkill(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func installSkill(cmd *cobra.Command, name string) {
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

	result := installer.New(builder, cfg.InstallRoot).Install(cmd.Context(), cfg.SourceRoot, name)
	switch result.Status {
	case installer.StatusInstalled:
		presenter.Success(result.Message())
	case installer.StatusAlreadyInstalled:
		presenter.Warning(result.Message())
	case installer.StatusNotFound:
		presenter.Error(errors.Errorf("no skill named %q under %s", name, cfg.SourceRoot), "Skill not found")
		os.Exit(1)
	case installer.StatusFailed:
		presenter.Error(result.Err, "Failed to install skill")
		os.Exit(1)
	}
}
