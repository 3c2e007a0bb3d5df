// Command skills discovers skill bundles in a source tree and installs them
// into the per-user skills directory, either directly from the CLI or through
// an MCP server consumed by a calling agent.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eliyastein/skills/pkg/logger"
	"github.com/eliyastein/skills/pkg/presenter"
)

var rootCmd = &cobra.Command{
	Use:   "skills",
	Short: "Discover and install agent skills",
	Long: `skills scans a source tree for skill bundles (directories carrying a SKILL.md
marker file), lists them with their descriptions, and installs them into the
per-user skills directory.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		overridePathFlags(cmd.Root().PersistentFlags())
		quiet, _ := cmd.Flags().GetBool("quiet")
		presenter.SetQuiet(quiet)
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning(fmt.Sprintf("Invalid log level %q, using info", viper.GetString("log_level")))
		}
		logger.SetLogFormat(viper.GetString("log_format"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func init() {
	initConfig()

	flags := rootCmd.PersistentFlags()
	flags.String("source", "", "Directory scanned for skill bundles (overrides config)")
	flags.String("install-root", "", "Directory installed skills are copied into (overrides config)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text or json)")
	flags.BoolP("quiet", "q", false, "Suppress all output except errors")

	bindRootFlags()
}

// initConfig wires viper's sources: SKILLS_* environment variables (nested
// keys use underscores, e.g. SKILLS_TRACING_ENABLED) and a skills.yaml read
// from ~/.skills or the working directory.
func initConfig() {
	viper.SetEnvPrefix("SKILLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("skills")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skills")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()
}

func bindRootFlags() {
	flags := rootCmd.PersistentFlags()
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("log_format", flags.Lookup("log-format"))
}

// overridePathFlags maps the path flags onto their viper keys only when the
// user set them, so that an unset flag's empty default does not mask the
// configured or built-in path.
func overridePathFlags(flags *pflag.FlagSet) {
	if f := flags.Lookup("source"); f != nil && f.Changed {
		viper.Set("source_root", f.Value.String())
	}
	if f := flags.Lookup("install-root"); f != nil && f.Changed {
		viper.Set("install_root", f.Value.String())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
