// SPDX-License-Identifier: MIT

// Package cli implements the basketsplit command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

const (
	// EnvConfig names the configuration file when --config is not given.
	EnvConfig = "BASKETSPLIT_CONFIG"
	// EnvAddr overrides the default listen address of serve.
	EnvAddr = "BASKETSPLIT_ADDR"

	defaultConfig = "config.json"
	defaultAddr   = ":8080"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	cfgPath    string
	debug      bool
	jsonOutput bool

	logger *slog.Logger
}

// configPath resolves --config, then $BASKETSPLIT_CONFIG, then config.json.
func (g *globalOptions) configPath() string {
	if g.cfgPath != "" {
		return g.cfgPath
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return defaultConfig
}

// rootCmd is the command run by Execute.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	cmd := &cobra.Command{
		Use:     "basketsplit",
		Version: "dev",
		Short:   "Split shopping baskets into the fewest delivery groups",
		Long: `basketsplit assigns every product of a basket to a delivery group so that
as few groups as possible are used. It can also solve generic set cover
instances and serve splits over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// A missing .env file is not an error.
			_ = godotenv.Load()
			g.logger = newLogger(cmd.ErrOrStderr(), g.debug)
			slog.SetDefault(g.logger)
		},
	}

	cmd.PersistentFlags().StringVar(&g.cfgPath, "config", "", "delivery configuration file (default $"+EnvConfig+" or "+defaultConfig+")")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&g.jsonOutput, "json", false, "output in JSON format")

	cmd.AddCommand(
		newSplitCmd(g),
		newCoverCmd(g),
		newServeCmd(g),
		newVersionCmd(),
	)

	return cmd
}

// newLogger returns a tint logger writing to w.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the basketsplit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cmd.Root().Version)
		},
	}
}

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
