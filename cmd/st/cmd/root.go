package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skill-transfer/skill-transfer/internal/cli"
	"github.com/skill-transfer/skill-transfer/internal/session"
	"github.com/skill-transfer/skill-transfer/internal/skill"
	"github.com/skill-transfer/skill-transfer/internal/tui/progress"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "st",
	Short: "Skill Transfer - move AI coding skills between tools",
	Long: `st copies skill folders (directories containing a SKILL.md file) from
your personal skills library into the configuration directory of an AI
coding tool, either globally or for a single project.

Run st with no arguments for the interactive skill browser:

  ↑↓ move   Space select   Enter import   D delete   C change source   Q quit

Supported targets:
  - antigravity: Antigravity (Google Gemini)
      global: ~/.gemini/antigravity/global_workflows
      local:  <project>/.agent/workflows`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runInteractive,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.skill-transfer/config.toml)")

	// Version flag
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("st {{.Version}}\n")
}

// isTerminal reports whether both stdin and stdout are terminals.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return fmt.Errorf("interactive mode requires a terminal; use 'st import' for scripted use")
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	status, err := a.registry.Status(a.cfg.Defaults.Target)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	sess := session.New(session.Deps{
		Prompter: cli.NewPrompter(cmd.InOrStdin(), out),
		Printer:  cli.NewPrinter(out, true),
		Scanner:  skill.NewScanner(status, a.logger),
		Store:    a.store,
		Registry: a.registry,
		Progress: progress.New(out, true),
		Logger:   a.logger,
		Target:   a.cfg.Defaults.Target,
		WorkDir:  workDir,
	})
	return sess.Run(ctx)
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
