package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/skill-transfer/skill-transfer/internal/pathutil"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetSourceCmd = &cobra.Command{
	Use:   "set-source <dir>",
	Short: "Save the skill source directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetSource,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetSourceCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", a.configPath)
	return toml.NewEncoder(out).Encode(a.cfg)
}

func runConfigSetSource(cmd *cobra.Command, args []string) error {
	dir, err := pathutil.ValidateDir(args[0])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.SetSourceDir(dir); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Source directory saved: %s\n", dir)
	return nil
}
