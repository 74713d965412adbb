package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skill-transfer/skill-transfer/internal/cli"
	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
	"github.com/skill-transfer/skill-transfer/internal/selector"
)

var (
	removeTarget string
	removeYes    bool
)

var removeCmd = &cobra.Command{
	Use:   "remove <skill-name>",
	Short: "Remove an installed skill from a target tool",
	Long: `Remove a skill from the target tool's global location.

Only the <skill-name>.md workflow file is deleted.

Examples:
  st remove pdf-tools
  st remove pdf-tools -t antigravity --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVarP(&removeTarget, "target", "t", "", "target tool (default: from config)")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	target := removeTarget
	if target == "" {
		target = a.cfg.Defaults.Target
	}
	rm, err := a.registry.Remover(target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !removeYes {
		message := fmt.Sprintf("Delete skill %q?", name)
		var ok bool
		if isTerminal() {
			ok, err = cli.NewPrompter(cmd.InOrStdin(), out).Confirm(commandContext(cmd), message, false)
		} else {
			ok, err = cli.LineConfirm(cmd.InOrStdin(), out, message, false)
		}
		if errors.Is(err, selector.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := rm.Delete(name); err != nil {
		if serrors.HasCode(err, serrors.CodeDeleteNotInstalled) {
			return fmt.Errorf("skill %q is not installed for %s", name, target)
		}
		return err
	}
	fmt.Fprintf(out, "Removed skill %q from %s\n", name, target)
	return nil
}
