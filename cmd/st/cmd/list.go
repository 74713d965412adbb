package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
	"github.com/skill-transfer/skill-transfer/internal/skill"
)

var (
	listTarget    string
	listJSON      bool
	listInstalled bool
	listSource    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in the source directory",
	Long: `List the skills found in the configured source directory together with
their installed status for the target tool.

Use --installed to list what the target tool has installed globally instead.
Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listTarget, "target", "t", "", "target tool (default: from config)")
	listCmd.Flags().StringVar(&listSource, "source", "", "source directory (default: from config)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.Flags().BoolVar(&listInstalled, "installed", false, "list installed skills of the target tool")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	target := listTarget
	if target == "" {
		target = a.cfg.Defaults.Target
	}
	status, err := a.registry.Status(target)
	if err != nil {
		return err
	}

	if listInstalled {
		names, err := status.ListInstalled()
		if err != nil {
			return err
		}
		return outputInstalled(cmd, names)
	}

	source := listSource
	if source == "" {
		source = a.store.SourceDir()
	}
	if source == "" {
		return fmt.Errorf("no source directory configured: run 'st config set-source <dir>' or pass --source")
	}

	skills, err := skill.NewScanner(status, a.logger).Scan(source)
	if err != nil {
		if listJSON {
			writeJSONError(cmd, err)
		}
		return err
	}

	if listJSON {
		if skills == nil {
			skills = []skill.Info{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(skills)
	}

	if len(skills) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills found (requires SKILL.md file)")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SKILL\tSTATUS\tDESCRIPTION")
	for _, s := range skills {
		state := "Not installed"
		if s.Installed {
			state = "Installed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, state, s.Description)
	}
	return w.Flush()
}

// writeJSONError reports err on stdout as {"error": {...}} so --json
// consumers always get a parseable document.
func writeJSONError(cmd *cobra.Command, err error) {
	var serr *serrors.Error
	if !errors.As(err, &serr) {
		serr = serrors.New("", err.Error())
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{"error": serr})
}

func outputInstalled(cmd *cobra.Command, names []string) error {
	if listJSON {
		if names == nil {
			names = []string{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills installed")
		return nil
	}
	for _, n := range names {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
	return nil
}
