package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skill-transfer/skill-transfer/internal/adapter"
	"github.com/skill-transfer/skill-transfer/internal/pathutil"
)

var (
	importTarget  string
	importMode    string
	importProject string
)

var importCmd = &cobra.Command{
	Use:   "import <skill-path>",
	Short: "Import one skill folder into a target tool",
	Long: `Import the contents of a skill folder into a target tool's configuration.

Every top-level entry of the folder is copied into the target directory.
SKILL.md is renamed to <folder>.md.

Examples:
  # Install globally for Antigravity
  st import ./skills/pdf-tools -t antigravity

  # Install into one project
  st import ./skills/pdf-tools -t antigravity -m local -p ~/code/site`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importTarget, "target", "t", "", "target tool (supported: antigravity)")
	importCmd.Flags().StringVarP(&importMode, "mode", "m", string(adapter.ModeGlobal), "import mode: global or local")
	importCmd.Flags().StringVarP(&importProject, "project", "p", "", "project path (required for local mode)")
	_ = importCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	mode, err := adapter.ParseMode(importMode)
	if err != nil {
		return err
	}
	if mode == adapter.ModeLocal && importProject == "" {
		return fmt.Errorf("local mode requires a project path (-p/--project)")
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	imp, err := a.registry.Lookup(importTarget)
	if err != nil {
		return err
	}

	skillPath, err := pathutil.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("resolving skill path: %w", err)
	}
	exists, err := pathutil.Exists(skillPath)
	if err != nil {
		return fmt.Errorf("checking skill path: %w", err)
	}
	if !exists {
		return fmt.Errorf("skill path does not exist: %s", skillPath)
	}
	if !pathutil.IsDir(skillPath) {
		return fmt.Errorf("skill path must be a directory: %s", skillPath)
	}

	projectRoot := ""
	if mode == adapter.ModeLocal {
		projectRoot, err = pathutil.Resolve(importProject)
		if err != nil {
			return fmt.Errorf("resolving project path: %w", err)
		}
		if !pathutil.IsDir(projectRoot) {
			return fmt.Errorf("project path does not exist: %s", projectRoot)
		}
	}

	targetDir, err := imp.TargetDir(mode, projectRoot)
	if err != nil {
		return err
	}

	tool, _ := a.registry.Tool(importTarget)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Importing %q into %s (%s mode)...\n", args[0], tool.Label, mode)
	fmt.Fprintf(out, "Target directory: %s\n\n", targetDir)

	report, err := imp.Import(skillPath, projectRoot, mode)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	for _, f := range report.Files {
		if f.Renamed() {
			fmt.Fprintf(out, "  %s -> %s\n", filepath.Base(f.Source), filepath.Base(f.Target))
		} else {
			fmt.Fprintf(out, "  %s\n", filepath.Base(f.Source))
		}
	}
	fmt.Fprintf(out, "\nImported %s (%d entries)\n", report.Skill, len(report.Files))
	return nil
}
