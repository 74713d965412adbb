package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skill-transfer/skill-transfer/internal/config"
)

// setupHome points HOME and the config file at a temp dir and resets the
// package-level flags after the test.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfigPath, filepath.Join(home, ".skill-transfer", "config.toml"))
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFile, "")

	oldVerbose, oldConfig := verbose, configPath
	oldImport := []string{importTarget, importMode, importProject}
	oldList := []any{listTarget, listJSON, listInstalled, listSource}
	oldRemove := []any{removeTarget, removeYes}
	t.Cleanup(func() {
		verbose, configPath = oldVerbose, oldConfig
		importTarget, importMode, importProject = oldImport[0], oldImport[1], oldImport[2]
		listTarget, listJSON, listInstalled, listSource = oldList[0].(string), oldList[1].(bool), oldList[2].(bool), oldList[3].(string)
		removeTarget, removeYes = oldRemove[0].(string), oldRemove[1].(bool)
	})

	configPath = ""
	importTarget, importMode, importProject = "", "global", ""
	listTarget, listJSON, listInstalled, listSource = "", false, false, ""
	removeTarget, removeYes = "", false
	return home
}

// writeSkill creates <dir>/<name>/SKILL.md plus one helper file.
func writeSkill(t *testing.T, dir, name, description string) string {
	t.Helper()
	skillDir := filepath.Join(dir, name)
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		t.Fatal(err)
	}
	manifest := "---\nname: " + name + "\ndescription: " + description + "\n---\n# " + name + "\n"
	if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, "run.sh"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return skillDir
}

func globalWorkflows(home string) string {
	return filepath.Join(home, ".gemini", "antigravity", "global_workflows")
}
