package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
	"github.com/skill-transfer/skill-transfer/internal/logging/logtest"
)

func newTestSkill(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	files := map[string]string{
		"SKILL.md":             "---\nname: " + name + "\n---\n# " + name,
		"helper.sh":            "#!/bin/sh\necho hi\n",
		"templates/report.txt": "report",
		".git/HEAD":            "ref: refs/heads/main",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestAntigravity_TargetDir(t *testing.T) {
	home := t.TempDir()
	a := NewAntigravity(home, logtest.Discard())

	got, err := a.TargetDir(ModeGlobal, "/ignored")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".gemini", "antigravity", "global_workflows"); got != want {
		t.Errorf("global TargetDir = %s, want %s", got, want)
	}

	got, err = a.TargetDir(ModeLocal, "/work/proj")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/work/proj", ".agent", "workflows"); got != want {
		t.Errorf("local TargetDir = %s, want %s", got, want)
	}

	if _, err := a.TargetDir(ModeLocal, ""); err == nil {
		t.Error("expected error for local mode without project")
	}
	if _, err := a.TargetDir(Mode("remote"), ""); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestAntigravity_ImportGlobal(t *testing.T) {
	home := t.TempDir()
	a := NewAntigravity(home, logtest.Discard())
	src := newTestSkill(t, "pdf-tools")

	report, err := a.Import(src, "", ModeGlobal)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	global := a.GlobalDir()
	if report.TargetDir != global {
		t.Errorf("TargetDir = %s, want %s", report.TargetDir, global)
	}
	for _, rel := range []string{"pdf-tools.md", "helper.sh", filepath.Join("templates", "report.txt"), filepath.Join(".git", "HEAD")} {
		if _, err := os.Stat(filepath.Join(global, rel)); err != nil {
			t.Errorf("expected %s to be copied: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(global, "SKILL.md")); !os.IsNotExist(err) {
		t.Error("SKILL.md should be renamed, not copied as-is")
	}

	renamed := 0
	for _, f := range report.Files {
		if f.Renamed() {
			renamed++
		}
	}
	if renamed != 1 {
		t.Errorf("renamed entries = %d, want 1", renamed)
	}

	installed, err := a.IsInstalled("pdf-tools")
	if err != nil || !installed {
		t.Errorf("IsInstalled = %v, %v; want true", installed, err)
	}
}

func TestAntigravity_ImportLocalOverwrites(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	a := NewAntigravity(home, logtest.Discard())
	src := newTestSkill(t, "review")

	target := filepath.Join(project, ".agent", "workflows")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "review.md"), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := a.Import(src, project, ModeLocal); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(target, "review.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "stale" {
		t.Error("existing workflow should be overwritten")
	}

	// Local imports do not count as installed.
	if installed, _ := a.IsInstalled("review"); installed {
		t.Error("local import must not mark the skill installed globally")
	}
}

func TestAntigravity_ImportMissingSource(t *testing.T) {
	a := NewAntigravity(t.TempDir(), logtest.Discard())
	if _, err := a.Import(filepath.Join(t.TempDir(), "nope"), "", ModeGlobal); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestAntigravity_ListInstalled(t *testing.T) {
	home := t.TempDir()
	a := NewAntigravity(home, logtest.Discard())

	names, err := a.ListInstalled()
	if err != nil {
		t.Fatalf("ListInstalled() on missing dir error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v, want empty", names)
	}

	global := a.GlobalDir()
	if err := os.MkdirAll(filepath.Join(global, "subdir.md"), 0755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"zeta.md", "alpha.md", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(global, f), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	names, err = a.ListInstalled()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"alpha", "zeta"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestAntigravity_Delete(t *testing.T) {
	home := t.TempDir()
	a := NewAntigravity(home, logtest.Discard())

	err := a.Delete("ghost")
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Delete(ghost) error = %v, want ErrNotInstalled", err)
	}
	if !serrors.HasCode(err, serrors.CodeDeleteNotInstalled) {
		t.Errorf("Delete(ghost) code = %s", serrors.Code(err))
	}

	if _, err := a.Import(newTestSkill(t, "ghost"), "", ModeGlobal); err != nil {
		t.Fatal(err)
	}
	if err := a.Delete("ghost"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if installed, _ := a.IsInstalled("ghost"); installed {
		t.Error("skill should no longer be installed")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"global", ModeGlobal, false},
		{"LOCAL", ModeLocal, false},
		{" Global ", ModeGlobal, false},
		{"remote", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}
