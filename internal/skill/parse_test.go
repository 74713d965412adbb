package skill

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantDesc string
		wantErr  bool
	}{
		{
			name:     "name and description",
			input:    "---\nname: pdf-tools\ndescription: Work with PDF files\n---\n# PDF Tools\n",
			wantName: "pdf-tools",
			wantDesc: "Work with PDF files",
		},
		{
			name:     "crlf line endings",
			input:    "---\r\nname: pdf-tools\r\n---\r\nbody",
			wantName: "pdf-tools",
		},
		{
			name:     "unknown keys ignored",
			input:    "---\nname: x\nlicense: MIT\nallowed-tools: [Read]\n---\n",
			wantName: "x",
		},
		{
			name:  "no front matter",
			input: "# Just markdown\n",
		},
		{
			name:  "unterminated front matter",
			input: "---\nname: x\n# body",
		},
		{
			name:    "invalid yaml",
			input:   "---\nname: [unclosed\n---\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, err := ParseFrontmatter(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrontmatter() error = %v", err)
			}
			if fm.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", fm.Name, tt.wantName)
			}
			if fm.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", fm.Description, tt.wantDesc)
			}
		})
	}
}

func TestLoadFrontmatter_Missing(t *testing.T) {
	if _, err := LoadFrontmatter(t.TempDir()); err == nil {
		t.Fatal("expected error for directory without SKILL.md")
	}
}

func TestLoadFrontmatter(t *testing.T) {
	dir := t.TempDir()
	content := "---\ndescription: Review pull requests\n---\n"
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	fm, err := LoadFrontmatter(dir)
	if err != nil {
		t.Fatalf("LoadFrontmatter() error = %v", err)
	}
	if fm.Description != "Review pull requests" {
		t.Errorf("Description = %q", fm.Description)
	}
}
