package skill

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFrontmatter reads the SKILL.md front matter of a skill directory.
func LoadFrontmatter(dir string) (Frontmatter, error) {
	file, err := os.Open(filepath.Join(dir, ManifestName))
	if err != nil {
		return Frontmatter{}, fmt.Errorf("open skill manifest: %w", err)
	}
	defer file.Close()

	return ParseFrontmatter(file)
}

// ParseFrontmatter parses the leading "---" delimited YAML block of a
// SKILL.md document. A document without front matter yields a zero value.
func ParseFrontmatter(reader io.Reader) (Frontmatter, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return Frontmatter{}, fmt.Errorf("read skill manifest: %w", err)
	}

	front, ok := splitFrontmatter(string(data))
	if !ok {
		return Frontmatter{}, nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(front), &fm); err != nil {
		return Frontmatter{}, fmt.Errorf("decode skill front matter: %w", err)
	}
	fm.Name = strings.TrimSpace(fm.Name)
	fm.Description = strings.TrimSpace(fm.Description)
	return fm, nil
}

func splitFrontmatter(raw string) (string, bool) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(raw, "---\n") {
		return "", false
	}
	lines := strings.Split(raw, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}
