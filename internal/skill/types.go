package skill

// ManifestName is the file that marks a folder as a skill.
const ManifestName = "SKILL.md"

// Info identifies one skill folder found in a source directory.
type Info struct {
	// Name is the folder name; unique within one scan.
	Name string `json:"name"`

	// SourcePath is the absolute path of the skill folder.
	SourcePath string `json:"source_path"`

	// Installed reports whether the target adapter already has this skill
	// in its global location at scan time.
	Installed bool `json:"installed"`

	// Description comes from the SKILL.md front matter (optional).
	Description string `json:"description,omitempty"`

	// DeclaredName is the front matter "name", when present.
	DeclaredName string `json:"declared_name,omitempty"`
}

// Frontmatter is the YAML header of a SKILL.md file. Only the fields
// used for display are read; unknown keys are ignored.
type Frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
