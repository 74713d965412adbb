package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skill-transfer/skill-transfer/internal/tui/theme"
)

const (
	indent    = "   "
	nameWidth = 25
	title     = "Select skills to import:"
)

// Render draws the list. Output depends only on its arguments.
func Render(choices []Choice, cursor int, errMsg string) string {
	var b strings.Builder

	b.WriteString(indent)
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n\n")

	for i, c := range choices {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderRow(i, c, i == cursor))
	}

	b.WriteString("\n\n")
	b.WriteString(indent)
	b.WriteString(renderHelp())

	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(theme.StatusError.Render(errMsg))
	}
	return b.String()
}

func renderRow(index int, c Choice, focused bool) string {
	marker := " "
	name := theme.Name.Render(c.Name)
	if focused {
		marker = theme.Cursor.Render(">")
		name = theme.Focused.Render(c.Name)
	}
	if pad := nameWidth - lipgloss.Width(c.Name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}

	num := fmt.Sprintf("%-3s", fmt.Sprintf("%d.", index+1))

	checkbox := theme.MarkOff.Render("○")
	if c.Checked {
		checkbox = theme.MarkOn.Render("◉")
	}
	installed := theme.MarkOff.Render("○")
	label := theme.Label.Render("Not installed")
	if c.Installed {
		installed = theme.MarkOn.Render("●")
		label = theme.Label.Render("Installed")
	}

	return fmt.Sprintf("%s%s %s %s %s %s %s", indent, marker, num, checkbox, installed, name, label)
}

func renderHelp() string {
	items := []string{
		"↑↓",
		theme.HelpKey.Render("Enter"),
		theme.HelpKey.Render("Space") + " Select",
		theme.HelpKey.Render("D") + " Delete",
		theme.HelpKey.Render("C") + " Config",
		theme.HelpKey.Render("Q") + " Quit",
	}
	return theme.Help.Render(strings.Join(items, "  |  "))
}
