// Package theme holds the lipgloss styles shared by the skill list renderer
// and the status printer.
package theme

import "github.com/charmbracelet/lipgloss"

// Color tokens.
var (
	Accent  = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"} // cyan
	Success = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"}
	Warning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	Error   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	Info    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

	TextPrimary = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F8FAFC"}
	TextMuted   = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"}
	TextDim     = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#64748B"}
)

// ===== Banner =====

// Logo colors the ASCII wordmark.
var Logo = lipgloss.NewStyle().Foreground(Accent)

// Tagline sits under the wordmark.
var Tagline = lipgloss.NewStyle().Foreground(TextMuted)

// ===== Skill list =====

// Title is the list heading.
var Title = lipgloss.NewStyle().Bold(true).Foreground(Accent)

// Cursor marks the focused row.
var Cursor = lipgloss.NewStyle().Foreground(Accent)

// Focused renders the name on the focused row.
var Focused = lipgloss.NewStyle().Foreground(Accent)

// Name renders names on unfocused rows.
var Name = lipgloss.NewStyle().Foreground(TextPrimary)

// MarkOn renders a filled checkbox or installed dot.
var MarkOn = lipgloss.NewStyle().Foreground(Success)

// MarkOff renders an empty checkbox or not-installed dot.
var MarkOff = lipgloss.NewStyle().Foreground(TextDim)

// Label renders the Installed / Not installed column.
var Label = lipgloss.NewStyle().Faint(true)

// Help renders the key legend.
var Help = lipgloss.NewStyle().Foreground(TextMuted)

// HelpKey highlights a key name inside the legend.
var HelpKey = lipgloss.NewStyle().Foreground(TextPrimary)

// ===== Status lines =====

// StatusSuccess for ✓ lines.
var StatusSuccess = lipgloss.NewStyle().Foreground(Success)

// StatusError for ✗ lines and inline validation errors.
var StatusError = lipgloss.NewStyle().Foreground(Error)

// StatusWarning for ! lines.
var StatusWarning = lipgloss.NewStyle().Foreground(Warning)

// StatusInfo for i lines.
var StatusInfo = lipgloss.NewStyle().Foreground(Info)

// Muted for secondary text such as "Source:" and "Goodbye!".
var Muted = lipgloss.NewStyle().Foreground(TextMuted)

// Value highlights a value inside muted text.
var Value = lipgloss.NewStyle().Foreground(TextPrimary)

// ===== Helper Functions =====

// FormatSuccess formats a success status line.
func FormatSuccess(msg string) string {
	return StatusSuccess.Render("  ✓ " + msg)
}

// FormatError formats an error status line.
func FormatError(msg string) string {
	return StatusError.Render("  ✗ " + msg)
}

// FormatWarning formats a warning status line.
func FormatWarning(msg string) string {
	return StatusWarning.Render("  ! " + msg)
}

// FormatInfo formats an informational status line.
func FormatInfo(msg string) string {
	return StatusInfo.Render("  i " + msg)
}
