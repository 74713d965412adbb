package cli

import (
	"fmt"
	"io"

	"github.com/skill-transfer/skill-transfer/internal/tui/theme"
)

const logo = `
   _____ _    _ _ _   _______                    __
  / ____| |  (_) | | |__   __|                  / _|
 | (___ | | ___| | |    | |_ __ __ _ _ __  ___ | |_ ___ _ __
  \___ \| |/ / | | |    | | '__/ _` + "`" + ` | '_ \/ __||  _/ _ \ '__|
  ____) |   <| | | |    | | | | (_| | | | \__ \| ||  __/ |
 |_____/|_|\_\_|_|_|    |_|_|  \__,_|_| |_|___/|_| \___|_|
`

const tagline = "  Transfer AI coding skills between different tools."

// Printer writes styled status lines for the interactive session.
type Printer struct {
	out   io.Writer
	clear bool
}

// NewPrinter creates a Printer. When clear is set, Clear wipes the screen
// between loop iterations.
func NewPrinter(out io.Writer, clear bool) *Printer {
	return &Printer{out: out, clear: clear}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.out }

// Banner prints the wordmark and tagline.
func (p *Printer) Banner() {
	fmt.Fprintln(p.out, theme.Logo.Render(logo))
	fmt.Fprintln(p.out, theme.Tagline.Render(tagline))
	fmt.Fprintln(p.out)
}

// Clear resets the terminal when enabled.
func (p *Printer) Clear() {
	if p.clear {
		fmt.Fprint(p.out, "\033[H\033[2J")
	}
}

// SourceDir prints the active source directory.
func (p *Printer) SourceDir(dir string) {
	fmt.Fprintln(p.out, theme.Muted.Render("  Source: ")+theme.Value.Render(dir))
	fmt.Fprintln(p.out)
}

// Found prints the scan count.
func (p *Printer) Found(n int) {
	fmt.Fprintln(p.out, theme.Muted.Render(fmt.Sprintf("   Found %d skill(s)", n)))
	fmt.Fprintln(p.out)
}

// Notice prints a highlighted line without a status mark.
func (p *Printer) Notice(msg string) {
	fmt.Fprintln(p.out, theme.StatusWarning.Render("   "+msg))
}

// Goodbye prints the farewell line.
func (p *Printer) Goodbye() {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, theme.Muted.Render("   Goodbye!"))
	fmt.Fprintln(p.out)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

func (p *Printer) Success(msg string) { fmt.Fprintln(p.out, theme.FormatSuccess(msg)) }

func (p *Printer) Error(msg string) { fmt.Fprintln(p.out, theme.FormatError(msg)) }

func (p *Printer) Warning(msg string) { fmt.Fprintln(p.out, theme.FormatWarning(msg)) }

func (p *Printer) Info(msg string) { fmt.Fprintln(p.out, theme.FormatInfo(msg)) }
