package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter prints composition progress. Steps are green, details are
// indented cyan, notices are yellow.
type Reporter struct {
	w      io.Writer
	styles Styles
}

// NewReporter returns a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, styles: NewStyles(lipgloss.NewRenderer(w))}
}

// Styles returns the reporter's styles.
func (r *Reporter) Styles() Styles { return r.styles }

func (r *Reporter) Step(msg string) {
	fmt.Fprintln(r.w, r.styles.Success.Render(msg))
}

func (r *Reporter) Detail(msg string) {
	fmt.Fprintln(r.w, r.styles.Detail.Render("   "+msg))
}

func (r *Reporter) Notice(msg string) {
	fmt.Fprintln(r.w, r.styles.Warning.Render(msg))
}

// Summary is what a finished run has to tell the user.
type Summary struct {
	Dir      string
	Tasks    []string
	Warnings []string
}

// Complete prints the closing block of a successful run: warnings, the
// post-install tasks and how to start the app.
func (r *Reporter) Complete(s Summary) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Success.Render("boxcar setup complete!"))
	fmt.Fprintln(r.w)

	if len(s.Warnings) > 0 {
		fmt.Fprintln(r.w, r.styles.Warning.Render("Warnings:"))
		for _, w := range s.Warnings {
			fmt.Fprintln(r.w, r.styles.Warning.Render("  - "+w))
		}
		fmt.Fprintln(r.w)
	}

	if len(s.Tasks) > 0 {
		fmt.Fprintln(r.w, r.styles.Warning.Render("Next steps:"))
		for _, task := range s.Tasks {
			fmt.Fprintln(r.w, r.styles.Warning.Render("  - "+task))
		}
		fmt.Fprintln(r.w)
	}

	start := "bin/dev"
	if s.Dir != "" {
		start = "cd " + s.Dir + " && bin/dev"
	}
	fmt.Fprintln(r.w, r.styles.Detail.Render("Run `"+start+"` to start your app"))
}
