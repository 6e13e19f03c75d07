package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/console"
	"github.com/roach88/boxcar/internal/modules"
	"github.com/roach88/boxcar/internal/recipe"
)

// ModuleInfo describes a registered module.
type ModuleInfo struct {
	Name     string   `json:"name"`
	Summary  string   `json:"summary"`
	Variant  string   `json:"variant,omitempty"`
	Requires []string `json:"requires,omitempty"`
	Provides []string `json:"provides,omitempty"`
	Doc      string   `json:"doc,omitempty"`
}

func moduleInfo(m composer.Module) ModuleInfo {
	return ModuleInfo{
		Name:     m.Name,
		Summary:  m.Summary,
		Variant:  m.Variant,
		Requires: m.Requires,
		Provides: m.Provides,
	}
}

// ListResult is the list command's JSON payload.
type ListResult struct {
	Modules []ModuleInfo `json:"modules"`
	Recipes []string     `json:"recipes"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List registered modules and built-in recipes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, modules.Builtins(), cmd)
		},
	}
}

func runList(opts *RootOptions, reg *composer.Registry, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	result := ListResult{Recipes: recipe.BuiltinNames()}
	for _, m := range reg.Modules() {
		result.Modules = append(result.Modules, moduleInfo(m))
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}
	printModules(cmd.OutOrStdout(), result)
	return nil
}

func printModules(w io.Writer, result ListResult) {
	styles := console.NewStyles(lipgloss.NewRenderer(w))

	width := 0
	for _, m := range result.Modules {
		width = max(width, len(m.Name))
	}

	fmt.Fprintln(w, styles.Title.Render("Modules"))
	for _, m := range result.Modules {
		name := styles.Cmd.Render(m.Name + strings.Repeat(" ", width-len(m.Name)))
		fmt.Fprintf(w, "  %s  %s\n", name, m.Summary)

		var notes []string
		if m.Variant != "" {
			notes = append(notes, "variant: "+m.Variant)
		}
		if len(m.Requires) > 0 {
			notes = append(notes, "requires: "+strings.Join(m.Requires, ", "))
		}
		if len(notes) > 0 {
			pad := strings.Repeat(" ", width+4)
			fmt.Fprintln(w, pad+styles.Muted.Render(strings.Join(notes, "; ")))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Title.Render("Recipes"))
	for _, name := range result.Recipes {
		fmt.Fprintln(w, "  "+styles.Cmd.Render(name))
	}
}
