package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/console"
	"github.com/roach88/boxcar/internal/modules"
)

// ExplainOptions holds flags for the explain command.
type ExplainOptions struct {
	*RootOptions
	Width int
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExplainOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "explain <module>",
		Short: "Describe what a module configures",
		Long: `Print a module's documentation, its requirements and the capability tags
it provides, rendered as terminal markdown.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(opts, modules.Builtins(), args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", console.DefaultWidth, "wrap width")

	return cmd
}

func runExplain(opts *ExplainOptions, reg *composer.Registry, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	m, ok := reg.Lookup(name)
	if !ok {
		return formatter.fail(ExitCommandError, ErrCodeModuleNotFound, "unknown module",
			&composer.ModuleNotFoundError{Name: name})
	}

	info := moduleInfo(m)
	info.Doc = m.Doc
	if formatter.JSON() {
		return formatter.Success(info)
	}

	out, err := console.RenderMarkdown(explainMarkdown(m), opts.Width)
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeGeneric, "failed to render module documentation", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func explainMarkdown(m composer.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", m.Name, m.Summary)
	if m.Doc != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Doc)
	}
	if len(m.Requires) > 0 {
		fmt.Fprintf(&b, "**Requires:** %s\n\n", codeList(m.Requires))
	}
	if len(m.Provides) > 0 {
		fmt.Fprintf(&b, "**Provides:** %s\n\n", codeList(m.Provides))
	}
	if m.Variant != "" {
		fmt.Fprintf(&b, "**Variant group:** `%s` (apply only one member per run)\n\n", m.Variant)
	}
	if len(m.PostInstallTasks) > 0 {
		b.WriteString("## After installing\n\n")
		for _, task := range m.PostInstallTasks {
			fmt.Fprintf(&b, "- %s\n", task)
		}
	}
	return b.String()
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "`" + s + "`"
	}
	return strings.Join(quoted, ", ")
}
