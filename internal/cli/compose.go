package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/console"
	"github.com/roach88/boxcar/internal/journal"
	"github.com/roach88/boxcar/internal/modules"
	"github.com/roach88/boxcar/internal/naming"
	"github.com/roach88/boxcar/internal/project"
	"github.com/roach88/boxcar/internal/recipe"
	"github.com/roach88/boxcar/internal/shell"
)

// ComposeOptions holds flags for the compose command.
type ComposeOptions struct {
	*RootOptions
	Recipe      string
	Modules     []string
	Name        string
	SkipBundle  bool
	Journal     string
	Interactive bool

	// Overrides used by tests. Nil selects the real implementation.
	Registry *composer.Registry
	Runner   composer.Runner
	Secrets  io.Reader
	Picker   VariantPicker
}

// ModuleOutcome is one module's entry in the compose result.
type ModuleOutcome struct {
	Position int    `json:"position"`
	Module   string `json:"module"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// ComposeResult is the compose command's JSON payload.
type ComposeResult struct {
	RunID        string          `json:"run_id,omitempty"`
	Root         string          `json:"root"`
	App          string          `json:"app"`
	Recipe       string          `json:"recipe"`
	SkipBundle   bool            `json:"skip_bundle"`
	Modules      []ModuleOutcome `json:"modules"`
	Tasks        []string        `json:"tasks"`
	Warnings     []string        `json:"warnings"`
	Capabilities []string        `json:"capabilities"`
}

// NewComposeCommand creates the compose command.
func NewComposeCommand(rootOpts *RootOptions) *cobra.Command {
	return newComposeCommand(&ComposeOptions{RootOptions: rootOpts})
}

func newComposeCommand(opts *ComposeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose <dir>",
		Short: "Apply a recipe of modules to a Rails app",
		Long: `Apply configuration modules, in order, to the Rails application in <dir>.

Modules come from --module flags when given, otherwise from --recipe (a
YAML or CUE file, or the name of a built-in recipe). The default recipe is
"boxcar". The run stops at the first module that fails; nothing is rolled
back. After the modules, bundle install and the queued generators run
unless --skip-bundle is set, in which case they are listed as next steps.

Example:
  boxcar compose ./shop
  boxcar compose ./shop --recipe minimal --skip-bundle
  boxcar compose ./shop --module anchors --module base_gems --module auth`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Recipe, "recipe", "r", "", "recipe file or built-in recipe name")
	cmd.Flags().StringArrayVarP(&opts.Modules, "module", "m", nil, "module to apply (repeatable, overrides --recipe)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "application name (default: directory name)")
	cmd.Flags().BoolVar(&opts.SkipBundle, "skip-bundle", false, "do not run bundle install or generators")
	cmd.Flags().StringVar(&opts.Journal, "journal", "", "record the run in this SQLite journal")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "choose between alternative modules")

	return cmd
}

func runCompose(opts *ComposeOptions, dir string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := console.NewLogger(cmd.ErrOrStderr(), opts.Verbose)

	tree, err := project.Open(dir)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeNotFound, "project directory not found", err)
	}

	app := stringFlag(cmd, "name", opts.Name, opts.Config.App)
	if app == "" {
		app = filepath.Base(tree.Root())
	}
	if err := naming.Validate(app); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeBadName, "invalid application name", err)
	}

	r, err := resolveRecipe(opts, cmd)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeBadRecipe, "failed to load recipe", err)
	}

	reg := opts.Registry
	if reg == nil {
		reg = modules.Builtins()
	}
	if err := reg.Check(); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, "module registry is inconsistent", err)
	}
	if opts.Interactive {
		picker := opts.Picker
		if picker == nil {
			picker = surveyPicker{}
		}
		if r, err = chooseVariants(ctx, picker, reg, r); err != nil {
			return formatter.fail(ExitCommandError, ErrCodeGeneric, "module selection failed", err)
		}
	}

	skipBundle := r.SkipBundle || opts.Config.SkipBundle
	if cmd.Flags().Changed("skip-bundle") {
		skipBundle = opts.SkipBundle
	}

	var (
		j     *journal.Journal
		runID string
	)
	if path := stringFlag(cmd, "journal", opts.Journal, opts.Config.Journal); path != "" {
		j, err = journal.Open(path)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeJournal, "failed to open journal", err)
		}
		defer func() {
			if closeErr := j.Close(); closeErr != nil {
				logger.Error("error closing journal", "error", closeErr)
			}
		}()
		runID, err = j.Start(ctx, journal.Run{Target: tree.Root(), App: app, Recipe: r.Name})
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeJournal, "failed to record run", err)
		}
		logger.Debug("run recorded", "run", runID, "journal", path)
	}

	// Progress goes to stderr when stdout carries JSON.
	progress := cmd.OutOrStdout()
	if formatter.JSON() {
		progress = cmd.ErrOrStderr()
	}
	reporter := console.NewReporter(progress)

	runner := opts.Runner
	if runner == nil {
		stdout := io.Discard
		if opts.Verbose {
			stdout = progress
		}
		runner = &shell.Runner{Stdout: stdout, Stderr: cmd.ErrOrStderr()}
	}

	cc := composer.NewContext(tree, composer.Options{
		AppName:    app,
		Recipe:     r.Name,
		SkipBundle: skipBundle,
		Reporter:   reporter,
		Logger:     logger,
		Secrets:    opts.Secrets,
	})
	c := composer.New(reg, composer.WithRunner(runner), composer.WithLogger(logger))

	logger.Info("composing", "root", tree.Root(), "app", app, "recipe", r.Name, "modules", len(r.Modules))
	res, runErr := c.Run(ctx, cc, r.Modules)

	result := ComposeResult{
		RunID:        runID,
		Root:         tree.Root(),
		App:          app,
		Recipe:       r.Name,
		SkipBundle:   skipBundle,
		Modules:      outcomes(res.States),
		Tasks:        res.Tasks,
		Warnings:     res.Warnings,
		Capabilities: res.Capabilities,
	}

	if j != nil {
		if err := finishRun(ctx, j, runID, runErr, result.Modules, logger); err != nil && runErr == nil {
			return formatter.fail(ExitCommandError, ErrCodeJournal, "failed to record run", err)
		}
	}

	if runErr != nil {
		return composeFailure(formatter, runErr, result)
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}
	reporter.Complete(console.Summary{Dir: dir, Tasks: res.Tasks, Warnings: res.Warnings})
	return nil
}

// resolveRecipe picks the module list: --module flags, then --recipe, then
// the configured recipe, then the default.
func resolveRecipe(opts *ComposeOptions, cmd *cobra.Command) (*recipe.Recipe, error) {
	if len(opts.Modules) > 0 {
		r := &recipe.Recipe{Name: "custom", Modules: append([]string(nil), opts.Modules...)}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		return r, nil
	}
	return recipe.Resolve(stringFlag(cmd, "recipe", opts.Recipe, opts.Config.Recipe))
}

func outcomes(states []composer.ModuleState) []ModuleOutcome {
	out := make([]ModuleOutcome, len(states))
	for i, st := range states {
		out[i] = ModuleOutcome{Position: st.Position, Module: st.Name, Status: string(st.Status)}
		if st.Err != nil {
			out[i].Error = st.Err.Error()
		}
	}
	return out
}

func finishRun(ctx context.Context, j *journal.Journal, id string, runErr error, mods []ModuleOutcome, logger *slog.Logger) error {
	attempts := make([]journal.Attempt, len(mods))
	for i, m := range mods {
		attempts[i] = journal.Attempt{Position: m.Position, Module: m.Module, Status: m.Status, Error: m.Error}
	}
	errMsg := ""
	if runErr != nil {
		errMsg = runErr.Error()
	}
	// The run is recorded even when the caller's context was cancelled.
	if err := j.Finish(context.WithoutCancel(ctx), id, errMsg, attempts); err != nil {
		logger.Error("failed to finish run", "run", id, "error", err)
		return err
	}
	return nil
}

// composeFailure reports a failed run as one message naming the module and
// the proximate cause.
func composeFailure(formatter *OutputFormatter, runErr error, result ComposeResult) error {
	code := ErrCodeModuleFailed
	var cmdErr *composer.CommandError
	switch {
	case composer.IsModuleNotFound(runErr):
		code = ErrCodeModuleNotFound
	case errors.As(runErr, &cmdErr):
		code = ErrCodeCommandFailed
	}

	msg := "compose interrupted"
	cause := runErr
	if module, ok := composer.FailedModule(runErr); ok {
		msg = fmt.Sprintf("module %s failed", module)
		var appErr *composer.ModuleApplicationError
		if errors.As(runErr, &appErr) {
			cause = appErr.Cause
		}
	}
	if composer.IsModuleNotFound(runErr) {
		msg = "unknown module"
	}

	if formatter.JSON() {
		if err := formatter.Error(code, fmt.Sprintf("%s: %v", msg, cause), result); err != nil {
			return err
		}
	}
	return WrapExitError(ExitFailure, msg, cause)
}
