package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/boxcar/internal/naming"
	"github.com/roach88/boxcar/internal/project"
	"github.com/roach88/boxcar/internal/skeleton"
)

// SkeletonOptions holds flags for the skeleton command.
type SkeletonOptions struct {
	*RootOptions
	Name  string
	Force bool
}

// SkeletonResult is the skeleton command's JSON payload.
type SkeletonResult struct {
	Root  string   `json:"root"`
	App   string   `json:"app"`
	Files []string `json:"files"`
}

// NewSkeletonCommand creates the skeleton command.
func NewSkeletonCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SkeletonOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "skeleton <dir>",
		Short: "Write a minimal Rails app for compose to work on",
		Long: `Write the files of a freshly generated Rails application into <dir>,
creating it if needed. The skeleton is enough for every built-in module to
find the files it edits, without running rails new.

Example:
  boxcar skeleton ./shop
  boxcar skeleton ./tmp/app --name shop && boxcar compose ./tmp/app --skip-bundle`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSkeleton(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "application name (default: directory name)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite existing files")

	return cmd
}

func runSkeleton(opts *SkeletonOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	app := stringFlag(cmd, "name", opts.Name, opts.Config.App)
	if app == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeNotFound, "invalid directory", err)
		}
		app = filepath.Base(abs)
	}
	if err := naming.Validate(app); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeBadName, "invalid application name", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeNotFound, "failed to create directory", err)
	}
	tree, err := project.Open(dir)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeNotFound, "project directory not found", err)
	}
	if err := skeleton.Write(tree, app, opts.Force); err != nil {
		return formatter.fail(ExitFailure, ErrCodeGeneric, "failed to write skeleton", err)
	}

	files, err := skeleton.Paths()
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeGeneric, "failed to list skeleton files", err)
	}
	result := SkeletonResult{Root: tree.Root(), App: app, Files: files}
	formatter.VerboseLog("Wrote %d file(s) to %s", len(files), tree.Root())
	if formatter.JSON() {
		return formatter.Success(result)
	}
	return formatter.Success("Created " + app + " skeleton in " + dir)
}
