package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/boxcar/internal/digest"
)

// DigestOptions holds flags for the digest command.
type DigestOptions struct {
	*RootOptions
	Exclude []string
	Files   bool
}

// DigestResult is the digest command's JSON payload.
type DigestResult struct {
	Digest string            `json:"digest"`
	Files  map[string]string `json:"files,omitempty"`
}

// NewDigestCommand creates the digest command.
func NewDigestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DigestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "digest <dir>",
		Short: "Print a content digest of a project tree",
		Long: `Hash every file under <dir> into one digest. Two trees have the same
digest exactly when they hold the same files with the same contents, so
two compose runs can be compared without diffing them by hand.

Example:
  boxcar digest ./shop --exclude .env.development --exclude tmp`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Exclude, "exclude", "x", nil, "path to leave out (repeatable)")
	cmd.Flags().BoolVar(&opts.Files, "files", false, "include per-file hashes in JSON output")

	return cmd
}

func runDigest(opts *DigestOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	files, err := digest.Files(dir, opts.Exclude...)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeNotFound, "failed to read project tree", err)
	}
	sum, err := digest.Sum(files)
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeGeneric, "failed to compute digest", err)
	}
	formatter.VerboseLog("Hashed %d file(s) under %s", len(files), dir)

	if formatter.JSON() {
		result := DigestResult{Digest: sum}
		if opts.Files {
			result.Files = files
		}
		return formatter.Success(result)
	}
	return formatter.Success(sum)
}
