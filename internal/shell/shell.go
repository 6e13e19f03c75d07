// Package shell runs the commands modules queue for after bundle install.
//
// Scripts are interpreted by an embedded POSIX shell, so the same command
// lines behave alike on every host. External programs (bundle, bin/rails)
// are still executed from PATH.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ExitStatusError reports a script that exited non-zero.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Validate parses script without running it.
func Validate(script string) error {
	if strings.TrimSpace(script) == "" {
		return errors.New("empty script")
	}
	if _, err := parse(script); err != nil {
		return err
	}
	return nil
}

func parse(script string) (*syntax.File, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return prog, nil
}

// Runner executes scripts with the embedded interpreter.
type Runner struct {
	// Env is the environment scripts see. Nil inherits the process environment.
	Env []string

	Stdout io.Writer
	Stderr io.Writer
}

// Run executes script in dir and waits for it to finish. A non-zero exit is
// returned as *ExitStatusError.
func (r *Runner) Run(ctx context.Context, dir, script string) error {
	prog, err := parse(script)
	if err != nil {
		return err
	}

	env := r.Env
	if env == nil {
		env = os.Environ()
	}
	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, orDiscard(r.Stdout), orDiscard(r.Stderr)),
	)
	if err != nil {
		return fmt.Errorf("create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return &ExitStatusError{Code: int(status)}
		}
		return fmt.Errorf("run script: %w", err)
	}
	return nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
