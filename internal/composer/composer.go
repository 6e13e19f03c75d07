package composer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/boxcar/internal/shell"
)

// BundleModule is the pseudo-module failures of bundle install are
// attributed to.
const BundleModule = "bundle"

const bundleInstall = "bundle install"

// ErrAlreadyApplied is the cause when a module is applied twice in one run.
var ErrAlreadyApplied = errors.New("already applied in this run")

// Runner executes a shell script in a directory and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, dir, script string) error
}

// Status is the lifecycle state of one module in a run.
type Status string

const (
	StatusPending Status = "pending"
	StatusApplied Status = "applied"
	StatusFailed  Status = "failed"
)

// ModuleState records what happened to one requested module.
type ModuleState struct {
	Position int
	Name     string
	Status   Status
	Err      error
}

// Result is the outcome of a Run. It is returned even when the run fails so
// callers can report partial progress.
type Result struct {
	States       []ModuleState
	Applied      []string
	Tasks        []string
	Warnings     []string
	Capabilities []string
}

// Option configures a Composer.
type Option func(*Composer)

// WithRunner sets the runner used for bundle install and queued commands.
func WithRunner(r Runner) Option {
	return func(c *Composer) { c.runner = r }
}

// WithLogger sets the composer's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) { c.logger = l }
}

// Composer applies registered modules to a project tree in caller order.
type Composer struct {
	registry *Registry
	runner   Runner
	logger   *slog.Logger
}

// New returns a composer over registry. Commands run through an embedded
// shell unless WithRunner says otherwise.
func New(registry *Registry, opts ...Option) *Composer {
	c := &Composer{registry: registry}
	for _, opt := range opts {
		opt(c)
	}
	if c.runner == nil {
		c.runner = &shell.Runner{Stdout: io.Discard, Stderr: io.Discard}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Registry returns the composer's module registry.
func (c *Composer) Registry() *Registry {
	return c.registry
}

// ApplyModule applies the named module to cc.
//
// An unknown name returns ModuleNotFoundError and touches nothing. Every other
// failure is returned as a ModuleApplicationError naming the module.
func (c *Composer) ApplyModule(ctx context.Context, cc *Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, ok := c.registry.Lookup(name)
	if !ok {
		return &ModuleNotFoundError{Name: name}
	}
	if err := c.admit(cc, m); err != nil {
		return &ModuleApplicationError{Module: name, Cause: err}
	}

	cc.current = name
	defer func() { cc.current = "" }()

	c.logger.Debug("applying module", "module", name)
	cc.Step("Applying " + name)
	if err := m.Apply(cc); err != nil {
		c.logger.Debug("module failed", "module", name, "error", err)
		return &ModuleApplicationError{Module: name, Cause: err}
	}

	cc.applied = append(cc.applied, name)
	cc.Enable(name)
	for _, tag := range m.Provides {
		cc.Enable(tag)
	}
	if m.Variant != "" {
		cc.variants[m.Variant] = name
	}
	for _, task := range m.PostInstallTasks {
		cc.AddTask(task)
	}
	c.logger.Info("module applied", "module", name)
	return nil
}

// admit checks the preconditions of applying m in cc.
func (c *Composer) admit(cc *Context, m Module) error {
	if cc.Applied(m.Name) {
		return ErrAlreadyApplied
	}
	if m.Variant != "" {
		if existing, ok := cc.variants[m.Variant]; ok && existing != m.Name {
			return &VariantConflictError{Variant: m.Variant, Module: m.Name, Existing: existing}
		}
	}
	var missing []string
	for _, req := range m.Requires {
		if !cc.Applied(req) {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return &MissingRequirementError{Module: m.Name, Requires: missing}
	}
	return nil
}

// Run applies names in order and stops at the first failure. Nothing is
// rolled back. Insertion markers are stripped from the tree whether or not
// the run succeeds.
//
// After the modules, bundle install and the queued commands run unless the
// context skips bundling, in which case they become post-install tasks. A
// successful run ends by writing the lock file.
func (c *Composer) Run(ctx context.Context, cc *Context, names []string) (*Result, error) {
	res := &Result{States: make([]ModuleState, len(names))}
	for i, name := range names {
		res.States[i] = ModuleState{Position: i, Name: name, Status: StatusPending}
	}

	err := c.applyAll(ctx, cc, res)
	if serr := cc.Tree.StripMarkers(); serr != nil {
		c.logger.Error("strip markers", "error", serr)
		if err == nil {
			err = fmt.Errorf("strip markers: %w", serr)
		}
	}
	if err == nil {
		err = c.bundle(ctx, cc)
	}
	if err == nil {
		err = WriteLock(cc.Tree, LockFor(cc))
	}

	res.Applied = cc.AppliedModules()
	res.Tasks = cc.Tasks()
	res.Warnings = cc.Warnings()
	res.Capabilities = cc.Capabilities()
	return res, err
}

func (c *Composer) applyAll(ctx context.Context, cc *Context, res *Result) error {
	for i := range res.States {
		state := &res.States[i]
		if err := c.ApplyModule(ctx, cc, state.Name); err != nil {
			state.Status = StatusFailed
			state.Err = err
			return err
		}
		state.Status = StatusApplied
	}
	return nil
}

// bundle installs gems and runs the queued commands in queue order.
func (c *Composer) bundle(ctx context.Context, cc *Context) error {
	commands := cc.Commands()
	if cc.SkipBundle {
		cc.AddTask("Run `" + bundleInstall + "`")
		for _, cmd := range commands {
			cc.AddTask(fmt.Sprintf("Run `%s` (%s)", cmd.Script, cmd.Description))
		}
		return nil
	}

	root := cc.Tree.Root()
	cc.Step("Running " + bundleInstall)
	if err := c.runner.Run(ctx, root, bundleInstall); err != nil {
		return &ModuleApplicationError{
			Module: BundleModule,
			Cause:  &CommandError{Command: bundleInstall, Err: err},
		}
	}
	for _, cmd := range commands {
		if err := ctx.Err(); err != nil {
			return err
		}
		cc.Detail(cmd.Description)
		c.logger.Debug("running command", "module", cmd.Module, "script", cmd.Script)
		if err := c.runner.Run(ctx, root, cmd.Script); err != nil {
			return &ModuleApplicationError{
				Module: cmd.Module,
				Cause:  &CommandError{Command: cmd.Script, Err: err},
			}
		}
	}
	return nil
}
