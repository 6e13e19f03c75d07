package composer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/roach88/boxcar/internal/project"
	"github.com/roach88/boxcar/internal/shell"
)

// Reporter receives the progress lines modules emit while they apply.
type Reporter interface {
	Step(msg string)   // a module starting or finishing
	Detail(msg string) // an individual action
	Notice(msg string) // something the user should act on
}

type nopReporter struct{}

func (nopReporter) Step(string)   {}
func (nopReporter) Detail(string) {}
func (nopReporter) Notice(string) {}

// Command is a shell command queued to run after bundle install.
type Command struct {
	Module      string
	Description string
	Script      string
}

// Options configures a new Context.
type Options struct {
	AppName    string
	Recipe     string
	SkipBundle bool
	Reporter   Reporter
	Logger     *slog.Logger

	// Secrets is the source of random bytes for generated secrets.
	// Defaults to crypto/rand.
	Secrets io.Reader
}

// Context is the mutable state of one composition run. It is passed
// explicitly to every module; modules share nothing else.
type Context struct {
	AppName    string
	Recipe     string
	SkipBundle bool
	Tree       *project.Tree
	Routes     *project.Routes

	reporter Reporter
	logger   *slog.Logger
	secrets  io.Reader

	current  string
	applied  []string
	caps     map[string]bool
	variants map[string]string // variant group -> module
	tasks    []string
	warnings []string
	commands []Command
}

// NewContext returns a context operating on tree.
func NewContext(tree *project.Tree, opts Options) *Context {
	cc := &Context{
		AppName:    opts.AppName,
		Recipe:     opts.Recipe,
		SkipBundle: opts.SkipBundle,
		Tree:       tree,
		Routes:     project.NewRoutes(tree),
		reporter:   opts.Reporter,
		logger:     opts.Logger,
		secrets:    opts.Secrets,
		caps:       make(map[string]bool),
		variants:   make(map[string]string),
	}
	if cc.reporter == nil {
		cc.reporter = nopReporter{}
	}
	if cc.logger == nil {
		cc.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cc.secrets == nil {
		cc.secrets = rand.Reader
	}
	return cc
}

// Logger returns the run's logger.
func (cc *Context) Logger() *slog.Logger { return cc.logger }

// Step reports the start or end of a module's work.
func (cc *Context) Step(msg string) { cc.reporter.Step(msg) }

// Detail reports an individual action.
func (cc *Context) Detail(msg string) { cc.reporter.Detail(msg) }

// Notice reports something the user should act on.
func (cc *Context) Notice(msg string) { cc.reporter.Notice(msg) }

// Has reports whether a capability tag is enabled.
func (cc *Context) Has(tag string) bool {
	return cc.caps[tag]
}

// Enable turns a capability tag on.
func (cc *Context) Enable(tag string) {
	cc.caps[tag] = true
}

// Capabilities returns the enabled capability tags, sorted.
func (cc *Context) Capabilities() []string {
	tags := make([]string, 0, len(cc.caps))
	for tag := range cc.caps {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Applied reports whether the named module has been applied in this run.
func (cc *Context) Applied(name string) bool {
	for _, a := range cc.applied {
		if a == name {
			return true
		}
	}
	return false
}

// AppliedModules returns the applied module names in application order.
func (cc *Context) AppliedModules() []string {
	return append([]string(nil), cc.applied...)
}

// AddTask appends a post-install task.
func (cc *Context) AddTask(task string) {
	cc.tasks = append(cc.tasks, task)
}

// Tasks returns the post-install tasks with duplicates removed, keeping the
// first occurrence of each.
func (cc *Context) Tasks() []string {
	seen := make(map[string]bool, len(cc.tasks))
	out := make([]string, 0, len(cc.tasks))
	for _, task := range cc.tasks {
		if seen[task] {
			continue
		}
		seen[task] = true
		out = append(out, task)
	}
	return out
}

// Warn records a non-fatal problem.
func (cc *Context) Warn(msg string) {
	cc.logger.Warn(msg, "module", cc.current)
	cc.warnings = append(cc.warnings, msg)
}

// Warnings returns the recorded warnings in order.
func (cc *Context) Warnings() []string {
	return append([]string(nil), cc.warnings...)
}

// AfterBundle queues a shell command to run once gems are installed.
// The script is parsed immediately so syntax errors fail the module.
func (cc *Context) AfterBundle(description, script string) error {
	if err := shell.Validate(script); err != nil {
		return fmt.Errorf("queue %q: %w", description, err)
	}
	cc.commands = append(cc.commands, Command{
		Module:      cc.current,
		Description: description,
		Script:      script,
	})
	return nil
}

// Commands returns the queued commands in queue order.
func (cc *Context) Commands() []Command {
	return append([]Command(nil), cc.commands...)
}

// Secret returns n random bytes, hex encoded.
func (cc *Context) Secret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(cc.secrets, buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Gems declares gems in the Gemfile, skipping ones already present.
func (cc *Context) Gems(gems ...project.Gem) error {
	added, err := cc.Tree.DeclareGems(gems...)
	if err != nil {
		return err
	}
	if len(added) > 0 {
		cc.logger.Debug("gems declared", "module", cc.current, "gems", added)
	}
	return nil
}

// GemGroup declares gems inside a Gemfile group block.
func (cc *Context) GemGroup(groups []string, gems ...project.Gem) error {
	added, err := cc.Tree.DeclareGemGroup(groups, gems...)
	if err != nil {
		return err
	}
	if len(added) > 0 {
		cc.logger.Debug("gems declared", "module", cc.current, "groups", groups, "gems", added)
	}
	return nil
}
