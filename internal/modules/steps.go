package modules

import (
	"fmt"
	"regexp"

	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/project"
)

// AdminNamespace is the route namespace admin dashboards mount under.
const AdminNamespace = "admin"

// step is one action of a module.
type step func(cc *composer.Context) error

func run(cc *composer.Context, steps ...step) error {
	for _, s := range steps {
		if err := s(cc); err != nil {
			return err
		}
	}
	return nil
}

// when runs steps only if capability tag is enabled.
func when(tag string, steps ...step) step {
	return func(cc *composer.Context) error {
		if !cc.Has(tag) {
			return nil
		}
		return run(cc, steps...)
	}
}

// unless runs steps only if capability tag is not enabled.
func unless(tag string, steps ...step) step {
	return func(cc *composer.Context) error {
		if cc.Has(tag) {
			return nil
		}
		return run(cc, steps...)
	}
}

func say(msg string) step {
	return func(cc *composer.Context) error {
		cc.Detail(msg)
		return nil
	}
}

func notice(msg string) step {
	return func(cc *composer.Context) error {
		cc.Notice(msg)
		return nil
	}
}

func task(s string) step {
	return func(cc *composer.Context) error {
		cc.AddTask(s)
		return nil
	}
}

func gems(names ...string) step {
	gs := make([]project.Gem, len(names))
	for i, n := range names {
		gs[i] = project.Gem{Name: n}
	}
	return declare(gs...)
}

func declare(gs ...project.Gem) step {
	return func(cc *composer.Context) error {
		return cc.Gems(gs...)
	}
}

func gemGroup(groups []string, names ...string) step {
	gs := make([]project.Gem, len(names))
	for i, n := range names {
		gs[i] = project.Gem{Name: n}
	}
	return func(cc *composer.Context) error {
		return cc.GemGroup(groups, gs...)
	}
}

// text inserts literal s at marker.
func text(marker, s string) step {
	return func(cc *composer.Context) error {
		if rel, ok := cc.Tree.MarkerPath(marker); ok {
			cc.Logger().Debug("insert at marker", "marker", marker, "file", rel)
		}
		return cc.Tree.InsertAt(marker, s)
	}
}

func appendText(dst, s string) step {
	return func(cc *composer.Context) error {
		return cc.Tree.AppendFile(dst, s)
	}
}

func mkdir(dst string) step {
	return func(cc *composer.Context) error {
		return cc.Tree.MkdirAll(dst)
	}
}

func route(block string) step {
	return func(cc *composer.Context) error {
		return cc.Routes.Draw(block)
	}
}

// mount registers an engine under the admin namespace.
func mount(m project.Mount) step {
	return func(cc *composer.Context) error {
		return cc.Routes.Mount(AdminNamespace, m)
	}
}

func afterBundle(description, script string) step {
	return func(cc *composer.Context) error {
		return cc.AfterBundle(description, script)
	}
}

// rails queues a bin/rails command.
func rails(description, command string) step {
	return afterBundle(description, "bin/rails "+command)
}

// removeBlock deletes pattern from dst. A pattern that no longer matches is
// recorded as a warning.
func removeBlock(dst string, pattern *regexp.Regexp, what string) step {
	return func(cc *composer.Context) error {
		removed, err := cc.Tree.RemoveBlock(dst, pattern)
		if err != nil {
			return err
		}
		if !removed {
			cc.Warn(fmt.Sprintf("%s not found in %s; left unchanged", what, dst))
		}
		return nil
	}
}

// secretEnv adds KEY=<random hex> to .env.development.
func secretEnv(key string, size int) step {
	return func(cc *composer.Context) error {
		secret, err := cc.Secret(size)
		if err != nil {
			return err
		}
		return cc.Tree.InsertAt(project.MarkerDotenvDevelopment, key+"="+secret+"\n")
	}
}

// payloads renders the templates of one module directory.
type payloads string

// file creates dst from its template. An existing dst is an error.
func (p payloads) file(dst string) step {
	return p.create(dst, dst, false)
}

// force creates or replaces dst from its template.
func (p payloads) force(dst string) step {
	return p.create(dst, dst, true)
}

func (p payloads) create(dst, name string, force bool) step {
	return func(cc *composer.Context) error {
		content, err := render(cc, string(p), name)
		if err != nil {
			return err
		}
		cc.Detail("create " + dst)
		return cc.Tree.CreateFile(dst, content, force)
	}
}

// insert renders the named template and inserts it at marker.
func (p payloads) insert(marker, name string) step {
	return func(cc *composer.Context) error {
		content, err := render(cc, string(p), name)
		if err != nil {
			return err
		}
		return cc.Tree.InsertAt(marker, content)
	}
}

// after renders the named template and inserts it directly after the first
// occurrence of anchor in dst.
func (p payloads) after(dst, anchor, name string) step {
	return func(cc *composer.Context) error {
		content, err := render(cc, string(p), name)
		if err != nil {
			return err
		}
		cc.Logger().Debug("insert after anchor", "file", dst)
		return cc.Tree.InsertAfterAnchor(dst, anchor, content)
	}
}

// route renders the named template and draws it in the routes file.
func (p payloads) route(name string) step {
	return func(cc *composer.Context) error {
		content, err := render(cc, string(p), name)
		if err != nil {
			return err
		}
		return cc.Routes.Draw(content)
	}
}

// adminMount mounts engine under /admin guarded by an AdminPolicy predicate.
func adminMount(engine, at, policy, comment string) step {
	return mount(project.Mount{
		Engine:     engine,
		At:         at,
		Constraint: "AdminConstraint.new(:" + policy + "?)",
		Comment:    comment,
	})
}
