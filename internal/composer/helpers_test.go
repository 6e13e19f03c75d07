package composer

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/boxcar/internal/project"
	"github.com/roach88/boxcar/internal/testutil"
)

const (
	gemfile    = "source \"https://rubygems.org\"\n\ngem \"rails\", \"~> 8.0.0\"\n"
	controller = "class ApplicationController < ActionController::Base\nend\n"
	routes     = "Rails.application.routes.draw do\nend\n"
)

// newProject writes a tiny skeleton and returns a tree over it.
func newProject(t *testing.T) *project.Tree {
	t.Helper()
	tree, err := project.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, tree.CreateFile(project.GemfilePath, gemfile, false))
	require.NoError(t, tree.CreateFile("app/controllers/application_controller.rb", controller, false))
	require.NoError(t, tree.CreateFile("config/routes.rb", routes, false))
	return tree
}

// testModules is a small registry exercising every context facility.
func testModules(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	r.MustRegister(
		Module{
			Name: "markers",
			Apply: func(cc *Context) error {
				if err := cc.Tree.Adopt(project.Anchor{
					Name:   project.MarkerApplicationController,
					Path:   "app/controllers/application_controller.rb",
					Text:   "class ApplicationController < ActionController::Base\n",
					Indent: "  ",
				}); err != nil {
					return err
				}
				return cc.Tree.Adopt(project.Anchor{
					Name:   project.MarkerRoutes,
					Path:   "config/routes.rb",
					Text:   "Rails.application.routes.draw do\n",
					Indent: "  ",
				})
			},
		},
		Module{
			Name:             "declare_pundit",
			Provides:         []string{"authorization"},
			PostInstallTasks: []string{"Write policies", "Run migrations"},
			Apply: func(cc *Context) error {
				return cc.Gems(project.Gem{Name: "pundit"})
			},
		},
		Module{
			Name:     "pundit_mixin",
			Requires: []string{"declare_pundit"},
			Apply: func(cc *Context) error {
				return cc.Tree.InsertAt(project.MarkerApplicationController, "include Pundit::Authorization\n")
			},
		},
		Module{
			Name:             "migrations",
			PostInstallTasks: []string{"Run migrations", "Seed the database"},
			Apply:            func(cc *Context) error { return nil },
		},
		Module{
			Name:    "mount_blazer",
			Variant: "bi",
			Apply: func(cc *Context) error {
				return cc.Routes.Mount("admin", project.Mount{Engine: "Blazer::Engine", At: "blazer"})
			},
		},
		Module{
			Name:    "mount_metabase",
			Variant: "bi",
			Apply: func(cc *Context) error {
				return cc.Routes.Mount("admin", project.Mount{Engine: "Metabase::Engine", At: "metabase"})
			},
		},
		Module{
			Name: "admin_routes",
			Apply: func(cc *Context) error {
				return cc.Routes.Finalize(project.Namespace{Name: "admin"})
			},
		},
		Module{
			Name: "user_concern",
			Apply: func(cc *Context) error {
				return cc.Tree.InsertAt(project.MarkerUserModel, "include Trackable\n")
			},
		},
		Module{
			Name: "pundit_install",
			Apply: func(cc *Context) error {
				return cc.AfterBundle("Install Pundit", "bin/rails generate pundit:install")
			},
		},
	)
	return r
}

func newContext(tree *project.Tree, skipBundle bool) *Context {
	return NewContext(tree, Options{
		AppName:    "shop",
		Recipe:     "test",
		SkipBundle: skipBundle,
		Secrets:    testutil.NewSequenceReader(0),
	})
}

// snapshot renders the named files as one document for golden comparison.
func snapshot(t *testing.T, tree *project.Tree, paths ...string) []byte {
	t.Helper()
	var b strings.Builder
	for _, p := range paths {
		content, err := tree.Read(p)
		require.NoError(t, err)
		b.WriteString("== " + p + " ==\n")
		b.WriteString(content)
	}
	return []byte(b.String())
}

// readAll returns every file under root keyed by slash path.
func readAll(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) Step(msg string)   { r.lines = append(r.lines, "step: "+msg) }
func (r *recordingReporter) Detail(msg string) { r.lines = append(r.lines, "detail: "+msg) }
func (r *recordingReporter) Notice(msg string) { r.lines = append(r.lines, "notice: "+msg) }
