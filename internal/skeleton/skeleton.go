// Package skeleton writes a minimal Rails application layout, enough for
// every built-in module to find the files and anchors it expects. Real
// projects start from `rails new`; the skeleton serves demos and tests.
package skeleton

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/roach88/boxcar/internal/naming"
	"github.com/roach88/boxcar/internal/payload"
	"github.com/roach88/boxcar/internal/project"
)

//go:embed all:files
var files embed.FS

const root = "files"

// Paths returns the files Write creates, sorted.
func Paths() ([]string, error) {
	var paths []string
	err := fs.WalkDir(files, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := strings.TrimPrefix(p, root+"/")
		paths = append(paths, strings.TrimSuffix(rel, ".tmpl"))
		return nil
	})
	return paths, err
}

// Write creates the skeleton for app in tree. Existing files are an error
// unless force is set.
func Write(tree *project.Tree, app string, force bool) error {
	if err := naming.Validate(app); err != nil {
		return err
	}
	sub, err := fs.Sub(files, root)
	if err != nil {
		return err
	}
	engine, err := payload.New("skeleton", sub, payload.WithGlobals(payload.Context{
		"name":   app,
		"module": naming.Module(app),
		"title":  naming.Title(app),
	}))
	if err != nil {
		return err
	}

	paths, err := Paths()
	if err != nil {
		return err
	}
	for _, p := range paths {
		content, err := engine.Render(p, nil)
		if err != nil {
			return fmt.Errorf("skeleton %s: %w", p, err)
		}
		if err := tree.CreateFile(p, content, force); err != nil {
			return fmt.Errorf("write skeleton: %w", err)
		}
	}
	return nil
}
