// Package payload renders the embedded text templates boxcar writes into a
// project. Templates use pongo2's Django-style tags, which leave Ruby's ERB
// tags and string interpolation untouched.
package payload

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// DefaultExtension is appended to template names that carry none.
const DefaultExtension = ".tmpl"

// Context is the data a template is rendered with.
type Context = pongo2.Context

// Option configures an Engine.
type Option func(*Engine)

// WithExtension overrides DefaultExtension.
func WithExtension(ext string) Option {
	return func(e *Engine) {
		ext = strings.TrimSpace(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		e.ext = ext
	}
}

// WithGlobals seeds values visible to every template the engine renders.
func WithGlobals(globals Context) Option {
	return func(e *Engine) {
		if e.set.Globals == nil {
			e.set.Globals = make(pongo2.Context)
		}
		e.set.Globals.Update(globals)
	}
}

// Engine loads templates from an fs.FS and caches them once parsed.
// It is safe for concurrent use.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	ext       string
}

// New returns an engine loading templates from files.
func New(name string, files fs.FS, opts ...Option) (*Engine, error) {
	if files == nil {
		return nil, errors.New("payload: template fs is nil")
	}
	e := &Engine{
		set:       pongo2.NewSet(name, pongo2.NewFSLoader(files)),
		templates: make(map[string]*pongo2.Template),
		ext:       DefaultExtension,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Render renders the template called name with data.
func (e *Engine) Render(name string, data Context) (string, error) {
	path := name
	if e.ext != "" && !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}
	tmpl, err := e.template(path)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	return out, nil
}

// RenderString renders an inline template with data.
func (e *Engine) RenderString(content string, data Context) (string, error) {
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("parse inline template: %w", err)
	}
	out, err := tmpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("render inline template: %w", err)
	}
	return out, nil
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}
