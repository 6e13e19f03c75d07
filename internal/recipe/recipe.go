// Package recipe loads ordered module lists from YAML or CUE files.
//
// YAML recipes are decoded strictly: unknown fields are an error. CUE recipes
// are unified with the embedded #Recipe schema, which is closed, so the same
// rule holds. Built-in recipes are embedded and addressed by name.
package recipe

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// DefaultName is the recipe used when none is given.
const DefaultName = "boxcar"

//go:embed schema.cue
var schemaCUE string

//go:embed recipes
var builtinFS embed.FS

// Recipe is an ordered list of modules plus run options.
type Recipe struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Modules     []string `yaml:"modules" json:"modules"`
	SkipBundle  bool     `yaml:"skip_bundle,omitempty" json:"skip_bundle,omitempty"`
}

// Error describes an invalid recipe.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("recipe %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads a recipe file. The format follows the extension: .cue for CUE,
// .yaml or .yml for YAML.
func Load(p string) (*Recipe, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}
	return parse(p, data)
}

func parse(source string, data []byte) (*Recipe, error) {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".cue":
		return ParseCUE(source, data)
	case ".yaml", ".yml":
		return ParseYAML(source, data)
	default:
		return nil, &Error{Source: source, Err: errors.New("unknown format; use .yaml, .yml or .cue")}
	}
}

// ParseYAML decodes a YAML recipe, rejecting unknown fields.
func ParseYAML(source string, data []byte) (*Recipe, error) {
	var r Recipe
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &Error{Source: source, Err: err}
	}
	if err := r.Validate(); err != nil {
		return nil, &Error{Source: source, Err: err}
	}
	return &r, nil
}

// ParseCUE evaluates a CUE recipe against the #Recipe schema.
func ParseCUE(source string, data []byte) (*Recipe, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("recipe schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Recipe"))

	value := ctx.CompileBytes(data, cue.Filename(source))
	if err := value.Err(); err != nil {
		return nil, &Error{Source: source, Err: err}
	}
	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &Error{Source: source, Err: err}
	}

	var r Recipe
	if err := unified.Decode(&r); err != nil {
		return nil, &Error{Source: source, Err: err}
	}
	if err := r.Validate(); err != nil {
		return nil, &Error{Source: source, Err: err}
	}
	return &r, nil
}

// Validate checks the rules shared by both formats.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if len(r.Modules) == 0 {
		return errors.New("at least one module is required")
	}
	seen := make(map[string]int, len(r.Modules))
	for i, m := range r.Modules {
		if m == "" {
			return fmt.Errorf("modules[%d] is empty", i)
		}
		if j, ok := seen[m]; ok {
			return fmt.Errorf("module %q listed twice (positions %d and %d)", m, j, i)
		}
		seen[m] = i
	}
	return nil
}

// Builtin returns the embedded recipe called name.
func Builtin(name string) (*Recipe, error) {
	for _, ext := range []string{".yaml", ".cue"} {
		p := path.Join("recipes", name+ext)
		data, err := fs.ReadFile(builtinFS, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return parse(p, data)
	}
	return nil, fmt.Errorf("no built-in recipe %q (have %s)", name, strings.Join(BuiltinNames(), ", "))
}

// BuiltinNames lists the embedded recipes, sorted.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, "recipes")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Default returns the built-in boxcar recipe.
func Default() *Recipe {
	r, err := Builtin(DefaultName)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve loads ref as a file when it names one, and as a built-in recipe
// otherwise. An empty ref selects the default recipe.
func Resolve(ref string) (*Recipe, error) {
	if ref == "" {
		return Builtin(DefaultName)
	}
	if _, err := os.Stat(ref); err == nil {
		return Load(ref)
	}
	if strings.ContainsAny(ref, `/\.`) {
		return nil, fmt.Errorf("recipe file %s not found", ref)
	}
	return Builtin(ref)
}

// Replace returns a copy of the recipe with module old swapped for with at
// the same position. It reports false when old is not in the recipe.
func (r *Recipe) Replace(old, with string) (*Recipe, bool) {
	out := *r
	out.Modules = append([]string(nil), r.Modules...)
	for i, m := range out.Modules {
		if m == old {
			out.Modules[i] = with
			return &out, true
		}
	}
	return &out, false
}
