package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Tree is the file tree of the project being composed.
//
// Tree is not safe for concurrent use. Composition runs are sequential.
type Tree struct {
	root    string
	markers map[string]string // marker name -> relative path
}

// Open returns a Tree rooted at dir. The directory must already exist.
func Open(dir string) (*Tree, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open project root: %s is not a directory", abs)
	}
	return &Tree{root: abs, markers: make(map[string]string)}, nil
}

// Root returns the absolute path of the project root.
func (t *Tree) Root() string {
	return t.root
}

// Abs resolves a project-relative path to an absolute one.
func (t *Tree) Abs(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("empty path: %w", ErrOutsideRoot)
	}
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") {
		return "", fmt.Errorf("%q: %w", rel, ErrOutsideRoot)
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", rel, ErrOutsideRoot)
	}
	return filepath.Join(t.root, clean), nil
}

// Exists reports whether a file or directory exists at rel.
func (t *Tree) Exists(rel string) bool {
	p, err := t.Abs(rel)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// Read returns the contents of the file at rel.
func (t *Tree) Read(rel string) (string, error) {
	p, err := t.Abs(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rel, err)
	}
	return string(data), nil
}

// MkdirAll creates a directory (and parents) at rel.
func (t *Tree) MkdirAll(rel string) error {
	p, err := t.Abs(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", rel, err)
	}
	return nil
}

// CreateFile writes content to rel. Without force an existing file is an error.
func (t *Tree) CreateFile(rel, content string, force bool) error {
	if !force && t.Exists(rel) {
		return &FileExistsError{Path: rel}
	}
	return t.commit(rel, content)
}

// AppendFile appends text to rel, creating the file if it does not exist.
func (t *Tree) AppendFile(rel, text string) error {
	content, err := t.readOptional(rel)
	if err != nil {
		return err
	}
	return t.commit(rel, content+text)
}

// InsertAfterAnchor inserts text directly after the first occurrence of anchor.
func (t *Tree) InsertAfterAnchor(rel, anchor, text string) error {
	content, err := t.Read(rel)
	if err != nil {
		return err
	}
	idx := strings.Index(content, anchor)
	if idx < 0 {
		return &AnchorNotFoundError{Path: rel, Anchor: anchor}
	}
	at := idx + len(anchor)
	return t.commit(rel, content[:at]+text+content[at:])
}

// InsertBeforeAnchor inserts text directly before the first occurrence of anchor.
func (t *Tree) InsertBeforeAnchor(rel, anchor, text string) error {
	content, err := t.Read(rel)
	if err != nil {
		return err
	}
	idx := strings.Index(content, anchor)
	if idx < 0 {
		return &AnchorNotFoundError{Path: rel, Anchor: anchor}
	}
	return t.commit(rel, content[:idx]+text+content[idx:])
}

// RemoveBlock deletes every match of pattern from rel. It reports whether
// anything was removed; a pattern that does not match is not an error.
func (t *Tree) RemoveBlock(rel string, pattern *regexp.Regexp) (bool, error) {
	content, err := t.Read(rel)
	if err != nil {
		return false, err
	}
	if !pattern.MatchString(content) {
		return false, nil
	}
	return true, t.commit(rel, pattern.ReplaceAllString(content, ""))
}

// Adopt plants the marker described by a into an existing file and registers
// it. Adopting a marker the same file already exposes is a no-op.
func (t *Tree) Adopt(a Anchor) error {
	if !validMarkerName(a.Name) {
		return fmt.Errorf("invalid marker name %q", a.Name)
	}
	if existing, ok := t.markers[a.Name]; ok {
		if existing == a.Path {
			return nil
		}
		return &DuplicateMarkerError{Name: a.Name, Path: a.Path, Existing: existing}
	}

	line := MarkerLine(a.Name, a.Indent)
	if a.Text == "" {
		content, err := t.readOptional(a.Path)
		if err != nil {
			return err
		}
		return t.commit(a.Path, withTrailingNewline(content)+line)
	}

	content, err := t.Read(a.Path)
	if err != nil {
		return err
	}
	idx := strings.Index(content, a.Text)
	if idx < 0 {
		return &AnchorNotFoundError{Path: a.Path, Anchor: a.Text}
	}

	if a.Position == Before {
		// Widen the anchor back to the start of its line.
		start := strings.LastIndexByte(content[:idx], '\n') + 1
		return t.InsertBeforeAnchor(a.Path, content[start:idx+len(a.Text)], line)
	}
	// Widen the anchor to the end of its line.
	end := idx + len(a.Text)
	if !strings.HasSuffix(a.Text, "\n") {
		nl := strings.IndexByte(content[end:], '\n')
		if nl < 0 {
			return t.commit(a.Path, content+"\n"+line)
		}
		end += nl + 1
	}
	return t.InsertAfterAnchor(a.Path, content[idx:end], line)
}

// InsertAt inserts text before the line of the named marker, indenting every
// non-empty line of text like the marker line.
func (t *Tree) InsertAt(name, text string) error {
	rel, ok := t.markers[name]
	if !ok {
		return &MarkerNotFoundError{Name: name}
	}
	content, err := t.Read(rel)
	if err != nil {
		return err
	}
	loc, ok := findMarker(content, name)
	if !ok {
		// The file was rewritten outside the tree.
		delete(t.markers, name)
		return &MarkerNotFoundError{Name: name}
	}
	block := indentBlock(text, loc.indent)
	return t.commit(rel, content[:loc.start]+block+content[loc.start:])
}

// HasMarker reports whether the tree currently exposes the named marker.
func (t *Tree) HasMarker(name string) bool {
	_, ok := t.markers[name]
	return ok
}

// MarkerPath returns the file exposing the named marker.
func (t *Tree) MarkerPath(name string) (string, bool) {
	rel, ok := t.markers[name]
	return rel, ok
}

// Markers returns the registered marker names, sorted.
func (t *Tree) Markers() []string {
	names := make([]string, 0, len(t.markers))
	for name := range t.markers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StripMarkers removes every registered marker line from its file and clears
// the registry. Files deleted since registration are skipped.
func (t *Tree) StripMarkers() error {
	seen := make(map[string]bool)
	var paths []string
	for _, rel := range t.markers {
		if !seen[rel] {
			seen[rel] = true
			paths = append(paths, rel)
		}
	}
	sort.Strings(paths)

	var errs []error
	for _, rel := range paths {
		content, err := t.Read(rel)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		stripped := stripMarkerLines(content)
		if stripped == content {
			continue
		}
		if err := t.write(rel, stripped); err != nil {
			errs = append(errs, err)
		}
	}
	t.markers = make(map[string]string)
	return errors.Join(errs...)
}

// commit writes content to rel and reconciles the marker registry with the
// markers the new content exposes. Marker conflicts are detected before
// anything is written.
func (t *Tree) commit(rel, content string) error {
	locs := findMarkers(content)
	seen := make(map[string]bool, len(locs))
	for _, loc := range locs {
		if seen[loc.name] {
			return &DuplicateMarkerError{Name: loc.name, Path: rel, Existing: rel}
		}
		seen[loc.name] = true
		if existing, ok := t.markers[loc.name]; ok && existing != rel {
			return &DuplicateMarkerError{Name: loc.name, Path: rel, Existing: existing}
		}
	}

	if err := t.write(rel, content); err != nil {
		return err
	}

	for name, path := range t.markers {
		if path == rel {
			delete(t.markers, name)
		}
	}
	for _, loc := range locs {
		t.markers[loc.name] = rel
	}
	return nil
}

// write replaces rel atomically, keeping the permissions of an existing file.
func (t *Tree) write(rel, content string) error {
	p, err := t.Abs(rel)
	if err != nil {
		return err
	}
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(p); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, ".boxcar-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}

func (t *Tree) readOptional(rel string) (string, error) {
	content, err := t.Read(rel)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	return content, err
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// indentBlock prefixes each non-empty line of text with indent and makes sure
// the block ends with a newline.
func indentBlock(text, indent string) string {
	text = withTrailingNewline(text)
	if indent == "" {
		return text
	}
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			b.WriteString(indent)
		}
		b.WriteString(line)
	}
	return b.String()
}
