package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := Open(t.TempDir())
	require.NoError(t, err)
	return tree
}

func readFile(t *testing.T, tree *Tree, rel string) string {
	t.Helper()
	content, err := tree.Read(rel)
	require.NoError(t, err)
	return content
}

func TestOpen_RejectsMissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOpen_RejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestAbs_RejectsPathsOutsideRoot(t *testing.T) {
	tree := newTree(t)

	for _, rel := range []string{"", ".", "..", "../x", "a/../../b", "/etc/passwd"} {
		t.Run(rel, func(t *testing.T) {
			_, err := tree.Abs(rel)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutsideRoot))
		})
	}

	p, err := tree.Abs("config/routes.rb")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tree.Root(), "config", "routes.rb"), p)
}

func TestCreateFile_RefusesToOverwriteWithoutForce(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("a.txt", "one\n", false))

	err := tree.CreateFile("a.txt", "two\n", false)
	var exists *FileExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "a.txt", exists.Path)
	assert.Equal(t, "one\n", readFile(t, tree, "a.txt"))

	require.NoError(t, tree.CreateFile("a.txt", "two\n", true))
	assert.Equal(t, "two\n", readFile(t, tree, "a.txt"))
}

func TestCreateFile_CreatesParentDirectories(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("app/models/concerns/x.rb", "module X\nend\n", false))
	assert.True(t, tree.Exists("app/models/concerns"))
}

func TestAppendFile_CreatesAndAppends(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.AppendFile(".env.development", "A=1\n"))
	require.NoError(t, tree.AppendFile(".env.development", "B=2\n"))
	assert.Equal(t, "A=1\nB=2\n", readFile(t, tree, ".env.development"))
}

func TestInsertAt_AccumulatesInCallOrder(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("app/x.rb", "class X\n  # boxcar:marker x.body\nend\n", false))
	require.True(t, tree.HasMarker("x.body"))

	require.NoError(t, tree.InsertAt("x.body", "include A\n"))
	require.NoError(t, tree.InsertAt("x.body", "include B"))

	assert.Equal(t, "class X\n  include A\n  include B\n  # boxcar:marker x.body\nend\n", readFile(t, tree, "app/x.rb"))

	require.NoError(t, tree.StripMarkers())
	assert.Equal(t, "class X\n  include A\n  include B\nend\n", readFile(t, tree, "app/x.rb"))
	assert.Empty(t, tree.Markers())
}

func TestInsertAt_IndentsMultiLineBlocksAndKeepsBlankLines(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("x.rb", "class X\n  # boxcar:marker x.body\nend\n", false))

	require.NoError(t, tree.InsertAt("x.body", "private\n\ndef y\n  1\nend\n"))

	assert.Equal(t, "class X\n  private\n\n  def y\n    1\n  end\n  # boxcar:marker x.body\nend\n", readFile(t, tree, "x.rb"))
}

func TestInsertAt_MissingMarkerWritesNothing(t *testing.T) {
	tree := newTree(t)

	err := tree.InsertAt("controller.application", "include Pundit::Authorization\n")
	var missing *MarkerNotFoundError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "controller.application", missing.Name)
	assert.True(t, IsMarkerNotFound(err))

	entries, err := os.ReadDir(tree.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInsertAt_FileRewrittenOutsideTree(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("x.rb", "# boxcar:marker x.body\n", false))

	p, err := tree.Abs("x.rb")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(p, []byte("replaced\n"), 0o644))

	err = tree.InsertAt("x.body", "y\n")
	assert.True(t, IsMarkerNotFound(err))
	assert.Equal(t, "replaced\n", readFile(t, tree, "x.rb"))
	assert.False(t, tree.HasMarker("x.body"))
}

func TestCreateFile_ForceReplacesMarkersOfThatFile(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("user.rb", "class User\n  # boxcar:marker model.user\nend\n", false))
	require.True(t, tree.HasMarker(MarkerUserModel))

	require.NoError(t, tree.CreateFile("user.rb", "class User\nend\n", true))
	assert.False(t, tree.HasMarker(MarkerUserModel))
	assert.True(t, IsMarkerNotFound(tree.InsertAt(MarkerUserModel, "x\n")))
}

func TestCommit_RejectsMarkerExposedByAnotherFile(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("a.rb", "# boxcar:marker shared\n", false))

	err := tree.CreateFile("b.rb", "# boxcar:marker shared\n", false)
	var dup *DuplicateMarkerError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a.rb", dup.Existing)
	assert.False(t, tree.Exists("b.rb"))

	path, ok := tree.MarkerPath("shared")
	require.True(t, ok)
	assert.Equal(t, "a.rb", path)
}

func TestCommit_RejectsMarkerRepeatedInOneFile(t *testing.T) {
	tree := newTree(t)
	err := tree.CreateFile("a.rb", "# boxcar:marker m\n# boxcar:marker m\n", false)
	var dup *DuplicateMarkerError
	require.ErrorAs(t, err, &dup)
	assert.False(t, tree.Exists("a.rb"))
}

func TestAdopt_AfterAnchor(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("app/controllers/application_controller.rb",
		"class ApplicationController < ActionController::Base\nend\n", false))

	err := tree.Adopt(Anchor{
		Name:   MarkerApplicationController,
		Path:   "app/controllers/application_controller.rb",
		Text:   "class ApplicationController < ActionController::Base\n",
		Indent: "  ",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"class ApplicationController < ActionController::Base\n  # boxcar:marker controller.application\nend\n",
		readFile(t, tree, "app/controllers/application_controller.rb"))

	// Adopting the same marker into the same file again changes nothing.
	require.NoError(t, tree.Adopt(Anchor{
		Name: MarkerApplicationController,
		Path: "app/controllers/application_controller.rb",
		Text: "class ApplicationController < ActionController::Base\n",
	}))
	assert.Equal(t, 1, strings.Count(readFile(t, tree, "app/controllers/application_controller.rb"), "boxcar:marker"))
}

func TestAdopt_AnchorWithoutTrailingNewline(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("a.rb", "do something # trailing\nend\n", false))

	require.NoError(t, tree.Adopt(Anchor{Name: "a", Path: "a.rb", Text: "do something"}))
	assert.Equal(t, "do something # trailing\n# boxcar:marker a\nend\n", readFile(t, tree, "a.rb"))
}

func TestAdopt_BeforeAnchor(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("a.rb", "a do\n  x\nend\n", false))

	require.NoError(t, tree.Adopt(Anchor{Name: "a.tail", Path: "a.rb", Text: "end\n", Position: Before, Indent: "  "}))
	assert.Equal(t, "a do\n  x\n  # boxcar:marker a.tail\nend\n", readFile(t, tree, "a.rb"))
}

func TestAdopt_WidensAnchorToWholeLine(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("a.rb", "class A\n  def x; end\n  def x2; end\nend", false))

	require.NoError(t, tree.Adopt(Anchor{Name: "a.head", Path: "a.rb", Text: "def x", Position: Before, Indent: "  "}))
	require.NoError(t, tree.Adopt(Anchor{Name: "a.body", Path: "a.rb", Text: "def x2"}))
	assert.Equal(t,
		"class A\n  # boxcar:marker a.head\n  def x; end\n  def x2; end\n# boxcar:marker a.body\nend",
		readFile(t, tree, "a.rb"))
}

func TestAdopt_AnchorOnLastLine(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("a.rb", "one\nlast line", false))

	require.NoError(t, tree.Adopt(Anchor{Name: "a", Path: "a.rb", Text: "last"}))
	assert.Equal(t, "one\nlast line\n# boxcar:marker a\n", readFile(t, tree, "a.rb"))
}

func TestAdopt_EndOfFileCreatesMissingFile(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.Adopt(Anchor{Name: MarkerProcfile, Path: "Procfile.dev"}))
	assert.Equal(t, "# boxcar:marker procfile.dev\n", readFile(t, tree, "Procfile.dev"))

	require.NoError(t, tree.InsertAt(MarkerProcfile, "web: bin/rails server\n"))
	require.NoError(t, tree.StripMarkers())
	assert.Equal(t, "web: bin/rails server\n", readFile(t, tree, "Procfile.dev"))
}

func TestAdopt_MissingAnchorLeavesFileUntouched(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("a.rb", "class A\nend\n", false))

	err := tree.Adopt(Anchor{Name: "a", Path: "a.rb", Text: "class B\n"})
	var missing *AnchorNotFoundError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "a.rb", missing.Path)
	assert.Equal(t, "class A\nend\n", readFile(t, tree, "a.rb"))
	assert.False(t, tree.HasMarker("a"))
}

func TestAdopt_RejectsInvalidName(t *testing.T) {
	tree := newTree(t)
	err := tree.Adopt(Anchor{Name: "Bad Name", Path: "a.rb"})
	require.Error(t, err)
	assert.False(t, tree.Exists("a.rb"))
}

func TestInsertAnchors(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("a.rb", "one\nthree\n", false))

	require.NoError(t, tree.InsertAfterAnchor("a.rb", "one\n", "two\n"))
	require.NoError(t, tree.InsertBeforeAnchor("a.rb", "one\n", "zero\n"))
	assert.Equal(t, "zero\none\ntwo\nthree\n", readFile(t, tree, "a.rb"))

	var missing *AnchorNotFoundError
	require.ErrorAs(t, tree.InsertAfterAnchor("a.rb", "four\n", "x"), &missing)
}

func TestRemoveBlock(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("c.rb",
		"class C\n  # Only allow modern browsers.\n  allow_browser versions: :modern\nend\n", false))

	pattern := regexp.MustCompile(`(?m)^\s*# Only allow modern browsers.*\n\s*allow_browser versions: :modern\n?`)
	removed, err := tree.RemoveBlock("c.rb", pattern)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "class C\nend\n", readFile(t, tree, "c.rb"))

	removed, err = tree.RemoveBlock("c.rb", pattern)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWrite_LeavesNoTempFilesAndKeepsMode(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("bin/setup", "#!/bin/sh\n", false))
	p, err := tree.Abs("bin/setup")
	require.NoError(t, err)
	require.NoError(t, os.Chmod(p, 0o755))

	require.NoError(t, tree.AppendFile("bin/setup", "echo ok\n"))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(p))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".boxcar-"), "stray temp file %s", e.Name())
	}
}

func TestStripMarkers_SkipsDeletedFiles(t *testing.T) {
	tree := newTree(t)
	require.NoError(t, tree.CreateFile("a.rb", "# boxcar:marker a\n", false))
	require.NoError(t, tree.CreateFile("b.rb", "b\n# boxcar:marker b\n", false))

	p, err := tree.Abs("a.rb")
	require.NoError(t, err)
	require.NoError(t, os.Remove(p))

	require.NoError(t, tree.StripMarkers())
	assert.Equal(t, "b\n", readFile(t, tree, "b.rb"))
}

func TestIndentBlock(t *testing.T) {
	assert.Equal(t, "x\n", indentBlock("x", ""))
	assert.Equal(t, "  a\n\n  b\n", indentBlock("a\n\nb\n", "  "))
}
