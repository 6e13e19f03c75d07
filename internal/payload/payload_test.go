package payload

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var files = fstest.MapFS{
	"app/config.rb.tmpl": {Data: []byte("module {{ app_module }}\n  NAME = \"<%= ENV['APP'] %>\"\n  GREETING = \"hi #{name}\"\nend\n")},
	"app/check.rb.tmpl":  {Data: []byte("a\n{% if capabilities.redis %}redis\n{% endif %}\nb\n")},
	"plain.txt":          {Data: []byte("{{ app_name }}")},
}

func TestRender_Variables(t *testing.T) {
	e, err := New("test", files)
	require.NoError(t, err)

	out, err := e.Render("app/config.rb", Context{"app_module": "ShopFront"})
	require.NoError(t, err)
	assert.Equal(t, "module ShopFront\n  NAME = \"<%= ENV['APP'] %>\"\n  GREETING = \"hi #{name}\"\nend\n", out)
}

func TestRender_Conditional(t *testing.T) {
	e, err := New("test", files)
	require.NoError(t, err)

	with, err := e.Render("app/check.rb", Context{"capabilities": map[string]bool{"redis": true}})
	require.NoError(t, err)
	assert.Equal(t, "a\nredis\n\nb\n", with)

	without, err := e.Render("app/check.rb", Context{"capabilities": map[string]bool{}})
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\n", without)
}

func TestRender_Globals(t *testing.T) {
	e, err := New("test", files, WithExtension("txt"), WithGlobals(Context{"app_name": "shop"}))
	require.NoError(t, err)

	out, err := e.Render("plain", nil)
	require.NoError(t, err)
	assert.Equal(t, "shop", out)
}

func TestRender_MissingTemplate(t *testing.T) {
	e, err := New("test", files)
	require.NoError(t, err)

	_, err = e.Render("nope/missing.rb", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope/missing.rb.tmpl")
}

func TestRenderString(t *testing.T) {
	e, err := New("test", files)
	require.NoError(t, err)

	out, err := e.RenderString("{{ a }}-{{ b }}", Context{"a": "x", "b": "y"})
	require.NoError(t, err)
	assert.Equal(t, "x-y", out)

	_, err = e.RenderString("{% if %}", nil)
	assert.Error(t, err)
}

func TestNew_NilFS(t *testing.T) {
	_, err := New("test", nil)
	assert.Error(t, err)
}
