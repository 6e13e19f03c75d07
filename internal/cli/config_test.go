package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "boxcar.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	p := writeConfig(t, "app: shop\nrecipe: minimal\nskip_bundle: true\njournal: runs.db\n")

	cfg, err := LoadConfig(p, "")
	require.NoError(t, err)
	assert.Equal(t, Config{App: "shop", Recipe: "minimal", SkipBundle: true, Journal: "runs.db"}, cfg)
}

func TestLoadConfig_DiscoversFileInDir(t *testing.T) {
	p := writeConfig(t, "recipe: minimal\n")

	cfg, err := LoadConfig("", filepath.Dir(p))
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Recipe)
}

func TestLoadConfig_NoFileIsEmpty(t *testing.T) {
	cfg, err := LoadConfig("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "app: shop\nskip_bundle: false\n")
	t.Setenv("BOXCAR_APP", "storefront")
	t.Setenv("BOXCAR_SKIP_BUNDLE", "true")
	t.Setenv("BOXCAR_JOURNAL", "/var/lib/boxcar.db")

	cfg, err := LoadConfig(p, "")
	require.NoError(t, err)
	assert.Equal(t, "storefront", cfg.App)
	assert.True(t, cfg.SkipBundle)
	assert.Equal(t, "/var/lib/boxcar.db", cfg.Journal)
}

func TestLoadConfig_Malformed(t *testing.T) {
	p := writeConfig(t, "app: [unterminated\n")
	_, err := LoadConfig(p, "")
	require.Error(t, err)
}
