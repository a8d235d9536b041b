package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAndLoadConfig_Defaults(t *testing.T) {
	cfg, err := FindAndLoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.IsDefault())
	assert.Equal(t, RendererAuto, cfg.Renderer)
	assert.False(t, cfg.GetNoColor())
}

func TestFindAndLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	content := "renderer: html\nnoColor: true\noutputFile: report.html\nsuites:\n  - green\n  - zn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "green.yaml"), []byte(content), 0644))

	cfg, err := FindAndLoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Renderer)
	assert.True(t, cfg.GetNoColor())
	assert.Equal(t, "report.html", cfg.OutputFile)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, []string{"green", "zn"}, cfg.Suites)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("renderer: [unclosed"), 0644))
	_, err := LoadConfig(bad)
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("renderer: pdf"), 0644))
	_, err = LoadConfig(unknown)
	assert.ErrorContains(t, err, `unknown renderer "pdf"`)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.NoColor = BoolPtr(true)

	merged := base.Merge(&Config{Renderer: "text", NoColor: BoolPtr(false)})
	assert.Equal(t, "text", merged.Renderer)
	assert.False(t, merged.GetNoColor())
	assert.Equal(t, DefaultAddr, merged.Addr)

	kept := base.Merge(&Config{})
	assert.True(t, kept.GetNoColor())
	assert.Same(t, base, base.Merge(nil))
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".green.yaml")
	cfg := &Config{Renderer: "html", NoColor: BoolPtr(true), Suites: []string{"zn"}}
	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "html", loaded.Renderer)
	assert.True(t, loaded.GetNoColor())
	assert.Equal(t, []string{"zn"}, loaded.Suites)
}
