package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-adui-converter/internal/form"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "_enhanced", cfg.Output.Suffix)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 2, cfg.IndentWidth())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.JSONLog())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("output:\n  format: yaml\n  indent: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	require.NotNil(t, cfg.Output.Indent)
	assert.Equal(t, 0, *cfg.Output.Indent)
	assert.Empty(t, cfg.Output.Suffix)
	assert.Nil(t, cfg.Log.JSON)

	empty, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, empty)

	_, err = Parse([]byte("output:\n  colour: red\n"))
	assert.Error(t, err)
}

func TestMergeKeepsUnsetMembers(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Merge(&Config{
		Output: OutputConfig{Indent: form.Ptr(0)},
		Log:    LogConfig{JSON: form.Ptr(true)},
	}))

	assert.Equal(t, "_enhanced", cfg.Output.Suffix)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 0, cfg.IndentWidth())
	assert.True(t, cfg.JSONLog())
	assert.Equal(t, "info", cfg.Log.Level)

	require.NoError(t, cfg.Merge(nil))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Output.Format = "xml" }},
		{"indent high", func(c *Config) { c.Output.Indent = form.Ptr(9) }},
		{"indent negative", func(c *Config) { c.Output.Indent = form.Ptr(-1) }},
		{"indent unset", func(c *Config) { c.Output.Indent = nil }},
		{"suffix", func(c *Config) { c.Output.Suffix = "" }},
		{"level", func(c *Config) { c.Log.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func newTestLoader(t *testing.T) (*Loader, afero.Fs) {
	t.Helper()

	fsys := afero.NewMemMapFs()

	return &Loader{
		Fs:      fsys,
		HomeDir: "/home/user",
		WorkDir: "/work/project/sub",
	}, fsys
}

func write(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestLoaderPrecedence(t *testing.T) {
	l, fsys := newTestLoader(t)

	write(t, fsys, filepath.Join("/home/user", UserConfigDir, UserConfigFile),
		"output:\n  suffix: _user\n  format: yaml\nlog:\n  level: debug\n")
	write(t, fsys, "/work/project/csv-adui.yaml", "output:\n  suffix: _project\n")
	write(t, fsys, "/etc/explicit.yaml", "output:\n  indent: 4\n")

	cfg, err := l.Load("/etc/explicit.yaml", &Config{Log: LogConfig{Level: "warn"}})
	require.NoError(t, err)

	assert.Equal(t, "_project", cfg.Output.Suffix)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 4, cfg.IndentWidth())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoaderDefaultsOnly(t *testing.T) {
	l, _ := newTestLoader(t)

	cfg, err := l.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoaderSkipsBrokenProjectFile(t *testing.T) {
	l, fsys := newTestLoader(t)
	write(t, fsys, "/work/csv-adui.yaml", "output: [")

	cfg, err := l.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "_enhanced", cfg.Output.Suffix)
}

func TestLoaderExplicitErrors(t *testing.T) {
	l, fsys := newTestLoader(t)

	_, err := l.Load("/missing.yaml", nil)
	assert.Error(t, err)

	write(t, fsys, "/bad.yaml", "output:\n  format: xml\n")
	_, err = l.Load("/bad.yaml", nil)
	assert.ErrorContains(t, err, "invalid config")
}
