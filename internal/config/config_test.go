package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/seamcarve/internal/config"
)

func noDotEnv(t *testing.T) string {
	t.Helper()
	return "-env-file=" + filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load([]string{noDotEnv(t)})
	require.NoError(t, err)

	want := config.Default()
	assert.Equal(t, want.Finder, c.Finder)
	assert.Equal(t, want.Solver, c.Solver)
	assert.Equal(t, "out.png", c.Output)
	assert.Equal(t, "info", c.Logging.Level)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "seamcarve.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(`
input: from-yaml.png
width: 100
height: 50
finder: dp
logging:
  level: debug
`), 0o600))

	// Env beats YAML; flags beat env.
	t.Setenv("SEAMCARVE_WIDTH", "80")
	t.Setenv("SEAMCARVE_SOLVER", "spfa")

	c, err := config.Load([]string{noDotEnv(t), "-config", yml, "-width", "60", "-finder", "generative"})
	require.NoError(t, err)

	assert.Equal(t, "from-yaml.png", c.Input)
	assert.Equal(t, 60, c.Width)
	assert.Equal(t, 50, c.Height)
	assert.Equal(t, "generative", c.Finder)
	assert.Equal(t, "spfa", c.Solver)
	assert.Equal(t, "debug", c.Logging.Level)
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	yml := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("solver: astar\n"), 0o600))
	t.Setenv("SEAMCARVE_CONFIG", yml)

	c, err := config.Load([]string{noDotEnv(t)})
	require.NoError(t, err)
	assert.Equal(t, "astar", c.Solver)
}

func TestLoad_DotEnv(t *testing.T) {
	env := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(env, []byte("SEAMCARVE_ENERGY_CACHE=256\nSEAMCARVE_VALIDATE=true\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("SEAMCARVE_ENERGY_CACHE")
		_ = os.Unsetenv("SEAMCARVE_VALIDATE")
	})

	c, err := config.Load([]string{"-env-file", env})
	require.NoError(t, err)
	assert.Equal(t, 256, c.EnergyCache)
	assert.True(t, c.ValidateSeams)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load([]string{"-nope"})
	assert.Error(t, err)

	_, err = config.Load([]string{noDotEnv(t), "-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1, 2"), 0o600))
	_, err = config.Load([]string{noDotEnv(t), "-config", bad})
	assert.Error(t, err)

	t.Setenv("SEAMCARVE_WIDTH", "wide")
	t.Setenv("SEAMCARVE_LOG_PRETTY", "maybe")
	_, err = config.Load([]string{noDotEnv(t)})
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestValidate(t *testing.T) {
	c := config.Default()
	c.Input = "in.png"
	require.NoError(t, c.Validate())

	c.Input = ""
	c.Width = -1
	c.Finder = "magic"
	c.Solver = "oracle"
	c.EnergyCache = -5
	c.Logging.Level = "shout"
	err := c.Validate()
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Len(t, multierr.Errors(err), 6)
}

func TestLoad_ValidateSeams(t *testing.T) {
	yml := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("input: in.png\nvalidate: true\n"), 0o600))

	c, err := config.Load([]string{noDotEnv(t), "-config", yml})
	require.NoError(t, err)
	assert.True(t, c.ValidateSeams)
	require.NoError(t, c.Validate())

	c, err = config.Load([]string{noDotEnv(t), "-config", yml, "-validate=false"})
	require.NoError(t, err)
	assert.False(t, c.ValidateSeams)
}
