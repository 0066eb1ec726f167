package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.False(t, cfg.CrossCheck)
	assert.Equal(t, 20, cfg.Age)
	assert.Equal(t, -5, cfg.Number)
	assert.Equal(t, "myPassword123", cfg.Password)
	assert.Equal(t, 10, cfg.Num)
	assert.True(t, cfg.IsLoggedIn)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
env: prod
cross_check: true
drills:
  age: 18
  password: short
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.True(t, cfg.CrossCheck)
	assert.Equal(t, 18, cfg.Age)
	assert.Equal(t, "short", cfg.Password)

	// Keys missing from the file keep their defaults.
	assert.Equal(t, -5, cfg.Number)
	assert.Equal(t, 10, cfg.Num)
	assert.True(t, cfg.IsLoggedIn)
}

func TestLoad_FileZeroValuesKept(t *testing.T) {
	path := writeConfig(t, `
drills:
  number: 0
  num: 0
  is_logged_in: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Number)
	assert.Equal(t, 0, cfg.Num)
	assert.False(t, cfg.IsLoggedIn)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Run("without file", func(t *testing.T) {
		t.Setenv("DRILL_AGE", "17")
		t.Setenv("DRILL_IS_LOGGED_IN", "false")
		t.Setenv("ENV", "staging")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 17, cfg.Age)
		assert.False(t, cfg.IsLoggedIn)
		assert.Equal(t, "staging", cfg.Env)
	})

	t.Run("env beats file", func(t *testing.T) {
		t.Setenv("DRILL_NUM", "7")
		path := writeConfig(t, "drills:\n  num: 4\n")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.Num)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("unknown env", func(t *testing.T) {
		path := writeConfig(t, "env: qa\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "field Env must be one of [dev staging prod]")
	})

	t.Run("empty env", func(t *testing.T) {
		path := writeConfig(t, "env: \"\"\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "field Env is required")
	})

	t.Run("bad int in env", func(t *testing.T) {
		t.Setenv("DRILL_AGE", "twenty")

		_, err := Load("")
		require.Error(t, err)
	})
}

func TestResolvePath(t *testing.T) {
	newFlags := func() *flag.FlagSet {
		return flag.NewFlagSet("conditionals", flag.ContinueOnError)
	}

	t.Run("CONFIG_PATH beats flag", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "from-env.yaml")

		got, err := resolvePath(newFlags(), []string{"--config=from-flag.yaml"})
		require.NoError(t, err)
		assert.Equal(t, "from-env.yaml", got)
	})

	t.Run("flag when env is empty", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")

		got, err := resolvePath(newFlags(), []string{"--config=from-flag.yaml"})
		require.NoError(t, err)
		assert.Equal(t, "from-flag.yaml", got)
	})

	t.Run("neither", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")

		got, err := resolvePath(newFlags(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")
		fs := newFlags()
		fs.SetOutput(io.Discard)

		_, err := resolvePath(fs, []string{"--nope"})
		require.Error(t, err)
	})
}

func TestLoad_ThroughConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, "env: staging\ndrills:\n  age: 18\n"))

	path, err := resolvePath(flag.NewFlagSet("conditionals", flag.ContinueOnError), nil)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, 18, cfg.Age)
}
