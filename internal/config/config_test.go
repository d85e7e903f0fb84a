package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300*time.Millisecond, cfg.Timing.NavigationCooldown.Std())
	assert.Equal(t, 300*time.Millisecond, cfg.Timing.SearchDebounce.Std())
	assert.Equal(t, 200*time.Millisecond, cfg.Timing.FadeOut.Std())
	assert.Equal(t, 50*time.Millisecond, cfg.Timing.FadeIn.Std())
	assert.True(t, cfg.UI.Animate)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.Poems.File = "/tmp/poems.yaml"
	cfg.Poems.StartID = 4
	cfg.Timing.SearchDebounce = Duration(120 * time.Millisecond)
	cfg.UI.Animate = false
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "120ms")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[timing]\nfade_out = \"1s\"\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Timing.FadeOut.Std())
	assert.Equal(t, 300*time.Millisecond, cfg.Timing.NavigationCooldown.Std())
	assert.Equal(t, "poemdeck.log", cfg.Log.File)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("POEMDECK_TEST_POEMS", "/data/poems.toml")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[poems]\nfile = \"${POEMDECK_TEST_POEMS}\"\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/poems.toml", cfg.Poems.File)
}

func TestLoadExpandsOnlyParsedPaths(t *testing.T) {
	t.Setenv("POEMDECK_TEST_DIR", `/data/"quoted"`)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "# moved from $POEMDECK_TEST_DIR\n[log]\nfile = \"$POEMDECK_TEST_DIR/poemdeck.log\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, `/data/"quoted"/poemdeck.log`, cfg.Log.File)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"bad duration":  "[timing]\nsearch_debounce = \"soon\"\n",
		"zero cooldown": "[timing]\nnavigation_cooldown = \"0s\"\n",
		"negative fade": "[timing]\nfade_in = \"-5ms\"\n",
		"bad level":     "[log]\nlevel = \"loud\"\n",
		"negative id":   "[poems]\nstart_id = -1\n",
		"not toml":      "this is = = not toml",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := NewConfigServiceAt(path).Load()
			assert.Error(t, err)
		})
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timing.SearchDebounce = 0
	err := NewConfigServiceAt(filepath.Join(t.TempDir(), "c.toml")).Save(cfg)
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogSettings{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogSettings{Level: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogSettings{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogSettings{}.SlogLevel())
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, "poemdeck", filepath.Base(filepath.Dir(DefaultPath())))
	assert.Equal(t, DefaultPath(), NewConfigServiceAt("").Path())
}
