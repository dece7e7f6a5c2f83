package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"krishisakha/internal/sample"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SAKHA_THEME", "SAKHA_DARK_MODE", "SAKHA_LANGUAGE", "SAKHA_STEP_DELAY", "SAKHA_REVEAL_DELAY", "SAKHA_DEBUG"} {
		t.Setenv(k, "")
	}
}

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Krishi-Sakha", cfg.Name)
	assert.Equal(t, ThemeAuto, cfg.UI.Theme)
	assert.Equal(t, "dashboard", cfg.UI.StartTab)
	assert.Equal(t, 1500*time.Millisecond, cfg.GetStepDelay())
	assert.Equal(t, time.Second, cfg.GetRevealDelay())
	assert.Equal(t, sample.English, cfg.GetLanguage())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := DefaultConfigPath(t.TempDir())

	cfg := DefaultConfig()
	cfg.UI.Theme = ThemeDark
	cfg.UI.Language = "hindi"
	cfg.Analysis.StepDelay = "250ms"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, loaded.UI.Theme)
	assert.Equal(t, sample.Hindi, loaded.GetLanguage())
	assert.Equal(t, 250*time.Millisecond, loaded.GetStepDelay())
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAKHA_THEME", "LIGHT")
	t.Setenv("SAKHA_LANGUAGE", "hi")
	t.Setenv("SAKHA_STEP_DELAY", "10ms")
	t.Setenv("SAKHA_REVEAL_DELAY", "20ms")
	t.Setenv("SAKHA_DEBUG", "1")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, ThemeLight, cfg.UI.Theme)
	assert.Equal(t, sample.Hindi, cfg.GetLanguage())
	assert.Equal(t, 10*time.Millisecond, cfg.GetStepDelay())
	assert.Equal(t, 20*time.Millisecond, cfg.GetRevealDelay())
	assert.True(t, cfg.Logging.DebugMode)

	t.Setenv("SAKHA_DARK_MODE", "1")
	cfg.applyEnvOverrides()
	assert.Equal(t, ThemeDark, cfg.UI.Theme, "SAKHA_DARK_MODE wins over SAKHA_THEME")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"tab", func(c *Config) { c.UI.StartTab = "settings" }},
		{"language", func(c *Config) { c.UI.Language = "fr" }},
		{"step delay unparsable", func(c *Config) { c.Analysis.StepDelay = "soon" }},
		{"reveal delay zero", func(c *Config) { c.Analysis.RevealDelay = "0s" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_YAMLRoundTripKeys(t *testing.T) {
	out, err := DefaultConfig().YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "step_delay: 1.5s")
	assert.Contains(t, out, "start_tab: dashboard")
	assert.Contains(t, out, "debug_mode: false")
}

func TestLoggingConfig_Options(t *testing.T) {
	c := LoggingConfig{Level: "debug", Format: "json", DebugMode: true, Categories: map[string]bool{"ui": false}}
	opts := c.Options()
	assert.True(t, opts.JSONFormat)
	assert.True(t, opts.DebugMode)
	assert.Equal(t, "debug", opts.Level)
	assert.Equal(t, map[string]bool{"ui": false}, opts.Categories)

	c.Format = "text"
	assert.False(t, c.Options().JSONFormat)
}

func TestFindWorkspaceRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".sakha"), 0755))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	defer func() { _ = os.Chdir(wd) }()

	got, err := FindWorkspaceRoot()
	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	assert.Equal(t, want, gotResolved)
}

// =============================================================================
// WATCHER TESTS
// =============================================================================

func TestWatch_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)
	clearEnv(t)

	path := DefaultConfigPath(t.TempDir())
	require.NoError(t, DefaultConfig().Save(path))

	ctx, cancel := context.WithCancel(context.Background())
	var (
		mu     sync.Mutex
		themes []string
	)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, NewReloadDebouncer(20*time.Millisecond), func(c *Config, err error) {
			if err != nil {
				return
			}
			mu.Lock()
			themes = append(themes, c.UI.Theme)
			mu.Unlock()
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	cfg := DefaultConfig()
	cfg.UI.Theme = ThemeDark
	require.NoError(t, cfg.Save(path))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(themes) > 0 && themes[len(themes)-1] == ThemeDark
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	time.Sleep(50 * time.Millisecond)
}

func TestWatch_ReportsInvalidReload(t *testing.T) {
	defer goleak.VerifyNone(t)
	clearEnv(t)

	path := DefaultConfigPath(t.TempDir())
	require.NoError(t, DefaultConfig().Save(path))

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, NewReloadDebouncer(20*time.Millisecond), func(c *Config, err error) {
			if err != nil {
				errs <- err
			}
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0644))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrInvalidConfig)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a reload error")
	}

	cancel()
	require.NoError(t, <-done)
	time.Sleep(50 * time.Millisecond)
}

func TestWatch_SaveBurstReloadsOnce(t *testing.T) {
	clearEnv(t)

	path := DefaultConfigPath(t.TempDir())
	require.NoError(t, DefaultConfig().Save(path))

	ctx, cancel := context.WithCancel(context.Background())
	var (
		mu      sync.Mutex
		reloads []string
	)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, NewReloadDebouncer(150*time.Millisecond), func(c *Config, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				reloads = append(reloads, "error")
				return
			}
			reloads = append(reloads, c.UI.Theme)
		})
	}()

	time.Sleep(100 * time.Millisecond)
	cfg := DefaultConfig()
	for _, theme := range []string{ThemeLight, ThemeAuto, ThemeDark} {
		cfg.UI.Theme = theme
		require.NoError(t, cfg.Save(path))
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(reloads) > 0
	}, 3*time.Second, 20*time.Millisecond)
	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{ThemeDark}, reloads, "one reload carrying the last save")
	mu.Unlock()

	cancel()
	require.NoError(t, <-done)
}

func TestReloadDebouncer_CollapsesBursts(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	d := NewReloadDebouncer(30 * time.Millisecond)
	for i := 0; i < 5; i++ {
		d.Schedule(func() {
			mu.Lock()
			calls++
			mu.Unlock()
		})
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestReloadDebouncer_Cancel(t *testing.T) {
	called := make(chan struct{}, 1)
	d := NewReloadDebouncer(20 * time.Millisecond)
	d.Schedule(func() { called <- struct{}{} })
	d.Cancel()

	select {
	case <-called:
		t.Fatal("cancelled call ran")
	case <-time.After(60 * time.Millisecond):
	}
}
