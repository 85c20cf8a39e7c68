package cfkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/cf"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfkit.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func restoreGlobals(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		arc.SetLeakPolicy(arc.LeakWarn)
		arc.SetLogger(logging.New(nil))
		_ = cf.SetTypeCacheSize(cf.DefaultTypeCacheSize)
	})
}

func TestVersionAndBackend(t *testing.T) {
	assert.Equal(t, Version, WrapperVersion())
	assert.Contains(t, []string{"darwin", "emulated"}, Backend())
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := loadConfig("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "warn", cfg.LeakPolicy)
}

func TestLoadConfigLayers(t *testing.T) {
	path := writeConfig(t, `
leak_policy = "release"
log_level = "debug"
type_cache_size = 16
`)
	cfg, err := loadConfig(path, map[string]string{"CFKIT_LOG_LEVEL": "error", "CFKIT_FAIL_ON_LEAK": "true"})
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.LeakPolicy, "from file")
	assert.Equal(t, 16, cfg.TypeCacheSize, "from file")
	assert.Equal(t, "error", cfg.LogLevel, "environment wins over file")
	assert.True(t, cfg.FailOnLeak)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(writeConfig(t, `leak_policy = "sometimes"`), map[string]string{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = loadConfig(writeConfig(t, `colour = "blue"`), map[string]string{})
	assert.ErrorContains(t, err, "unknown keys colour")

	_, err = loadConfig(writeConfig(t, `leak_policy = `), map[string]string{})
	assert.Error(t, err)

	_, err = loadConfig("", map[string]string{"CFKIT_TYPE_CACHE_SIZE": "lots"})
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"), map[string]string{})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "chatty"
	cfg.TypeCacheSize = -1
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "chatty")
	assert.ErrorContains(t, err, "negative")
}

func TestValidateLogLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error", "WARN", "Error"} {
		cfg := DefaultConfig()
		cfg.LogLevel = level
		assert.NoError(t, cfg.Validate(), level)
	}
	for _, level := range []string{"warn+2", "DEBUG-4", "warning", "trace"} {
		cfg := DefaultConfig()
		cfg.LogLevel = level
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, level)
	}
}

func TestOpenAppliesConfig(t *testing.T) {
	restoreGlobals(t)
	cfg := DefaultConfig()
	cfg.LeakPolicy = "ignore"

	lib, err := Open(cfg, WithLogger(logging.Nop()))
	require.NoError(t, err)
	assert.Equal(t, arc.LeakIgnore, arc.CurrentLeakPolicy())
	assert.Equal(t, cfg, lib.Config())
	require.NoError(t, lib.Close())
	assert.ErrorIs(t, lib.Close(), ErrLibraryClosed)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	lib, err := Open(Config{LeakPolicy: "never"})
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCloseReportsLeaks(t *testing.T) {
	restoreGlobals(t)
	cfg := DefaultConfig()
	cfg.FailOnLeak = true
	lib, err := Open(cfg, WithLogger(logging.Nop()))
	require.NoError(t, err)

	s, err := cf.NewString("held across Close")
	require.NoError(t, err)
	assert.Equal(t, int64(1), lib.Outstanding())
	assert.ErrorIs(t, lib.Close(), ErrLeaked)
	s.Release()
}

func TestCloseWithoutLeaks(t *testing.T) {
	restoreGlobals(t)
	cfg := DefaultConfig()
	cfg.FailOnLeak = true
	lib, err := Open(cfg, WithLogger(logging.Nop()))
	require.NoError(t, err)

	s, err := cf.NewString("released before Close")
	require.NoError(t, err)
	s.Release()
	assert.NoError(t, lib.Close())
}

func TestNilLibraryClose(t *testing.T) {
	var lib *Library
	assert.NoError(t, lib.Close())
}
