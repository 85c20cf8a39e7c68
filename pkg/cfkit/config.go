package cfkit

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v8"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/cf"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CFKIT_"

// Config holds the process-wide settings Open applies.
type Config struct {
	// LeakPolicy is "warn", "ignore" or "release"; see arc.LeakPolicy.
	LeakPolicy string `toml:"leak_policy" env:"LEAK_POLICY"`

	// FailOnLeak makes Close return ErrLeaked when owned references created
	// after Open are still outstanding.
	FailOnLeak bool `toml:"fail_on_leak" env:"FAIL_ON_LEAK"`

	// LogLevel is the minimum level of the default logger: "debug", "info",
	// "warn" or "error". It is ignored when a logger is passed to Open.
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`

	// TypeCacheSize bounds the CFTypeID name cache.
	TypeCacheSize int `toml:"type_cache_size" env:"TYPE_CACHE_SIZE"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LeakPolicy:    arc.LeakWarn.String(),
		LogLevel:      "info",
		TypeCacheSize: cf.DefaultTypeCacheSize,
	}
}

// LoadConfig builds a Config from the defaults, then the TOML file at path
// (skipped when path is empty), then CFKIT_* environment variables.
func LoadConfig(path string) (Config, error) {
	return loadConfig(path, nil)
}

func loadConfig(path string, environ map[string]string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("cfkit: config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("cfkit: config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("cfkit: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings Open would reject.
func (c Config) Validate() error {
	var errs []error
	if _, err := arc.ParseLeakPolicy(c.LeakPolicy); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.TypeCacheSize < 0 {
		errs = append(errs, fmt.Errorf("cfkit: type cache size %d is negative", c.TypeCacheSize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// parseLevel accepts the named levels only; offsets such as "warn+2" have
// no zap counterpart.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("cfkit: log level %q: want debug, info, warn or error", s)
	}
}
