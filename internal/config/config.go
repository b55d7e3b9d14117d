// Package config loads the mps configuration file.
//
// The file lives at $XDG_CONFIG_HOME/mps/config.toml, falling back to
// ~/.config/mps/config.toml. A missing file is not an error: every field
// has a default, and command-line flags override whatever the file sets.
//
//	method = "bu"
//	seed = 42
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
//	max_chords = 10000
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mps/pkg/cache"
	"github.com/matzehuels/mps/pkg/errors"
	"github.com/matzehuels/mps/pkg/mps"
)

const (
	appName  = "mps"
	fileName = "config.toml"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Config is the resolved configuration.
type Config struct {
	// Method is the default solver ("bu" or "td").
	Method string `toml:"method"`
	// Seed drives pivot selection in the canonical sort.
	Seed uint64 `toml:"seed"`

	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend string        `toml:"backend"`
	TTL     time.Duration `toml:"ttl"`
	// Dir overrides the file cache directory.
	Dir string `toml:"dir,omitempty"`
	// Prefix namespaces keys in shared backends.
	Prefix        string `toml:"prefix,omitempty"`
	RedisURL      string `toml:"redis_url,omitempty"`
	MongoURI      string `toml:"mongo_uri,omitempty"`
	MongoDatabase string `toml:"mongo_database,omitempty"`
}

// RenderConfig holds chord diagram defaults.
type RenderConfig struct {
	Format string  `toml:"format"`
	Radius float64 `toml:"radius,omitempty"`
	Labels bool    `toml:"labels"`
}

// ServerConfig configures `mps serve`.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `toml:"max_body_bytes"`
	// MaxChords caps the chord count of a solve or render request.
	MaxChords int `toml:"max_chords"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Method: string(mps.DefaultMethod),
		Seed:   mps.DefaultSeed,
		Cache: CacheConfig{
			Backend:       BackendFile,
			TTL:           cache.DefaultTTL,
			MongoDatabase: appName,
		},
		Render: RenderConfig{
			Format: "svg",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Minute,
			MaxBodyBytes: 64 << 20,
			MaxChords:    10000,
		},
	}
}

// Path returns the config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config file at path on top of [Default].
// A missing file yields the defaults. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config file at [Path].
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := mps.ParseMethod(c.Method); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if err := errors.ValidateURL(c.Cache.RedisURL, "redis", "rediss"); err != nil {
			return fmt.Errorf("cache.redis_url: %w", err)
		}
	case BackendMongo:
		if err := errors.ValidateURL(c.Cache.MongoURI, "mongodb", "mongodb+srv"); err != nil {
			return fmt.Errorf("cache.mongo_uri: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"cache.backend: %q (must be one of: file, redis, mongo, none)", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_body_bytes must be positive")
	}
	if c.Server.MaxChords <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_chords must be positive")
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
