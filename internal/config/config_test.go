package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mps/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
method = "bu"
seed = 7

[cache]
backend = "redis"
ttl = "36h"
redis_url = "redis://localhost:6379/1"
prefix = "mps:test:"

[server]
addr = "127.0.0.1:9000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Method != "bu" || cfg.Seed != 7 {
		t.Errorf("method/seed = %q/%d", cfg.Method, cfg.Seed)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.TTL != 36*time.Hour {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.Prefix != "mps:test:" {
		t.Errorf("prefix = %q", cfg.Cache.Prefix)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	// Unset fields keep their defaults
	if cfg.Server.MaxBodyBytes != Default().Server.MaxBodyBytes {
		t.Errorf("max_body_bytes = %d, want default", cfg.Server.MaxBodyBytes)
	}
	if cfg.Server.MaxChords != 10000 {
		t.Errorf("max_chords = %d, want default 10000", cfg.Server.MaxChords)
	}
	if cfg.Render.Format != "svg" {
		t.Errorf("render.format = %q, want svg", cfg.Render.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "method = ", "parse"},
		{"unknown key", "methd = \"bu\"\n", "unknown keys: methd"},
		{"bad method", "method = \"dp\"\n", "invalid method"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", "cache.backend"},
		{"redis without url", "[cache]\nbackend = \"redis\"\n", "cache.redis_url"},
		{"mongo bad scheme", "[cache]\nbackend = \"mongo\"\nmongo_uri = \"http://x\"\n", "cache.mongo_uri"},
		{"negative ttl", "[cache]\nttl = \"-1h\"\n", "cache.ttl"},
		{"bad duration", "[cache]\nttl = \"soon\"\n", "parse"},
		{"zero max chords", "[server]\nmax_chords = 0\n", "server.max_chords"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadErrorCode(t *testing.T) {
	_, err := Load(writeConfig(t, "bogus = 1\n"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/tmp/xdg", "mps", "config.toml") {
		t.Errorf("Path() = %q", path)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	path, err = Path()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/home/someone", ".config", "mps", "config.toml") {
		t.Errorf("Path() fallback = %q", path)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Method = "bu"
	cfg.Cache.Backend = BackendMongo
	cfg.Cache.MongoURI = "mongodb://localhost:27017"

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), `method = "bu"`) {
		t.Errorf("encoded config missing method:\n%s", buf.String())
	}

	var back Config
	if _, err := toml.Decode(buf.String(), &back); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, cfg)
	}
}
