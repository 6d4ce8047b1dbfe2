package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/lablist/pkg/cache"
	apperr "github.com/matzehuels/lablist/pkg/errors"
)

// clearEnv isolates a test from the caller's environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GITLAB_URL", "GITLAB_TOKEN", "LABLIST_CACHE_BACKEND", "LABLIST_CACHE_TTL",
		"LABLIST_REDIS_ADDR", "LABLIST_REDIS_DB", "LABLIST_MONGO_URI", "LABLIST_SERVER_ADDR",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.GitLab.URL != DefaultGitLabURL {
		t.Errorf("GitLab.URL = %q, want %q", c.GitLab.URL, DefaultGitLabURL)
	}
	if c.Cache.Backend != cache.BackendFile {
		t.Errorf("Cache.Backend = %q, want file", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration != DefaultCacheTTL {
		t.Errorf("Cache.TTL = %v, want %v", c.Cache.TTL, DefaultCacheTTL)
	}
	if !strings.HasSuffix(c.Cache.Dir, AppName) {
		t.Errorf("Cache.Dir = %q, should end with %q", c.Cache.Dir, AppName)
	}
	if c.Server.Addr != DefaultServerAddr {
		t.Errorf("Server.Addr = %q, want %q", c.Server.Addr, DefaultServerAddr)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
[gitlab]
url = "https://gitlab.example.org/api/v4"
token = "glpat-file"

[cache]
backend = "redis"
ttl = "15m"

[redis]
addr = "cache:6379"
db = 2

[server]
addr = "127.0.0.1:9000"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.GitLab.URL != "https://gitlab.example.org/api/v4" || c.GitLab.Token != "glpat-file" {
		t.Errorf("GitLab = %+v", c.GitLab)
	}
	if c.Cache.Backend != cache.BackendRedis || c.Cache.TTL.Duration != 15*time.Minute {
		t.Errorf("Cache = %+v", c.Cache)
	}
	if c.Redis.Addr != "cache:6379" || c.Redis.DB != 2 {
		t.Errorf("Redis = %+v", c.Redis)
	}
	// unset sections keep defaults
	if c.Mongo.Database != DefaultMongoDatabase {
		t.Errorf("Mongo.Database = %q, want default", c.Mongo.Database)
	}
	if c.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", c.Server.Addr)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[gitlab]
token = "from-file"

[cache]
ttl = "15m"
`)
	t.Setenv("GITLAB_TOKEN", "from-env")
	t.Setenv("GITLAB_URL", "https://gitlab.internal/api/v4")
	t.Setenv("LABLIST_CACHE_BACKEND", "mongo")
	t.Setenv("LABLIST_CACHE_TTL", "2h")
	t.Setenv("LABLIST_MONGO_URI", "mongodb://db:27017")
	t.Setenv("LABLIST_REDIS_DB", "3")
	t.Setenv("LABLIST_SERVER_ADDR", ":9999")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"token", c.GitLab.Token, "from-env"},
		{"url", c.GitLab.URL, "https://gitlab.internal/api/v4"},
		{"backend", c.Cache.Backend, "mongo"},
		{"ttl", c.Cache.TTL.Duration, 2 * time.Hour},
		{"mongo uri", c.Mongo.URI, "mongodb://db:27017"},
		{"redis db", c.Redis.DB, 3},
		{"server addr", c.Server.Addr, ":9999"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "malformed toml", body: "[gitlab\nurl ="},
		{name: "bad duration", body: "[cache]\nttl = \"soon\""},
		{name: "bad env duration", env: map[string]string{"LABLIST_CACHE_TTL": "forever"}},
		{name: "bad env redis db", env: map[string]string{"LABLIST_REDIS_DB": "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			if !apperr.Is(err, apperr.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadDefaultPath(t *testing.T) {
	clearEnv(t)
	home := os.Getenv("XDG_CONFIG_HOME")
	dir := filepath.Join(home, AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[server]\naddr = \":7000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Server.Addr != ":7000" {
		t.Errorf("Server.Addr = %q, want :7000", c.Server.Addr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.GitLab.URL = "" }},
		{"ftp url", func(c *Config) { c.GitLab.URL = "ftp://gitlab.com" }},
		{"token whitespace", func(c *Config) { c.GitLab.Token = "glpat abc" }},
		{"negative ttl", func(c *Config) { c.Cache.TTL = Duration{-time.Second} }},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"file without dir", func(c *Config) { c.Cache.Dir = "" }},
		{"redis without addr", func(c *Config) { c.Cache.Backend = "redis"; c.Redis.Addr = "" }},
		{"negative redis db", func(c *Config) { c.Cache.Backend = "redis"; c.Redis.DB = -1 }},
		{"mongo without collection", func(c *Config) { c.Cache.Backend = "mongo"; c.Mongo.Collection = "" }},
		{"empty server addr", func(c *Config) { c.Server.Addr = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.Cache.Dir = t.TempDir()
			tt.mutate(c)
			if err := c.Validate(); !apperr.Is(err, apperr.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestValidateNoneBackend(t *testing.T) {
	c := Default()
	c.Cache.Backend = cache.BackendNone
	c.Cache.Dir = ""
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestCacheOptions(t *testing.T) {
	c := Default()
	c.Cache.Backend = cache.BackendRedis
	c.Redis = Redis{Addr: "r:6379", Password: "pw", DB: 1}

	opts := c.CacheOptions()
	if opts.Backend != cache.BackendRedis {
		t.Errorf("Backend = %q", opts.Backend)
	}
	if opts.Redis != (cache.RedisOptions{Addr: "r:6379", Password: "pw", DB: 1}) {
		t.Errorf("Redis = %+v", opts.Redis)
	}
	if opts.Mongo.Database != DefaultMongoDatabase {
		t.Errorf("Mongo.Database = %q", opts.Mongo.Database)
	}
}

func TestStringMasksSecrets(t *testing.T) {
	c := Default()
	c.GitLab.Token = "glpat-very-secret"
	c.Redis.Password = "hunter2"

	s := c.String()
	if strings.Contains(s, "glpat-very-secret") || strings.Contains(s, "hunter2") {
		t.Errorf("String() leaks secrets:\n%s", s)
	}
	if !strings.Contains(s, `ttl = "1h0m0s"`) {
		t.Errorf("String() should render ttl as a duration string:\n%s", s)
	}
	if c.GitLab.Token != "glpat-very-secret" {
		t.Error("String() must not modify the receiver")
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	dir, err := DefaultCacheDir()
	if err != nil {
		t.Fatalf("DefaultCacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", AppName); dir != want {
		t.Errorf("DefaultCacheDir() = %q, want %q", dir, want)
	}

	t.Setenv("XDG_CACHE_HOME", "")
	dir, err = DefaultCacheDir()
	if err != nil {
		t.Fatalf("DefaultCacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", AppName); dir != want {
		t.Errorf("DefaultCacheDir() = %q, want %q", dir, want)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", AppName, "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
