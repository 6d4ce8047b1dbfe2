// Package config loads lablist settings from a TOML file and the environment.
//
// Settings are resolved in three layers: built-in defaults, the config file
// (missing is fine), then environment variables. The result is checked by
// [Config.Validate] before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lablist/pkg/cache"
	apperr "github.com/matzehuels/lablist/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "lablist"

// Defaults.
const (
	DefaultGitLabURL       = "https://gitlab.com/api/v4"
	DefaultCacheTTL        = time.Hour
	DefaultRedisAddr       = "localhost:6379"
	DefaultMongoURI        = "mongodb://localhost:27017"
	DefaultMongoDatabase   = AppName
	DefaultMongoCollection = "cache"
	DefaultServerAddr      = ":8080"
)

// Config is the full lablist configuration.
type Config struct {
	GitLab GitLab `toml:"gitlab"`
	Cache  Cache  `toml:"cache"`
	Redis  Redis  `toml:"redis"`
	Mongo  Mongo  `toml:"mongo"`
	Server Server `toml:"server"`
}

// GitLab configures the API client.
type GitLab struct {
	URL   string `toml:"url"`   // GITLAB_URL
	Token string `toml:"token"` // GITLAB_TOKEN
}

// Cache selects the response cache backend.
type Cache struct {
	Backend string   `toml:"backend"` // LABLIST_CACHE_BACKEND: file, redis, mongo, none
	TTL     Duration `toml:"ttl"`     // LABLIST_CACHE_TTL
	Dir     string   `toml:"dir"`     // file backend only
}

// Redis configures the redis cache backend.
type Redis struct {
	Addr     string `toml:"addr"` // LABLIST_REDIS_ADDR
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Mongo configures the MongoDB cache backend.
type Mongo struct {
	URI        string `toml:"uri"` // LABLIST_MONGO_URI
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Server configures the HTTP query service.
type Server struct {
	Addr string `toml:"addr"` // LABLIST_SERVER_ADDR
}

// Duration is a time.Duration written as a Go duration string ("90s", "1h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	dir, _ := DefaultCacheDir()
	return &Config{
		GitLab: GitLab{URL: DefaultGitLabURL},
		Cache:  Cache{Backend: cache.BackendFile, TTL: Duration{DefaultCacheTTL}, Dir: dir},
		Redis:  Redis{Addr: DefaultRedisAddr},
		Mongo: Mongo{
			URI:        DefaultMongoURI,
			Database:   DefaultMongoDatabase,
			Collection: DefaultMongoCollection,
		},
		Server: Server{Addr: DefaultServerAddr},
	}
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. An empty path means [DefaultPath]. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "locate config file")
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, c); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	c.GitLab.URL = envOrDefault("GITLAB_URL", c.GitLab.URL)
	c.GitLab.Token = envOrDefault("GITLAB_TOKEN", c.GitLab.Token)
	c.Cache.Backend = envOrDefault("LABLIST_CACHE_BACKEND", c.Cache.Backend)
	c.Redis.Addr = envOrDefault("LABLIST_REDIS_ADDR", c.Redis.Addr)
	c.Mongo.URI = envOrDefault("LABLIST_MONGO_URI", c.Mongo.URI)
	c.Server.Addr = envOrDefault("LABLIST_SERVER_ADDR", c.Server.Addr)

	if v := os.Getenv("LABLIST_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "LABLIST_CACHE_TTL")
		}
		c.Cache.TTL = Duration{d}
	}
	if v := os.Getenv("LABLIST_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "LABLIST_REDIS_DB")
		}
		c.Redis.DB = n
	}
	return nil
}

// Validate reports the first invalid setting as an INVALID_CONFIG error.
func (c *Config) Validate() error {
	if err := apperr.ValidateURL(c.GitLab.URL); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "gitlab.url")
	}
	if err := apperr.ValidateToken(c.GitLab.Token); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "gitlab.token")
	}
	if c.Cache.TTL.Duration < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache.ttl must not be negative, got %s", c.Cache.TTL)
	}

	switch c.Cache.Backend {
	case "", cache.BackendFile:
		if c.Cache.Dir == "" {
			return apperr.New(apperr.ErrCodeInvalidConfig, "cache.dir is required for the file backend")
		}
	case cache.BackendRedis:
		if c.Redis.Addr == "" {
			return apperr.New(apperr.ErrCodeInvalidConfig, "redis.addr is required for the redis backend")
		}
		if c.Redis.DB < 0 {
			return apperr.New(apperr.ErrCodeInvalidConfig, "redis.db must not be negative, got %d", c.Redis.DB)
		}
	case cache.BackendMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" || c.Mongo.Collection == "" {
			return apperr.New(apperr.ErrCodeInvalidConfig, "mongo.uri, mongo.database and mongo.collection are required for the mongo backend")
		}
	case cache.BackendNone:
	default:
		return apperr.New(apperr.ErrCodeInvalidConfig, "unknown cache.backend %q (want file, redis, mongo or none)", c.Cache.Backend)
	}

	if c.Server.Addr == "" {
		return apperr.New(apperr.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	return nil
}

// CacheOptions maps the configuration onto [cache.Open] options.
func (c *Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend: c.Cache.Backend,
		Dir:     c.Cache.Dir,
		Redis: cache.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		},
		Mongo: cache.MongoOptions{
			URI:        c.Mongo.URI,
			Database:   c.Mongo.Database,
			Collection: c.Mongo.Collection,
		},
	}
}

// String renders the configuration as TOML with the token masked.
func (c *Config) String() string {
	masked := *c
	if masked.GitLab.Token != "" {
		masked.GitLab.Token = "********"
	}
	if masked.Redis.Password != "" {
		masked.Redis.Password = "********"
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(masked); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}

// DefaultPath returns the config file location using XDG standard
// (~/.config/lablist/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// DefaultCacheDir returns the cache directory using XDG standard (~/.cache/lablist/).
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
