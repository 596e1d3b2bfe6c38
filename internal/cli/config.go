package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/vosi/pkg/httputil"
)

// Cache backends selectable in the config file.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// defaultCacheTTL is how long cached VOSI documents stay fresh.
const defaultCacheTTL = 24 * time.Hour

// Config is the optional config file.
//
//	timeout    = "10s"
//	cache_ttl  = "1h"
//	cache      = "redis"
//	redis_addr = "localhost:6379"
//	user_agent = "my-archive-bot/1.0"
type Config struct {
	Timeout   time.Duration `toml:"timeout"`
	CacheTTL  time.Duration `toml:"cache_ttl"`
	Cache     string        `toml:"cache"`
	RedisAddr string        `toml:"redis_addr"`
	UserAgent string        `toml:"user_agent"`
}

func defaultConfig() *Config {
	return &Config{
		Timeout:  httputil.DefaultTimeout,
		CacheTTL: defaultCacheTTL,
		Cache:    CacheFile,
	}
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file is not an error.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Cache {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.RedisAddr == "" {
			return errors.New("config: cache = \"redis\" requires redis_addr")
		}
	default:
		return fmt.Errorf("config: unknown cache backend %q (want file, redis or none)", c.Cache)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config: cache_ttl must not be negative, got %s", c.CacheTTL)
	}
	return nil
}
