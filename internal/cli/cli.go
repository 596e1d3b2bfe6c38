// Package cli implements the vosi command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vosi/pkg/buildinfo"
	"github.com/matzehuels/vosi/pkg/cache"
	"github.com/matzehuels/vosi/pkg/dal"
	"github.com/matzehuels/vosi/pkg/httputil"
	"github.com/matzehuels/vosi/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "vosi"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// out receives command output; errOut receives spinners.
	out    io.Writer
	errOut io.Writer

	configPath string
	noCache    bool
	config     *Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output and progress indicators.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.out = out
	c.errOut = errOut
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "vosi inspects Virtual Observatory service metadata",
		Long:         `vosi queries the VOSI availability, capabilities and tables endpoints of Virtual Observatory data services (TAP, SIA, SSA, ...) and shows what they declare.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			registerLogHooks(c.Logger)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/vosi/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the response cache")

	root.AddCommand(c.availabilityCommand())
	root.AddCommand(c.capabilitiesCommand())
	root.AddCommand(c.tablesCommand())
	root.AddCommand(c.schemaCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Service Factory
// =============================================================================

// newService creates a VOSI client for baseURL using the configured cache.
// The returned close function releases the cache.
func (c *CLI) newService(ctx context.Context, baseURL string) (*dal.Service, func(), error) {
	cfg := c.cfg()
	respCache, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var headers map[string]string
	if cfg.UserAgent != "" {
		headers = map[string]string{"User-Agent": cfg.UserAgent}
	}
	client := httputil.NewClient(respCache, cfg.CacheTTL, headers)
	client.SetTimeout(cfg.Timeout)

	svc, err := dal.NewService(baseURL, dal.WithClient(client), dal.WithLogger(c.Logger))
	if err != nil {
		respCache.Close()
		return nil, nil, err
	}
	return svc, func() { respCache.Close() }, nil
}

func (c *CLI) cfg() *Config {
	if c.config == nil {
		return defaultConfig()
	}
	return c.config
}

func (c *CLI) newCache(ctx context.Context, cfg *Config) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache {
	case CacheNone:
		return cache.NewNullCache(), nil
	case CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: cfg.RedisAddr})
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		return rc, nil
	default:
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Debug("cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/vosi/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/vosi/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// registerLogHooks routes library events to the CLI logger at debug level.
func registerLogHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetHTTPHooks(h)
	observability.SetCacheHooks(h)
	observability.SetEndpointHooks(h)
}
