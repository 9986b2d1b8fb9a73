package bootstrap

import (
	"errors"
	"fmt"

	"github.com/galaplate/patterns/config"
	"github.com/galaplate/patterns/env"
	"github.com/galaplate/patterns/logger"
)

// AppConfig controls how Init prepares the process.
type AppConfig struct {
	ConfigPath      string
	DefaultLogLevel string
	LogsDir         string
}

type OptFunc func(*AppConfig)

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		ConfigPath:      env.GetDefault("PATTERNS_CONFIG_PATH", "./configs"),
		DefaultLogLevel: "warn",
		LogsDir:         env.Get("PATTERNS_LOGS_DIR"),
	}
}

func WithConfigPath(path string) OptFunc {
	return func(c *AppConfig) { c.ConfigPath = path }
}

func WithLogsDir(dir string) OptFunc {
	return func(c *AppConfig) { c.LogsDir = dir }
}

// Init loads the YAML config directory into the global config manager and
// applies the logging section. A missing directory leaves every setting at
// its default.
func Init(opts ...OptFunc) (*config.Manager, error) {
	cfg := DefaultAppConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	data, err := config.NewLoader(cfg.ConfigPath).Load()
	if err != nil && !errors.Is(err, config.ErrDirNotFound) {
		return nil, err
	}

	m := config.NewManager()
	m.Load(data)
	config.SetGlobal(m)

	level, err := logger.ParseLogLevel(m.GetStringDefault("logging.level", cfg.DefaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid logging.level: %w", err)
	}
	logger.SetLevel(level)

	if dir := m.GetStringDefault("logging.dir", cfg.LogsDir); dir != "" {
		if err := logger.SetDirectory(dir); err != nil {
			return nil, err
		}
	}

	logger.Debug("Bootstrap complete", map[string]any{"config_path": cfg.ConfigPath, "log_output": logger.Output()})
	return m, nil
}
