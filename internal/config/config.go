package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"svw.info/minesweeper/internal/domain"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MINESWEEPER_"

// Journal backends.
const (
	JournalNone   = "none"
	JournalFS     = "fs"
	JournalSQLite = "sqlite"
)

// Config is layered: defaults, then an optional YAML file, then environment,
// then command-line flags (applied by the CLI).
type Config struct {
	Addr        string `yaml:"addr" env:"ADDR"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
	DataDir     string `yaml:"data_dir" env:"DATA_DIR"`
	Journal     string `yaml:"journal" env:"JOURNAL"`
	Seed        int64  `yaml:"seed" env:"SEED"`
	MaxSessions int    `yaml:"max_sessions" env:"MAX_SESSIONS"`
	Language    string `yaml:"language" env:"LANGUAGE"`
}

func Default() Config {
	return Config{
		Addr:        ":8080",
		LogLevel:    "info",
		DataDir:     "./data",
		Journal:     JournalFS,
		MaxSessions: 1000,
	}
}

// Load reads path (if not empty) over the defaults and then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, &domain.OpError{Op: "config.load", Kind: domain.KindNotFound, Path: path, Err: err}
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, &domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: path, Err: err}
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, &domain.OpError{Op: "config.env", Kind: domain.KindInvalidConfig, Err: fmt.Errorf("parse env: %w", err)}
	}
	cfg.Journal = strings.ToLower(strings.TrimSpace(cfg.Journal))
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Journal {
	case JournalNone, JournalFS, JournalSQLite:
	default:
		return &domain.OpError{Op: "config.validate", Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("%w: journal %q (want none|fs|sqlite)", domain.ErrInvalidConfig, c.Journal)}
	}
	if c.MaxSessions < 0 {
		return &domain.OpError{Op: "config.validate", Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("%w: max_sessions %d", domain.ErrInvalidConfig, c.MaxSessions)}
	}
	if c.Journal != JournalNone && strings.TrimSpace(c.DataDir) == "" {
		return &domain.OpError{Op: "config.validate", Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("%w: data_dir is required for journal %q", domain.ErrInvalidConfig, c.Journal)}
	}
	return nil
}
