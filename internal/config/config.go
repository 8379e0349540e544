package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the config file name used by ctx-mcp.
const FileName = ".ctx-mcp.toml"

// Environment variables that override file values. MCP client configs often
// cannot pass flags, so every field is reachable through the environment.
const (
	EnvBackend = "CTX_MCP_BACKEND"
	EnvTimeout = "CTX_MCP_TIMEOUT"
	EnvWorkDir = "CTX_MCP_WORKDIR"
)

type Config struct {
	// Backend is the ctx binary to invoke; a bare name is resolved via PATH.
	Backend string `toml:"backend"`
	// TimeoutSecs bounds each backend invocation.
	TimeoutSecs int `toml:"timeout_secs"`
	// WorkDir is the directory backend commands run in. Empty means the
	// server's own working directory.
	WorkDir string `toml:"work_dir,omitempty"`
	// ExtraArgs are global backend flags prepended to every invocation.
	ExtraArgs []string `toml:"extra_args,omitempty"`
}

// Validation error messages for required config fields.
const (
	ErrMsgEmptyBackend    = "backend must not be empty"
	ErrMsgInvalidTimeout  = "timeout_secs must be greater than zero"
	ErrMsgWorkDirNotFound = "work_dir does not exist"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Backend:     "ctx",
		TimeoutSecs: 60,
	}
}

// Validate checks that required config fields are present and sane.
func (c *Config) Validate() error {
	var errs []error
	if c.Backend == "" {
		errs = append(errs, errors.New(ErrMsgEmptyBackend))
	}
	if c.TimeoutSecs <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidTimeout))
	}
	if c.WorkDir != "" {
		if info, err := os.Stat(c.WorkDir); err != nil || !info.IsDir() {
			errs = append(errs, errors.New(ErrMsgWorkDirNotFound))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Timeout returns the invocation deadline as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Resolve builds the effective configuration for a server started in dir:
// file values (when .ctx-mcp.toml exists) under environment overrides,
// falling back to defaults. The result is validated.
func Resolve(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}
	fillDefaults(cfg)

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults completes fields a partial config file may omit.
func fillDefaults(cfg *Config) {
	if cfg.Backend == "" {
		cfg.Backend = "ctx"
	}
	if cfg.TimeoutSecs == 0 {
		cfg.TimeoutSecs = 60
	}
}

// applyEnv overlays environment overrides onto cfg.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		cfg.TimeoutSecs = secs
	}
	if v := os.Getenv(EnvWorkDir); v != "" {
		cfg.WorkDir = v
	}
	return nil
}
