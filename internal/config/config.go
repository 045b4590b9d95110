package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"algo-readme/internal/adapter/logging"
)

// Config contains runtime configuration values.
type Config struct {
	SourceRoot     string        `yaml:"source_root"`
	SourceExt      string        `yaml:"source_ext"`
	OutputPath     string        `yaml:"output_path"`
	SolvedACURL    string        `yaml:"solvedac_url"`
	ProblemURLBase string        `yaml:"problem_url_base"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	ScheduleCron   string        `yaml:"schedule_cron"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
}

// Flags carries command-line overrides; empty fields leave the loaded value alone.
type Flags struct {
	ConfigPath string
	SourceRoot string
	OutputPath string
	Schedule   string
}

const (
	defaultSourceRoot     = "src/main/java/org/example"
	defaultSourceExt      = ".java"
	defaultOutputPath     = "README.md"
	defaultSolvedACURL    = "https://solved.ac"
	defaultProblemURLBase = "https://www.acmicpc.net/problem"
	defaultTimeout        = 10 * time.Second
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"

	configPathEnv = "ALGO_README_CONFIG"
)

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		SourceRoot:     defaultSourceRoot,
		SourceExt:      defaultSourceExt,
		OutputPath:     defaultOutputPath,
		SolvedACURL:    defaultSolvedACURL,
		ProblemURLBase: defaultProblemURLBase,
		RequestTimeout: defaultTimeout,
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
	}
}

// Load builds a Config from defaults, an optional YAML file, environment
// variables and finally command-line flags, in that order of precedence.
func Load(flags Flags) (*Config, error) {
	cfg := Default()

	path := flags.ConfigPath
	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	applyFlags(cfg, flags)

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.SourceRoot == "" {
		return fmt.Errorf("source root is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if !strings.HasPrefix(c.SourceExt, ".") || len(c.SourceExt) < 2 {
		return fmt.Errorf("source extension %q must look like \".java\"", c.SourceExt)
	}
	if c.SolvedACURL == "" {
		return fmt.Errorf("solved.ac base URL is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.SourceRoot = getenvDefault("SOURCE_ROOT", cfg.SourceRoot)
	cfg.SourceExt = getenvDefault("SOURCE_EXT", cfg.SourceExt)
	cfg.OutputPath = getenvDefault("OUTPUT_PATH", cfg.OutputPath)
	cfg.SolvedACURL = getenvDefault("SOLVEDAC_BASE_URL", cfg.SolvedACURL)
	cfg.ProblemURLBase = getenvDefault("PROBLEM_URL_BASE", cfg.ProblemURLBase)
	cfg.RequestTimeout = parseDurationDefault("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.ScheduleCron = getenvDefault("SCHEDULE_CRON", cfg.ScheduleCron)
	cfg.LogLevel = getenvDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenvDefault("LOG_FORMAT", cfg.LogFormat)
}

func applyFlags(cfg *Config, flags Flags) {
	if flags.SourceRoot != "" {
		cfg.SourceRoot = flags.SourceRoot
	}
	if flags.OutputPath != "" {
		cfg.OutputPath = flags.OutputPath
	}
	if flags.Schedule != "" {
		cfg.ScheduleCron = flags.Schedule
	}
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
