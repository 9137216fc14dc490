package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultCommandTimeout is the default timeout for a single command
const DefaultCommandTimeout = 5 * time.Minute

// Environment variable names
const (
	EnvGitBinary     = "GITSCRIPT_GIT"
	EnvWorkingDir    = "GITSCRIPT_DIR"
	EnvTimeout       = "GITSCRIPT_TIMEOUT"
	EnvJobs          = "GITSCRIPT_JOBS"
	EnvDryRun        = "GITSCRIPT_DRY_RUN"
	EnvLogFile       = "GITSCRIPT_LOG_FILE"
	EnvLogMaxSize    = "GITSCRIPT_LOG_MAX_SIZE"
	EnvLogMaxBackups = "GITSCRIPT_LOG_MAX_BACKUPS"
	EnvLogMaxAge     = "GITSCRIPT_LOG_MAX_AGE"
	EnvDebug         = "DEBUG"
	EnvNoColor       = "NO_COLOR"
)

// LogConfig holds file logging settings
type LogConfig struct {
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Config holds the settings for one invocation
type Config struct {
	GitBinary  string
	WorkingDir string
	Timeout    time.Duration
	Jobs       int
	DryRun     bool
	Debug      bool
	NoColor    bool
	Log        LogConfig
}

// Default returns the configuration used when no environment overrides are set
func Default() Config {
	return Config{
		GitBinary: "git",
		Timeout:   DefaultCommandTimeout,
		Jobs:      1,
		Log: LogConfig{
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     30,
		},
	}
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration using the given lookup function.
// Unset or empty variables keep their defaults; malformed values are errors.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvGitBinary)); v != "" {
		cfg.GitBinary = v
	}
	cfg.WorkingDir = strings.TrimSpace(getenv(EnvWorkingDir))

	if v := getenv(EnvTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be positive", EnvTimeout, v)
		}
		cfg.Timeout = timeout
	}

	jobs, err := positiveInt(getenv, EnvJobs, cfg.Jobs)
	if err != nil {
		return Config{}, err
	}
	cfg.Jobs = jobs

	if cfg.DryRun, err = boolVar(getenv, EnvDryRun); err != nil {
		return Config{}, err
	}
	cfg.Debug = getenv(EnvDebug) != ""
	cfg.NoColor = getenv(EnvNoColor) != ""

	cfg.Log.File = strings.TrimSpace(getenv(EnvLogFile))
	if cfg.Log.MaxSize, err = positiveInt(getenv, EnvLogMaxSize, cfg.Log.MaxSize); err != nil {
		return Config{}, err
	}
	if v := getenv(EnvLogMaxBackups); v != "" {
		backups, err := strconv.Atoi(v)
		if err != nil || backups < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be a non-negative integer", EnvLogMaxBackups, v)
		}
		cfg.Log.MaxBackups = backups
	}
	if cfg.Log.MaxAge, err = positiveInt(getenv, EnvLogMaxAge, cfg.Log.MaxAge); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func positiveInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}

func boolVar(getenv func(string) string, key string) (bool, error) {
	v := getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
