package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jeanhaley32/specstory-stats/internal/constants"
)

// Config keys, shared by defaults, env bindings and flag bindings.
const (
	KeyAPIURL   = "api_url"
	KeyLogLevel = "log_level"
	KeyDir      = "dir"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"api-url":   KeyAPIURL,
	"log-level": KeyLogLevel,
	"dir":       KeyDir,
}

// Config holds the resolved runtime configuration.
type Config struct {
	// APIURL is the stats service base URL, without the /api/v1 path.
	APIURL string
	// LogLevel is the zerolog level name for diagnostics.
	LogLevel string
	// Dir is the absolute project directory.
	Dir string
}

// Load resolves configuration with precedence flag > environment > .env > default.
// The .env file is read from the process working directory, not from --dir:
// it configures the tool, while --dir only selects the project to identify.
// flags may be nil. Flags that are not defined on the set are skipped.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// Optional; never overrides variables already set in the environment.
	_ = godotenv.Load(constants.DotEnvFile)

	v := viper.New()
	v.SetDefault(KeyAPIURL, constants.DefaultAPIURL)
	v.SetDefault(KeyLogLevel, constants.DefaultLogLevel)
	v.SetDefault(KeyDir, "")

	if err := v.BindEnv(KeyAPIURL, constants.APIURLEnvVar); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", constants.APIURLEnvVar, err)
	}
	if err := v.BindEnv(KeyLogLevel, constants.LogLevelEnvVar); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", constants.LogLevelEnvVar, err)
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	dir, err := resolveDir(v.GetString(KeyDir))
	if err != nil {
		return nil, err
	}

	return &Config{
		APIURL:   v.GetString(KeyAPIURL),
		LogLevel: v.GetString(KeyLogLevel),
		Dir:      dir,
	}, nil
}

// Validate checks that APIURL can be requested.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return &ConfigError{Field: KeyAPIURL, Message: err.Error()}
	}
	if u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: KeyAPIURL, Message: fmt.Sprintf("%q is not an absolute URL", c.APIURL)}
	}
	return nil
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

func resolveDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return cwd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}
	return abs, nil
}
