// Package config loads the dashboard's YAML configuration and environment
// secrets. A missing config file is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Classifier selection values.
const (
	ClassifierKeyword = "keyword"
	ClassifierOracle  = "oracle"
)

const (
	defaultModel          = "gpt-4o-mini"
	defaultTimeoutSeconds = 60
	configDirName         = ".meyou"
	configFileName        = "config.yaml"

	// EnvAPIKey is the environment variable holding the oracle API key.
	EnvAPIKey = "OPENAI_API_KEY"
)

// Config is the dashboard configuration.
type Config struct {
	// Model is the oracle model name.
	Model string `yaml:"model"`
	// RequestTimeoutSeconds bounds one oracle round trip.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
	// Classifier selects the task classifier: "keyword" or "oracle".
	Classifier string `yaml:"classifier"`
	// NudgeCompanyWindowDays widens the company-visit nudge lookahead.
	NudgeCompanyWindowDays int `yaml:"nudge_company_window_days"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Model:                 defaultModel,
		RequestTimeoutSeconds: defaultTimeoutSeconds,
		Classifier:            ClassifierKeyword,
	}
}

// DefaultPath returns ~/.meyou/config.yaml, or just the file name when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load reads the config file at path, filling unset fields with defaults. A
// missing file yields the defaults with no error; a malformed file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return normalize(cfg)
}

func normalize(cfg Config) (Config, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultModel
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = defaultTimeoutSeconds
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Classifier)) {
	case "", ClassifierKeyword:
		cfg.Classifier = ClassifierKeyword
	case ClassifierOracle:
		cfg.Classifier = ClassifierOracle
	default:
		return cfg, fmt.Errorf("unknown classifier %q (want %q or %q)", cfg.Classifier, ClassifierKeyword, ClassifierOracle)
	}
	return cfg, nil
}

// RequestTimeout returns the oracle timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LoadEnv loads a .env file from the working directory when present, then
// returns the oracle API key from the environment. An empty key is not an
// error here; the caller decides whether the oracle is required.
func LoadEnv() string {
	_ = godotenv.Load()
	return strings.TrimSpace(os.Getenv(EnvAPIKey))
}
