// Package config loads client settings for programs built on the library.
// Settings come from an optional YAML file, overridden by environment
// variables (a .env file is honored when present).
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variable overrides.
const (
	EnvAPIKey  = "RAPIDWIRE_API_KEY"
	EnvBaseURL = "RAPIDWIRE_BASE_URL"
)

// Duration is a time.Duration that unmarshals from YAML strings like "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.Wrapf(err, "parse duration %q", raw)
	}
	*d = Duration(parsed)
	return nil
}

// Settings is everything a program needs to construct a client.
type Settings struct {
	APIKey   string   `yaml:"api_key"`
	BaseURL  string   `yaml:"base_url"`
	Timeout  Duration `yaml:"timeout"`
	LogLevel string   `yaml:"log_level"`
	LogFile  string   `yaml:"log_file"`
}

// Load reads settings from path (skipped when empty) and applies environment
// overrides. Missing files are an error; a missing API key is not, since
// validation belongs to client construction.
func Load(path string) (*Settings, error) {
	// Best effort: a .env file is a convenience, not a requirement.
	_ = godotenv.Load()

	s := &Settings{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read settings file %s", path)
		}
		if err := yaml.Unmarshal(raw, s); err != nil {
			return nil, errors.Wrapf(err, "parse settings file %s", path)
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		s.BaseURL = v
	}
	return s, nil
}
