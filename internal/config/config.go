// Package config loads riotswch settings from a YAML file.
//
// Every key is optional. Missing keys keep the values from Default, and a
// missing file is the same as an empty one.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath points at an alternative config file.
	EnvConfigPath = "RIOTSWCH_CONFIG"
	// EnvLogLevel overrides log_level from the file.
	EnvLogLevel = "RIOTSWCH_LOG_LEVEL"
	// EnvClientPath is the launcher override checked before any built-in location.
	EnvClientPath = "RIOT_CLIENT_PATH"
)

type Config struct {
	LogLevel   string     `yaml:"log_level"`
	Automation Automation `yaml:"automation"`
	Launcher   Launcher   `yaml:"launcher"`
	Terminator Terminator `yaml:"terminator"`
}

// Automation holds the fixed waits of the login script. The script has no
// way to observe the client, so these are the only synchronisation it gets.
type Automation struct {
	StartupDelay Duration `yaml:"startup_delay"`
	FocusDelay   Duration `yaml:"focus_delay"`
	KeyDelay     Duration `yaml:"key_delay"`
	WindowTitle  string   `yaml:"window_title"`
}

type Launcher struct {
	OverrideEnv     string   `yaml:"override_env"`
	Args            []string `yaml:"args"`
	ExtraCandidates []string `yaml:"extra_candidates"`
}

type Terminator struct {
	Settle Duration `yaml:"settle"`
}

// Duration reads Go duration strings such as "700ms" or "6s".
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Automation: Automation{
			StartupDelay: Duration(6 * time.Second),
			FocusDelay:   Duration(700 * time.Millisecond),
			KeyDelay:     Duration(100 * time.Millisecond),
			WindowTitle:  "Riot Client",
		},
		Launcher: Launcher{
			OverrideEnv: EnvClientPath,
		},
	}
}

// DefaultPath is <UserConfigDir>/riotswch/config.yaml.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "riotswch", "config.yaml"), nil
}

// Load reads path, or the RIOTSWCH_CONFIG / default location when path is empty.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			// No config dir on this machine; run on defaults.
			return withEnv(Default()), nil
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return withEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg = withEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	a := c.Automation
	if a.StartupDelay < 0 || a.FocusDelay < 0 || a.KeyDelay < 0 {
		return errors.New("automation delays must not be negative")
	}
	if strings.TrimSpace(a.WindowTitle) == "" {
		return errors.New("automation.window_title is empty")
	}
	if c.Terminator.Settle < 0 {
		return errors.New("terminator.settle must not be negative")
	}
	if strings.TrimSpace(c.Launcher.OverrideEnv) == "" {
		return errors.New("launcher.override_env is empty")
	}
	return nil
}

func withEnv(cfg Config) Config {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	return cfg
}
