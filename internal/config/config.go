package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/sarif2xlsx/pkg/xlsx"
)

// FileName is the config file looked up locally and in the user config dir.
const FileName = ".sarif2xlsx.yaml"

// EnvPath names an explicit config file through the environment.
const EnvPath = "SARIF2XLSX_CONFIG"

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	ThemeDefault = "default"
	ThemeMono    = "mono"

	DefaultLogLevel  = "warn"
	DefaultTableName = xlsx.DefaultTableName
)

// Config represents .sarif2xlsx.yaml.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	TableName string `yaml:"table_name"`
	Summary   bool   `yaml:"summary"`
	Theme     string `yaml:"theme"`

	// Path is the file the values came from, empty for pure defaults.
	Path string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: FormatConsole,
		TableName: DefaultTableName,
		Summary:   true,
		Theme:     ThemeDefault,
	}
}

// Load reads the config file. explicit is the --config value and may be
// empty. Problems with a discovered file are reported to warn and the
// defaults are returned; only a missing or unreadable explicit file is an
// error.
func Load(explicit string, warn io.Writer) (*Config, error) {
	cfg := Default()

	path := explicit
	if path == "" {
		path = getConfigPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit != "" {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(warn, "Warning: Error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg, nil
	}

	parsed := Default()
	if err := yaml.Unmarshal(data, parsed); err != nil {
		fmt.Fprintf(warn, "Warning: Error unmarshalling config file %s: %v. Using defaults.\n", path, err)
		return cfg, nil
	}
	if err := parsed.validate(); err != nil {
		fmt.Fprintf(warn, "Warning: Invalid config file %s: %v. Using defaults.\n", path, err)
		return cfg, nil
	}

	parsed.Path = path
	return parsed, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("invalid log_format %q (must be: %s, %s)", c.LogFormat, FormatConsole, FormatJSON)
	}
	switch c.Theme {
	case ThemeDefault, ThemeMono:
	default:
		return fmt.Errorf("invalid theme %q (must be: %s, %s)", c.Theme, ThemeDefault, ThemeMono)
	}
	if c.TableName == "" {
		c.TableName = DefaultTableName
	}
	if err := xlsx.ValidateTableName(c.TableName); err != nil {
		return fmt.Errorf("table_name: %w", err)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return nil
}

// getConfigPath finds the config file: environment first, then the
// working directory, then the user config dir. It returns "" when none
// exists.
func getConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}

	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	p := filepath.Join(dir, "sarif2xlsx", FileName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
