package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the pagepack configuration file
// (~/.config/pagepack/config.yaml). Pointer fields distinguish "not set"
// from false.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// OutputFormat is the mapping format decode writes when neither
	// --format nor the output file extension decides it.
	OutputFormat string `yaml:"output_format"`

	Secure   *bool `yaml:"secure"`
	Trusted  *bool `yaml:"trusted"`
	FoldCase *bool `yaml:"fold_case"`
}

// flagSetter reports whether a flag was given on the command line.
// *cli.Command satisfies it.
type flagSetter interface {
	IsSet(name string) bool
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pagepack", "config.yaml")
}

// LoadConfig reads the config file at path. With an empty path it reads
// the default location and a missing file yields a zero Config; an
// explicitly named file must exist.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return Config{}, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func applyLoggingConfig(c flagSetter, cfg Config, level, format *string) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		*level = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		*format = cfg.LogFormat
	}
}

func applyBool(c flagSetter, name string, value *bool, dest *bool) {
	if value != nil && !c.IsSet(name) {
		*dest = *value
	}
}
