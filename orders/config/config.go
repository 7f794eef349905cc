// Package config loads the settings of the order report apps.
//
// Settings come from three places, each overriding the one before:
// built in defaults, an optional YAML file, and environment variables
// prefixed with ORDERREPORTS_ such as ORDERREPORTS_FILE_LOC.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/keep94/orderreports/orders/local"
	"github.com/keep94/orderreports/orders/logging"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of the environment variables Load reads.
const EnvPrefix = "ORDERREPORTS"

// Config holds the settings of the order report apps.
type Config struct {
	// Directory to look for reports
	FileLoc string `yaml:"file_loc" envconfig:"FILE_LOC" validate:"required"`
	// Directory where read reports go
	ArchiveLoc string `yaml:"archive_loc" envconfig:"ARCHIVE_LOC" validate:"required"`
	// Encoding of report files such as "utf-8" or "windows-1252"
	Encoding string `yaml:"encoding" envconfig:"ENCODING"`
	// One of none, debug, info, warn, error
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=none debug info warn error"`
	// Address the report server binds to
	HTTP string `yaml:"http" envconfig:"HTTP" validate:"required"`
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		FileLoc:    local.DefaultFileLoc,
		ArchiveLoc: local.DefaultArchiveLoc,
		LogLevel:   logging.None,
		HTTP:       ":8080",
	}
}

// Load returns the settings. path is the YAML file to read; empty path
// means no file.
func Load(path string) (*Config, error) {
	result := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := result.read(f); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, result); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// Validate checks that c has usable values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Logger returns a logger at c.LogLevel that writes to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	return logging.New(c.LogLevel, w)
}

// Options returns the options for reading reports with these settings.
func (c *Config) Options(logger *slog.Logger) *local.Options {
	return &local.Options{
		FileLoc:    c.FileLoc,
		ArchiveLoc: c.ArchiveLoc,
		Encoding:   c.Encoding,
		Logger:     logger,
	}
}

func (c *Config) read(r io.Reader) error {
	contents, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(contents, c)
}
