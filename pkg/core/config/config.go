package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	fverror "github.com/msto63/fvcalc/foundation/core/error"
	fvlog "github.com/msto63/fvcalc/foundation/core/log"
)

// Config holds the complete application configuration
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// OutputConfig holds stdout presentation settings
type OutputConfig struct {
	Summary bool `toml:"summary" yaml:"summary"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML (.toml) or YAML (.yaml, .yml) file.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		code := fverror.CodeInvalidConfig
		if errors.Is(err, fs.ErrNotExist) {
			code = fverror.CodeMissingConfig
		}
		return nil, fverror.Wrap(err, "failed to read config").
			WithCode(code).
			WithOperation(op).
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		return nil, fverror.Newf("unsupported config format %q, use .toml, .yaml or .yml", ext).
			WithCode(fverror.CodeInvalidConfig).
			WithOperation(op).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, fverror.Wrap(err, "failed to parse config").
			WithCode(fverror.CodeInvalidConfig).
			WithOperation(op).
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fverror.Wrap(err, "invalid config").WithDetail("path", path)
	}

	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fverror.Newf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks that the log level and format are known
func (c *Config) Validate() error {
	if _, err := fvlog.ParseLevel(c.Log.Level); err != nil {
		return fverror.Wrap(err, "log.level").
			WithCode(fverror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("level", c.Log.Level)
	}
	if _, err := fvlog.ParseFormat(c.Log.Format); err != nil {
		return fverror.Wrap(err, "log.format").
			WithCode(fverror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("format", c.Log.Format)
	}
	return nil
}
