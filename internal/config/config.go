package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/libtcod/hdrver/internal/parser"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultHeaderPath is where the autotools scripts expect the header,
	// relative to buildsys/autotools.
	DefaultHeaderPath = "../../include/libtcod-fov/version.h"

	// DefaultYAMLFile and DefaultTOMLFile are looked up in the working
	// directory when no --config is given, in that order.
	DefaultYAMLFile = ".hdrver.yaml"
	DefaultTOMLFile = ".hdrver.toml"

	// EnvHeader and EnvPrefix override the config file.
	EnvHeader = "HDRVER_HEADER"
	EnvPrefix = "HDRVER_PREFIX"
)

// Source records where a setting came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

// Config is the resolved hdrver configuration.
type Config struct {
	Header string `yaml:"header" toml:"header"`
	Prefix string `yaml:"prefix" toml:"prefix"`

	// File is the config file that was loaded, empty if none.
	File string `yaml:"-" toml:"-"`

	HeaderSource Source `yaml:"-" toml:"-"`
	PrefixSource Source `yaml:"-" toml:"-"`
}

// Options carries the command-line inputs that take part in resolution.
type Options struct {
	// ConfigFile is an explicit config path; it must exist when set.
	ConfigFile string

	// Header and Prefix are flag values; empty means "not given".
	Header string
	Prefix string
}

// LoadConfigFn is the loader used by the CLI. Tests replace it.
var LoadConfigFn = loadConfig

// loadConfig resolves settings with precedence flag > env > file > default.
func loadConfig(opts Options) (*Config, error) {
	cfg := &Config{
		Header:       DefaultHeaderPath,
		Prefix:       parser.DefaultPrefix,
		HeaderSource: SourceDefault,
		PrefixSource: SourceDefault,
	}

	fileCfg, file, err := readConfigFile(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		cfg.File = file
		if fileCfg.Header != "" {
			cfg.Header = resolveRelative(file, fileCfg.Header)
			cfg.HeaderSource = SourceFile
		}
		if fileCfg.Prefix != "" {
			cfg.Prefix = fileCfg.Prefix
			cfg.PrefixSource = SourceFile
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvHeader)); v != "" {
		cfg.Header = filepath.Clean(v)
		cfg.HeaderSource = SourceEnv
	}
	if v := strings.TrimSpace(os.Getenv(EnvPrefix)); v != "" {
		cfg.Prefix = v
		cfg.PrefixSource = SourceEnv
	}

	if opts.Header != "" {
		cfg.Header = opts.Header
		cfg.HeaderSource = SourceFlag
	}
	if opts.Prefix != "" {
		cfg.Prefix = opts.Prefix
		cfg.PrefixSource = SourceFlag
	}

	return cfg, nil
}

// Contract returns the parsing contract selected by the configured prefix.
func (c *Config) Contract() (parser.Contract, error) {
	return parser.ContractForPrefix(c.Prefix)
}

// readConfigFile loads the explicit file, or the first default file that
// exists. It returns a nil config when no default file is present.
func readConfigFile(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := decodeFile(explicit)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicit, nil
	}

	for _, name := range []string{DefaultYAMLFile, DefaultTOMLFile} {
		cfg, err := decodeFile(name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", err
		}
		return cfg, name, nil
	}
	return nil, "", nil
}

// decodeFile picks the decoder from the file extension. Unknown keys are
// rejected so that a typo does not silently fall back to the default header.
func decodeFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML config %q: %w", path, err)
		}
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file %q: expected .yaml, .yml or .toml", path)
	}

	return &cfg, nil
}

// resolveRelative interprets a header path from a config file relative to
// the directory holding that file.
func resolveRelative(configFile, header string) string {
	if filepath.IsAbs(header) {
		return filepath.Clean(header)
	}
	return filepath.Join(filepath.Dir(configFile), header)
}
