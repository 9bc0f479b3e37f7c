// Package config locates and loads the .slurp.yaml settings file.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/vertti/slurp/pkg/contentcheck"
	"github.com/vertti/slurp/pkg/output"
)

// FileName is the settings file searched for by FindFile.
const FileName = ".slurp.yaml"

// EnvPrefix prefixes environment overrides, e.g. SLURP_FORMAT=json.
const EnvPrefix = "SLURP"

// Config keys.
const (
	KeyFormat  = "format"
	KeyBackend = "backend"
	KeyVerbose = "verbose"
	KeyDigest  = "digest"
)

// Backends a reader can be built on.
const (
	BackendOS    = "os"
	BackendBilly = "billy"
)

// Error is the error class for configuration failures.
var Error = errs.Class("config")

// Config holds settings shared by all commands. Flags override it.
type Config struct {
	Format  string `mapstructure:"format"`
	Backend string `mapstructure:"backend"`
	Verbose bool   `mapstructure:"verbose"`
	Digest  string `mapstructure:"digest"`
}

// Default returns the settings used when no file sets them.
func Default() Config {
	return Config{
		Format:  string(output.FormatText),
		Backend: BackendOS,
	}
}

// Validate reports the first setting with an unsupported value.
func (c Config) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return Error.Wrap(err)
	}
	switch c.Backend {
	case BackendOS, BackendBilly:
	default:
		return Error.New("backend %q: want %s or %s", c.Backend, BackendOS, BackendBilly)
	}
	if _, err := contentcheck.ParseAlgorithm(c.Digest); err != nil {
		return Error.Wrap(err)
	}
	return nil
}

// Load reads settings from path. An empty path yields the defaults plus
// environment overrides.
func Load(path string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyBackend, def.Backend)
	v.SetDefault(KeyVerbose, def.Verbose)
	v.SetDefault(KeyDigest, def.Digest)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, Error.Wrap(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, Error.Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FindFile returns the settings file to load. An explicit path must exist.
// Otherwise it walks up from startDir and stops at the home directory, a
// directory containing .git, or the filesystem root. It returns "" when no
// file is found.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", Error.New("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", Error.New("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", nil
}
