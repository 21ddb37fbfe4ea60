package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk configuration. The JSON layout matches the historical
// conf.json ({"base_url": ..., "token": ...}).
type File struct {
	BaseURL     string `toml:"base_url" yaml:"base_url"`
	Token       string `toml:"token" yaml:"token" masq:"secret"`
	ExemptLabel string `toml:"exempt_label" yaml:"exempt_label"`
}

// LoadFile reads a TOML (.toml) or YAML/JSON (.yaml, .yml, .json) configuration file
func LoadFile(path string) (*File, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var file File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config", goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
		}
	case ".json", ".yaml", ".yml":
		// JSON documents are valid YAML
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse config", goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
		}
	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "unknown config file extension", goerr.V(ConfigPathKey, path), goerr.V("ext", ext))
	}

	return &file, nil
}
