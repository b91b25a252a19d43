package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/wagnert/meta/internal/errors"
	"github.com/wagnert/meta/internal/system"
)

// LoadOverrides reads an operator supplied property file. The format is
// chosen by extension: .toml, .yaml or .yml.
func LoadOverrides(fsys system.FileSystem, path string) (Properties, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read properties file %s", path), err)
	}

	raw := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("failed to parse properties file %s", path), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("failed to parse properties file %s", path), err)
		}
	default:
		return nil, errors.ConfigError(fmt.Sprintf("unsupported properties file extension %q", ext), nil)
	}

	props := make(Properties)
	if err := flatten("", raw, props); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid properties file %s", path), err)
	}
	return props, nil
}

// flatten copies nested tables into out, joining keys with dots.
func flatten(prefix string, in map[string]any, out Properties) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string, bool, int, float64:
			out[key] = val
		case int64:
			out[key] = int(val)
		case nil:
			return fmt.Errorf("%s: value is empty", key)
		default:
			return fmt.Errorf("%s: unsupported value of type %T", key, v)
		}
	}
	return nil
}
