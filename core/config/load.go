package config

import (
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Load reads and validates the configuration from the directory. If given
// the path of a config.yaml itself, the directory containing it is used.
func Load(path string) (*Config, error) {
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := os.ReadFile(filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Write marshals cfg to config.yaml inside the directory, refusing to
// clobber an existing file.
func Write(path string, cfg *Config) error {
	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	name := filepath.Join(path, ConfigurationName)
	fd, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := fd.Write(contents); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
