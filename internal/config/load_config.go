package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"flk/internal/logger"
)

// LoadConfig reads the YAML file at configFile on top of Default.
// Keys missing from the file keep their default values.
func LoadConfig(configFile string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}
	if cfg.Tool == "" {
		cfg.Tool = Default().Tool
	}

	logger.Debug("[DEBUG] Loaded config from %s: %+v\n", configFile, cfg)
	return cfg, nil
}

// LoadProjectConfig loads FileName from the project root, falling back to
// Default when the project has none.
func LoadProjectConfig(root string) (Config, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Debug("[DEBUG] No %s in %s, using defaults\n", FileName, root)
		return Default(), nil
	}
	return LoadConfig(path)
}
