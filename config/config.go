// Package config provides configuration loading and structs for the relation scorer trainer.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a training run.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Model    ModelConfig    `yaml:"model"`
	Training TrainingConfig `yaml:"training"`
	Network  NetworkConfig  `yaml:"network"`
	Data     DataConfig     `yaml:"data"`
}

// ModelConfig holds where the trained model goes and what it extends.
type ModelConfig struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Extend string `yaml:"extend"`
}

// TrainingConfig holds the dev split and epoch settings.
type TrainingConfig struct {
	DevRatio  float64 `yaml:"dev_ratio"`
	NumEpochs int     `yaml:"num_epochs"`
	Seed      int64   `yaml:"seed"`
	Threads   int     `yaml:"threads"`
}

// NetworkConfig holds the scorer topology.
type NetworkConfig struct {
	NumHiddenNodes int   `yaml:"num_hidden_nodes"`
	NumFilters     int   `yaml:"num_filters"`
	UseAttention   *bool `yaml:"use_attention"`
	UseTypeNames   bool  `yaml:"use_type_names"`
}

// UseAttentionOrDefault returns whether relation parts get attention; defaults to true when unset.
func (n *NetworkConfig) UseAttentionOrDefault() bool {
	if n.UseAttention != nil {
		return *n.UseAttention
	}
	return true
}

// DataConfig holds auxiliary input files.
type DataConfig struct {
	CategoryMap string `yaml:"category_map"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Model.Path = expandPath(cfg.Model.Path, configDir)
	cfg.Model.Extend = expandPath(cfg.Model.Extend, configDir)
	cfg.Data.CategoryMap = expandPath(cfg.Data.CategoryMap, configDir)

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}

// expandPath resolves paths starting with "./" against configDir. Other paths,
// including the empty path, are left alone.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	return path
}
