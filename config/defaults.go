package config

import "github.com/neurlang/relscorer/datasets/relations"

const (
	DefaultModelName      = "WQSP_ExtDeep_Ranker"
	DefaultModelPath      = "models"
	DefaultDevRatio       = 0.1
	DefaultNumEpochs      = 30
	DefaultNumHiddenNodes = 200
	DefaultNumFilters     = 64
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Model.Name == "" {
		cfg.Model.Name = DefaultModelName
	}
	if cfg.Model.Path == "" {
		cfg.Model.Path = DefaultModelPath
	}
	if cfg.Training.DevRatio == 0 {
		cfg.Training.DevRatio = DefaultDevRatio
	}
	if cfg.Training.NumEpochs == 0 {
		cfg.Training.NumEpochs = DefaultNumEpochs
	}
	if cfg.Training.Seed == 0 {
		cfg.Training.Seed = relations.DefaultSeed
	}
	if cfg.Network.NumHiddenNodes == 0 {
		cfg.Network.NumHiddenNodes = DefaultNumHiddenNodes
	}
	if cfg.Network.NumFilters == 0 {
		cfg.Network.NumFilters = DefaultNumFilters
	}
	if cfg.Network.UseAttention == nil {
		attention := true
		cfg.Network.UseAttention = &attention
	}
}
