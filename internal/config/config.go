// Package config loads run parameters (pallet envelope, GA tuning,
// I/O paths) from a YAML file, environment variables, and defaults, via
// viper — CLI flags layer on top in cmd/palletpack.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/piwi3910/palletpack/internal/model"
)

// Config is the complete palletpack run configuration.
type Config struct {
	Pallet  PalletConfig  `yaml:"pallet" json:"pallet"`
	Options OptionsConfig `yaml:"options" json:"options"`
	IO      IOConfig      `yaml:"io" json:"io"`
}

// PalletConfig mirrors model.PalletConfig for YAML/env binding.
type PalletConfig struct {
	Length    float64 `yaml:"length" json:"length"`
	Width     float64 `yaml:"width" json:"width"`
	Height    float64 `yaml:"height" json:"height"`
	MaxWeight float64 `yaml:"max_weight" json:"max_weight" mapstructure:"max_weight"`
}

// OptionsConfig mirrors model.Options for YAML/env binding.
type OptionsConfig struct {
	Algorithm            string  `yaml:"algorithm" json:"algorithm"`
	Population           int     `yaml:"population" json:"population"`
	Generations          int     `yaml:"generations" json:"generations"`
	MutationRate         float64 `yaml:"mutation_rate" json:"mutation_rate" mapstructure:"mutation_rate"`
	TournamentSize       int     `yaml:"tournament_size" json:"tournament_size" mapstructure:"tournament_size"`
	Elitism              int     `yaml:"elitism" json:"elitism"`
	Seed                 int64   `yaml:"seed" json:"seed"`
	SingleFillThreshold  float64 `yaml:"single_fill_threshold" json:"single_fill_threshold" mapstructure:"single_fill_threshold"`
	PartialFillThreshold float64 `yaml:"partial_fill_threshold" json:"partial_fill_threshold" mapstructure:"partial_fill_threshold"`
	FullRotation         bool    `yaml:"full_rotation" json:"full_rotation" mapstructure:"full_rotation"`
}

// IOConfig controls where the CLI reads input and writes reports.
type IOConfig struct {
	InputPath  string `yaml:"input_path" json:"input_path" mapstructure:"input_path"`
	OutputPath string `yaml:"output_path" json:"output_path" mapstructure:"output_path"`
	ReportDir  string `yaml:"report_dir" json:"report_dir" mapstructure:"report_dir"`
}

// Load reads configFile if given, else searches ./ and
// $HOME/.palletpack for config.yaml, applies PALLETPACK_-prefixed env
// overrides, and falls back to defaults when no file is found.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".palletpack"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PALLETPACK")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := model.DefaultOptions()

	v.SetDefault("pallet.length", 120.0)
	v.SetDefault("pallet.width", 80.0)
	v.SetDefault("pallet.height", 180.0)
	v.SetDefault("pallet.max_weight", 1000.0)

	v.SetDefault("options.algorithm", string(defaults.Algorithm))
	v.SetDefault("options.population", defaults.Population)
	v.SetDefault("options.generations", defaults.Generations)
	v.SetDefault("options.mutation_rate", defaults.MutationRate)
	v.SetDefault("options.tournament_size", defaults.TournamentSize)
	v.SetDefault("options.elitism", defaults.Elitism)
	v.SetDefault("options.seed", defaults.Seed)
	v.SetDefault("options.single_fill_threshold", defaults.SingleFillThreshold)
	v.SetDefault("options.partial_fill_threshold", defaults.PartialFillThreshold)
	v.SetDefault("options.full_rotation", defaults.FullRotation)

	v.SetDefault("io.output_path", "result.json")
	v.SetDefault("io.report_dir", ".")
}

// ToPalletConfig converts the loaded pallet section into model.PalletConfig.
func (c *Config) ToPalletConfig() model.PalletConfig {
	return model.PalletConfig{
		Length:    c.Pallet.Length,
		Width:     c.Pallet.Width,
		Height:    c.Pallet.Height,
		MaxWeight: c.Pallet.MaxWeight,
	}
}

// ToOptions converts the loaded options section into model.Options.
func (c *Config) ToOptions() model.Options {
	return model.Options{
		Algorithm:            model.Algorithm(c.Options.Algorithm),
		Population:           c.Options.Population,
		Generations:          c.Options.Generations,
		MutationRate:         c.Options.MutationRate,
		TournamentSize:       c.Options.TournamentSize,
		Elitism:              c.Options.Elitism,
		Seed:                 c.Options.Seed,
		SingleFillThreshold:  c.Options.SingleFillThreshold,
		PartialFillThreshold: c.Options.PartialFillThreshold,
		FullRotation:         c.Options.FullRotation,
	}
}
