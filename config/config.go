package config

import (
	"fmt"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const configFile = "othello/config.yml"

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	Play       Play       `yaml:"play"`
	Experiment Experiment `yaml:"experiment"`
}

// Play configures the interactive bot opponent.
type Play struct {
	Depth     int    `yaml:"depth" env:"OTHELLO_PLAY_DEPTH" env-default:"4"`
	Evaluator string `yaml:"evaluator" env:"OTHELLO_PLAY_EVALUATOR" env-default:"corners"`
}

// Experiment configures self-play experiment runs.
type Experiment struct {
	Games     int    `yaml:"games" env:"OTHELLO_EXPERIMENT_GAMES" env-default:"10"`
	OutputDir string `yaml:"output-dir" env:"OTHELLO_EXPERIMENT_OUTPUT" env-default:"results"`
}

// Load reads othello/config.yml from the XDG config directories, falling back
// to environment variables and defaults when no file exists.
func Load() (*Config, error) {
	config := &Config{}
	if path, err := xdg.SearchConfigFile(configFile); err == nil {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
		}
		return config, nil
	}
	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment config: %w", err)
	}
	return config, nil
}
