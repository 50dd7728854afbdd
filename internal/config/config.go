package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the recipe viewer.
// Values are populated from .recipeview.yaml, RECIPEVIEW_* env vars, and CLI flags.
type Config struct {
	RecipeFile     string  `mapstructure:"recipe_file"`
	MinMultiplier  float64 `mapstructure:"min_multiplier"`
	MaxMultiplier  float64 `mapstructure:"max_multiplier"`
	MultiplierStep float64 `mapstructure:"multiplier_step"`
	LogFile        string  `mapstructure:"log_file"`
	WebAddr        string  `mapstructure:"web_addr"`
}

// Init points viper at the config file. An explicit path must exist; otherwise
// .recipeview.yaml is looked up in the working directory and $HOME and is
// optional.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".recipeview")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("RECIPEVIEW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("recipe_file", "recipes.json")
	viper.SetDefault("min_multiplier", 0.5)
	viper.SetDefault("max_multiplier", 10.0)
	viper.SetDefault("multiplier_step", 0.5)
	viper.SetDefault("log_file", "")
	viper.SetDefault("web_addr", ":8080")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the multiplier settings.
func (c Config) Validate() error {
	if c.MinMultiplier <= 0 {
		return fmt.Errorf("min_multiplier must be positive, got %v", c.MinMultiplier)
	}
	if c.MaxMultiplier < c.MinMultiplier {
		return fmt.Errorf("max_multiplier %v is below min_multiplier %v", c.MaxMultiplier, c.MinMultiplier)
	}
	if c.MultiplierStep <= 0 {
		return fmt.Errorf("multiplier_step must be positive, got %v", c.MultiplierStep)
	}
	if c.RecipeFile == "" {
		return errors.New("recipe_file is empty")
	}
	return nil
}
