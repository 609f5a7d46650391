package queststore

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the quest store service configuration
type Config struct {
	Addr     string `mapstructure:"addr"`
	QuestDir string `mapstructure:"questDir"`
	LogLevel string `mapstructure:"logLevel"`
}

// LoadConfig reads configuration from an optional YAML file, falling
// back to defaults. An empty path uses defaults only.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8090")
	v.SetDefault("questDir", "./quests")
	v.SetDefault("logLevel", "info")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}
