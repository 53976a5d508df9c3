// Package config loads lander settings from defaults, an optional file and
// LANDER_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"lunar-lander/internal/sims/lander"
)

// EnvPrefix prefixes environment overrides, e.g. LANDER_GRAVITY or LANDER_LOG_LEVEL.
const EnvPrefix = "LANDER"

// Settings is everything a command needs to start.
type Settings struct {
	Lander     lander.Config
	LogLevel   string
	LogConsole bool
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.console", true)
	for _, g := range lander.DefaultConfig().Snapshot().Groups {
		for _, p := range g.Params {
			viper.SetDefault(p.Key, p.Value)
		}
	}
}

// Load reads settings. An empty path skips the config file; the file format
// follows its extension (json, yaml, toml).
func Load(path string) (Settings, error) {
	setDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	values := make(map[string]string)
	for key := range lander.DefaultConfig().Snapshot().Map() {
		values[key] = viper.GetString(key)
	}
	return Settings{
		Lander:     lander.FromMap(values),
		LogLevel:   viper.GetString("log.level"),
		LogConsole: viper.GetBool("log.console"),
	}, nil
}
