package app

import (
	"flag"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries into a key/value map. Entries without '=' are
// skipped and later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	Overrides  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "lander", Scale: 1, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the configured seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional config file (json, yaml or toml)")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// Merge lays the -set overrides over base, the values loaded from file
// and environment.
func (c *Config) Merge(base map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(c.Overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range c.Overrides.Map() {
		out[k] = v
	}
	return out
}
