package app

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("lander", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-scale", "2", "-tps", "30", "-seed", "9", "-config", "lander.yaml",
		"-set", "gravity=3.7", "-set", "w = 1000", "-set", "broken"})
	require.NoError(t, err)

	assert.Equal(t, "lander", cfg.Sim)
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "lander.yaml", cfg.ConfigPath)
	assert.Equal(t, map[string]string{"gravity": "3.7", "w": "1000"}, cfg.Overrides.Map())
	assert.Equal(t, "gravity=3.7,w = 1000,broken", cfg.Overrides.String())
}

func TestConfigMergeOverridesBase(t *testing.T) {
	cfg := NewConfig()
	cfg.Overrides = KVList{"gravity=9.81", "octaves=2"}
	got := cfg.Merge(map[string]string{"gravity": "1.625", "w": "800"})
	assert.Equal(t, map[string]string{"gravity": "9.81", "octaves": "2", "w": "800"}, got)
}

func TestSetupAppliesOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	cfg := NewConfig()
	cfg.Seed = 77
	cfg.Overrides = KVList{"gravity=3.7", "w=1000"}

	var buf bytes.Buffer
	w, _, err := cfg.Setup(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Err())

	c := w.Config()
	assert.Equal(t, 3.7, c.Params.Gravity)
	assert.Equal(t, 1000, c.Width)
	assert.Equal(t, int64(77), c.Seed)
	assert.Contains(t, buf.String(), "attempt started")
}

func TestSetupUnknownSim(t *testing.T) {
	t.Cleanup(viper.Reset)
	cfg := NewConfig()
	cfg.Sim = "life"
	_, _, err := cfg.Setup(io.Discard)
	assert.ErrorIs(t, err, ErrUnknownSim)
}

func TestSetupMissingConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	cfg := NewConfig()
	cfg.ConfigPath = "does-not-exist.yaml"
	_, _, err := cfg.Setup(io.Discard)
	assert.Error(t, err)
}
