package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"lunar-lander/internal/config"
	"lunar-lander/internal/core"
	"lunar-lander/internal/logging"
	"lunar-lander/internal/sims/lander"
	"lunar-lander/internal/telemetry"
)

// ErrUnknownSim is returned when -sim names nothing usable.
var ErrUnknownSim = errors.New("unknown sim")

// Setup builds the world a command runs: settings from file and environment,
// then the -set overrides and -seed. Logs go to logOut.
func (c *Config) Setup(logOut io.Writer) (*lander.World, zerolog.Logger, error) {
	s, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, logging.New(logOut, "info", true), err
	}
	log := logging.New(logOut, s.LogLevel, s.LogConsole)

	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, log, fmt.Errorf("%w: %q", ErrUnknownSim, c.Sim)
	}
	values := c.Merge(s.Lander.Snapshot().Map())
	if c.Seed != 0 {
		values["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	w, ok := factory(values).(*lander.World)
	if !ok {
		return nil, log, fmt.Errorf("%w: %q is not a lander world", ErrUnknownSim, c.Sim)
	}

	rec, err := telemetry.New()
	if err != nil {
		return nil, log, fmt.Errorf("telemetry: %w", err)
	}
	w.SetLogger(log)
	w.SetRecorder(rec)
	// Regenerate the first attempt so it is logged and counted.
	w.Reset(0)
	return w, log, nil
}
