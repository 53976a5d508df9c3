package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"lunar-lander/internal/app"
	"lunar-lander/internal/terrain"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", part, err)
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 200, "terrains generated per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var widths, refWidths intList
	flag.Var(&widths, "widths", "terrain widths in points (comma separated, repeatable)")
	flag.Var(&refWidths, "refs", "zone reference widths (comma separated, repeatable)")
	flag.Parse()

	world, log, err := cfg.Setup(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}
	c := world.Config()
	if len(widths) == 0 {
		widths = intList{250, 400, 600, 800, 1000, 1200}
	}
	if len(refWidths) == 0 {
		refWidths = intList{32, c.ReferenceWidth(), 64}
	}
	base := terrain.Params{
		MinHeight:     c.Params.HeightMin,
		MaxHeight:     c.Params.HeightMax,
		BaseFrequency: c.Params.BaseFrequency,
		Octaves:       c.Params.Octaves,
		Persistence:   c.Params.Persistence,
	}

	scenarios := grid(widths, refWidths)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d seeds each)\n", len(scenarios), *workers, *seeds)

	start := time.Now()
	results := sweep(base, scenarios, *seeds, *workers)
	for _, res := range results {
		log.Debug().Stringer("scenario", res.scenario).Int("no_room", res.noRoom).Msg("scenario done")
		fmt.Printf("%-22s zones[1/2/3]=%d/%d/%d mean=%.2f fallback=%d soft=%d noRoom=%d hard/med/easy=%d/%d/%d\n",
			res.scenario, res.zoneCounts[1], res.zoneCounts[2], res.zoneCounts[3], res.meanZones(),
			res.fallbacks, res.softConflicts, res.noRoom,
			res.difficulties[terrain.Hard], res.difficulties[terrain.Medium], res.difficulties[terrain.Easy])
	}
	fmt.Printf("\nElapsed %s\n", time.Since(start).Round(time.Millisecond))
}
