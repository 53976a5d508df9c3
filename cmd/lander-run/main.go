package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"lunar-lander/internal/app"
	"lunar-lander/internal/core"
	"lunar-lander/internal/session"
	"lunar-lander/internal/sims/lander"
	"lunar-lander/internal/telemetry"
)

type sessionResult struct {
	index     int
	seed      int64
	attempts  []session.Attempt
	total     float64
	successes int
	avgFuel   float64
	rating    string
	err       error
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	sessions := flag.Int("sessions", 1, "sessions to fly, one seed each")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maxTicks := flag.Int("max-ticks", 60*600, "tick budget per attempt")
	flag.Parse()

	world, log, err := cfg.Setup(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}
	rec, err := telemetry.New()
	if err != nil {
		log.Fatal().Err(err).Msg("telemetry failed")
	}
	base := world.Config()
	dt := core.NewFixedStep(cfg.TPS).Seconds()
	pilot := lander.DefaultAutopilot()

	fmt.Printf("Flying %d session(s) (%d workers, dt %.4fs, seed %d)\n", *sessions, *workers, dt, base.Seed)

	jobs := make(chan int)
	results := make(chan sessionResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				c := base
				c.Seed = base.Seed + int64(idx)
				w := lander.NewWithConfig(c)
				w.SetLogger(log.With().Int("session", idx+1).Logger())
				w.SetRecorder(rec)
				w.Reset(0)
				err := pilot.FlySession(w, dt, *maxTicks)
				s := w.Session()
				results <- sessionResult{
					index:     idx,
					seed:      c.Seed,
					attempts:  s.Attempts()[:s.CurrentIndex()],
					total:     s.TotalScore(),
					successes: s.SuccessCount(),
					avgFuel:   s.AverageFuelEfficiency(),
					rating:    s.PerformanceRating(),
					err:       err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *sessions; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sessionResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].index < all[j].index })

	failed := 0
	grand := 0.0
	for _, res := range all {
		if res.err != nil {
			failed++
			fmt.Printf("session %d (seed %d): %v\n", res.index+1, res.seed, res.err)
			continue
		}
		grand += res.total
		fmt.Printf("session %d (seed %d): total %.0f, landings %d/%d, avg fuel %.1f%%, rating %s\n",
			res.index+1, res.seed, res.total, res.successes, session.MaxAttempts, res.avgFuel, res.rating)
		for i, a := range res.attempts {
			fmt.Printf("    attempt %d: %-7s zone=%-6s fuel=%5.1f%% time=%s score=%.0f\n",
				i+1, a.Result, a.Zone, a.FuelRemaining, a.TimeTaken.Round(time.Millisecond), a.Score)
		}
	}
	fmt.Printf("\n%d session(s) flown in %s, %d failed, grand total %.0f\n",
		len(all), time.Since(start).Round(time.Millisecond), failed, grand)
	if failed > 0 {
		os.Exit(1)
	}
}
