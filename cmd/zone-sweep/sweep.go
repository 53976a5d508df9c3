package main

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"lunar-lander/internal/terrain"
)

type scenario struct {
	points   int
	refWidth int
}

func (s scenario) String() string {
	return fmt.Sprintf("points=%d ref=%d", s.points, s.refWidth)
}

type scenarioResult struct {
	scenario      scenario
	runs          int
	zoneCounts    [4]int
	difficulties  [4]int
	fallbacks     int
	softConflicts int
	noRoom        int
	otherErrors   int
}

// meanZones is the average zone count over successful runs.
func (r scenarioResult) meanZones() float64 {
	n, sum := 0, 0
	for count, runs := range r.zoneCounts {
		n += runs
		sum += count * runs
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func runScenario(base terrain.Params, sc scenario, seeds int) scenarioResult {
	p := base
	p.Points = sc.points
	p.ReferenceWidth = sc.refWidth

	res := scenarioResult{scenario: sc}
	for seed := 0; seed < seeds; seed++ {
		res.runs++
		t, err := terrain.NewGenerator(int64(seed)).Generate(p)
		switch {
		case errors.Is(err, terrain.ErrNoRoomForZone):
			res.noRoom++
			continue
		case err != nil:
			res.otherErrors++
			continue
		}
		res.zoneCounts[len(t.Zones)]++
		for _, z := range t.Zones {
			res.difficulties[z.Difficulty]++
		}
		if t.Fallback {
			res.fallbacks++
		}
		res.softConflicts += t.SoftConflicts
	}
	return res
}

// sweep runs every scenario on a pool of workers, one generator per run, and
// returns the results ordered by points then reference width.
func sweep(base terrain.Params, scenarios []scenario, seeds, workers int) []scenarioResult {
	workers = max(workers, 1)
	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].scenario, all[j].scenario
		if a.points != b.points {
			return a.points < b.points
		}
		return a.refWidth < b.refWidth
	})
	return all
}

func grid(widths, refWidths []int) []scenario {
	out := make([]scenario, 0, len(widths)*len(refWidths))
	for _, w := range widths {
		for _, r := range refWidths {
			out = append(out, scenario{points: w, refWidth: r})
		}
	}
	return out
}
