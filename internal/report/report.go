// Package report renders the end-of-run summary printed by the driver.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/talgya/fauna/internal/animal"
	"github.com/talgya/fauna/internal/engine"
)

// Summary is the aggregate outcome of one run.
type Summary struct {
	RunID   string
	Seed    int64
	Months  uint64
	Species string

	FinalPopulation int
	PeakPopulation  int
	Births          int
	Deaths          int
	DeathsByCause   map[animal.Cause]int

	MeanLifespanMonths   float64
	StddevLifespanMonths float64

	Extinct        bool
	ExtinctAtMonth uint64
}

// Build assembles the summary from a finished simulation.
func Build(sim *engine.Simulation, seed int64, monthsRun uint64) Summary {
	stats := sim.Stats()
	lifespans := sim.Lifespans()

	sum := Summary{
		RunID:           uuid.NewString(),
		Seed:            seed,
		Months:          monthsRun,
		Species:         sim.Species.Name,
		FinalPopulation: stats.Population,
		PeakPopulation:  stats.Peak,
		Births:          stats.Births,
		Deaths:          stats.Deaths,
		DeathsByCause:   stats.DeathsByCause,
	}

	if len(lifespans) > 0 {
		sum.MeanLifespanMonths = stat.Mean(lifespans, nil)
	}
	if len(lifespans) > 1 {
		sum.StddevLifespanMonths = stat.StdDev(lifespans, nil)
	}

	if sim.Extinct() {
		sum.Extinct = true
		sum.ExtinctAtMonth = sim.CurrentTick()
	}

	return sum
}

// Write prints the summary as a plain-text block.
func (s Summary) Write(w io.Writer) {
	fmt.Fprintf(w, "\nRun %s (seed %d)\n", s.RunID, s.Seed)
	fmt.Fprintf(w, "Species: %s — %s simulated\n", s.Species, engine.SimTime(s.Months))
	if s.Extinct {
		fmt.Fprintf(w, "Population went extinct at %s\n", engine.SimTime(s.ExtinctAtMonth))
	} else {
		fmt.Fprintf(w, "Final population: %s (peak %s)\n",
			humanize.Comma(int64(s.FinalPopulation)), humanize.Comma(int64(s.PeakPopulation)))
	}
	fmt.Fprintf(w, "Births: %s   Deaths: %s\n",
		humanize.Comma(int64(s.Births)), humanize.Comma(int64(s.Deaths)))

	for _, cause := range animal.Causes() {
		if n := s.DeathsByCause[cause]; n > 0 {
			fmt.Fprintf(w, "  %-14s %s\n", cause.String(), humanize.Comma(int64(n)))
		}
	}

	if s.Deaths > 0 {
		fmt.Fprintf(w, "Lifespan at death: %.1f months mean, %.1f stddev\n",
			s.MeanLifespanMonths, s.StddevLifespanMonths)
	}
}
