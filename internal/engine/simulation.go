// Package engine provides the tick-based simulation driver: the population
// collection, the per-tick survival scan, and the loop that advances it.
package engine

import (
	"log/slog"
	"sync"

	"github.com/talgya/fauna/internal/animal"
	"github.com/talgya/fauna/internal/entropy"
	"github.com/talgya/fauna/internal/habitat"
	"github.com/talgya/fauna/internal/species"
)

// maxEvents caps the retained event log.
const maxEvents = 512

// Event is a notable occurrence in the run.
type Event struct {
	Tick        uint64 `json:"tick"`
	Description string `json:"description"`
	Category    string `json:"category"` // "birth" or "death"
}

// Stats tracks aggregate population statistics across a run.
type Stats struct {
	Population    int                  `json:"population"`
	Peak          int                  `json:"peak"`
	Pregnant      int                  `json:"pregnant"`
	Births        int                  `json:"births"`
	Deaths        int                  `json:"deaths"`
	DeathsByCause map[animal.Cause]int `json:"deaths_by_cause"`
}

// Params configure a new Simulation.
type Params struct {
	Species           *species.Species
	Env               *habitat.Environment
	Climate           *habitat.Climate // optional; nil keeps the env temperature fixed
	InitialPopulation int
	MaxStartAgeYears  int // founders get a uniform age in [0, this*12]; 0 = all newborns
	Source            *entropy.Source
}

// Simulation owns the population and advances it one tick (one month) at a
// time against the shared habitat.
type Simulation struct {
	Species  *species.Species
	Env      *habitat.Environment
	Climate  *habitat.Climate
	Animals  []*animal.Animal
	Events   []Event
	LastTick uint64

	// mu guards everything above against readers on the HTTP observation
	// goroutine while the engine goroutine ticks.
	mu        sync.RWMutex
	stats     Stats
	lifespans []float64 // age in months at death, for the run summary
	rng       *entropy.Source
}

// NewSimulation spawns the founding population and wires the habitat in.
func NewSimulation(p Params) *Simulation {
	s := &Simulation{
		Species: p.Species,
		Env:     p.Env,
		Climate: p.Climate,
		rng:     p.Source,
		stats:   Stats{DeathsByCause: make(map[animal.Cause]int)},
	}

	ageSpan := p.MaxStartAgeYears * species.MonthsPerYear
	for i := 0; i < p.InitialPopulation; i++ {
		age := 0
		if ageSpan > 0 {
			age = s.rng.Intn(ageSpan + 1)
		}
		s.Animals = append(s.Animals, animal.Spawn(p.Species, age, s.rng))
	}
	s.refreshStats()
	return s
}

// TickMonth advances the simulation by one month: replenish the habitat,
// scan the population in a fresh random order, remove the dead, and insert
// the newborns. Newborns are appended after the scan so they are never
// processed in their birth tick.
func (s *Simulation) TickMonth(tick uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastTick = tick

	if s.Climate != nil {
		s.Env.SetTemperature(s.Climate.Temperature(tick))
	}
	s.Env.Replenish()

	// Scan order is shuffled so no individual is systematically first to
	// the resource pool.
	s.rng.Shuffle(len(s.Animals), func(i, j int) {
		s.Animals[i], s.Animals[j] = s.Animals[j], s.Animals[i]
	})

	survivors := s.Animals[:0]
	var newborns []*animal.Animal

	for _, a := range s.Animals {
		if cause := a.Survive(s.Env); cause != animal.CauseNone {
			s.recordDeath(tick, a, cause)
			continue
		}

		if a.IsPregnant() {
			if child := a.Gestate(); child != nil {
				newborns = append(newborns, child)
				s.recordBirth(tick, child)
			}
		} else {
			a.Copulate(s.Env)
		}
		survivors = append(survivors, a)
	}

	s.Animals = append(survivors, newborns...)
	s.refreshStats()
}

// Extinct reports whether the population has died out.
func (s *Simulation) Extinct() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Animals) == 0
}

// Alive returns the current population count.
func (s *Simulation) Alive() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Animals)
}

// CurrentTick returns the most recently processed tick number.
func (s *Simulation) CurrentTick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastTick
}

// EventsSnapshot returns a copy of the retained event log.
func (s *Simulation) EventsSnapshot() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.Events))
	copy(out, s.Events)
	return out
}

// Stats returns a copy of the aggregate statistics.
func (s *Simulation) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.stats
	out.DeathsByCause = make(map[animal.Cause]int, len(s.stats.DeathsByCause))
	for c, n := range s.stats.DeathsByCause {
		out.DeathsByCause[c] = n
	}
	return out
}

// Lifespans returns the age in months of every animal that has died.
func (s *Simulation) Lifespans() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]float64, len(s.lifespans))
	copy(out, s.lifespans)
	return out
}

func (s *Simulation) recordDeath(tick uint64, a *animal.Animal, cause animal.Cause) {
	s.stats.Deaths++
	s.stats.DeathsByCause[cause]++
	s.lifespans = append(s.lifespans, float64(a.Age()))
	s.appendEvent(Event{Tick: tick, Description: "death: " + cause.String(), Category: "death"})
	slog.Debug("animal died", "tick", tick, "cause", cause.String(), "age_months", a.Age())
}

func (s *Simulation) recordBirth(tick uint64, child *animal.Animal) {
	s.stats.Births++
	s.appendEvent(Event{Tick: tick, Description: "birth: " + child.Gender().String(), Category: "birth"})
	slog.Debug("animal born", "tick", tick, "gender", child.Gender().String())
}

func (s *Simulation) appendEvent(ev Event) {
	s.Events = append(s.Events, ev)
	if len(s.Events) > maxEvents {
		s.Events = s.Events[len(s.Events)-maxEvents:]
	}
}

func (s *Simulation) refreshStats() {
	s.stats.Population = len(s.Animals)
	if s.stats.Population > s.stats.Peak {
		s.stats.Peak = s.stats.Population
	}
	pregnant := 0
	for _, a := range s.Animals {
		if a.IsPregnant() {
			pregnant++
		}
	}
	s.stats.Pregnant = pregnant
}
