package engine

import (
	"fmt"
	"log/slog"
	"time"
)

// TicksPerYear converts the monthly tick counter to simulation years.
const TicksPerYear = 12

// Engine drives the simulation forward one tick per step.
type Engine struct {
	Tick     uint64        // Current tick counter (monotonic, never resets)
	Interval time.Duration // Real-time pacing per tick; 0 runs unthrottled
	MaxTicks uint64        // Stop after this many ticks; 0 = run until Stop
	Running  bool

	// Callbacks for each tick layer — populated during setup.
	OnMonth func(tick uint64) // Every tick (one sim-month)
	OnYear  func(tick uint64) // Every 12 ticks
}

// NewEngine creates an engine with default settings.
func NewEngine() *Engine {
	return &Engine{}
}

// Run advances the simulation until MaxTicks is reached or Stop is called.
// Blocks; callers wanting concurrent observation run it in its own
// goroutine.
func (e *Engine) Run() {
	e.Running = true
	slog.Info("simulation engine started", "tick", e.Tick, "max_ticks", e.MaxTicks)

	for e.Running {
		if e.MaxTicks > 0 && e.Tick >= e.MaxTicks {
			break
		}

		start := time.Now()
		e.step()

		if e.Interval > 0 {
			if elapsed := time.Since(start); elapsed < e.Interval {
				time.Sleep(e.Interval - elapsed)
			}
		}
	}

	e.Running = false
	slog.Info("simulation engine stopped", "tick", e.Tick, "sim_time", SimTime(e.Tick))
}

// Stop halts the loop after the current tick.
func (e *Engine) Stop() {
	e.Running = false
}

// step advances the simulation by one tick.
func (e *Engine) step() {
	e.Tick++

	if e.OnMonth != nil {
		e.OnMonth(e.Tick)
	}

	if e.Tick%TicksPerYear == 0 && e.OnYear != nil {
		e.OnYear(e.Tick)
	}
}

// SimTime returns a human-readable simulation time string for a tick number.
// Ticks are 1-based: tick 1 is Year 1, Month 1.
func SimTime(tick uint64) string {
	if tick == 0 {
		return "Year 1, Month 0"
	}
	year := (tick-1)/TicksPerYear + 1
	month := (tick-1)%TicksPerYear + 1
	return fmt.Sprintf("Year %d, Month %d", year, month)
}
