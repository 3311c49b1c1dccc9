// Package habitat models the shared environment a population lives in: the
// ambient temperature and a per-tick pool of food and water that every
// animal competes for.
package habitat

import "sync"

// Environment is the resource pool shared by all animals within a tick.
// Allocation is check-and-decrement in one critical section: a request is
// either granted in full or denied, never partially filled. The lock keeps
// that contract intact should a driver ever process animals concurrently.
type Environment struct {
	mu          sync.Mutex
	temperature float64
	food        int
	water       int

	foodCapacity  int
	waterCapacity int
}

// NewEnvironment creates an environment with full pools at the given
// per-tick capacities.
func NewEnvironment(foodCapacity, waterCapacity int, temperature float64) *Environment {
	return &Environment{
		temperature:   temperature,
		food:          foodCapacity,
		water:         waterCapacity,
		foodCapacity:  foodCapacity,
		waterCapacity: waterCapacity,
	}
}

// Temperature returns the current ambient temperature in °C.
func (e *Environment) Temperature() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.temperature
}

// SetTemperature updates the ambient temperature; called by the driver when
// the climate advances, never by animals.
func (e *Environment) SetTemperature(t float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.temperature = t
}

// Food returns the food units still available this tick.
func (e *Environment) Food() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.food
}

// Water returns the water units still available this tick.
func (e *Environment) Water() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.water
}

// ProvideFood grants qty food units if that much remains, decrementing the
// pool, and reports whether the request was granted.
func (e *Environment) ProvideFood(qty int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if qty > e.food {
		return false
	}
	e.food -= qty
	return true
}

// ProvideWater grants qty water units if that much remains, decrementing the
// pool, and reports whether the request was granted.
func (e *Environment) ProvideWater(qty int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if qty > e.water {
		return false
	}
	e.water -= qty
	return true
}

// Replenish restores both pools to capacity. The driver calls this once at
// the start of every tick.
func (e *Environment) Replenish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.food = e.foodCapacity
	e.water = e.waterCapacity
}
