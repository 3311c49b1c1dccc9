// Package animal implements the per-individual survival state machine: four
// competing survival checks against a shared habitat, a hunger grace
// counter, and the reproduction/gestation cycle.
package animal

import (
	"github.com/talgya/fauna/internal/entropy"
	"github.com/talgya/fauna/internal/habitat"
	"github.com/talgya/fauna/internal/species"
)

// Gender of an animal, fixed at creation.
type Gender uint8

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Female {
		return "female"
	}
	return "male"
}

// matingChance is the 1-in-n odds of opportunistic breeding when resources
// are scarce.
const matingChance = 200

// hungerGrace is how many consecutive missed feedings an animal tolerates;
// the next miss is fatal.
const hungerGrace = 2

// Animal is one individual. Age and hunger are tick counters in months;
// gestation is nonzero exactly while pregnant. All randomness comes from the
// injected source, so runs replay from a seed.
type Animal struct {
	species   *species.Species
	gender    Gender
	ageMonths int
	hunger    int
	gestation int
	rng       *entropy.Source
}

// New creates a newborn of the species with uniformly random gender.
func New(sp *species.Species, rng *entropy.Source) *Animal {
	return Spawn(sp, 0, rng)
}

// NewWithGender creates a newborn with the given gender.
func NewWithGender(sp *species.Species, g Gender, rng *entropy.Source) *Animal {
	a := Spawn(sp, 0, rng)
	a.gender = g
	return a
}

// Spawn creates an animal at a given starting age in months, with uniformly
// random gender. Used to seed a population that is not all newborns.
func Spawn(sp *species.Species, ageMonths int, rng *entropy.Source) *Animal {
	g := Male
	if rng.Coin() {
		g = Female
	}
	return &Animal{
		species:   sp,
		gender:    g,
		ageMonths: ageMonths,
		rng:       rng,
	}
}

// Species returns the shared parameter record.
func (a *Animal) Species() *species.Species { return a.species }

// Gender returns the animal's gender.
func (a *Animal) Gender() Gender { return a.gender }

// Age returns the age in months.
func (a *Animal) Age() int { return a.ageMonths }

// Hunger returns the count of consecutive missed feedings.
func (a *Animal) Hunger() int { return a.hunger }

// IsMale reports whether the animal is male.
func (a *Animal) IsMale() bool { return a.gender == Male }

// IsFemale reports whether the animal is female.
func (a *Animal) IsFemale() bool { return a.gender == Female }

// IsPregnant reports whether a gestation is underway.
func (a *Animal) IsPregnant() bool { return a.gestation > 0 }

// IsMature reports whether the age lies within the species breeding range,
// both bounds inclusive.
func (a *Animal) IsMature() bool {
	return a.ageMonths >= a.species.MinBreedingMonths() &&
		a.ageMonths <= a.species.MaxBreedingMonths()
}

// Survive runs the four survival checks — aging, drinking, eating,
// temperature tolerance — in a uniformly random order, stopping at the first
// failure. The random order models simultaneity: no check is privileged over
// another within a tick, so the population doesn't systematically die of
// thirst before hunger. Returns CauseNone if all four pass; any other Cause
// means the caller must remove the animal.
func (a *Animal) Survive(env *habitat.Environment) Cause {
	checks := []func(*habitat.Environment) Cause{a.age, a.drink, a.eat, a.tolerate}
	a.rng.Shuffle(len(checks), func(i, j int) {
		checks[i], checks[j] = checks[j], checks[i]
	})
	for _, check := range checks {
		if cause := check(env); cause != CauseNone {
			return cause
		}
	}
	return CauseNone
}

// age advances the age one month. Fatal once the lifespan ceiling is passed.
func (a *Animal) age(_ *habitat.Environment) Cause {
	a.ageMonths++
	if a.ageMonths > a.species.MaxAgeMonths() {
		return CauseNaturalCauses
	}
	return CauseNone
}

// drink requests the species' water ration. Denial is immediately fatal;
// there is no thirst grace period.
func (a *Animal) drink(env *habitat.Environment) Cause {
	if !env.ProvideWater(a.species.RequiredWater) {
		return CauseDehydrated
	}
	return CauseNone
}

// eat requests the species' food ration. A successful feed clears the hunger
// counter; a denial past the grace threshold is fatal. Nothing but a
// successful feed resets hunger.
func (a *Animal) eat(env *habitat.Environment) Cause {
	a.hunger++
	if env.ProvideFood(a.species.RequiredFood) {
		a.hunger = 0
		return CauseNone
	}
	if a.hunger > hungerGrace {
		return CauseStarved
	}
	return CauseNone
}

// tolerate checks the ambient temperature against the species tolerance
// band. The band is a closed interval: both boundary temperatures survive.
func (a *Animal) tolerate(env *habitat.Environment) Cause {
	t := env.Temperature()
	switch {
	case t > a.species.MaxTolerance:
		return CauseOverheated
	case t < a.species.MinTolerance:
		return CauseFroze
	}
	return CauseNone
}

// Copulate may start a pregnancy. Only a mature, non-pregnant female can
// conceive. Conception happens on a 1-in-200 roll, or unconditionally while
// the habitat still reports both food and water remaining; resource
// abundance enables breeding outright rather than raising a probability.
// Consumes no habitat resources. Silent no-op otherwise.
func (a *Animal) Copulate(env *habitat.Environment) {
	if !a.IsFemale() || !a.IsMature() || a.IsPregnant() {
		return
	}
	if a.rng.Chance(matingChance) || (env.Food() > 0 && env.Water() > 0) {
		a.Gestate()
	}
}

// Gestate advances the gestation counter by one tick. Once the counter
// passes the species gestation period it resets and exactly one newborn of
// the same species is returned, gender re-randomized; the caller inserts it
// into the population. Returns nil otherwise.
func (a *Animal) Gestate() *Animal {
	a.gestation++
	if a.gestation > a.species.GestationPeriod {
		a.gestation = 0
		return New(a.species, a.rng)
	}
	return nil
}
