// Package species holds the immutable parameter record shared by every
// animal of one kind. A Species is validated once and never mutated, so a
// single value is safely shared across the whole population, newborns
// included.
package species

import "fmt"

// MonthsPerYear converts the year-denominated parameters (breeding ages,
// lifespan) to the month-denominated tick counters the simulation runs on.
const MonthsPerYear = 12

// Species describes the survival envelope of one animal kind.
// Ages are in years, temperatures in °C, quantities in resource units per
// tick, gestation in ticks (months).
type Species struct {
	Name            string  `yaml:"name" db:"name"`
	MinBreedingAge  int     `yaml:"min_breeding_age" db:"min_breeding_age"`
	MaxBreedingAge  int     `yaml:"max_breeding_age" db:"max_breeding_age"`
	MinTolerance    float64 `yaml:"min_tolerance" db:"min_tolerance"`
	MaxTolerance    float64 `yaml:"max_tolerance" db:"max_tolerance"`
	RequiredFood    int     `yaml:"required_food" db:"required_food"`
	RequiredWater   int     `yaml:"required_water" db:"required_water"`
	GestationPeriod int     `yaml:"gestation_period" db:"gestation_period"`
	MaxAge          int     `yaml:"max_age" db:"max_age"`
}

// New validates the given parameters and returns a shared record.
func New(s Species) (*Species, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the range invariants. Invalid parameters are a
// configuration mistake and must be rejected before any simulation runs.
func (s *Species) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("species: name is required")
	}
	if s.MinBreedingAge < 0 || s.MaxBreedingAge < s.MinBreedingAge {
		return fmt.Errorf("species %s: breeding age range [%d, %d] is invalid", s.Name, s.MinBreedingAge, s.MaxBreedingAge)
	}
	if s.MaxTolerance < s.MinTolerance {
		return fmt.Errorf("species %s: tolerance range [%g, %g] is invalid", s.Name, s.MinTolerance, s.MaxTolerance)
	}
	if s.RequiredFood < 0 || s.RequiredWater < 0 {
		return fmt.Errorf("species %s: required food/water must be non-negative", s.Name)
	}
	if s.GestationPeriod < 1 {
		return fmt.Errorf("species %s: gestation period must be at least one tick", s.Name)
	}
	if s.MaxAge <= 0 {
		return fmt.Errorf("species %s: max age must be positive", s.Name)
	}
	return nil
}

// MaxAgeMonths is the lifespan ceiling in ticks.
func (s *Species) MaxAgeMonths() int { return s.MaxAge * MonthsPerYear }

// MinBreedingMonths is the lower maturity bound in ticks, inclusive.
func (s *Species) MinBreedingMonths() int { return s.MinBreedingAge * MonthsPerYear }

// MaxBreedingMonths is the upper maturity bound in ticks, inclusive.
func (s *Species) MaxBreedingMonths() int { return s.MaxBreedingAge * MonthsPerYear }
