package catalog

import "github.com/talgya/fauna/internal/species"

// Builtins returns the species profiles shipped with the catalog. Parameters
// are loose caricatures of real animals, tuned so each survives a sensible
// climate band rather than for zoological accuracy.
func Builtins() []*species.Species {
	return []*species.Species{
		{
			Name:            "plains-hare",
			MinBreedingAge:  1,
			MaxBreedingAge:  7,
			MinTolerance:    -15,
			MaxTolerance:    35,
			RequiredFood:    1,
			RequiredWater:   1,
			GestationPeriod: 2,
			MaxAge:          9,
		},
		{
			Name:            "desert-fox",
			MinBreedingAge:  2,
			MaxBreedingAge:  10,
			MinTolerance:    -5,
			MaxTolerance:    45,
			RequiredFood:    2,
			RequiredWater:   1,
			GestationPeriod: 3,
			MaxAge:          14,
		},
		{
			Name:            "tundra-elk",
			MinBreedingAge:  3,
			MaxBreedingAge:  12,
			MinTolerance:    -40,
			MaxTolerance:    20,
			RequiredFood:    4,
			RequiredWater:   3,
			GestationPeriod: 8,
			MaxAge:          18,
		},
		{
			Name:            "river-boar",
			MinBreedingAge:  2,
			MaxBreedingAge:  9,
			MinTolerance:    -10,
			MaxTolerance:    38,
			RequiredFood:    3,
			RequiredWater:   2,
			GestationPeriod: 4,
			MaxAge:          12,
		},
	}
}
