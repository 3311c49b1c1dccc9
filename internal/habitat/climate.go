package habitat

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// ClimateParams shape the ambient temperature curve. All values in °C except
// NoiseFrequency, which scales how fast the drift layer wanders per tick.
type ClimateParams struct {
	Baseline          float64
	SeasonalAmplitude float64
	NoiseAmplitude    float64
	NoiseFrequency    float64
}

// Climate generates the ambient temperature for each tick: a seasonal sine
// over the 12-month cycle plus a smooth noise drift so no two winters are
// identical. Zero amplitudes give a constant climate.
type Climate struct {
	params ClimateParams
	noise  opensimplex.Noise
}

// NewClimate creates a climate generator. The noise layer is deterministic
// from the seed.
func NewClimate(p ClimateParams, seed int64) *Climate {
	return &Climate{
		params: p,
		noise:  opensimplex.New(seed),
	}
}

// Temperature returns the ambient temperature for the given tick.
func (c *Climate) Temperature(tick uint64) float64 {
	month := float64(tick % 12)
	seasonal := c.params.SeasonalAmplitude * math.Sin(2*math.Pi*month/12)
	drift := c.params.NoiseAmplitude * c.noise.Eval2(float64(tick)*c.params.NoiseFrequency, 0)
	return c.params.Baseline + seasonal + drift
}
