// Package star assigns physical attributes to newly created stars. The
// spectral-class distribution is tuned for variety rather than strict
// galactic realism, so rarer classes still show up in a modest galaxy.
package star

import (
	"math"

	"starforge-server/internal/roll"
)

// Attributes are the physical properties the generation core consumes:
// solar masses, solar radii, solar luminosities, kelvin.
type Attributes struct {
	Mass          float64 `json:"mass"`
	Radius        float64 `json:"radius"`
	Luminosity    float64 `json:"luminosity"`
	Temperature   float64 `json:"temperature_k"`
	SpectralClass string  `json:"spectral_class"`
}

// classRange is the mass and temperature band of one spectral class.
type classRange struct {
	class            string
	weight           int
	minMass, maxMass float64
	minTemp, maxTemp float64
}

var classes = []classRange{
	{"O", 1, 16.0, 40.0, 30000, 50000},
	{"B", 3, 2.5, 16.0, 10000, 30000},
	{"A", 6, 1.4, 2.1, 7500, 10000},
	{"F", 10, 1.04, 1.4, 6000, 7500},
	{"G", 16, 0.8, 1.04, 5200, 6000},
	{"K", 24, 0.45, 0.8, 3700, 5200},
	{"M", 40, 0.08, 0.45, 2400, 3700},
}

// Generator draws star attributes from the shared roll source.
type Generator struct {
	roll *roll.Source
}

func NewGenerator(src *roll.Source) *Generator {
	return &Generator{roll: src}
}

// Generate draws a spectral class, then mass within the class band, then
// derives radius and luminosity from main-sequence relations with a little
// scatter.
func (g *Generator) Generate() Attributes {
	weights := make([]int, len(classes))
	for i, c := range classes {
		weights[i] = c.weight
	}
	c := classes[g.roll.Weighted(weights)]

	mass := g.roll.Uniform(c.minMass, c.maxMass)
	radius := math.Pow(mass, 0.8)
	luminosity := math.Pow(mass, 3.5) * g.roll.Uniform(0.9, 1.1)
	temperature := g.roll.Uniform(c.minTemp, c.maxTemp)

	return Attributes{
		Mass:          mass,
		Radius:        radius,
		Luminosity:    luminosity,
		Temperature:   temperature,
		SpectralClass: c.class,
	}
}
