// Package body turns accepted orbit candidates into detailed planets and
// asteroid belts. The generation core supplies distance, mass, type,
// eccentricity and inclination; this package fills in the rest.
package body

import (
	"math"

	"starforge-server/internal/orbit"
	"starforge-server/internal/roll"
)

// Planet is a fully detailed planetary body on one orbit.
type Planet struct {
	OrbitIndex   int              `json:"orbit_index"`
	Type         orbit.PlanetType `json:"type"`
	DistanceAU   float64          `json:"distance_au"`
	MassEarth    float64          `json:"mass_earth"`
	RadiusEarth  float64          `json:"radius_earth"`
	Density      float64          `json:"density"`
	SurfaceTemp  float64          `json:"surface_temp_k"`
	Eccentricity float64          `json:"eccentricity"`
	Inclination  float64          `json:"inclination_deg"`
	Moons        int              `json:"moons"`
}

// AsteroidBelt is a belt occupying one orbit.
type AsteroidBelt struct {
	OrbitIndex   int     `json:"orbit_index"`
	DistanceAU   float64 `json:"distance_au"`
	WidthAU      float64 `json:"width_au"`
	MassEarth    float64 `json:"mass_earth"`
	Eccentricity float64 `json:"eccentricity"`
}

// PlanetGenerator details planet orbits.
type PlanetGenerator struct {
	roll *roll.Source
}

func NewPlanetGenerator(src *roll.Source) *PlanetGenerator {
	return &PlanetGenerator{roll: src}
}

// Generate details a planet from its orbit candidate. Density is re-derived
// from the assigned type so the visible body matches its class; radius
// follows from mass and density.
func (g *PlanetGenerator) Generate(index int, o orbit.Orbit) Planet {
	density := typeDensity(o.Type) * g.roll.Uniform(0.9, 1.1)

	// Earth radii from mass (Earth masses) and density relative to Earth.
	radius := math.Cbrt(o.Mass * 5.51 / density)

	surface := o.Temperature
	if o.Type == orbit.TypeGreenhouse {
		surface *= g.roll.Uniform(1.5, 2.5)
	}

	moons := 0
	if o.HasMoons {
		moons = int(g.roll.Dice(1, moonDie(o.Mass), 0))
	}

	return Planet{
		OrbitIndex:   index,
		Type:         o.Type,
		DistanceAU:   o.Distance,
		MassEarth:    o.Mass,
		RadiusEarth:  radius,
		Density:      density,
		SurfaceTemp:  surface,
		Eccentricity: o.Eccentricity,
		Inclination:  o.Inclination,
		Moons:        moons,
	}
}

func moonDie(mass float64) int {
	switch {
	case mass < 1:
		return 2
	case mass < 10:
		return 4
	default:
		return 12
	}
}

func typeDensity(t orbit.PlanetType) float64 {
	switch t {
	case orbit.TypeStrippedCore:
		return 8.0
	case orbit.TypeCarbon:
		return 5.8
	case orbit.TypeAsteroid, orbit.TypeDwarf, orbit.TypeVolcanic:
		return 5.0
	case orbit.TypeTerran, orbit.TypeArid, orbit.TypeBarren, orbit.TypeGreenhouse, orbit.TypeSuperEarth:
		return 5.3
	case orbit.TypeOcean:
		return 4.0
	case orbit.TypeIce, orbit.TypeFrozen, orbit.TypeIceDwarf:
		return 2.0
	case orbit.TypeIceGiant, orbit.TypeHotNeptune, orbit.TypeMiniNeptune:
		return 1.6
	default:
		// Gas giants.
		return 1.3
	}
}

// BeltGenerator details asteroid-belt orbits.
type BeltGenerator struct {
	roll *roll.Source
}

func NewBeltGenerator(src *roll.Source) *BeltGenerator {
	return &BeltGenerator{roll: src}
}

// Generate details a belt from its orbit candidate.
func (g *BeltGenerator) Generate(index int, o orbit.Orbit) AsteroidBelt {
	return AsteroidBelt{
		OrbitIndex:   index,
		DistanceAU:   o.Distance,
		WidthAU:      o.Distance * g.roll.Uniform(0.05, 0.3),
		MassEarth:    o.Mass,
		Eccentricity: o.Eccentricity,
	}
}
