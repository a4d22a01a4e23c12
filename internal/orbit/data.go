package orbit

import (
	"math"

	"starforge-server/internal/roll"
	"starforge-server/internal/zone"
)

// massEntry is one weighted sub-range of a zone's planet-mass table,
// expressed as a dice roll: Count dice with Sides sides, plus Offset, times
// Multiplier Earth masses.
type massEntry struct {
	Weight     int
	Count      int
	Sides      int
	Offset     float64
	Multiplier float64
}

// massTables gives each zone its own statistical shape, not just its own
// mean: epistellar and outer zones skew toward giants, the habitable zone
// toward terrestrial masses.
var massTables = map[zone.Kind][]massEntry{
	zone.Epistellar: {
		{Weight: 40, Count: 2, Sides: 6, Offset: 0, Multiplier: 0.05},
		{Weight: 35, Count: 3, Sides: 6, Offset: 2, Multiplier: 1.0},
		{Weight: 25, Count: 2, Sides: 10, Offset: 30, Multiplier: 10.0},
	},
	zone.Inner: {
		{Weight: 50, Count: 2, Sides: 6, Offset: 0, Multiplier: 0.1},
		{Weight: 30, Count: 2, Sides: 8, Offset: 0, Multiplier: 0.5},
		{Weight: 15, Count: 1, Sides: 6, Offset: 0, Multiplier: 2.0},
		{Weight: 5, Count: 2, Sides: 6, Offset: 10, Multiplier: 5.0},
	},
	zone.Habitable: {
		{Weight: 45, Count: 2, Sides: 6, Offset: 0, Multiplier: 0.15},
		{Weight: 35, Count: 3, Sides: 6, Offset: 0, Multiplier: 0.3},
		{Weight: 15, Count: 2, Sides: 6, Offset: 0, Multiplier: 1.5},
		{Weight: 5, Count: 1, Sides: 4, Offset: 0, Multiplier: 10.0},
	},
	zone.Outer: {
		{Weight: 30, Count: 2, Sides: 6, Offset: 0, Multiplier: 0.2},
		{Weight: 30, Count: 2, Sides: 6, Offset: 0, Multiplier: 5.0},
		{Weight: 25, Count: 3, Sides: 6, Offset: 10, Multiplier: 10.0},
		{Weight: 15, Count: 2, Sides: 10, Offset: 20, Multiplier: 15.0},
	},
	zone.FarOuter: {
		{Weight: 40, Count: 2, Sides: 6, Offset: 0, Multiplier: 0.05},
		{Weight: 30, Count: 2, Sides: 6, Offset: 0, Multiplier: 3.0},
		{Weight: 20, Count: 2, Sides: 8, Offset: 10, Multiplier: 8.0},
		{Weight: 10, Count: 1, Sides: 6, Offset: 1, Multiplier: 0.5},
	},
}

// beltChance is the probability an accepted orbit hosts an asteroid belt
// instead of a planet, per zone.
func beltChance(k zone.Kind) float64 {
	switch k {
	case zone.Inner:
		return 0.05
	case zone.Habitable:
		return 0.01
	case zone.Outer:
		return 0.15
	case zone.FarOuter:
		return 0.20
	}
	return 0.10
}

// planetMass draws a planet mass in Earth masses from the zone's weighted
// table, with a little variation noise on top of the dice shape.
func planetMass(src *roll.Source, k zone.Kind) float64 {
	table, ok := massTables[k]
	if !ok {
		table = massTables[zone.Inner]
	}

	weights := make([]int, len(table))
	for i, e := range table {
		weights[i] = e.Weight
	}
	e := table[src.Weighted(weights)]

	mass := src.Dice(e.Count, e.Sides, e.Offset) * e.Multiplier
	mass *= src.Uniform(0.9, 1.1)
	if mass < 0.001 {
		mass = 0.001
	}
	return mass
}

// moonChance is the probability a planet of the given mass retains moons,
// stepped over five mass tiers and scaled down around more massive stars
// whose tides strip satellites.
func moonChance(planetMass, stellarMass float64) float64 {
	var base float64
	switch {
	case planetMass < 0.1:
		base = 0.05
	case planetMass < 1:
		base = 0.35
	case planetMass < 10:
		base = 0.65
	case planetMass < 100:
		base = 0.80
	default:
		base = 0.95
	}
	return base / math.Max(1, math.Sqrt(math.Max(stellarMass, 0)))
}

// eccentricity draws an orbital eccentricity. Belts sit in stirred-up bands;
// planets are mostly near-circular with the occasional excited orbit.
func eccentricity(src *roll.Source, kind BodyKind) float64 {
	if kind == BodyAsteroidBelt {
		return src.Uniform(0.1, 0.3)
	}
	if src.Chance(0.1) {
		return src.Uniform(0.1, 0.5)
	}
	return src.Uniform(0.01, 0.1)
}

// inclination draws an orbital inclination in degrees.
func inclination(src *roll.Source) float64 {
	if src.Chance(0.05) {
		return src.Uniform(10, 30)
	}
	return src.Uniform(0, 10)
}

// densityEstimate returns a rough bulk density in g/cm³ from mass and zone,
// with ±15% noise. Small inner bodies are rock and iron; the mass curve bends
// toward gas as bodies grow, and volatiles lighten everything past the frost
// line.
func densityEstimate(src *roll.Source, mass float64, insideFrost bool) float64 {
	var base float64
	switch {
	case mass < 2:
		base = 5.5
	case mass < 10:
		base = 4.0
	case mass < 50:
		base = 2.0
	default:
		base = 1.3
	}
	if !insideFrost {
		base -= 1.5
		if base < 0.7 {
			base = 0.7
		}
	}
	return base * src.Uniform(0.85, 1.15)
}

// waterContent draws a water mass fraction for a planet by zone.
func waterContent(src *roll.Source, k zone.Kind) float64 {
	switch k {
	case zone.Epistellar:
		return src.Uniform(0, 0.05)
	case zone.Inner:
		return src.Uniform(0, 0.2)
	case zone.Habitable:
		return src.Uniform(0, 0.9)
	case zone.Outer:
		return src.Uniform(0.1, 0.6)
	default:
		return src.Uniform(0.3, 0.9)
	}
}

// classifyPlanet decides a planet's composition class from its mass (Earth
// masses), estimated density, equilibrium temperature, water fraction and
// which side of the frost line it formed on. Extremes are special-cased
// first; the remainder falls through a mass/frost-line matrix.
func classifyPlanet(mass, density, temperature, water float64, insideFrost bool) PlanetType {
	switch {
	case mass < 0.02:
		return TypeAsteroid
	case mass < 0.1:
		if insideFrost {
			return TypeDwarf
		}
		return TypeIceDwarf
	case temperature > 1000 && mass < 2:
		return TypeVolcanic
	case density > 7 && mass < 10:
		return TypeStrippedCore
	case density > 5.2 && water < 0.02 && mass < 10 && !insideFrost:
		return TypeCarbon
	}

	switch {
	case mass >= 300:
		return TypeSuperJupiter
	case mass >= 50:
		if insideFrost {
			return TypeHotJupiter
		}
		return TypeGasGiant
	case mass >= 10:
		if insideFrost {
			return TypeHotNeptune
		}
		return TypeIceGiant
	case mass >= 2:
		if water > 0.7 {
			return TypeMiniNeptune
		}
		return TypeSuperEarth
	}

	if insideFrost {
		switch {
		case water > 0.7:
			return TypeOcean
		case water > 0.3:
			if temperature >= 240 && temperature <= 330 {
				return TypeTerran
			}
			if temperature > 330 {
				return TypeGreenhouse
			}
			return TypeIce
		case water > 0.05:
			return TypeArid
		default:
			return TypeBarren
		}
	}

	if water > 0.5 {
		return TypeIce
	}
	return TypeFrozen
}
