package zone

import "math"

// SolarRadiusAU converts a radius in solar radii to AU.
const SolarRadiusAU = 0.00465047

// solarSurfaceTemp is the effective temperature of the Sun in kelvin, used
// to scale the system limit for hotter and cooler stars.
const solarSurfaceTemp = 5778.0

// RocheLimit is the minimum safe orbital distance in AU before tidal forces
// disrupt an orbiting body, for a star of the given radius in solar radii.
// Uses the fluid-body approximation with equal densities.
func RocheLimit(radiusSolar float64) float64 {
	return 2.46 * radiusSolar * SolarRadiusAU
}

// ForStar computes the orbital zones of a single star from its mass (solar
// masses), radius (solar radii), luminosity (solar luminosities) and surface
// temperature (kelvin).
func ForStar(mass, radius, luminosity, temperature float64) OrbitalZones {
	sqrtL := math.Sqrt(math.Max(luminosity, 0))
	radiusAU := radius * SolarRadiusAU

	// Radiation-pressure floor for the innermost stable material.
	epiInner := math.Max(RocheLimit(radius), 0.004*sqrtL)
	if epiInner > radiusAU {
		// Keep the boundary ordering intact for very compact or very
		// luminous stars.
		epiInner = radiusAU
	}

	tempScale := 1.0
	if temperature > 0 {
		tempScale = math.Sqrt(temperature / solarSurfaceTemp)
	}

	return OrbitalZones{
		EpistellarInner:    epiInner,
		EpistellarOuter:    radiusAU,
		InnerZoneStart:     radiusAU,
		HabitableZoneInner: 0.95 * sqrtL,
		HabitableZoneOuter: 1.37 * sqrtL,
		FrostLine:          4.85 * sqrtL,
		SystemLimit:        50 * math.Cbrt(math.Max(mass, 0)) * tempScale,
	}
}

// ForPair computes circumbinary zones for a binary pair from the combined
// mass and luminosity of both components and their separation in AU. This is
// the wide/general case; close binaries instead compute zones for a synthetic
// combined star.
func ForPair(totalMass, totalLuminosity, separation float64) OrbitalZones {
	sqrtL := math.Sqrt(math.Max(totalLuminosity, 0))

	epiOuter := 4 * separation
	habInner := math.Max(0.95*sqrtL, epiOuter)
	habOuter := 1.37 * sqrtL
	if habOuter < habInner {
		// The floor pushed the inner bound past the outer one: no
		// habitable region survives around this barycenter.
		habInner = Unavailable
		habOuter = Unavailable
	}

	return OrbitalZones{
		EpistellarInner:    3 * separation,
		EpistellarOuter:    epiOuter,
		InnerZoneStart:     epiOuter,
		HabitableZoneInner: habInner,
		HabitableZoneOuter: habOuter,
		FrostLine:          4.85 * sqrtL,
		SystemLimit:        separation * 0.2 * math.Min(100, math.Cbrt(math.Max(totalMass, 0))),
	}
}

// Simplified is the flat circumbinary estimate used when one side of a pair
// is itself a pair. It is a deliberate approximation carried over from the
// original design, not a physically derived formula; changing it would
// silently change generated output.
func Simplified(separation float64) OrbitalZones {
	return OrbitalZones{
		EpistellarInner:    3 * separation,
		EpistellarOuter:    4 * separation,
		InnerZoneStart:     4 * separation,
		HabitableZoneInner: Unavailable,
		HabitableZoneOuter: Unavailable,
		FrostLine:          separation * 5,
		SystemLimit:        separation * 5,
	}
}

// AdjustForInterference clamps a star's own zones when a close companion
// perturbs them. companionDistance is the separation to the companion in AU.
//
// Once the clamp value falls below the habitable inner bound, both habitable
// bounds are marked unavailable together. The outer bound is cleared even
// when only the inner bound met the clamp condition; this reproduces the
// original generator's behavior exactly so that a given seed keeps producing
// the same galaxy.
func (z *OrbitalZones) AdjustForInterference(companionDistance float64) {
	limit := companionDistance * 0.3

	if z.SystemLimit > limit {
		z.SystemLimit = limit
	}
	if limit < z.FrostLine {
		z.FrostLine = limit
	}
	if z.HabitableAvailable() {
		if limit < z.HabitableZoneOuter {
			z.HabitableZoneOuter = limit
		}
		if limit < z.HabitableZoneInner {
			z.HabitableZoneInner = Unavailable
			z.HabitableZoneOuter = Unavailable
		}
	}
}
