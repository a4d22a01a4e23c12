package orbit

import (
	"log/slog"
	"math"

	"starforge-server/internal/roll"
	"starforge-server/internal/zone"
)

const (
	// EarthMassesPerSolar is the fixed reference mass used when computing
	// Hill radii of already-placed orbits.
	EarthMassesPerSolar = 332946.0

	// negligibleCompanion is the companion mass in solar masses below
	// which a star is treated as having no meaningful companion.
	negligibleCompanion = 0.001

	// maxCandidates caps the Titius-Bode sequence per generation run.
	maxCandidates = 15

	// tbBase and tbStep are the a and b of the a + b·2ⁿ candidate
	// sequence, in AU.
	tbBase = 0.4
	tbStep = 0.3

	// defaultAlbedo is the bond albedo assumed for equilibrium
	// temperatures unless a body generator overrides it.
	defaultAlbedo = 0.3
)

// StarParams are the stellar properties the generator needs from a star or
// synthetic combined star: mass in solar masses, radius in solar radii,
// luminosity in solar luminosities.
type StarParams struct {
	Mass       float64
	Radius     float64
	Luminosity float64
}

// Generator proposes and filters orbits for stars and binary barycenters.
// All stochastic choices route through the shared roll source in a fixed
// order, so a given seed reproduces the same orbit lists.
type Generator struct {
	roll   *roll.Source
	logger *slog.Logger
}

func NewGenerator(src *roll.Source, logger *slog.Logger) *Generator {
	return &Generator{
		roll:   src,
		logger: logger.With("component", "orbit_generator"),
	}
}

// HillRadius is the radius in AU within which a star of the given mass
// dominates over a companion at the given separation. A negligible companion
// substitutes a wide cap standing in for "no meaningful companion".
func HillRadius(mass, companionMass, separation float64) float64 {
	if companionMass < negligibleCompanion {
		return math.Sqrt(math.Max(mass, 0)) * 40
	}
	return separation * math.Cbrt(mass/(3*companionMass))
}

// EquilibriumTemperature is the blackbody temperature in kelvin at the given
// distance (AU) from a source of the given luminosity (solar), for a bond
// albedo.
func EquilibriumTemperature(luminosity, distance, albedo float64) float64 {
	if distance <= 0 || luminosity <= 0 {
		return 0
	}
	return 278.3 * math.Pow((1-albedo)*luminosity, 0.25) / math.Sqrt(distance)
}

// Circumstellar generates the orbit list for a single star, optionally
// perturbed by a companion of the given mass (solar masses) at the given
// separation (AU). companionMass below the negligible threshold means the
// star is effectively alone.
func (g *Generator) Circumstellar(star StarParams, zones zone.OrbitalZones, companionMass, separation float64) []Orbit {
	radiusAU := star.Radius * zone.SolarRadiusAU

	minDist := math.Max(zone.RocheLimit(star.Radius), zones.EpistellarInner)
	hill := HillRadius(star.Mass, companionMass, separation)
	maxDist := hill * 0.9
	if companionMass >= negligibleCompanion {
		maxDist = hill * 0.3
	}

	return g.generate(band{
		min:        minDist,
		max:        maxDist,
		zones:      zones,
		hostMass:   star.Mass,
		radiusAU:   radiusAU,
		luminosity: star.Luminosity,
	})
}

// Circumbinary generates orbits around a pair's barycenter. Masses in solar
// masses, radii in solar radii, separation in AU. Returns an empty list when
// the components' Hill spheres do not overlap or when no stable band exists;
// a pair may legitimately host nothing.
func (g *Generator) Circumbinary(zones zone.OrbitalZones, mass1, mass2, separation, radius1, radius2, totalLuminosity float64) []Orbit {
	hill1 := HillRadius(mass1, mass2, separation)
	hill2 := HillRadius(mass2, mass1, separation)
	if hill1+hill2 <= separation {
		return nil
	}

	minDist := math.Max(2.5*separation, zones.EpistellarInner)
	minDist = math.Max(minDist, zone.RocheLimit(radius1))
	minDist = math.Max(minDist, zone.RocheLimit(radius2))
	maxDist := 0.2 * math.Min(hill1, hill2)
	if minDist >= maxDist {
		return nil
	}

	return g.generate(band{
		min:          minDist,
		max:          maxDist,
		zones:        zones,
		hostMass:     mass1 + mass2,
		radiusAU:     math.Max(radius1, radius2) * zone.SolarRadiusAU,
		luminosity:   totalLuminosity,
		circumbinary: true,
	})
}

// band is a resolved safe orbital-distance band plus the host properties the
// candidate filter needs.
type band struct {
	min, max     float64
	zones        zone.OrbitalZones
	hostMass     float64
	radiusAU     float64
	luminosity   float64
	circumbinary bool
}

func (g *Generator) generate(b band) []Orbit {
	if b.min >= b.max {
		return nil
	}

	a, step := tbBase, tbStep
	if b.circumbinary {
		a *= 1.5
		step *= 1.5
	}

	// Start the sequence at the first term inside the band.
	n := 0
	for a+step*math.Pow(2, float64(n)) < b.min && n < 64 {
		n++
	}

	var orbits []Orbit
	for candidates := 0; candidates < maxCandidates; n++ {
		dist := a + step*math.Pow(2, float64(n))
		if dist > b.max {
			break
		}
		candidates++

		if dist <= 1.1*b.radiusAU {
			continue
		}
		if !g.stableAgainst(orbits, dist, b.hostMass) {
			continue
		}
		if !g.roll.Chance(g.acceptProbability(dist, b)) {
			continue
		}

		orbits = append(orbits, g.populate(dist, b))
	}

	g.logger.Debug("Orbit band resolved",
		"min_au", b.min,
		"max_au", b.max,
		"circumbinary", b.circumbinary,
		"accepted", len(orbits),
	)
	return orbits
}

// stableAgainst checks a candidate distance against the two most recently
// accepted orbits: the candidate must clear 8 Hill radii computed from the
// earlier orbit's mass at its own distance.
func (g *Generator) stableAgainst(accepted []Orbit, dist, hostMass float64) bool {
	start := len(accepted) - 2
	if start < 0 {
		start = 0
	}
	for _, o := range accepted[start:] {
		oh := o.Distance * math.Cbrt(o.Mass/(3*EarthMassesPerSolar*math.Max(hostMass, negligibleCompanion)))
		if math.Abs(dist-o.Distance) < 8*oh {
			return false
		}
	}
	return true
}

// acceptProbability is the stochastic keep-rate for a stable candidate:
// 0.7 base, scaled down for circumbinary runs and modulated by where the
// candidate sits relative to a stellar-radius-scaled threshold.
func (g *Generator) acceptProbability(dist float64, b band) float64 {
	p := 0.7
	if b.circumbinary {
		p *= 0.6
	}

	threshold := b.radiusAU * 100
	if dist > threshold*10 {
		p *= 0.8
	} else if dist < threshold {
		p *= 1.1
	}
	return p
}

// populate turns an accepted distance into a full orbit candidate: body
// kind, mass, type, moon flag, eccentricity, inclination and temperature.
func (g *Generator) populate(dist float64, b band) Orbit {
	zk := b.zones.Classify(dist)
	insideFrost := b.zones.FrostLine < 0 || dist < b.zones.FrostLine

	o := Orbit{
		Distance:    dist,
		Zone:        zk,
		ZoneName:    zk.String(),
		Temperature: EquilibriumTemperature(b.luminosity, dist, defaultAlbedo),
	}

	if g.roll.Chance(beltChance(zk)) {
		o.Kind = BodyAsteroidBelt
		o.Mass = g.roll.Uniform(0.001, 0.1)
	} else {
		o.Kind = BodyPlanet
		o.Mass = planetMass(g.roll, zk)
		density := densityEstimate(g.roll, o.Mass, insideFrost)
		water := waterContent(g.roll, zk)
		o.Type = classifyPlanet(o.Mass, density, o.Temperature, water, insideFrost)
		o.HasMoons = g.roll.Chance(moonChance(o.Mass, b.hostMass))
	}

	o.Eccentricity = eccentricity(g.roll, o.Kind)
	if b.circumbinary {
		o.Eccentricity *= 0.6
	}
	o.Inclination = inclination(g.roll)

	return o
}
