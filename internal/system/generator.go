package system

import (
	"fmt"
	"log/slog"

	"starforge-server/internal/body"
	"starforge-server/internal/orbit"
	"starforge-server/internal/roll"
	"starforge-server/internal/star"
	"starforge-server/internal/zone"
)

// closeBinaryThreshold is the separation in AU below which a pair is treated
// as a close binary: the components merge into one synthetic star for
// circumbinary purposes and stop hosting orbits of their own.
const closeBinaryThreshold = 10.0

// Config tunes system generation.
type Config struct {
	// StarCountWeights is the discrete distribution of stars per system:
	// index i carries the weight of i+1 stars.
	StarCountWeights []int
}

// DefaultStarCountWeights roughly follows observed multiplicity: mostly
// singles, binaries common, higher orders rare.
var DefaultStarCountWeights = []int{55, 30, 10, 5}

// Generator populates freshly created StarSystems: stars, hierarchy, zones,
// orbits and bodies. Generation is synchronous and consumes the roll source
// in a fixed order (stars, hierarchy, zones, orbits, bodies), which is what
// makes a seed reproduce an identical system.
type Generator struct {
	roll    *roll.Source
	stars   *star.Generator
	orbits  *orbit.Generator
	planets *body.PlanetGenerator
	belts   *body.BeltGenerator
	cfg     Config
	logger  *slog.Logger
}

func NewGenerator(src *roll.Source, cfg Config, logger *slog.Logger) *Generator {
	if len(cfg.StarCountWeights) == 0 {
		cfg.StarCountWeights = DefaultStarCountWeights
	}

	return &Generator{
		roll:    src,
		stars:   star.NewGenerator(src),
		orbits:  orbit.NewGenerator(src, logger),
		planets: body.NewPlanetGenerator(src),
		belts:   body.NewBeltGenerator(src),
		cfg:     cfg,
		logger:  logger.With("component", "system_generator"),
	}
}

// Generate fills a StarSystem in place.
func (g *Generator) Generate(sys *StarSystem) {
	logger := g.logger.With("operation", "generate_system", "system_id", sys.ID)

	count := g.roll.Weighted(g.cfg.StarCountWeights) + 1
	for i := 0; i < count; i++ {
		attrs := g.stars.Generate()
		sys.AddStar(&Star{
			ID:            fmt.Sprintf("%s-star-%d", sys.ID, i),
			SystemID:      sys.ID,
			Mass:          attrs.Mass,
			Radius:        attrs.Radius,
			Luminosity:    attrs.Luminosity,
			Temperature:   attrs.Temperature,
			SpectralClass: attrs.SpectralClass,
		})
	}

	sys.RootPairID = g.organize(sys, sys.Stars)

	for _, st := range sys.Stars {
		st.Zones = zone.ForStar(st.Mass, st.Radius, st.Luminosity, st.Temperature)
	}

	// Pairs were registered bottom-up, so a nested pair's own zones exist
	// before its enclosing pair adjusts them.
	absorbed := make(map[string]bool)
	for _, p := range sys.Pairs {
		g.computePairZones(sys, p, absorbed)
	}

	for _, st := range sys.Stars {
		if absorbed[st.ID] {
			continue
		}
		companionMass, separation := g.companionOf(sys, st)
		st.Orbits = g.orbits.Circumstellar(
			orbit.StarParams{Mass: st.Mass, Radius: st.Radius, Luminosity: st.Luminosity},
			st.Zones, companionMass, separation,
		)
		st.Planets, st.Belts = g.populateBodies(st.Orbits)
	}

	for _, p := range sys.Pairs {
		m1 := sys.CombinedMass(p.Primary)
		m2 := sys.CombinedMass(p.Secondary)
		p.CircumbinaryOrbits = g.orbits.Circumbinary(
			p.CircumbinaryZones,
			m1, m2, p.SeparationDistance,
			sys.MaxRadius(p.Primary), sys.MaxRadius(p.Secondary),
			sys.CombinedLuminosity(p.Primary)+sys.CombinedLuminosity(p.Secondary),
		)
		p.Planets, p.Belts = g.populateBodies(p.CircumbinaryOrbits)
	}

	logger.Debug("System generated",
		"stars", len(sys.Stars),
		"pairs", len(sys.Pairs),
		"root_pair", sys.RootPairID,
	)
}

// computePairZones applies the binary-pair zone policy. Hierarchies deeper
// than a simple pair fall back to the flat circumbinary estimate; close
// binaries compute zones for a synthetic combined star and absorb their
// member stars; wide binaries get true circumbinary zones. In every case the
// components' own zones are adjusted for the companion's interference.
func (g *Generator) computePairZones(sys *StarSystem, p *BinaryPair, absorbed map[string]bool) {
	deep := p.Primary.Kind == ComponentPair || p.Secondary.Kind == ComponentPair

	totalMass := sys.CombinedMass(p.Primary) + sys.CombinedMass(p.Secondary)
	totalLum := sys.CombinedLuminosity(p.Primary) + sys.CombinedLuminosity(p.Secondary)

	switch {
	case deep:
		p.CircumbinaryZones = zone.Simplified(p.SeparationDistance)
	case p.SeparationDistance < closeBinaryThreshold:
		// Synthetic combined star: summed luminosity and mass, max of
		// temperature and radius.
		combinedRadius := maxOf(sys.MaxRadius(p.Primary), sys.MaxRadius(p.Secondary))
		combinedTemp := maxOf(sys.MaxTemperature(p.Primary), sys.MaxTemperature(p.Secondary))
		p.CircumbinaryZones = zone.ForStar(totalMass, combinedRadius, totalLum, combinedTemp)

		if p.Primary.Kind == ComponentStar {
			absorbed[p.Primary.ID] = true
		}
		if p.Secondary.Kind == ComponentStar {
			absorbed[p.Secondary.ID] = true
		}
	default:
		p.CircumbinaryZones = zone.ForPair(totalMass, totalLum, p.SeparationDistance)
	}

	g.interfere(sys, p.Primary, p.SeparationDistance)
	g.interfere(sys, p.Secondary, p.SeparationDistance)
}

// interfere clamps a component's own zones against its companion across the
// pair separation. Missing ids are reported and skipped; one broken
// reference must not abort the sector.
func (g *Generator) interfere(sys *StarSystem, c Component, separation float64) {
	switch c.Kind {
	case ComponentStar:
		st := sys.StarByID(c.ID)
		if st == nil {
			g.logger.Warn("Unknown star referenced by pair", "star_id", c.ID, "system_id", sys.ID)
			return
		}
		st.Zones.AdjustForInterference(separation)
	case ComponentPair:
		p := sys.PairByID(c.ID)
		if p == nil {
			g.logger.Warn("Unknown pair referenced by pair", "pair_id", c.ID, "system_id", sys.ID)
			return
		}
		p.CircumbinaryZones.AdjustForInterference(separation)
	}
}

// companionOf finds the aggregated mass across the pair a star is a direct
// member of, plus the pair separation. A star outside any pair has no
// meaningful companion.
func (g *Generator) companionOf(sys *StarSystem, st *Star) (mass, separation float64) {
	for _, p := range sys.Pairs {
		if p.Primary.Kind == ComponentStar && p.Primary.ID == st.ID {
			return sys.CombinedMass(p.Secondary), p.SeparationDistance
		}
		if p.Secondary.Kind == ComponentStar && p.Secondary.ID == st.ID {
			return sys.CombinedMass(p.Primary), p.SeparationDistance
		}
	}
	return 0, 0
}

// populateBodies hands accepted orbits to the body generators.
func (g *Generator) populateBodies(orbits []orbit.Orbit) ([]body.Planet, []body.AsteroidBelt) {
	var planets []body.Planet
	var belts []body.AsteroidBelt

	for i, o := range orbits {
		switch o.Kind {
		case orbit.BodyAsteroidBelt:
			belts = append(belts, g.belts.Generate(i, o))
		default:
			planets = append(planets, g.planets.Generate(i, o))
		}
	}
	return planets, belts
}
