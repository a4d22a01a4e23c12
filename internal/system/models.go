package system

import (
	"math"

	"starforge-server/internal/body"
	"starforge-server/internal/orbit"
	"starforge-server/internal/zone"
)

// ComponentKind tags what a BinaryPair component id refers to.
type ComponentKind string

const (
	ComponentStar ComponentKind = "star"
	ComponentPair ComponentKind = "pair"
)

// Component references a star or a nested pair by id. Pairs hold these
// instead of object pointers, which is what lets hierarchies nest to
// arbitrary depth without ownership cycles.
type Component struct {
	Kind ComponentKind `json:"kind"`
	ID   string        `json:"id"`
}

// Position is a point in light years within the galaxy.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DistanceTo returns the Euclidean distance to another position.
func (p Position) DistanceTo(o Position) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	dz := p.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Star is one star of a system together with everything generated around it.
// Attributes are solar units; zone and orbit fields are computed once by
// their calculators and then frozen.
type Star struct {
	ID            string  `json:"id"`
	SystemID      string  `json:"system_id"`
	Mass          float64 `json:"mass"`
	Radius        float64 `json:"radius"`
	Luminosity    float64 `json:"luminosity"`
	Temperature   float64 `json:"temperature_k"`
	SpectralClass string  `json:"spectral_class"`

	Zones   zone.OrbitalZones   `json:"zones"`
	Orbits  []orbit.Orbit       `json:"orbits,omitempty"`
	Planets []body.Planet       `json:"planets,omitempty"`
	Belts   []body.AsteroidBelt `json:"belts,omitempty"`
}

// BinaryPair is one node of a system's hierarchy. Primary is the more
// massive side. Separation in AU, period in years.
type BinaryPair struct {
	ID                   string    `json:"id"`
	Primary              Component `json:"primary"`
	Secondary            Component `json:"secondary"`
	SeparationDistance   float64   `json:"separation_au"`
	OrbitalPeriod        float64   `json:"orbital_period_years"`
	PrimaryOrbitRadius   float64   `json:"primary_orbit_radius_au"`
	SecondaryOrbitRadius float64   `json:"secondary_orbit_radius_au"`

	CircumbinaryZones  zone.OrbitalZones   `json:"circumbinary_zones"`
	CircumbinaryOrbits []orbit.Orbit       `json:"circumbinary_orbits,omitempty"`
	Planets            []body.Planet       `json:"planets,omitempty"`
	Belts              []body.AsteroidBelt `json:"belts,omitempty"`
}

// StarSystem owns its stars and pairs in flat id-keyed collections; the
// hierarchy is expressed purely through Component references. RootPairID is
// empty for single-star systems.
type StarSystem struct {
	ID         string        `json:"id"`
	SectorID   string        `json:"sector_id"`
	Position   Position      `json:"position"`
	Stars      []*Star       `json:"stars"`
	Pairs      []*BinaryPair `json:"pairs,omitempty"`
	RootPairID string        `json:"root_pair_id,omitempty"`

	starIndex map[string]*Star
	pairIndex map[string]*BinaryPair
}

// NewStarSystem creates an empty system with the given composite id.
func NewStarSystem(id, sectorID string, pos Position) *StarSystem {
	return &StarSystem{
		ID:        id,
		SectorID:  sectorID,
		Position:  pos,
		starIndex: make(map[string]*Star),
		pairIndex: make(map[string]*BinaryPair),
	}
}

// AddStar registers a star in the system's arena.
func (s *StarSystem) AddStar(st *Star) {
	s.Stars = append(s.Stars, st)
	if s.starIndex == nil {
		s.starIndex = make(map[string]*Star)
	}
	s.starIndex[st.ID] = st
}

// AddPair registers a pair in the system's arena.
func (s *StarSystem) AddPair(p *BinaryPair) {
	s.Pairs = append(s.Pairs, p)
	if s.pairIndex == nil {
		s.pairIndex = make(map[string]*BinaryPair)
	}
	s.pairIndex[p.ID] = p
}

// StarByID resolves a star id. Returns nil when absent; callers degrade to a
// neutral contribution rather than abort.
func (s *StarSystem) StarByID(id string) *Star {
	return s.starIndex[id]
}

// PairByID resolves a pair id.
func (s *StarSystem) PairByID(id string) *BinaryPair {
	return s.pairIndex[id]
}

// RebuildIndex restores the id lookup maps after deserialization.
func (s *StarSystem) RebuildIndex() {
	s.starIndex = make(map[string]*Star, len(s.Stars))
	for _, st := range s.Stars {
		s.starIndex[st.ID] = st
	}
	s.pairIndex = make(map[string]*BinaryPair, len(s.Pairs))
	for _, p := range s.Pairs {
		s.pairIndex[p.ID] = p
	}
}

// Aggregate recursively combines a per-star property over a component
// subtree: stars contribute extract(star), pairs combine both sides with the
// caller-supplied reducer. Missing ids contribute zero so one broken
// reference degrades a calculation instead of aborting generation.
func (s *StarSystem) Aggregate(c Component, extract func(*Star) float64, combine func(a, b float64) float64) float64 {
	switch c.Kind {
	case ComponentStar:
		st := s.StarByID(c.ID)
		if st == nil {
			return 0
		}
		return extract(st)
	case ComponentPair:
		p := s.PairByID(c.ID)
		if p == nil {
			return 0
		}
		return combine(
			s.Aggregate(p.Primary, extract, combine),
			s.Aggregate(p.Secondary, extract, combine),
		)
	}
	return 0
}

// Property reducers for Aggregate.
func sum(a, b float64) float64   { return a + b }
func maxOf(a, b float64) float64 { return math.Max(a, b) }

// Per-star extractors for Aggregate.
func starMass(st *Star) float64       { return st.Mass }
func starRadius(st *Star) float64     { return st.Radius }
func starLuminosity(st *Star) float64 { return st.Luminosity }
func starTemp(st *Star) float64       { return st.Temperature }

// CombinedMass is the total stellar mass under a component, in solar masses.
func (s *StarSystem) CombinedMass(c Component) float64 {
	return s.Aggregate(c, starMass, sum)
}

// CombinedLuminosity is the total luminosity under a component.
func (s *StarSystem) CombinedLuminosity(c Component) float64 {
	return s.Aggregate(c, starLuminosity, sum)
}

// MaxRadius is the largest stellar radius under a component, in solar radii.
func (s *StarSystem) MaxRadius(c Component) float64 {
	return s.Aggregate(c, starRadius, maxOf)
}

// MaxTemperature is the hottest surface temperature under a component.
func (s *StarSystem) MaxTemperature(c Component) float64 {
	return s.Aggregate(c, starTemp, maxOf)
}
