// Package orbit derives stable orbital-distance bands around stars and
// binary barycenters and fills them with planet and asteroid-belt candidates.
package orbit

import "starforge-server/internal/zone"

// BodyKind distinguishes what occupies an accepted orbit.
type BodyKind string

const (
	BodyPlanet       BodyKind = "planet"
	BodyAsteroidBelt BodyKind = "asteroid_belt"
)

// PlanetType is the composition class assigned to a planet orbit. The body
// generators refine it into a fully detailed planet.
type PlanetType string

const (
	TypeAsteroid     PlanetType = "asteroid"
	TypeDwarf        PlanetType = "dwarf"
	TypeVolcanic     PlanetType = "volcanic"
	TypeStrippedCore PlanetType = "stripped_core"
	TypeCarbon       PlanetType = "carbon"
	TypeSuperJupiter PlanetType = "super_jupiter"
	TypeHotJupiter   PlanetType = "hot_jupiter"
	TypeGasGiant     PlanetType = "gas_giant"
	TypeHotNeptune   PlanetType = "hot_neptune"
	TypeIceGiant     PlanetType = "ice_giant"
	TypeMiniNeptune  PlanetType = "mini_neptune"
	TypeSuperEarth   PlanetType = "super_earth"
	TypeOcean        PlanetType = "ocean"
	TypeTerran       PlanetType = "terran"
	TypeGreenhouse   PlanetType = "greenhouse"
	TypeArid         PlanetType = "arid"
	TypeBarren       PlanetType = "barren"
	TypeIce          PlanetType = "ice"
	TypeFrozen       PlanetType = "frozen"
	TypeIceDwarf     PlanetType = "ice_dwarf"
)

// Orbit is an accepted orbit candidate. It is an ephemeral record handed to
// the body generators; distances in AU, masses in Earth masses, temperature
// in kelvin.
type Orbit struct {
	Distance     float64    `json:"distance_au"`
	Kind         BodyKind   `json:"kind"`
	Mass         float64    `json:"mass_earth"`
	Type         PlanetType `json:"type,omitempty"`
	HasMoons     bool       `json:"has_moons"`
	Eccentricity float64    `json:"eccentricity"`
	Inclination  float64    `json:"inclination_deg"`
	Temperature  float64    `json:"temperature_k"`
	Zone         zone.Kind  `json:"-"`
	ZoneName     string     `json:"zone"`
}
