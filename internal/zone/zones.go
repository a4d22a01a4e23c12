// Package zone computes the orbital-zone boundaries around stars and binary
// barycenters, and classifies orbital distances against them.
package zone

// Unavailable marks a boundary that does not exist for the body in question,
// e.g. a habitable zone wiped out by binary interference. Negative so zone
// structs survive JSON round-trips, unlike NaN.
const Unavailable = -1.0

// Kind classifies an orbital distance relative to a star's radiation
// profile, ordered by increasing distance.
type Kind int

const (
	Epistellar Kind = iota
	Inner
	Habitable
	Outer
	FarOuter
)

func (k Kind) String() string {
	switch k {
	case Epistellar:
		return "epistellar"
	case Inner:
		return "inner"
	case Habitable:
		return "habitable"
	case Outer:
		return "outer"
	case FarOuter:
		return "far_outer"
	}
	return "unknown"
}

// OrbitalZones holds the zone boundaries in AU for a star or a binary pair's
// circumbinary region. In the nominal case the boundaries are non-decreasing
// in declaration order; a boundary equal to Unavailable is excluded from that
// ordering.
type OrbitalZones struct {
	EpistellarInner    float64 `json:"epistellar_inner"`
	EpistellarOuter    float64 `json:"epistellar_outer"`
	InnerZoneStart     float64 `json:"inner_zone_start"`
	HabitableZoneInner float64 `json:"habitable_zone_inner"`
	HabitableZoneOuter float64 `json:"habitable_zone_outer"`
	FrostLine          float64 `json:"frost_line"`
	SystemLimit        float64 `json:"system_limit"`
}

// HabitableAvailable reports whether a habitable zone survives for this body.
func (z OrbitalZones) HabitableAvailable() bool {
	return z.HabitableZoneInner >= 0 && z.HabitableZoneOuter >= 0
}

// Classify maps an orbital distance to its zone.
func (z OrbitalZones) Classify(distance float64) Kind {
	switch {
	case distance <= z.EpistellarOuter:
		return Epistellar
	case z.HabitableAvailable() && distance < z.HabitableZoneInner:
		return Inner
	case z.HabitableAvailable() && distance <= z.HabitableZoneOuter:
		return Habitable
	case !z.HabitableAvailable() && distance <= z.FrostLine:
		return Inner
	case distance <= z.FrostLine:
		return Outer
	default:
		return FarOuter
	}
}
