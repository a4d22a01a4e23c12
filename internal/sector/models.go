package sector

import (
	"fmt"
	"sort"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/system"
)

// Sector is one cube of the galactic grid together with the star systems
// generated inside it. Immutable after generation except for the distance
// map, which can be rebuilt after deserialization.
type Sector struct {
	ID          string               `json:"id"`
	DisplayName string               `json:"display_name"`
	Coord       galaxy.Coordinate    `json:"coord"`
	Systems     []*system.StarSystem `json:"systems"`

	// Distances maps "idA|idB" (ids in lexical order) to the distance in
	// light years between the two systems.
	Distances map[string]float64 `json:"distances,omitempty"`
}

// DistanceKey builds the canonical key for a pair of system ids.
func DistanceKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// RebuildDistances recomputes the all-pairs distance map from the stored
// system positions. Idempotent: rebuilding from the same positions always
// reproduces the same map, including after a reload from persistence.
func (s *Sector) RebuildDistances() {
	s.Distances = make(map[string]float64, len(s.Systems)*(len(s.Systems)-1)/2)

	sorted := make([]*system.StarSystem, len(s.Systems))
	copy(sorted, s.Systems)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			key := DistanceKey(sorted[i].ID, sorted[j].ID)
			s.Distances[key] = sorted[i].Position.DistanceTo(sorted[j].Position)
		}
	}
}

// DistanceBetween looks up the stored distance between two systems.
func (s *Sector) DistanceBetween(a, b string) (float64, bool) {
	d, ok := s.Distances[DistanceKey(a, b)]
	return d, ok
}

// RebuildIndexes restores every system's id lookup maps after the sector has
// been deserialized.
func (s *Sector) RebuildIndexes() {
	for _, sys := range s.Systems {
		sys.RebuildIndex()
	}
}

// CanonicalID encodes a grid coordinate into the sector's storage and lookup
// key. Every component carries an explicit sign, so the concatenation stays
// unambiguous at any magnitude and distinct coordinates never share an id.
// The human-facing spherical name lives in DisplayName; it truncates angles
// and distance and is not unique far from the galactic center.
func CanonicalID(coord galaxy.Coordinate) string {
	return fmt.Sprintf("SEC%+04d%+04d%+04d", coord.X, coord.Y, coord.Z)
}

// systemID derives the composite id of a system from its sector and grid
// offset within it.
func systemID(sectorID string, cell galaxy.Coordinate) string {
	return fmt.Sprintf("%s-%02d%02d%02d", sectorID, cell.X, cell.Y, cell.Z)
}
