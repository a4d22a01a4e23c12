package sector

import (
	"fmt"
	"log/slog"
	"math"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/roll"
	"starforge-server/internal/shared/errors"
	"starforge-server/internal/system"
)

// Params configures sector generation. Distances are in light years.
type Params struct {
	GalaxyType     galaxy.Type
	BaseDensity    float64
	AnomalyChance  float64
	SectorExtents  int
	CellsPerSector int
	CellSizeLY     float64
	Center         galaxy.Coordinate
}

// Validate fails fast on configuration that would make generation
// meaningless. Density zero is legitimate (an empty sector), negative is not.
func (p Params) Validate() error {
	if p.CellsPerSector <= 0 {
		return errors.Validationf("cells per sector must be positive, got %d", p.CellsPerSector)
	}
	if p.SectorExtents <= 0 {
		return errors.Validationf("sector extents must be positive, got %d", p.SectorExtents)
	}
	if p.CellSizeLY <= 0 {
		return errors.Validationf("cell size must be positive, got %f", p.CellSizeLY)
	}
	if p.BaseDensity < 0 || p.BaseDensity > 1 {
		return errors.Validationf("base density must be in [0,1], got %f", p.BaseDensity)
	}
	if p.AnomalyChance < 0 || p.AnomalyChance > 1 {
		return errors.Validationf("anomaly chance must be in [0,1], got %f", p.AnomalyChance)
	}
	return nil
}

// Generator produces fully populated sectors. One Generate call consumes the
// roll source synchronously from start to finish; parallel sector generation
// requires reseeding per sector, which the service layer takes care of.
type Generator struct {
	roll    *roll.Source
	systems *system.Generator
	params  Params
	logger  *slog.Logger
}

func NewGenerator(src *roll.Source, systems *system.Generator, params Params, logger *slog.Logger) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Generator{
		roll:    src,
		systems: systems,
		params:  params,
		logger:  logger.With("component", "sector_generator"),
	}, nil
}

// Reseed restarts the generator's roll stream. Callers that generate more
// than one sector reseed before each so sector content never depends on
// generation order.
func (g *Generator) Reseed(seed int64) {
	g.roll.Reseed(seed)
}

// Generate builds the sector at the given grid coordinate: rolls star
// presence for every cell against the density field, generates a star system
// for each hit, then precomputes the pairwise distance map.
func (g *Generator) Generate(coord galaxy.Coordinate) *Sector {
	rel := coord.Sub(g.params.Center)
	id := CanonicalID(coord)

	logger := g.logger.With("operation", "generate_sector", "sector_id", id)
	logger.Debug("Generating sector", "coord", coord, "galaxy_type", g.params.GalaxyType)

	sec := &Sector{
		ID:          id,
		DisplayName: displayName(rel, g.params.CellsPerSector, g.params.CellSizeLY),
		Coord:       coord,
	}

	cells := g.params.CellsPerSector
	for x := 0; x < cells; x++ {
		for y := 0; y < cells; y++ {
			for z := 0; z < cells; z++ {
				cell := galaxy.Coordinate{X: x, Y: y, Z: z}
				density := galaxy.Density(rel, cell, g.params.BaseDensity, g.params.GalaxyType, g.params.SectorExtents, cells)

				if g.roll.Uniform(0, 1) < density {
					sys := system.NewStarSystem(systemID(id, cell), id, g.cellPosition(rel, cell))
					g.systems.Generate(sys)
					sec.Systems = append(sec.Systems, sys)
					continue
				}

				// Reserved hook for rare anomalies. The roll keeps the
				// stream layout stable; nothing is created yet.
				if g.params.AnomalyChance > 0 {
					g.roll.Chance(g.params.AnomalyChance)
				}
			}
		}
	}

	sec.RebuildDistances()

	logger.Info("Sector generated", "systems", len(sec.Systems))
	return sec
}

// cellPosition converts a cell's grid position to light years from the
// galactic center, jittered so systems do not sit on an exact lattice.
func (g *Generator) cellPosition(rel, cell galaxy.Coordinate) system.Position {
	cells := float64(g.params.CellsPerSector)
	size := g.params.CellSizeLY

	jitter := func() float64 { return g.roll.Uniform(-0.4, 0.4) * size }

	return system.Position{
		X: (float64(rel.X)*cells+float64(cell.X))*size + jitter(),
		Y: (float64(rel.Y)*cells+float64(cell.Y))*size + jitter(),
		Z: (float64(rel.Z)*cells+float64(cell.Z))*size + jitter(),
	}
}

// displayName encodes the sector midpoint's spherical coordinates relative
// to the galactic center: azimuth and elevation in degrees, radial distance
// in light years. Truncation makes the name collide for distant sectors, so
// it is presentation only; lookups key on CanonicalID.
func displayName(rel galaxy.Coordinate, cellsPerSector int, cellSizeLY float64) string {
	sectorSize := float64(cellsPerSector) * cellSizeLY
	mx := (float64(rel.X) + 0.5) * sectorSize
	my := (float64(rel.Y) + 0.5) * sectorSize
	mz := (float64(rel.Z) + 0.5) * sectorSize

	azimuth := math.Atan2(my, mx) * 180 / math.Pi
	if azimuth < 0 {
		azimuth += 360
	}
	elevation := math.Atan2(mz, math.Hypot(mx, my)) * 180 / math.Pi
	distance := math.Sqrt(mx*mx + my*my + mz*mz)

	return fmt.Sprintf("SEC-%03d%+03d-%05d", int(azimuth), int(elevation), int(distance))
}
