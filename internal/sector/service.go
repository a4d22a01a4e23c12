package sector

import (
	"context"
	"fmt"
	"log/slog"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/shared/errors"
)

type Service struct {
	repo      *Repository
	cache     *Cache
	generator *Generator
	baseSeed  int64
	logger    *slog.Logger
}

func NewService(repo *Repository, cache *Cache, generator *Generator, baseSeed int64, logger *slog.Logger) *Service {
	logger.Debug("Initializing sector service")

	return &Service{
		repo:      repo,
		cache:     cache,
		generator: generator,
		baseSeed:  baseSeed,
		logger:    logger,
	}
}

// SeedFor derives the independent roll stream seed for one sector from the
// base galaxy seed and the sector coordinate. This per-sector partitioning
// is part of the reproducibility contract: a sector's content depends only
// on the base seed and its coordinate, never on generation order.
//
// The splitmix64 finalizer keeps mirrored coordinates from colliding, which
// matters because the grid is centered on the origin.
func SeedFor(baseSeed int64, coord galaxy.Coordinate) int64 {
	h := uint64(baseSeed)
	for _, v := range [3]int{coord.X, coord.Y, coord.Z} {
		h = (h ^ uint64(int64(v))) * 0x9E3779B97F4A7C15
		h = (h ^ (h >> 30)) * 0xBF58476D1CE4E5B9
		h = (h ^ (h >> 27)) * 0x94D049BB133111EB
		h ^= h >> 31
	}
	return int64(h)
}

// Generate generates the sector at the given coordinate, persists it and
// warms the cache. Generating an already-stored sector is a conflict; the
// stored galaxy is append-only.
func (s *Service) Generate(ctx context.Context, coord galaxy.Coordinate) (*Sector, error) {
	logger := s.logger.With("component", "sector_service", "operation", "generate", "coord", coord)
	logger.Debug("Generating sector")

	s.generator.Reseed(SeedFor(s.baseSeed, coord))
	sec := s.generator.Generate(coord)

	exists, err := s.repo.SectorExists(ctx, sec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing sector: %w", err)
	}
	if exists {
		return nil, errors.Conflictf("sector %s already generated", sec.ID)
	}

	if err := s.repo.CreateSector(ctx, sec, nil); err != nil {
		return nil, fmt.Errorf("failed to persist sector: %w", err)
	}
	s.cache.Set(ctx, sec)

	logger.Info("Sector generated and stored", "sector_id", sec.ID, "systems", len(sec.Systems))
	return sec, nil
}

// GetSector loads a sector, cache first.
func (s *Service) GetSector(ctx context.Context, id string) (*Sector, error) {
	if sec := s.cache.Get(ctx, id); sec != nil {
		return sec, nil
	}

	sec, err := s.repo.GetSector(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, sec)
	return sec, nil
}

// ListSectors lists stored sector summaries.
func (s *Service) ListSectors(ctx context.Context) ([]Summary, error) {
	return s.repo.ListSectors(ctx)
}
