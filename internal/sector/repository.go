package sector

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/shared/database"
	"starforge-server/internal/shared/errors"
	"starforge-server/internal/system"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing sector repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor(tx *database.Tx) database.Executor {
	if tx != nil {
		return tx
	}
	return r.db
}

// Summary is the lightweight listing row for a stored sector.
type Summary struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Coord       galaxy.Coordinate `json:"coord"`
	SystemCount int               `json:"system_count"`
}

// systemRow shapes one star system for the JSON batch insert.
type systemRow struct {
	ID        string          `json:"id"`
	SectorID  string          `json:"sector_id"`
	PosX      float64         `json:"pos_x"`
	PosY      float64         `json:"pos_y"`
	PosZ      float64         `json:"pos_z"`
	StarCount int             `json:"star_count"`
	Payload   json.RawMessage `json:"payload"`
}

// CreateSector stores a generated sector and all its systems. Systems are
// written in a single JSON batch insert.
func (r *Repository) CreateSector(ctx context.Context, sec *Sector, tx *database.Tx) error {
	exec := r.getExecutor(tx)

	logger := r.logger.With(
		"component", "sector_repository",
		"operation", "create_sector",
		"sector_id", sec.ID,
		"systems", len(sec.Systems),
	)
	logger.Debug("Creating sector")

	query := `
		INSERT INTO sectors (id, display_name, coord_x, coord_y, coord_z, system_count)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := exec.ExecContext(ctx, query, sec.ID, sec.DisplayName, sec.Coord.X, sec.Coord.Y, sec.Coord.Z, len(sec.Systems)); err != nil {
		logger.Error("Failed to create sector", "error", err)
		return fmt.Errorf("failed to create sector: %w", err)
	}

	if len(sec.Systems) == 0 {
		logger.Debug("Sector stored with no systems")
		return nil
	}

	rows := make([]systemRow, 0, len(sec.Systems))
	for _, sys := range sec.Systems {
		payload, err := json.Marshal(sys)
		if err != nil {
			logger.Error("Failed to marshal system payload", "error", err, "system_id", sys.ID)
			return fmt.Errorf("failed to marshal system %s: %w", sys.ID, err)
		}
		rows = append(rows, systemRow{
			ID:        sys.ID,
			SectorID:  sec.ID,
			PosX:      sys.Position.X,
			PosY:      sys.Position.Y,
			PosZ:      sys.Position.Z,
			StarCount: len(sys.Stars),
			Payload:   payload,
		})
	}

	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		logger.Error("Failed to marshal systems batch", "error", err)
		return fmt.Errorf("failed to marshal systems batch: %w", err)
	}

	batchQuery := `
		INSERT INTO star_systems (id, sector_id, pos_x, pos_y, pos_z, star_count, payload)
		SELECT
			data->>'id',
			data->>'sector_id',
			(data->>'pos_x')::double precision,
			(data->>'pos_y')::double precision,
			(data->>'pos_z')::double precision,
			(data->>'star_count')::integer,
			data->'payload'
		FROM json_array_elements($1::json) AS data`

	if _, err := exec.ExecContext(ctx, batchQuery, string(rowsJSON)); err != nil {
		logger.Error("Failed to batch create systems", "error", err)
		return fmt.Errorf("failed to batch create systems: %w", err)
	}

	logger.Info("Sector stored", "systems", len(sec.Systems))
	return nil
}

// SectorExists reports whether a sector id is already stored.
func (r *Repository) SectorExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM sectors WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check sector existence: %w", err)
	}
	return exists, nil
}

// GetSector loads a stored sector with all its systems. The distance map and
// the systems' id indexes are rebuilt from the stored payloads.
func (r *Repository) GetSector(ctx context.Context, id string) (*Sector, error) {
	logger := r.logger.With("component", "sector_repository", "operation", "get_sector", "sector_id", id)
	logger.Debug("Loading sector")

	sec := &Sector{ID: id}
	err := r.db.QueryRowContext(ctx,
		"SELECT display_name, coord_x, coord_y, coord_z FROM sectors WHERE id = $1", id,
	).Scan(&sec.DisplayName, &sec.Coord.X, &sec.Coord.Y, &sec.Coord.Z)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("sector %s not found", id)
	}
	if err != nil {
		logger.Error("Failed to load sector", "error", err)
		return nil, fmt.Errorf("failed to load sector: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT payload FROM star_systems WHERE sector_id = $1 ORDER BY id", id)
	if err != nil {
		logger.Error("Failed to query systems", "error", err)
		return nil, fmt.Errorf("failed to query systems: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			logger.Error("Failed to scan system row", "error", err)
			return nil, fmt.Errorf("failed to scan system: %w", err)
		}
		var sys system.StarSystem
		if err := json.Unmarshal(payload, &sys); err != nil {
			logger.Error("Failed to unmarshal system payload", "error", err)
			return nil, fmt.Errorf("failed to unmarshal system: %w", err)
		}
		sec.Systems = append(sec.Systems, &sys)
	}
	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating systems: %w", err)
	}

	sec.RebuildIndexes()
	sec.RebuildDistances()

	logger.Debug("Sector loaded", "systems", len(sec.Systems))
	return sec, nil
}

// ListSectors returns summaries of every stored sector.
func (r *Repository) ListSectors(ctx context.Context) ([]Summary, error) {
	logger := r.logger.With("component", "sector_repository", "operation", "list_sectors")

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, display_name, coord_x, coord_y, coord_z, system_count FROM sectors ORDER BY id")
	if err != nil {
		logger.Error("Failed to query sectors", "error", err)
		return nil, fmt.Errorf("failed to query sectors: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var sectors []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.DisplayName, &s.Coord.X, &s.Coord.Y, &s.Coord.Z, &s.SystemCount); err != nil {
			logger.Error("Failed to scan sector row", "error", err)
			return nil, fmt.Errorf("failed to scan sector: %w", err)
		}
		sectors = append(sectors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sectors: %w", err)
	}

	return sectors, nil
}
