package handlers

import (
	"log/slog"
	"net/http"

	"starforge-server/internal/shared/config"
	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
)

// GalaxyInfoResponse exposes the generation parameters of the running galaxy.
// Together with the seed they fully determine every sector's content.
type GalaxyInfoResponse struct {
	Type             string  `json:"type"`
	Seed             int64   `json:"seed"`
	BaseDensity      float64 `json:"base_density"`
	AnomalyChance    float64 `json:"anomaly_chance"`
	SectorExtents    int     `json:"sector_extents"`
	CellsPerSector   int     `json:"cells_per_sector"`
	CellSizeLY       float64 `json:"cell_size_ly"`
	StarCountWeights []int   `json:"star_count_weights"`
}

type GalaxyInfoHandler struct{}

func NewGalaxyInfoHandler() *GalaxyInfoHandler {
	return &GalaxyInfoHandler{}
}

func (h *GalaxyInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "galaxy_info")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	cfg := config.GlobalConfig.Galaxy

	resp := GalaxyInfoResponse{
		Type:             cfg.Type,
		Seed:             cfg.Seed,
		BaseDensity:      cfg.BaseDensity,
		AnomalyChance:    cfg.AnomalyChance,
		SectorExtents:    cfg.SectorExtents,
		CellsPerSector:   cfg.CellsPerSector,
		CellSizeLY:       cfg.CellSizeLY,
		StarCountWeights: cfg.StarCountWeights,
	}

	response.Success(w, http.StatusOK, resp)
}
