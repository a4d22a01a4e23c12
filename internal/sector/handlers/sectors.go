package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/sector"
	"starforge-server/internal/shared/errors"
	"starforge-server/internal/shared/response"
)

type SectorHandler struct {
	service *sector.Service
}

func NewSectorHandler(service *sector.Service) *SectorHandler {
	return &SectorHandler{service: service}
}

// GenerateRequest names the grid coordinate of the sector to generate.
type GenerateRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (h *SectorHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "generate_sector")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req GenerateRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	sec, err := h.service.Generate(ctx, galaxy.Coordinate{X: req.X, Y: req.Y, Z: req.Z})
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, sec)
}

func (h *SectorHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_sector")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id := r.PathValue("id")
	if id == "" {
		response.Error(w, r, logger, errors.Validation("sector ID is required"))
		return
	}

	sec, err := h.service.GetSector(ctx, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, sec)
}

func (h *SectorHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "list_sectors")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	sectors, err := h.service.ListSectors(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if sectors == nil {
		sectors = []sector.Summary{}
	}

	response.Success(w, http.StatusOK, sectors)
}
