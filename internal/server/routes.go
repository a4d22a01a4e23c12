package server

import (
	"log/slog"
	"net/http"

	"starforge-server/internal/middleware"
	"starforge-server/internal/sector"
	sectorHandlers "starforge-server/internal/sector/handlers"
	serverHandlers "starforge-server/internal/server/handlers"
	"starforge-server/internal/shared/database"
	"starforge-server/internal/shared/redis"
)

type Routes struct {
	db            *database.DB
	cache         *redis.Client
	sectorService *sector.Service
	logger        *slog.Logger
}

func NewRoutes(db *database.DB, cache *redis.Client, sectorService *sector.Service, logger *slog.Logger) *Routes {
	return &Routes{
		db:            db,
		cache:         cache,
		sectorService: sectorService,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cache)
	galaxyInfoHandler := serverHandlers.NewGalaxyInfoHandler()
	sectorHandler := sectorHandlers.NewSectorHandler(r.sectorService)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.Handle("/api/galaxy/info", galaxyInfoHandler)
	mux.HandleFunc("/api/sectors", sectorHandler.List)
	mux.HandleFunc("/api/sectors/{id}", sectorHandler.Get)

	// Admin-only endpoints (authenticated + admin role)
	mux.Handle("/api/sectors/generate", middleware.RequireAdmin(http.HandlerFunc(sectorHandler.Generate)))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/galaxy/info", "/api/sectors", "/api/sectors/{id}"},
		"admin_endpoints", []string{"/api/sectors/generate"},
	)

	return mux
}
