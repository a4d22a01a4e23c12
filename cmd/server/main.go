package main

import (
	"log"
	"log/slog"
	"net/http"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/middleware"
	"starforge-server/internal/roll"
	"starforge-server/internal/sector"
	"starforge-server/internal/server"
	"starforge-server/internal/shared/config"
	"starforge-server/internal/shared/database"
	"starforge-server/internal/shared/logger"
	"starforge-server/internal/shared/redis"
	"starforge-server/internal/system"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to initialize configuration: ", err)
	}

	logger.Init()
	slog.Info("Starting starforge server",
		"environment", config.GlobalConfig.Server.Environment,
		"galaxy_type", config.GlobalConfig.Galaxy.Type,
		"galaxy_seed", config.GlobalConfig.Galaxy.Seed,
	)

	db, err := database.Connect()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return
	}

	cache, err := redis.Connect()
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		return
	}
	defer func() {
		if err := cache.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	galaxyCfg := config.GlobalConfig.Galaxy
	src := roll.New(galaxyCfg.Seed)

	systemGen := system.NewGenerator(src, system.Config{
		StarCountWeights: galaxyCfg.StarCountWeights,
	}, slog.Default())

	galaxyType, err := galaxy.ParseType(galaxyCfg.Type)
	if err != nil {
		slog.Error("Invalid galaxy type", "error", err)
		return
	}

	sectorGen, err := sector.NewGenerator(src, systemGen, sector.Params{
		GalaxyType:     galaxyType,
		BaseDensity:    galaxyCfg.BaseDensity,
		AnomalyChance:  galaxyCfg.AnomalyChance,
		SectorExtents:  galaxyCfg.SectorExtents,
		CellsPerSector: galaxyCfg.CellsPerSector,
		CellSizeLY:     galaxyCfg.CellSizeLY,
	}, slog.Default())
	if err != nil {
		slog.Error("Invalid galaxy parameters", "error", err)
		return
	}

	sectorRepo := sector.NewRepository(db, slog.Default())
	sectorCache := sector.NewCache(cache, config.GlobalConfig.Redis.CacheTTL, slog.Default())
	sectorService := sector.NewService(sectorRepo, sectorCache, sectorGen, galaxyCfg.Seed, slog.Default())

	routes := server.NewRoutes(db, cache, sectorService, slog.Default())
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: config.GlobalConfig.RateLimit.RequestsPerSecond,
		BurstSize:         config.GlobalConfig.RateLimit.BurstSize,
		Enabled:           config.GlobalConfig.RateLimit.Enabled,
		TrustProxy:        config.GlobalConfig.Server.Environment == "production",
	})
	cors := middleware.NewCORS()

	handler := cors.Middleware(rateLimiter.Middleware(mux))

	serverCfg := config.GlobalConfig.Server
	httpServer := &http.Server{
		Addr:         ":" + serverCfg.Port,
		Handler:      handler,
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}

	slog.Info("Server listening", "port", serverCfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server stopped", "error", err)
	}
}
