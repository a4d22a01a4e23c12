package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/roll"
	"starforge-server/internal/sector"
	"starforge-server/internal/shared/config"
	"starforge-server/internal/shared/database"
	"starforge-server/internal/system"
)

var (
	presetPath string
	outPath    string
	persist    bool
	verbose    bool
)

// Preset is the YAML input for offline generation. It mirrors the server's
// galaxy configuration plus the list of sector coordinates to generate.
type Preset struct {
	Seed   int64 `yaml:"seed"`
	Galaxy struct {
		Type           string  `yaml:"type"`
		BaseDensity    float64 `yaml:"base_density"`
		AnomalyChance  float64 `yaml:"anomaly_chance"`
		SectorExtents  int     `yaml:"sector_extents"`
		CellsPerSector int     `yaml:"cells_per_sector"`
		CellSizeLY     float64 `yaml:"cell_size_ly"`
	} `yaml:"galaxy"`
	StarCountWeights []int `yaml:"star_count_weights"`
	Sectors          []struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
		Z int `yaml:"z"`
	} `yaml:"sectors"`
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sectors from a preset file",
	Long: `Generate sectors from a YAML preset describing the seed, the galaxy
shape and the sector coordinates to build.

Output goes to stdout as JSON, to a file with --out, or into the
configured database with --persist. The same preset always produces
the same sectors.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&presetPath, "preset", "", "path to the YAML preset file (required)")
	generateCmd.Flags().StringVar(&outPath, "out", "", "write the generated sectors to this file as JSON")
	generateCmd.Flags().BoolVar(&persist, "persist", false, "store the generated sectors in the configured database")
	generateCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	_ = generateCmd.MarkFlagRequired("preset")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := cliLogger(verbose)

	preset, err := loadPreset(presetPath)
	if err != nil {
		return err
	}

	galaxyType, err := galaxy.ParseType(preset.Galaxy.Type)
	if err != nil {
		return fmt.Errorf("invalid preset: %w", err)
	}

	weights := preset.StarCountWeights
	if len(weights) == 0 {
		weights = system.DefaultStarCountWeights
	}

	src := roll.New(preset.Seed)
	systemGen := system.NewGenerator(src, system.Config{StarCountWeights: weights}, logger)

	sectorGen, err := sector.NewGenerator(src, systemGen, sector.Params{
		GalaxyType:     galaxyType,
		BaseDensity:    preset.Galaxy.BaseDensity,
		AnomalyChance:  preset.Galaxy.AnomalyChance,
		SectorExtents:  preset.Galaxy.SectorExtents,
		CellsPerSector: preset.Galaxy.CellsPerSector,
		CellSizeLY:     preset.Galaxy.CellSizeLY,
	}, logger)
	if err != nil {
		return fmt.Errorf("invalid preset: %w", err)
	}

	sectors := make([]*sector.Sector, 0, len(preset.Sectors))
	for _, c := range preset.Sectors {
		coord := galaxy.Coordinate{X: c.X, Y: c.Y, Z: c.Z}
		sectorGen.Reseed(sector.SeedFor(preset.Seed, coord))
		sec := sectorGen.Generate(coord)
		logger.Info("Generated sector", "sector_id", sec.ID, "systems", len(sec.Systems))
		sectors = append(sectors, sec)
	}

	if persist {
		return persistSectors(cmd.Context(), sectors, logger)
	}
	return writeSectors(sectors)
}

func loadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}
	if len(preset.Sectors) == 0 {
		return nil, fmt.Errorf("preset lists no sectors to generate")
	}
	return &preset, nil
}

func writeSectors(sectors []*sector.Sector) error {
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(sectors)
}

func persistSectors(ctx context.Context, sectors []*sector.Sector, logger *slog.Logger) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	db, err := database.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := sector.NewRepository(db, logger)
	for _, sec := range sectors {
		exists, err := repo.SectorExists(ctx, sec.ID)
		if err != nil {
			return err
		}
		if exists {
			logger.Warn("Sector already stored, skipping", "sector_id", sec.ID)
			continue
		}
		if err := repo.CreateSector(ctx, sec, nil); err != nil {
			return err
		}
		logger.Info("Sector stored", "sector_id", sec.ID, "systems", len(sec.Systems))
	}
	return nil
}

func cliLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
