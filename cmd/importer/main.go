package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekuna/omnipos-catalog-importer/config"
	"github.com/fekuna/omnipos-catalog-importer/internal/importer"
	"github.com/fekuna/omnipos-catalog-importer/pkg/logger"

	catRepoPkg "github.com/fekuna/omnipos-catalog-importer/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-catalog-importer/internal/category/usecase"

	impUCPkg "github.com/fekuna/omnipos-catalog-importer/internal/importer/usecase"

	"github.com/fekuna/omnipos-catalog-importer/internal/importer/sink"
	"github.com/fekuna/omnipos-catalog-importer/internal/importer/source"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	inputPath := flag.String("input", "", "Product export CSV to import")
	outputPath := flag.String("output", "", "Path for the nested product JSON document")
	categoriesPath := flag.String("categories", "", "Category taxonomy JSON (overrides env)")
	sqlitePath := flag.String("sqlite", "", "Optional SQLite catalog output (overrides env)")
	flag.Parse()

	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()
	if *categoriesPath != "" {
		cfg.Importer.CategoriesPath = *categoriesPath
	}
	if *sqlitePath != "" {
		cfg.Catalog.SQLitePath = *sqlitePath
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Importer.AppEnv == "development" || cfg.Importer.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
		logConfig.DisableCaller = cfg.Logger.DisableCaller
		logConfig.DisableStacktrace = cfg.Logger.DisableStacktrace
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	if *inputPath == "" || *outputPath == "" {
		flag.Usage()
		appLogger.Fatal("Both -input and -output are required")
	}

	// 3. Cancellation between rows on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Load Category Taxonomy
	catRepo := catRepoPkg.NewJSONFileRepository(cfg.Importer.CategoriesPath)
	catUC := catUCPkg.NewCategoryUseCase(ctx, catRepo, cfg.Importer.UncategorizedID, appLogger)

	// 5. Open the Row Source
	input, err := os.Open(*inputPath)
	if err != nil {
		appLogger.Fatal("Could not open input file", zap.Error(err))
	}
	defer input.Close()

	rows, err := source.NewCSVSource(input)
	if err != nil {
		appLogger.Fatal("Could not read input header", zap.String("input", *inputPath), zap.Error(err))
	}

	// 6. Initialize Sinks
	sinks := []importer.Sink{sink.NewJSONFileSink(*outputPath)}
	if cfg.Catalog.SQLitePath != "" {
		db, err := sink.OpenSQLite(cfg.Catalog.SQLitePath)
		if err != nil {
			appLogger.Fatal("Could not open SQLite catalog", zap.String("path", cfg.Catalog.SQLitePath), zap.Error(err))
		}
		defer db.Close()
		sinks = append(sinks, sink.NewSQLiteSink(db))
		appLogger.Info("SQLite catalog output enabled", zap.String("path", cfg.Catalog.SQLitePath))
	}

	// 7. Run the Import
	opts := importer.Options{
		ResolveCategories: cfg.Importer.ResolveCategories,
		PropagateStatus:   cfg.Importer.PropagateStatus,
		MetafieldKeyMode:  importer.MetafieldKeyMode(cfg.Importer.MetafieldKeyMode),
		UncategorizedID:   cfg.Importer.UncategorizedID,
	}
	impUC := impUCPkg.NewImportUseCase(opts, importer.UUIDGenerator{}, catUC, appLogger)

	count, err := impUC.Import(ctx, rows, sinks...)
	if err != nil {
		appLogger.Fatal("Import failed", zap.Error(err))
	}

	appLogger.Info("Processed products",
		zap.Int("count", count),
		zap.String("output", *outputPath),
	)
}
