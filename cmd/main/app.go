package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/zhukovvlad/fittings-go/cmd/internal/config"
	"github.com/zhukovvlad/fittings-go/cmd/internal/server"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/calculation"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/effort"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/labels"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/material"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/resolver"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/suggestion"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"

	_ "github.com/lib/pq"
)

const datasetLoadTimeout = time.Minute

func main() {
	logger := logging.GetLogger()
	logger.Info("Starting Fittings API...")

	if err := godotenv.Load(); err != nil {
		logger.Warnf("error loading .env file: %v", err)
	}

	cfg := config.GetConfig()

	dispatcher := ruleset.NewDispatcher()
	src, closeSource, err := newRecordSource(cfg)
	if err != nil {
		logger.Fatalf("error creating dataset source: %v", err)
	}
	defer closeSource()

	ctx, cancel := context.WithTimeout(context.Background(), datasetLoadTimeout)
	ds, err := dataset.Load(ctx, src, dataset.NewBuilder(dispatcher, logger), logger)
	cancel()
	if err != nil {
		logger.Fatalf("error loading reference dataset: %v", err)
	}

	res := resolver.NewResolver(dispatcher, ds, logger)
	mat := material.NewCalculator(logger)
	eff := effort.NewCalculator(logger)
	calcService := calculation.NewCalculationService(res, mat, eff, calculation.Options{
		Workers:      cfg.Calculation.Workers,
		MaxBatchSize: cfg.Calculation.MaxBatchSize,
	}, logger)
	engine := suggestion.NewEngine(dispatcher, ds, res, labels.NewCatalogTranslator(), cfg.Calculation.DefaultLocale, logger)

	srv := server.NewServer(server.Services{
		Dispatcher:  dispatcher,
		Dataset:     ds,
		Calculation: calcService,
		Suggestion:  engine,
		Material:    mat,
		Effort:      eff,
	}, logger, cfg)

	serverAddress := fmt.Sprintf("%s:%s", cfg.Listen.BindIP, cfg.Listen.Port)
	logger.Infof("Starting server on %s", serverAddress)

	if err := srv.Start(serverAddress); err != nil {
		logger.Fatalf("error starting server: %v", err)
	}
}

// newRecordSource выбирает источник справочника по конфигурации.
// Возвращаемая функция закрывает соединение с БД, если оно открывалось.
func newRecordSource(cfg *config.Config) (dataset.RecordSource, func(), error) {
	logger := logging.GetLogger()
	switch cfg.Dataset.Source {
	case "csv":
		logger.Infof("Reference dataset: CSV %s", cfg.Dataset.CSVPath)
		return dataset.NewCSVSource(cfg.Dataset.CSVPath, cfg.Dataset.CSVSeparator), func() {}, nil
	case "postgres":
		conn, err := sql.Open(cfg.Database.Driver, cfg.Database.Source)
		if err != nil {
			return nil, nil, fmt.Errorf("error connecting to database: %w", err)
		}
		if err = conn.Ping(); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("error pinging database: %w", err)
		}
		logger.Info("Database connection established")
		return dataset.NewPostgresSource(conn), func() { conn.Close() }, nil
	}
	return nil, nil, fmt.Errorf("неизвестный источник справочника %q (csv | postgres)", cfg.Dataset.Source)
}
