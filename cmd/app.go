package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/linktower/linktower/internal/application/config"
	"github.com/linktower/linktower/internal/application/constant"
	"github.com/linktower/linktower/internal/application/metric"
	"github.com/linktower/linktower/internal/infra/adapters/postgres"
	"github.com/linktower/linktower/internal/infra/adapters/postgres/repository"
	"github.com/linktower/linktower/internal/infra/ports/http/handlers"
	"github.com/linktower/linktower/internal/infra/ports/http/server"
	"github.com/linktower/linktower/internal/usecase"
)

func runApp() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	slog.SetDefault(
		slog.New(
			slog.NewJSONHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: slog.LevelInfo},
			),
		),
	)

	cfg, err := config.New()
	if err != nil {
		slog.Error("parse config", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	slog.Info("Running app", slog.Bool("debug", cfg.Debug))

	dbConn, err := postgres.NewPostgres(ctx, cfg.Postgres.DSN())
	if err != nil {
		slog.Error("connect to postgres", slog.Any(constant.Error, err))
		os.Exit(1)
	}
	defer dbConn.Close()

	roomRepo := repository.NewRoomRepo(dbConn)
	linkRepo := repository.NewLinkRepo(dbConn)

	roomUsecase := usecase.NewRoomUsecase(cfg, roomRepo, linkRepo)
	discoverUsecase := usecase.NewDiscoverUsecase(roomRepo, linkRepo)

	roomHandler := handlers.NewRoomHandler(roomUsecase)
	floorHandler := handlers.NewFloorHandler(roomUsecase)
	discoverHandler := handlers.NewDiscoverHandler(discoverUsecase)
	pageHandler := handlers.NewPageHandler()

	echoSrv, err := server.New(cfg, roomHandler, floorHandler, discoverHandler, pageHandler)
	if err != nil {
		slog.Error("build http server", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	metricsSrv := metric.NewServer()

	echoSrvCh := make(chan error, 1)
	metricsSrvCh := make(chan error, 1)

	go func() {
		echoSrvCh <- echoSrv.Start(":" + cfg.Port)
	}()

	go func() {
		metricsSrvCh <- metricsSrv.Start(":" + cfg.MetricPort)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers due to context cancel")
	case err := <-echoSrvCh:
		slog.Error(
			"HTTP server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	case err := <-metricsSrvCh:
		slog.Error(
			"Metrics server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	}

	timeoutCtx, timeoutCancel := context.WithTimeout(ctx, 5*time.Second)
	defer timeoutCancel()

	if err := echoSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown HTTP server", slog.Any(constant.Error, err))
	}

	if err := metricsSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown metric server", slog.Any(constant.Error, err))
	}
}
