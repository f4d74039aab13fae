package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/xando-series/internal/config"
	"github.com/rocketscienceinc/xando-series/internal/repository"
	"github.com/rocketscienceinc/xando-series/internal/repository/storage"
	"github.com/rocketscienceinc/xando-series/internal/service"
	"github.com/rocketscienceinc/xando-series/internal/usecase"
	"github.com/rocketscienceinc/xando-series/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	historyStorage, err := storage.NewSQLStorage(conf.History.Driver, conf.History.DSN)
	if err != nil {
		return fmt.Errorf("could not open history storage: %w", err)
	}

	defer func() {
		if err = historyStorage.Close(); err != nil {
			log.Error("could not close history storage", "error", err)
		}
	}()

	if err = historyStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init history storage: %w", err)
	}

	rnd := service.NewRand(conf.Bot.Seed)

	seriesRepo := repository.NewSeriesRepository(redisStorage.Connection, conf.Redis.SeriesTTL)
	historyRepo := repository.NewHistoryRepository(historyStorage.Connection)
	botService := service.NewBotService(rnd)
	seriesManager := usecase.NewSeriesManager(logger, seriesRepo, historyRepo, botService, rnd)

	handlers := rest.NewHandlers(logger, seriesManager, conf.Series.DefaultBestOf)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "historyDriver", historyStorage.Driver)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(handlers)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
