package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Duggu05-coder/Lumos/internal/config"
	"github.com/Duggu05-coder/Lumos/internal/handler"
	"github.com/Duggu05-coder/Lumos/internal/logging"
	"github.com/Duggu05-coder/Lumos/internal/model/record"
	emotionservice "github.com/Duggu05-coder/Lumos/internal/service/emotion"
	"github.com/Duggu05-coder/Lumos/internal/service/session"
	"github.com/Duggu05-coder/Lumos/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger := logging.Logger()
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded, using system environment only")
	}

	store, closeStore, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("failed to open record store")
	}
	defer closeStore()

	engine := emotionservice.NewService(store, emotionservice.Config{
		Seed:           cfg.Engine.Seed,
		MaxImagePixels: cfg.Engine.MaxImagePixels,
	})
	if cfg.Engine.Seed != nil {
		logger.Info().Uint64("seed", *cfg.Engine.Seed).Msg("response selection seeded")
	}

	router := handler.NewRouter(engine, logging.Component("http"))

	startServer(ctx, cfg.Server, router, logger)
}

func openStore(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (record.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		store, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Msg("using postgres record store")
		return store, store.Close, nil
	default:
		logger.Info().Msg("using in-memory record store")
		return session.NewService(), func() {}, nil
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger zerolog.Logger) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info().Str("addr", addr).Msg("Lumos backend listening")
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
