package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pocketapp/internal/app/server/api"
	"pocketapp/internal/app/server/config"
	"pocketapp/internal/app/server/metrics"
	"pocketapp/internal/domain/explore"
	"pocketapp/internal/domain/feed"
	"pocketapp/internal/domain/profile"
	"pocketapp/internal/infrastructure/picsum"
	"pocketapp/internal/infrastructure/storage"
	"pocketapp/internal/utils/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/exp/slog"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	if err := run(conf, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, storage.Options{
		Driver:         conf.Store.Driver,
		Path:           conf.Store.DataPath,
		RedisAddr:      conf.Store.RedisAddr,
		DatabaseURI:    conf.DB.DatabaseURI,
		MigrationsPath: conf.DB.Migrations,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("failed to close store", "error", err)
		}
	}()
	log.Info("store opened", "driver", conf.Store.Driver)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	profileService := profile.NewService(storage.NewProfileRepository(store, log), nil, log)
	profileService.Load(ctx)

	picsumClient := picsum.New(conf.Explore.PicsumURL, conf.Explore.HTTPTimeout, log)
	services := api.Services{
		Profile: profileService,
		Feed:    feed.New(conf.Feed.RefreshDelay, log),
		Explore: explore.NewViewer(m.InstrumentFetcher(picsumClient), conf.Explore.MaxID, log),
	}

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(services, m, reg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "addr", conf.Server.RunAddress, "env", conf.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
