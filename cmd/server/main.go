package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MUA122/IOT-Project/internal/config"
	"github.com/MUA122/IOT-Project/internal/dashboard"
	"github.com/MUA122/IOT-Project/internal/logging"
	"github.com/MUA122/IOT-Project/internal/metrics"
	"github.com/MUA122/IOT-Project/internal/server"
	"github.com/MUA122/IOT-Project/internal/web"
)

func main() {
	configPath := flag.String("config", "configs/server.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info().
		Str("version", server.Version).
		Str("addr", cfg.Addr()).
		Msg("Starting fire & smoke dashboard")
	logger.Debug().Msg(cfg.String())

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load templates")
	}

	var recorder server.Recorder
	mounts := map[string]http.Handler{
		"/assets/": web.Assets(),
	}
	if cfg.Metrics.Enabled {
		m := metrics.New()
		recorder = m
		mounts[cfg.Metrics.Path] = m.Handler()
		logger.Info().Str("path", cfg.Metrics.Path).Msg("Metrics enabled")
	}
	if cfg.Server.StaticDir != "" {
		mounts["/static/"] = http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Server.StaticDir)))
		logger.Info().Str("dir", cfg.Server.StaticDir).Msg("Serving static files")
	}

	source := server.NewSource(dashboard.MockDataset, cfg.Dashboard.FreezeData, time.Now())
	frozen, _ := source.(*server.StaticStore)
	if frozen != nil {
		logger.Info().Msg("Serving frozen dataset, send SIGHUP to recapture")
	}
	opts := dashboard.Options{
		Title:        cfg.Dashboard.Title,
		Description:  cfg.Dashboard.Description,
		ScrollOffset: cfg.Dashboard.ScrollOffset,
		ChartLibURL:  cfg.Dashboard.ChartLibURL,
	}

	handler := server.NewHandler(server.Deps{
		Page:     server.NewPageHandler(source, renderer, cfg.Theme, opts, recorder, logger),
		API:      server.NewAPIHandler(source, logger),
		Recorder: recorder,
		Logger:   logger,
		Mounts:   mounts,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range sigChan {
		if sig != syscall.SIGHUP {
			break
		}
		if frozen != nil {
			frozen.Replace(dashboard.MockDataset(time.Now()))
			logger.Info().Msg("Frozen dataset recaptured")
		}
	}

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown error")
	}

	if frozen != nil {
		logger.Info().Int64("snapshots", frozen.Snapshots()).Msg("Frozen dataset served")
	}
	logger.Info().Dur("timeout", cfg.Server.ShutdownTimeout).Msg("Server stopped")
}
