package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/freekieb7/tinyhttpd/config"
	"github.com/freekieb7/tinyhttpd/filesystem"
	"github.com/freekieb7/tinyhttpd/handler"
	"github.com/freekieb7/tinyhttpd/http"
	"github.com/freekieb7/tinyhttpd/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	// Handle SIGINT (CTRL+C) gracefully.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		return err
	}

	tel, err := telemetry.Setup(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Println(err)
		}
	}()

	logger := tel.Logger
	if cfg.Directory == "" {
		logger.Error("no --directory given, file routes resolve against the working directory")
	}

	telemetryMiddleware, err := http.TelemetryMiddleware(tel.Tracer(), tel.Meter())
	if err != nil {
		return err
	}

	router := handler.Routes(
		filesystem.NewLocalFileSystem(cfg.Directory),
		http.RecoverMiddleware(),
		telemetryMiddleware,
	)

	server := http.NewServer(cfg.ServiceName, router.Handler(), logger)
	return server.ListenAndServe(ctx, cfg.Addr)
}
