package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/flopstats/api"
	"github.com/luca-patrignani/flopstats/config"
	"github.com/luca-patrignani/flopstats/solverdata"
)

const shutdownTimeout = 5 * time.Second

// serve runs the HTTP API until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, store *solverdata.Store, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           api.New(store, api.WithLogger(logger)).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if banner, err := bannerText(); err == nil {
		pterm.Print(banner)
	}
	pterm.Info.Printfln("Listening on %s, serving %s", cfg.Listen, cfg.DataDir)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
