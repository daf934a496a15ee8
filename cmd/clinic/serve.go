package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clinic-record-service/internal/adapters"
	"clinic-record-service/internal/api/handlers"
	"clinic-record-service/internal/services"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd)
		},
	}
}

func runServer(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx, cmd, os.Stdout)
	if err != nil {
		return err
	}
	defer rt.Close()
	log := rt.logger

	queue := adapters.NewInMemoryQueueAdapter(log, rt.cfg.Export.QueueBuffer)
	defer queue.Close()

	exports := services.NewExportService(rt.registry, queue, log)
	if err := exports.Start(context.Background()); err != nil {
		return err
	}

	app := handlers.NewApp(rt.registry, exports, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", rt.cfg.Server.ListenAddr).Msg("starting server")
		errCh <- app.Listen(rt.cfg.Server.ListenAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	}

	if err := app.ShutdownWithTimeout(rt.cfg.Server.ShutdownTimeout.Duration); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := exports.Stop(context.Background()); err != nil {
		log.Error().Err(err).Msg("export service stop failed")
	}
	log.Info().Msg("server stopped")
	return nil
}
