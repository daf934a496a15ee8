package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"clinic-record-service/internal/config"
	"clinic-record-service/internal/domain/repositories"
	"clinic-record-service/internal/logger"
	"clinic-record-service/internal/services"
)

// clinicApp holds the components shared by every subcommand.
type clinicApp struct {
	cfg      *config.Config
	logger   zerolog.Logger
	store    *repositories.Store
	registry services.RegistryServiceContract
}

func (r *clinicApp) Close() error {
	return r.store.Close()
}

// bootstrap loads config from the command flags and builds the registry.
func bootstrap(ctx context.Context, cmd *cobra.Command, logOut io.Writer) (*clinicApp, error) {
	path, _ := cmd.Flags().GetString("config")
	forceSeed, _ := cmd.Flags().GetBool("seed")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	store, err := repositories.NewStore(cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	registry := services.NewRegistryServiceFromStore(store, log)

	if cfg.Seed.Enabled || forceSeed {
		if err := services.SeedDemoData(ctx, registry); err != nil {
			_ = store.Close()
			return nil, err
		}
		log.Info().Msg("demo data loaded")
	}

	log.Debug().Str("store", cfg.Store.Driver).Msg("registry ready")
	return &clinicApp{cfg: cfg, logger: log, store: store, registry: registry}, nil
}
