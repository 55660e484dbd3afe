package main

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/config"
	"github.com/BruksfildServices01/table-reservations/internal/logging"
)

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg)

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("migration failed")
		return err
	}
	defer st.close(context.Background())

	if err := st.repo.EnsureIndexes(ctx); err != nil {
		log.WithError(err).Error("migration failed")
		return err
	}

	log.Info("migration complete")
	return nil
}
