// Package store elige el adaptador del documento según STORE_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/repository"
	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/filestore"
	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/fiyatvizyon-api/pkg/config"
	"github.com/jhoicas/fiyatvizyon-api/pkg/logger"
)

// Open abre el almacenamiento configurado y aplica migraciones si corresponde.
// La función devuelta libera la conexión.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.DocumentRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("abrir SQLite %s: %w", cfg.Store.SQLitePath, err)
		}
		log.Info().Str("path", cfg.Store.SQLitePath).Msg("documento en SQLite")
		return sqlite.NewDocumentRepository(db), func() {
			if err := db.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar SQLite")
			}
		}, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migraciones PostgreSQL: %w", err)
		}
		repo := postgres.NewDocumentRepository(pool)
		logStoredRates(ctx, repo, log)
		return repo, pool.Close, nil

	case config.StoreFile:
		log.Info().Str("path", cfg.Store.DataFile).Msg("documento en archivo")
		return filestore.NewDocumentRepository(cfg.Store.DataFile), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("STORE_DRIVER %q no soportado", cfg.Store.Driver)
	}
}

func logStoredRates(ctx context.Context, repo *postgres.DocumentRepo, log *logger.Logger) {
	rates, err := repo.LoadRates(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("leer tasas guardadas")
		return
	}
	if rates == nil {
		return
	}
	log.Info().
		Str("platform_commission_rate", rates.PlatformCommissionRate.String()).
		Str("kdv_rate", rates.KDVRate.String()).
		Str("bank_commission_rate", rates.BankCommissionRate.String()).
		Msg("tasas guardadas")
}
