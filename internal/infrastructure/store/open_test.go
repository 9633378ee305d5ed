package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/store"
	"github.com/jhoicas/fiyatvizyon-api/pkg/config"
	"github.com/jhoicas/fiyatvizyon-api/pkg/logger"
)

func TestOpen_FileAndSQLite(t *testing.T) {
	dir := t.TempDir()
	for _, driver := range []string{config.StoreFile, config.StoreSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{Store: config.StoreConfig{
				Driver:     driver,
				DataFile:   filepath.Join(dir, "app-data.json"),
				SQLitePath: filepath.Join(dir, "fiyatvizyon.db"),
			}}
			repo, closeFn, err := store.Open(context.Background(), cfg, logger.Nop())
			require.NoError(t, err)
			defer closeFn()

			doc, err := repo.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, doc.Products)
			assert.Equal(t, 15.0, doc.PlatformCommissionRate.Float())
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "redis"}}
	_, _, err := store.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
