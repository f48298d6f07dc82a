package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/profit-pilot-api/infrastructure/database/sqlite"
	"github.com/vfg2006/profit-pilot-api/internal/config"
)

// Open escolhe a implementação de persistência conforme o driver configurado.
// A função de fechamento retornada nunca é nil.
func Open(ctx context.Context, cfg config.Storage) (ProductRepository, func() error, error) {
	switch cfg.Driver {
	case config.StorageDriverFile, "":
		return NewProductFileRepository(cfg.Path), func() error { return nil }, nil
	case config.StorageDriverSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao conectar no sqlite: %w", err)
		}
		return NewProductSQLiteRepository(conn), conn.Close, nil
	default:
		return nil, nil, fmt.Errorf("driver de armazenamento inválido '%s'", cfg.Driver)
	}
}
