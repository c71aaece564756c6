package repository

import (
	"context"
	"fmt"

	"menu-qr/config"
	"menu-qr/db"
	"menu-qr/models"
)

// Repository is the durable side of the menu. Implementations hold one
// connection for the process lifetime.
type Repository interface {
	EnsureSchema(ctx context.Context) error
	ListAll(ctx context.Context) ([]models.MenuEntry, error)
	Insert(ctx context.Context, dish, price string) (int64, error)
	DeleteByDish(ctx context.Context, dish string) (int64, error)
	Close() error
}

// Open connects the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.DBConfig) (Repository, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryRepository(), nil
	case config.DriverPostgres:
		pool, err := db.ConnectPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewPostgresRepository(pool), nil
	case config.DriverSQLite, config.DriverMySQL:
		conn, err := db.OpenSQL(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewSQLRepository(conn, cfg.Driver), nil
	}
	return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
}
