package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"menu-qr/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"
)

// ConnectPostgres opens and pings a pool. The caller owns it and must Close it.
func ConnectPostgres(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
	pcfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, err
	}
	// one operator, one connection
	pcfg.MaxConns = 1
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return pool, nil
}

// OpenSQL opens a database/sql handle for the sqlite and mysql drivers.
func OpenSQL(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	driver, dsn, err := sqlDSN(cfg)
	if err != nil {
		return nil, err
	}
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s ping: %w", driver, err)
	}
	return conn, nil
}

func sqlDSN(cfg config.DBConfig) (driver, dsn string, err error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return "sqlite", cfg.Path, nil
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = cfg.Host + ":" + strconv.Itoa(cfg.Port)
		mc.DBName = cfg.Database
		return "mysql", mc.FormatDSN(), nil
	}
	return "", "", fmt.Errorf("driver %q is not a database/sql driver", cfg.Driver)
}
