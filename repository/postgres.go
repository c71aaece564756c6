package repository

import (
	"context"
	"fmt"

	"menu-qr/db"
	"menu-qr/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	ms, err := db.Migrations("postgres")
	if err != nil {
		return err
	}
	for _, m := range ms {
		if _, err := r.pool.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
	}
	return nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.MenuEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, dish, price FROM menu ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuEntry
	for rows.Next() {
		var e models.MenuEntry
		if err := rows.Scan(&e.ID, &e.Dish, &e.Price); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Insert(ctx context.Context, dish, price string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO menu (dish, price) VALUES ($1, $2)
		RETURNING id`,
		dish, price,
	).Scan(&id)
	return id, err
}

func (r *PostgresRepository) DeleteByDish(ctx context.Context, dish string) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu WHERE dish = $1`, dish)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}
