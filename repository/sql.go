package repository

import (
	"context"
	"database/sql"
	"fmt"

	"menu-qr/db"
	"menu-qr/models"
)

// SQLRepository serves the database/sql drivers (sqlite, mysql). Both use
// "?" placeholders and LastInsertId.
type SQLRepository struct {
	conn    *sql.DB
	dialect string
}

func NewSQLRepository(conn *sql.DB, dialect string) *SQLRepository {
	return &SQLRepository{conn: conn, dialect: dialect}
}

func (r *SQLRepository) EnsureSchema(ctx context.Context) error {
	ms, err := db.Migrations(r.dialect)
	if err != nil {
		return err
	}
	for _, m := range ms {
		if _, err := r.conn.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
	}
	return nil
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]models.MenuEntry, error) {
	rows, err := r.conn.QueryContext(ctx, `SELECT id, dish, price FROM menu ORDER BY id`)
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

func (r *SQLRepository) Insert(ctx context.Context, dish, price string) (int64, error) {
	res, err := r.conn.ExecContext(ctx, `INSERT INTO menu (dish, price) VALUES (?, ?)`, dish, price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLRepository) DeleteByDish(ctx context.Context, dish string) (int64, error) {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM menu WHERE dish = ?`, dish)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLRepository) Close() error {
	return r.conn.Close()
}
