package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"menu-qr/config"
)

// exercise runs the same contract against any backend. The table must start empty.
func exercise(t *testing.T, r Repository) {
	t.Helper()
	ctx := context.Background()

	if err := r.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	// idempotent
	if err := r.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema (second): %v", err)
	}

	id1, err := r.Insert(ctx, "Pizza", "10")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	id2, err := r.Insert(ctx, "Pasta", "8.50")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("ids not increasing: %d then %d", id1, id2)
	}

	items, err := r.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) != 2 || items[0].Dish != "Pizza" || items[1].Dish != "Pasta" {
		t.Fatalf("ListAll = %+v", items)
	}
	if items[0].Price != "10" || items[1].Price != "8.50" {
		t.Errorf("prices not stored as supplied: %+v", items)
	}

	n, err := r.DeleteByDish(ctx, "Pizza")
	if err != nil {
		t.Fatalf("DeleteByDish: %v", err)
	}
	if n != 1 {
		t.Errorf("DeleteByDish affected %d rows, want 1", n)
	}
	n, err = r.DeleteByDish(ctx, "pizza")
	if err != nil {
		t.Fatalf("DeleteByDish: %v", err)
	}
	if n != 0 {
		t.Errorf("case-insensitive delete affected %d rows", n)
	}

	items, _ = r.ListAll(ctx)
	if len(items) != 1 || items[0].Dish != "Pasta" {
		t.Errorf("after delete ListAll = %+v", items)
	}
}

func TestMemoryRepository(t *testing.T) {
	exercise(t, NewMemoryRepository())
}

func TestSQLiteRepository(t *testing.T) {
	cfg := config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "menu.db")}
	r, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	exercise(t, r)
	r.Close()

	// rows survive reopening the file
	r, err = Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer r.Close()
	items, err := r.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll after reopen: %v", err)
	}
	if len(items) != 1 || items[0].Dish != "Pasta" || items[0].Price != "8.50" {
		t.Errorf("after reopen ListAll = %+v", items)
	}
}

// Integration tests against a server (require DB). Skip unless a test database is named.
func TestServerRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	for _, driver := range []string{config.DriverPostgres, config.DriverMySQL} {
		t.Run(driver, func(t *testing.T) {
			host := os.Getenv("TEST_" + envPrefix(driver) + "_HOST")
			if host == "" {
				t.Skipf("TEST_%s_HOST not set", envPrefix(driver))
			}
			cfg, err := config.Load()
			if err != nil {
				t.Fatal(err)
			}
			cfg.DB.Driver = driver
			cfg.DB.Host = host
			if driver == config.DriverMySQL && os.Getenv("DB_PORT") == "" {
				cfg.DB.Port = 3306
			}
			r, err := Open(context.Background(), cfg.DB)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer r.Close()
			ctx := context.Background()
			if err := r.EnsureSchema(ctx); err != nil {
				t.Fatal(err)
			}
			// start from an empty table
			items, _ := r.ListAll(ctx)
			for _, e := range items {
				r.DeleteByDish(ctx, e.Dish)
			}
			exercise(t, r)
			r.DeleteByDish(ctx, "Pasta")
		})
	}
}

func envPrefix(driver string) string {
	if driver == config.DriverPostgres {
		return "POSTGRES"
	}
	return "MYSQL"
}
