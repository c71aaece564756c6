package db

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Embedded so `menuqr migrate` works regardless of the current working directory.
//
//go:embed migrations/*/*.sql
var migrationsFS embed.FS

type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the dialect's migrations in apply order.
func Migrations(dialect string) ([]Migration, error) {
	names, err := fs.Glob(migrationsFS, "migrations/"+dialect+"/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
	sort.Strings(names)
	out := make([]Migration, 0, len(names))
	for _, name := range names {
		b, err := migrationsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		out = append(out, Migration{Name: name, SQL: string(b)})
	}
	return out, nil
}
