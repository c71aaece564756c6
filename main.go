package main

import (
	"context"
	"fmt"
	"os"

	"menu-qr/config"
	"menu-qr/logger"
	"menu-qr/qr"
	"menu-qr/repository"
	"menu-qr/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, os.Stderr)

	ctx := context.Background()
	repo, err := repository.Open(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	log.Debug().Str("driver", cfg.DB.Driver).Msg("store opened")

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		err := repo.EnsureSchema(ctx)
		repo.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			os.Exit(1)
		}
		fmt.Println("Migrations applied.")
		return
	}

	store := services.NewMenuStore(repo, logger.Component(log, "menu"))
	app := &App{
		Store:  store,
		Enc:    qr.NewEncoder(),
		Output: cfg.Export.Output,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
	// a failed load leaves the menu empty but usable
	if _, err := store.LoadAll(ctx); err != nil {
		app.notify(err)
	}

	code := app.Run(ctx, os.Args[1:], os.Stdin)
	repo.Close()
	os.Exit(code)
}
