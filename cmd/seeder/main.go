package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marinapizzas/menu-seeder/app/seeder"
	"github.com/marinapizzas/menu-seeder/config"
	"github.com/marinapizzas/menu-seeder/database"
	"github.com/marinapizzas/menu-seeder/models"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	ctx := context.Background()
	repo := models.NewMenuRepository(db)

	s := seeder.NewSeeder(repo, os.Stdout)
	if _, err := s.Run(ctx, seeder.MarinaMenu()); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	return nil
}
