// Command setup prepares PostgreSQL for CATALOGUE_SOURCE=postgres: it creates
// the database when missing, applies migrations and syncs the item catalogue.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/MinecraftItemIcon_Go/internal/bootstrap"
	"github.com/osse101/MinecraftItemIcon_Go/internal/catalogue"
	"github.com/osse101/MinecraftItemIcon_Go/internal/config"
	"github.com/osse101/MinecraftItemIcon_Go/internal/database"
	"github.com/osse101/MinecraftItemIcon_Go/internal/database/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// 1. Validate the catalogue document before touching the database
	doc, err := bootstrap.ReadCatalogueDocument(cfg)
	if err != nil {
		log.Fatalf("Catalogue is invalid: %v", err)
	}
	entries, err := catalogue.Expand(doc.File.Items)
	if err != nil {
		log.Fatalf("Catalogue is invalid: %v", err)
	}
	cat, err := catalogue.New(entries, doc.File.Categories)
	if err != nil {
		log.Fatalf("Catalogue is invalid: %v", err)
	}
	fmt.Printf("Catalogue %s is valid: %d entries, %d categories.\n", doc.Source, cat.Len(), len(cat.Categories()))

	// 2. Create the database when it does not exist yet
	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}

	// 3. Migrate and sync
	pool, err := database.NewPool(ctx, database.PoolConfig{ConnString: cfg.GetDBConnString(), MaxConns: 2})
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	if _, err := bootstrap.SyncCatalogue(ctx, pool, doc, cat); err != nil {
		pool.Close()
		log.Fatalf("%v", err)
	}

	status, found, err := postgres.NewCatalogueRepository(pool).SyncStatus(ctx, doc.Source)
	if err != nil || !found {
		pool.Close()
		log.Fatalf("Failed to read sync status: %v", err)
	}
	fmt.Printf("Catalogue synced: %d items, hash %s, at %s.\n",
		status.ItemCount, status.ContentHash[:12], status.SyncedAt.Format(time.RFC3339))
}

func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	adminConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, adminConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
