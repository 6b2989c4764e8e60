package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinecraftItemIcon_Go/internal/catalogue"
	"github.com/osse101/MinecraftItemIcon_Go/internal/config"
	"github.com/osse101/MinecraftItemIcon_Go/internal/database"
	"github.com/osse101/MinecraftItemIcon_Go/internal/database/postgres"
	"github.com/osse101/MinecraftItemIcon_Go/internal/itemicon"
	"github.com/osse101/MinecraftItemIcon_Go/internal/localization"
	"github.com/osse101/MinecraftItemIcon_Go/internal/metrics"
)

// CatalogueDocument is a catalogue file together with where it came from
type CatalogueDocument struct {
	Source string
	Hash   string
	File   *catalogue.File
}

// ReadCatalogueDocument parses and schema-validates the configured catalogue
// file, or the embedded one when none is configured
func ReadCatalogueDocument(cfg *config.Config) (*CatalogueDocument, error) {
	loader, err := catalogue.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalogue, err)
	}

	source, data := EmbeddedSourceName, catalogue.DefaultData()
	if cfg.CatalogueFile != "" {
		source = cfg.CatalogueFile
		data, err = os.ReadFile(cfg.CatalogueFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalogue, err)
		}
	}

	file, err := loader.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalogue, err)
	}

	return &CatalogueDocument{
		Source: source,
		Hash:   catalogue.ContentHash(data),
		File:   file,
	}, nil
}

// LoadCatalogue builds the in-memory catalogue for cfg.CatalogueSource.
// With the postgres source the document is first synced to the database and
// the catalogue is then read back from it; the returned pool is then non-nil
// and owned by the caller.
func LoadCatalogue(ctx context.Context, cfg *config.Config) (*catalogue.Catalogue, *pgxpool.Pool, error) {
	slog.Info(LogMsgLoadingCatalogue, "source", cfg.CatalogueSource, "file", cfg.CatalogueFile)

	doc, err := ReadCatalogueDocument(cfg)
	if err != nil {
		return nil, nil, err
	}

	entries, err := catalogue.Expand(doc.File.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildCatalogue, err)
	}
	cat, err := catalogue.New(entries, doc.File.Categories)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildCatalogue, err)
	}

	if !cfg.UsesDatabase() {
		metrics.CatalogueEntries.WithLabelValues(cfg.CatalogueSource).Set(float64(cat.Len()))
		return cat, nil, nil
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	stored, err := SyncCatalogue(ctx, pool, doc, cat)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	metrics.CatalogueEntries.WithLabelValues(cfg.CatalogueSource).Set(float64(stored.Len()))
	return stored, pool, nil
}

// SyncCatalogue migrates the schema, writes cat to the database unless the
// document hash is unchanged, and returns the catalogue as stored
func SyncCatalogue(ctx context.Context, pool *pgxpool.Pool, doc *CatalogueDocument, cat *catalogue.Catalogue) (*catalogue.Catalogue, error) {
	version, err := database.Migrate(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied, "version", version)

	slog.Info(LogMsgSyncingCatalogue)
	repo := postgres.NewCatalogueRepository(pool)
	result, err := repo.Sync(ctx, doc.Source, doc.Hash, cat.Entries(), cat.Categories())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalogue, err)
	}
	if result.Skipped {
		slog.Info(LogMsgCatalogueUnchanged, "source", doc.Source)
	} else {
		slog.Info(LogMsgCatalogueSynced,
			"source", doc.Source,
			"categories", result.Categories,
			"items", result.Items)
	}

	entries, categories, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadCatalogue, err)
	}
	stored, err := catalogue.New(entries, categories)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadCatalogue, err)
	}
	return stored, nil
}

// NewEngine builds the item engine over cat with the bundled localization table
func NewEngine(cfg *config.Config, cat catalogue.Provider) (*itemicon.Engine, error) {
	loc, err := localization.Default()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadLocale, err)
	}

	engine, err := itemicon.New(cat, loc, cfg.MinecraftVersion)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateEngine, err)
	}

	slog.Info(LogMsgEngineReady,
		"minecraft_version", engine.Version().ID,
		"texture_dir", engine.Version().AssetDir,
		"locale", loc.Locale(),
		"localized_names", loc.Len())
	return engine, nil
}
