package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

// SyncResult reports what a Sync call changed
type SyncResult struct {
	Skipped    bool
	Categories int
	Items      int
}

// SyncMetadata is the stored record of the last successful sync of a source
type SyncMetadata struct {
	Source      string
	ContentHash string
	ItemCount   int
	SyncedAt    time.Time
}

// CatalogueRepository stores the item catalogue in PostgreSQL
type CatalogueRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogueRepository creates a new CatalogueRepository
func NewCatalogueRepository(pool *pgxpool.Pool) *CatalogueRepository {
	return &CatalogueRepository{pool: pool}
}

// Sync replaces the stored catalogue with entries and categories, keeping
// their order. When contentHash matches the hash recorded for source the
// database is left untouched.
func (r *CatalogueRepository) Sync(ctx context.Context, source, contentHash string, entries []domain.CatalogueEntry, categories []domain.CategoryDefinition) (SyncResult, error) {
	var result SyncResult

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	stored, found, err := syncMetadata(ctx, tx, source)
	if err != nil {
		return result, err
	}
	if found && stored.ContentHash == contentHash {
		slog.Default().Info(LogMsgCatalogueUnchanged, "source", source, "hash", contentHash)
		return SyncResult{Skipped: true}, nil
	}

	if err := upsertCategories(ctx, tx, categories); err != nil {
		return result, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM `+TableItems); err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgFailedToClearItems, err)
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{TableItems},
		[]string{"item_id", "display_name", "category_id", "stack_size", "craftable", "variant", "sort_order"},
		pgx.CopyFromSlice(len(entries), func(i int) ([]any, error) {
			e := entries[i]
			return []any{e.ID, e.Name, string(e.Category), e.StackSize, e.Craftable, textOrNull(e.Variant), i}, nil
		}),
	)
	if err != nil {
		return result, wrapConstraintError(ErrMsgFailedToCopyItems, err)
	}

	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, string(c.ID))
	}
	if _, err := tx.Exec(ctx, `DELETE FROM `+TableCategories+` WHERE category_id <> ALL($1)`, ids); err != nil {
		return result, wrapConstraintError(ErrMsgFailedToPruneCategories, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO `+TableSyncMetadata+` (source_name, content_hash, item_count, synced_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (source_name) DO UPDATE
		SET content_hash = EXCLUDED.content_hash,
		    item_count = EXCLUDED.item_count,
		    synced_at = EXCLUDED.synced_at`,
		source, contentHash, copied)
	if err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgFailedToWriteSyncMetadata, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	result = SyncResult{Categories: len(categories), Items: int(copied)}
	slog.Default().Info(LogMsgCatalogueSynced,
		"source", source,
		"categories", result.Categories,
		"items", result.Items)
	return result, nil
}

func upsertCategories(ctx context.Context, tx pgx.Tx, categories []domain.CategoryDefinition) error {
	batch := &pgx.Batch{}
	for i, c := range categories {
		batch.Queue(`
			INSERT INTO `+TableCategories+` (category_id, display_name, sort_order)
			VALUES ($1, $2, $3)
			ON CONFLICT (category_id) DO UPDATE
			SET display_name = EXCLUDED.display_name,
			    sort_order = EXCLUDED.sort_order`,
			string(c.ID), c.Name, i)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return wrapConstraintError(ErrMsgFailedToUpsertCategories, err)
	}
	return nil
}

// SyncStatus returns the last sync record of source
func (r *CatalogueRepository) SyncStatus(ctx context.Context, source string) (SyncMetadata, bool, error) {
	return syncMetadata(ctx, r.pool, source)
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func syncMetadata(ctx context.Context, q querier, source string) (SyncMetadata, bool, error) {
	meta := SyncMetadata{Source: source}
	err := q.QueryRow(ctx, `
		SELECT content_hash, item_count, synced_at
		FROM `+TableSyncMetadata+`
		WHERE source_name = $1`, source).Scan(&meta.ContentHash, &meta.ItemCount, &meta.SyncedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return SyncMetadata{}, false, nil
	}
	if err != nil {
		return SyncMetadata{}, false, fmt.Errorf("%s: %w", ErrMsgFailedToReadSyncMetadata, err)
	}
	return meta, true, nil
}

// Load reads the stored catalogue in its synced order
func (r *CatalogueRepository) Load(ctx context.Context) ([]domain.CatalogueEntry, []domain.CategoryDefinition, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category_id, display_name
		FROM `+TableCategories+`
		ORDER BY sort_order, category_id`)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCategories, err)
	}
	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategoryDefinition, error) {
		var c domain.CategoryDefinition
		var id string
		err := row.Scan(&id, &c.Name)
		c.ID = domain.Category(id)
		return c, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCategories, err)
	}

	rows, err = r.pool.Query(ctx, `
		SELECT item_id, display_name, category_id, stack_size, craftable, variant
		FROM `+TableItems+`
		ORDER BY sort_order`)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadItems, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CatalogueEntry, error) {
		var e domain.CatalogueEntry
		var category string
		var variant *string
		if err := row.Scan(&e.ID, &e.Name, &category, &e.StackSize, &e.Craftable, &variant); err != nil {
			return e, err
		}
		e.Category = domain.Category(category)
		if variant != nil {
			e.Variant = *variant
		}
		return e, nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadItems, err)
	}

	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrCatalogueUnavailable, ErrMsgEmptyCatalogue)
	}

	slog.Default().Info(LogMsgCatalogueLoaded, "categories", len(categories), "items", len(entries))
	return entries, categories, nil
}
