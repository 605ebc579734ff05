package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/hoard/internal/domain"
)

const variantColumns = `id, name, href, size, context, input, hash, catalog_entry_id,
	path, template_path, updated_at`

func scanVariant(row scanner) (domain.VariantRecord, error) {
	var (
		v       domain.VariantRecord
		updated int64
	)
	err := row.Scan(&v.ID, &v.Name, &v.Href, &v.Size, &v.Context, &v.Input, &v.Hash,
		&v.CatalogEntryID, &v.Path, &v.TemplatePath, &updated)
	v.UpdatedAt = unixTime(updated)
	return v, err
}

func (s *Store) queryVariants(ctx context.Context, query string, args ...any) ([]domain.VariantRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list variants: %w", domain.ErrStore, err)
	}
	defer rows.Close()

	var variants []domain.VariantRecord
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan variant: %w", domain.ErrStore, err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list variants: %w", domain.ErrStore, err)
	}
	return variants, nil
}

// VariantsOf returns an entry's variants in the order they were first stored.
func (s *Store) VariantsOf(ctx context.Context, entryID string) ([]domain.VariantRecord, error) {
	return s.queryVariants(ctx,
		`SELECT `+variantColumns+` FROM variant_record WHERE catalog_entry_id = ? ORDER BY rowid`, entryID)
}

// FindVariant returns the variant named "name:tag".
func (s *Store) FindVariant(ctx context.Context, name string) (*domain.VariantRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+variantColumns+` FROM variant_record WHERE name = ?`, name)
	v, err := scanVariant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrVariantNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find variant %s: %w", domain.ErrStore, name, err)
	}
	return &v, nil
}

// FirstVariant returns the first stored variant of a model.
func (s *Store) FirstVariant(ctx context.Context, model string) (*domain.VariantRecord, error) {
	pattern := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(model) + ":%"
	row := s.db.QueryRowContext(ctx,
		`SELECT `+variantColumns+` FROM variant_record WHERE name LIKE ? ESCAPE '\' ORDER BY rowid LIMIT 1`, pattern)
	v, err := scanVariant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no variant of %s", domain.ErrVariantNotFound, model)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find variant of %s: %w", domain.ErrStore, model, err)
	}
	return &v, nil
}

// RecordBlob stores a pulled blob against its variant. Model and template
// blobs also update the variant's path columns.
func (s *Store) RecordBlob(ctx context.Context, variant string, blob domain.LocalBlob) error {
	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("%w: encode blob: %w", domain.ErrStore, err)
	}

	return s.withTx(ctx, "record blob "+variant, func(tx *sql.Tx) error {
		var column string
		switch blob.Category {
		case "model":
			column = "path"
		case "template":
			column = "template_path"
		}

		if column != "" {
			res, err := tx.ExecContext(ctx,
				`UPDATE variant_record SET `+column+` = ?, updated_at = `+now+` WHERE name = ?`,
				blob.Path, variant)
			if err != nil {
				return fmt.Errorf("update variant path: %w", err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return fmt.Errorf("%w: %w: %s", domain.ErrStore, domain.ErrVariantNotFound, variant)
			}
		}

		return setFlag(ctx, tx, domain.BlobFlag(variant, blob), data)
	})
}

// Blobs returns the blobs recorded for a variant.
func (s *Store) Blobs(ctx context.Context, variant string) ([]domain.LocalBlob, error) {
	prefix := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(domain.BlobFlagPrefix(variant))
	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM config_flag WHERE name LIKE ? ESCAPE '\' ORDER BY name`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("%w: list blobs: %w", domain.ErrStore, err)
	}
	defer rows.Close()

	var blobs []domain.LocalBlob
	for rows.Next() {
		var (
			raw  []byte
			blob domain.LocalBlob
		)
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: scan blob: %w", domain.ErrStore, err)
		}
		if err := json.Unmarshal(raw, &blob); err != nil {
			return nil, fmt.Errorf("%w: decode blob: %w", domain.ErrStore, err)
		}
		blobs = append(blobs, blob)
	}
	return blobs, rows.Err()
}
