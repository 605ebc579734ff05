package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/hoard/internal/domain"
)

const entryColumns = `id, title, href, raw_content_digest, introduction, pull_count, tag_count,
	summary, readme, updated_time, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (domain.CatalogEntry, error) {
	var (
		e       domain.CatalogEntry
		updated int64
	)
	err := row.Scan(&e.ID, &e.Title, &e.Href, &e.RawContentDigest, &e.Introduction, &e.PullCount,
		&e.TagCount, &e.Summary, &e.Readme, &e.UpdatedTime, &updated)
	e.UpdatedAt = unixTime(updated)
	return e, err
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// EntryDigests maps entry keys (CatalogEntry.Key) to their stored raw
// content digest.
func (s *Store) EntryDigests(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title, href, raw_content_digest FROM catalog_entry`)
	if err != nil {
		return nil, fmt.Errorf("%w: list digests: %w", domain.ErrStore, err)
	}
	defer rows.Close()

	digests := make(map[string]string)
	for rows.Next() {
		var e domain.CatalogEntry
		var digest string
		if err := rows.Scan(&e.Title, &e.Href, &digest); err != nil {
			return nil, fmt.Errorf("%w: scan digest: %w", domain.ErrStore, err)
		}
		digests[e.Key()] = digest
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list digests: %w", domain.ErrStore, err)
	}
	return digests, nil
}

// SaveListing stores the raw listing page and its digest.
func (s *Store) SaveListing(ctx context.Context, raw, digest string) error {
	return s.withTx(ctx, "save listing", func(tx *sql.Tx) error {
		if err := setFlag(ctx, tx, domain.FlagListingRaw, []byte(raw)); err != nil {
			return err
		}
		return setFlag(ctx, tx, domain.FlagListingDigest, []byte(digest))
	})
}

// SaveRecord upserts an entry and its variants. Variant paths recorded by
// earlier pulls are preserved.
func (s *Store) SaveRecord(ctx context.Context, record domain.CatalogRecord) error {
	e := record.Entry
	return s.withTx(ctx, "save record "+e.Title, func(tx *sql.Tx) error {
		var entryID string
		err := tx.QueryRowContext(ctx, `
			INSERT INTO catalog_entry (id, title, href, raw_content_digest, introduction, pull_count,
				tag_count, summary, readme, updated_time, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, `+now+`)
			ON CONFLICT(title, href) DO UPDATE SET
				raw_content_digest = excluded.raw_content_digest,
				introduction = excluded.introduction,
				pull_count = excluded.pull_count,
				tag_count = excluded.tag_count,
				summary = excluded.summary,
				readme = excluded.readme,
				updated_time = excluded.updated_time,
				updated_at = excluded.updated_at
			RETURNING id`,
			newID(), e.Title, e.Href, e.RawContentDigest, e.Introduction, e.PullCount,
			e.TagCount, e.Summary, e.Readme, e.UpdatedTime).Scan(&entryID)
		if err != nil {
			return fmt.Errorf("upsert entry: %w", err)
		}

		for _, v := range record.Variants {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO variant_record (id, name, href, size, context, input, hash,
					catalog_entry_id, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, `+now+`)
				ON CONFLICT(name) DO UPDATE SET
					href = excluded.href,
					size = excluded.size,
					context = excluded.context,
					input = excluded.input,
					hash = excluded.hash,
					catalog_entry_id = excluded.catalog_entry_id,
					updated_at = excluded.updated_at`,
				newID(), v.Name, v.Href, v.Size, v.Context, v.Input, v.Hash, entryID); err != nil {
				return fmt.Errorf("upsert variant %s: %w", v.Name, err)
			}
		}
		return nil
	})
}

// ListEntries returns every entry ordered by title.
func (s *Store) ListEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM catalog_entry ORDER BY title, href`)
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %w", domain.ErrStore, err)
	}
	defer rows.Close()

	var entries []domain.CatalogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan entry: %w", domain.ErrStore, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list entries: %w", domain.ErrStore, err)
	}
	return entries, nil
}

// FindEntry returns the first entry with the given title.
func (s *Store) FindEntry(ctx context.Context, title string) (*domain.CatalogEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM catalog_entry WHERE title = ? ORDER BY href LIMIT 1`, title)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, title)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find entry %s: %w", domain.ErrStore, title, err)
	}
	return &e, nil
}
