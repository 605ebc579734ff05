package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/hoard/internal/domain"
)

const upsertFlag = `INSERT INTO config_flag (name, value, updated_at) VALUES (?, ?, ` + now + `)
	ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setFlag(ctx context.Context, db execer, name string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := db.ExecContext(ctx, upsertFlag, name, value); err != nil {
		return fmt.Errorf("set flag %s: %w", name, err)
	}
	return nil
}

// Flag returns the raw value of a flag.
func (s *Store) Flag(ctx context.Context, name string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM config_flag WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlagNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read flag %s: %w", domain.ErrStore, name, err)
	}
	return value, nil
}

// FlagRecord returns a flag with its update time.
func (s *Store) FlagRecord(ctx context.Context, name string) (*domain.ConfigFlag, error) {
	var (
		flag    domain.ConfigFlag
		updated int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT name, value, updated_at FROM config_flag WHERE name = ?`, name).
		Scan(&flag.Name, &flag.Value, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlagNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read flag %s: %w", domain.ErrStore, name, err)
	}
	flag.UpdatedAt = unixTime(updated)
	return &flag, nil
}

// SetFlag upserts a flag.
func (s *Store) SetFlag(ctx context.Context, name string, value []byte) error {
	return s.withTx(ctx, "set flag", func(tx *sql.Tx) error {
		return setFlag(ctx, tx, name, value)
	})
}

// Status reads a completion flag. A missing flag reads as NotStarted.
func (s *Store) Status(ctx context.Context, name string) (domain.CompletionStatus, error) {
	value, err := s.Flag(ctx, name)
	if errors.Is(err, domain.ErrFlagNotFound) {
		return domain.NotStarted, nil
	}
	if err != nil {
		return "", err
	}

	status, err := domain.ParseCompletionStatus(string(value))
	if err != nil {
		return "", fmt.Errorf("%w: flag %s: %w", domain.ErrStore, name, err)
	}
	return status, nil
}

// SetStatus upserts a completion flag.
func (s *Store) SetStatus(ctx context.Context, name string, status domain.CompletionStatus) error {
	return s.SetFlag(ctx, name, []byte(status))
}

// ManifestDialect returns the recorded manifest dialect.
func (s *Store) ManifestDialect(ctx context.Context) (domain.ManifestDialect, error) {
	version, err := s.Flag(ctx, domain.FlagManifestSchemaVersion)
	if err != nil {
		return domain.ManifestDialect{}, err
	}
	mediaType, err := s.Flag(ctx, domain.FlagManifestMediaType)
	if err != nil {
		return domain.ManifestDialect{}, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(version)))
	if err != nil {
		return domain.ManifestDialect{}, fmt.Errorf("%w: invalid %s %q", domain.ErrStore, domain.FlagManifestSchemaVersion, version)
	}
	return domain.ManifestDialect{SchemaVersion: n, MediaType: string(mediaType)}, nil
}

// MediaCategory resolves a media type to the category recorded for it.
func (s *Store) MediaCategory(ctx context.Context, mediaType string) (domain.MediaCategory, bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM config_flag WHERE name LIKE ? ESCAPE '\' AND value = ? ORDER BY name LIMIT 1`,
		`%\_media\_type`, []byte(mediaType)).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MediaCategory{}, false, nil
	}
	if err != nil {
		return domain.MediaCategory{}, false, fmt.Errorf("%w: lookup media type %s: %w", domain.ErrStore, mediaType, err)
	}

	category := strings.TrimSuffix(name, domain.MediaTypeSuffix)
	ext, err := s.Flag(ctx, category)
	if errors.Is(err, domain.ErrFlagNotFound) {
		return domain.MediaCategory{}, false, nil
	}
	if err != nil {
		return domain.MediaCategory{}, false, err
	}

	return domain.MediaCategory{Name: category, MediaType: mediaType, Extension: string(ext)}, true, nil
}
