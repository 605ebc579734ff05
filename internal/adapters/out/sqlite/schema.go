package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/bnema/hoard/internal/domain"
)

const schemaVersion = 1

const now = `CAST(strftime('%s','now') AS INTEGER)`

var schema = []string{
	`CREATE TABLE IF NOT EXISTS catalog_entry (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		href TEXT NOT NULL,
		raw_content_digest TEXT NOT NULL DEFAULT '',
		introduction TEXT NOT NULL DEFAULT '',
		pull_count TEXT NOT NULL DEFAULT '',
		tag_count TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL DEFAULT '',
		readme TEXT NOT NULL DEFAULT '',
		updated_time TEXT NOT NULL DEFAULT '',
		updated_at INTEGER NOT NULL,
		UNIQUE (title, href)
	)`,
	`CREATE TABLE IF NOT EXISTS variant_record (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		href TEXT NOT NULL DEFAULT '',
		size TEXT NOT NULL DEFAULT '',
		context TEXT NOT NULL DEFAULT '',
		input TEXT NOT NULL DEFAULT '',
		hash TEXT NOT NULL DEFAULT '',
		catalog_entry_id TEXT NOT NULL REFERENCES catalog_entry(id),
		path TEXT NOT NULL DEFAULT '',
		template_path TEXT NOT NULL DEFAULT '',
		updated_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_variant_record_entry ON variant_record(catalog_entry_id)`,
	`CREATE TABLE IF NOT EXISTS config_flag (
		name TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
}

// mediaCategories are the blob categories known at bootstrap. They can be
// edited in config_flag afterwards.
var mediaCategories = []domain.MediaCategory{
	{Name: "model", MediaType: "application/vnd.ollama.image.model", Extension: "gguf"},
	{Name: "template", MediaType: "application/vnd.ollama.image.template", Extension: "txt"},
	{Name: "license", MediaType: "application/vnd.ollama.image.license", Extension: "txt"},
	{Name: "params", MediaType: "application/vnd.ollama.image.params", Extension: "json"},
	{Name: "system", MediaType: "application/vnd.ollama.image.system", Extension: "txt"},
	{Name: "messages", MediaType: "application/vnd.ollama.image.messages", Extension: "json"},
	{Name: "projector", MediaType: "application/vnd.ollama.image.projector", Extension: "gguf"},
	{Name: "adapter", MediaType: "application/vnd.ollama.image.adapter", Extension: "gguf"},
	{Name: "config", MediaType: "application/vnd.docker.container.image.v1+json", Extension: "json"},
}

// DefaultDialect is the manifest dialect recorded at bootstrap.
var DefaultDialect = domain.ManifestDialect{
	SchemaVersion: 2,
	MediaType:     "application/vnd.docker.distribution.manifest.v2+json",
}

func seedFlags() map[string]string {
	flags := map[string]string{
		domain.FlagInitStatus:            string(domain.NotStarted),
		domain.FlagCatalogSyncStatus:     string(domain.NotStarted),
		domain.FlagManifestSchemaVersion: fmt.Sprint(DefaultDialect.SchemaVersion),
		domain.FlagManifestMediaType:     DefaultDialect.MediaType,
	}
	for _, c := range mediaCategories {
		flags[c.Name+domain.MediaTypeSuffix] = c.MediaType
		flags[c.Name] = c.Extension
	}
	return flags
}

func (s *Store) bootstrap(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("%w: read schema version: %w", domain.ErrStore, err)
	}
	if version >= schemaVersion {
		log.Debug("Database schema up to date", "version", version)
		return nil
	}

	log.Debug("Bootstrapping database schema", "from", version, "to", schemaVersion)

	return s.withTx(ctx, "bootstrap", func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}
		for name, value := range seedFlags() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO config_flag (name, value, updated_at) VALUES (?, ?, `+now+`)
				 ON CONFLICT(name) DO NOTHING`,
				name, []byte(value)); err != nil {
				return fmt.Errorf("seed flag %s: %w", name, err)
			}
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion)); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	})
}
