package out

import (
	"context"

	"github.com/bnema/hoard/internal/domain"
)

// FlagStore defines the contract for named flags in the metadata store.
type FlagStore interface {
	// Flag returns the raw value of a flag, or domain.ErrFlagNotFound.
	Flag(ctx context.Context, name string) ([]byte, error)

	// SetFlag upserts a flag.
	SetFlag(ctx context.Context, name string, value []byte) error

	// Status reads a completion flag. A missing flag reads as NotStarted.
	Status(ctx context.Context, name string) (domain.CompletionStatus, error)

	// SetStatus upserts a completion flag.
	SetStatus(ctx context.Context, name string, status domain.CompletionStatus) error
}

// CatalogStore defines the persistence contract of the catalog sync pipeline.
type CatalogStore interface {
	FlagStore

	// EntryDigests maps CatalogEntry.Key values to the raw content digest last stored.
	EntryDigests(ctx context.Context) (map[string]string, error)

	// SaveListing stores the raw listing page and its digest in one transaction.
	SaveListing(ctx context.Context, raw, digest string) error

	// SaveRecord upserts an entry and all of its variants in one transaction.
	SaveRecord(ctx context.Context, record domain.CatalogRecord) error

	// ListEntries returns every stored entry ordered by title.
	ListEntries(ctx context.Context) ([]domain.CatalogEntry, error)

	// FindEntry returns the entry with the given title.
	FindEntry(ctx context.Context, title string) (*domain.CatalogEntry, error)

	// VariantsOf returns the variants of an entry ordered by name.
	VariantsOf(ctx context.Context, entryID string) ([]domain.VariantRecord, error)
}

// VariantStore defines the persistence contract of the pull pipeline.
type VariantStore interface {
	FlagStore

	// ManifestDialect returns the manifest dialect this store was written for.
	ManifestDialect(ctx context.Context) (domain.ManifestDialect, error)

	// MediaCategory resolves a media type to its recorded category.
	MediaCategory(ctx context.Context, mediaType string) (domain.MediaCategory, bool, error)

	// FindVariant returns the variant named "name:tag".
	FindVariant(ctx context.Context, name string) (*domain.VariantRecord, error)

	// FirstVariant returns the first stored variant of a model.
	FirstVariant(ctx context.Context, model string) (*domain.VariantRecord, error)

	// RecordBlob stores a pulled blob against its variant in one transaction.
	RecordBlob(ctx context.Context, variant string, blob domain.LocalBlob) error

	// Blobs returns the blobs recorded for a variant.
	Blobs(ctx context.Context, variant string) ([]domain.LocalBlob, error)
}

// BlobStorage defines the contract for the local blob layout.
type BlobStorage interface {
	// ModelDir returns the directory holding the variant's blobs.
	ModelDir(ref domain.Reference) string

	// Inspect reports the state of the file at path against the hex digest.
	Inspect(path, hexDigest string) (domain.BlobState, error)

	// Discard removes a blob file that failed verification.
	Discard(path string) error
}
