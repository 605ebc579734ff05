package out

import (
	"context"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/download"
)

// ManifestSource defines the contract for the remote registry API.
type ManifestSource interface {
	// FetchManifest retrieves and decodes the manifest of a variant.
	FetchManifest(ctx context.Context, ref domain.Reference) (*domain.Manifest, error)

	// BlobURL returns the URL a blob of the variant is served from.
	BlobURL(ref domain.Reference, d digest.Digest) string
}

// Downloader defines the contract for resumable file downloads.
type Downloader interface {
	Fetch(ctx context.Context, task download.Task) (download.Outcome, error)
}

// CatalogSource defines the contract for the remote model library.
type CatalogSource interface {
	// FetchListing retrieves the listing page and the entries parsed from it.
	FetchListing(ctx context.Context) (*domain.Listing, error)

	// FetchDetails retrieves an entry's detail pages and returns the
	// completed entry with its variants.
	FetchDetails(ctx context.Context, entry domain.CatalogEntry) (*domain.CatalogRecord, error)
}
