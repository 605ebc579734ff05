package in

import (
	"context"

	"github.com/bnema/hoard/internal/domain"
)

// CatalogService defines the contract for the local model catalog.
type CatalogService interface {
	// Init performs the first synchronization. It is a no-op once completed
	// unless force is set.
	Init(ctx context.Context, force bool) (*domain.SyncReport, error)

	// Update re-synchronizes an initialized catalog.
	Update(ctx context.Context) (*domain.SyncReport, error)

	// Entries lists the catalog.
	Entries(ctx context.Context) ([]domain.CatalogEntry, error)

	// Entry returns an entry and its variants.
	Entry(ctx context.Context, title string) (*domain.CatalogRecord, error)
}
