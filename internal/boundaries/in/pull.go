package in

import (
	"context"

	"github.com/bnema/hoard/internal/domain"
)

// PullService defines the contract for pulling model variants.
type PullService interface {
	// Pull downloads and verifies every blob of a variant ("name[:tag]").
	Pull(ctx context.Context, ref string) (*domain.PullReport, error)

	// Status returns the local pull state of a variant.
	Status(ctx context.Context, ref string) (*domain.PullStatus, error)
}
