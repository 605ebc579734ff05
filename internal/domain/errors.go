package domain

import (
	"errors"

	"github.com/bnema/hoard/pkg/download"
)

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Pull errors
	ErrIntegrity        = errors.New("content integrity check failed")
	ErrSchemaMismatch   = errors.New("manifest schema not supported")
	ErrInvalidManifest  = errors.New("invalid manifest")
	ErrInvalidReference = errors.New("invalid model reference")
	ErrVariantNotFound  = errors.New("model variant not found in local catalog")
	ErrManifestNotFound = errors.New("manifest not found")

	// Catalog errors
	ErrEntryNotFound   = errors.New("catalog entry not found")
	ErrNotInitialized  = errors.New("local catalog not initialized")
	ErrListingNotFound = errors.New("catalog listing unavailable")

	// Store errors
	ErrStore        = errors.New("metadata store error")
	ErrFlagNotFound = errors.New("config flag not found")
)

// IsRetryable reports whether err is a transient network or timeout failure.
func IsRetryable(err error) bool {
	return errors.Is(err, download.ErrNetwork) || errors.Is(err, download.ErrTimeout)
}
