package domain

import (
	"fmt"
	"strings"
)

// CompletionStatus records the progress of a resumable pipeline. Only
// Completed allows a later run to skip the pipeline's work.
type CompletionStatus string

const (
	NotStarted CompletionStatus = "Not Started"
	InProgress CompletionStatus = "In Progress"
	Completed  CompletionStatus = "Completed"
	Failed     CompletionStatus = "Failed"
)

// ParseCompletionStatus parses a stored status value.
func ParseCompletionStatus(s string) (CompletionStatus, error) {
	switch st := CompletionStatus(s); st {
	case NotStarted, InProgress, Completed, Failed:
		return st, nil
	default:
		return "", fmt.Errorf("unknown completion status %q", s)
	}
}

// Done reports whether the pipeline may skip its work.
func (s CompletionStatus) Done() bool {
	return s == Completed
}

// Well-known flag names.
const (
	FlagInitStatus            = "init_status"
	FlagCatalogSyncStatus     = "catalog_sync_status"
	FlagManifestSchemaVersion = "manifest_schema_version"
	FlagManifestMediaType     = "manifest_media_type"
	FlagListingRaw            = "catalog_listing_raw"
	FlagListingDigest         = "catalog_listing_digest"

	// MediaTypeSuffix marks flags mapping a category to its media type,
	// e.g. "model_media_type". The bare category flag holds the extension.
	MediaTypeSuffix = "_media_type"
)

// PullStatusFlag is the completion flag of a variant pull.
func PullStatusFlag(variant string) string {
	return "pull_status:" + variant
}

// BlobFlag holds one LocalBlob of a variant, keyed by category and digest so
// several layers of the same media type each keep a record.
func BlobFlag(variant string, blob LocalBlob) string {
	_, hex, _ := strings.Cut(string(blob.Digest), ":")
	return BlobFlagPrefix(variant) + blob.Category + ":" + hex
}

// BlobFlagPrefix is shared by every BlobFlag of a variant.
func BlobFlagPrefix(variant string) string {
	return "blob:" + variant + ":"
}
