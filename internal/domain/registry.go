package domain

import (
	_ "crypto/sha256"
	"fmt"
	"regexp"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/hoard/pkg/download"
)

var referencePart = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Reference names a model variant as "name:tag".
type Reference struct {
	Name string
	Tag  string
}

// ParseReference parses "name" or "name:tag". The tag is left empty when
// omitted so callers can resolve a default.
func ParseReference(s string) (Reference, error) {
	name, tag, hasTag := strings.Cut(strings.TrimSpace(s), ":")
	if !referencePart.MatchString(name) {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, s)
	}
	if hasTag && !referencePart.MatchString(tag) {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, s)
	}
	return Reference{Name: name, Tag: tag}, nil
}

func (r Reference) String() string {
	if r.Tag == "" {
		return r.Name
	}
	return r.Name + ":" + r.Tag
}

// DirName is the directory name used for the variant's local blobs.
func (r Reference) DirName() string {
	return r.Name + "_" + r.Tag
}

// BlobRef is a content-addressed blob listed in a manifest.
type BlobRef struct {
	MediaType string        `json:"mediaType"`
	Digest    digest.Digest `json:"digest"`
	Size      int64         `json:"size"`
}

// Manifest is a registry manifest describing a model variant.
type Manifest struct {
	SchemaVersion int       `json:"schemaVersion"`
	MediaType     string    `json:"mediaType"`
	Config        BlobRef   `json:"config"`
	Layers        []BlobRef `json:"layers"`
}

// Blobs returns the config blob followed by the layers in manifest order.
func (m *Manifest) Blobs() []BlobRef {
	blobs := make([]BlobRef, 0, len(m.Layers)+1)
	blobs = append(blobs, m.Config)
	return append(blobs, m.Layers...)
}

// Validate checks every digest is a well-formed sha256 digest.
func (m *Manifest) Validate() error {
	for _, b := range m.Blobs() {
		if err := b.Digest.Validate(); err != nil {
			return fmt.Errorf("%w: blob %q: %w", ErrInvalidManifest, b.Digest, err)
		}
		if b.Digest.Algorithm() != digest.SHA256 {
			return fmt.Errorf("%w: unsupported digest algorithm %q", ErrInvalidManifest, b.Digest.Algorithm())
		}
		if b.Size < 0 {
			return fmt.Errorf("%w: blob %q has negative size", ErrInvalidManifest, b.Digest)
		}
	}
	return nil
}

// Dialect returns the manifest's schema version and media type.
func (m *Manifest) Dialect() ManifestDialect {
	return ManifestDialect{SchemaVersion: m.SchemaVersion, MediaType: m.MediaType}
}

// ManifestDialect is the (schemaVersion, mediaType) pair a manifest is
// written in.
type ManifestDialect struct {
	SchemaVersion int
	MediaType     string
}

func (d ManifestDialect) String() string {
	return fmt.Sprintf("v%d %s", d.SchemaVersion, d.MediaType)
}

// MediaCategory maps a blob media type to its local naming convention.
type MediaCategory struct {
	Name      string
	MediaType string
	Extension string
}

// FallbackCategory derives a category for a media type with no recorded
// mapping: the last dotted segment of the type, stored as ".txt".
func FallbackCategory(mediaType string) MediaCategory {
	name := mediaType
	if i := strings.LastIndexAny(mediaType, "./"); i >= 0 {
		name = mediaType[i+1:]
	}
	if name == "" {
		name = "blob"
	}
	return MediaCategory{Name: name, MediaType: mediaType, Extension: "txt"}
}

// FileName returns "<category>-<hex>.<ext>" for a blob of this category.
func (c MediaCategory) FileName(d digest.Digest) string {
	return fmt.Sprintf("%s-%s.%s", c.Name, d.Encoded(), c.Extension)
}

// LocalBlob records where a pulled blob lives on disk.
type LocalBlob struct {
	Category  string        `json:"category"`
	MediaType string        `json:"media_type"`
	Digest    digest.Digest `json:"digest"`
	Path      string        `json:"path"`
	Size      int64         `json:"size"`
}

// BlobResult is the per-blob outcome of a pull.
type BlobResult struct {
	Blob   LocalBlob
	Status download.Status
}

// PullReport summarizes a completed pull.
type PullReport struct {
	Reference Reference
	Dir       string
	Blobs     []BlobResult
}

// BlobState describes a blob file found on disk.
type BlobState int

const (
	// BlobMissing means no file exists at the blob's path.
	BlobMissing BlobState = iota
	// BlobPlaceholder is the zero-length marker of an interrupted download.
	BlobPlaceholder
	// BlobValid means the file matches its digest.
	BlobValid
	// BlobCorrupt means the file exists but does not match its digest.
	BlobCorrupt
)

// PullStatus is the local pull state of a variant.
type PullStatus struct {
	Variant VariantRecord
	Status  CompletionStatus
	Blobs   []LocalBlob
}
