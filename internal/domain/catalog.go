package domain

import "time"

// CatalogEntry is a model family listed by the remote library.
type CatalogEntry struct {
	ID               string    `json:"id" yaml:"id"`
	Title            string    `json:"title" yaml:"title"`
	Href             string    `json:"href" yaml:"href"`
	RawContentDigest string    `json:"raw_content_digest" yaml:"raw_content_digest"`
	Introduction     string    `json:"introduction" yaml:"introduction"`
	PullCount        string    `json:"pull_count" yaml:"pull_count"`
	TagCount         string    `json:"tag_count" yaml:"tag_count"`
	Summary          string    `json:"summary" yaml:"summary,omitempty"`
	Readme           string    `json:"readme" yaml:"readme,omitempty"`
	UpdatedTime      string    `json:"updated_time" yaml:"updated_time"`
	UpdatedAt        time.Time `json:"updated_at" yaml:"updated_at"`
}

// Key identifies the entry the way the store's unique (title, href) pair does.
func (e CatalogEntry) Key() string {
	return e.Title + "\x00" + e.Href
}

// VariantRecord is one tag of a catalog entry, e.g. "llama3:8b".
type VariantRecord struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Href           string    `json:"href" yaml:"href"`
	Size           string    `json:"size" yaml:"size"`
	Context        string    `json:"context" yaml:"context,omitempty"`
	Input          string    `json:"input" yaml:"input,omitempty"`
	Hash           string    `json:"hash" yaml:"hash"`
	CatalogEntryID string    `json:"catalog_entry_id" yaml:"-"`
	Path           string    `json:"path" yaml:"path,omitempty"`
	TemplatePath   string    `json:"template_path" yaml:"template_path,omitempty"`
	UpdatedAt      time.Time `json:"updated_at" yaml:"updated_at"`
}

// CatalogRecord is an entry together with its variants, the unit persisted
// by one store transaction.
type CatalogRecord struct {
	Entry    CatalogEntry
	Variants []VariantRecord
}

// Listing is the raw remote listing page and the entries parsed from it.
type Listing struct {
	Raw     string
	Entries []CatalogEntry
}

// SyncReport summarizes a catalog synchronization run.
type SyncReport struct {
	Listed  int
	Fetched int
	Saved   int
	Failed  int
	Status  CompletionStatus
}

// ConfigFlag is a named value in the metadata store.
type ConfigFlag struct {
	Name      string
	Value     []byte
	UpdatedAt time.Time
}
