package webcatalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoard/internal/domain"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestParseListing(t *testing.T) {
	entries, err := ParseListing(fixture(t, "library.html"))
	require.NoError(t, err)

	// The incomplete entry is skipped and the order is oldest first.
	require.Len(t, entries, 2)
	assert.Equal(t, "mistral", entries[0].Title)

	llama := entries[1]
	assert.Equal(t, "llama3", llama.Title)
	assert.Equal(t, "/library/llama3", llama.Href)
	assert.Equal(t, "Meta Llama 3: The most capable openly available LLM to date", llama.Introduction)
	assert.Equal(t, "6.2M", llama.PullCount)
	assert.Equal(t, "68", llama.TagCount)
	assert.Equal(t, "2 weeks ago", llama.UpdatedTime)
	assert.NotEmpty(t, llama.RawContentDigest)
	assert.NotEqual(t, entries[0].RawContentDigest, llama.RawContentDigest)
}

func TestParseListing_DigestTracksFragment(t *testing.T) {
	page := fixture(t, "library.html")
	before, err := ParseListing(page)
	require.NoError(t, err)

	after, err := ParseListing(strings.Replace(page, "6.2M", "6.3M", 1))
	require.NoError(t, err)

	assert.Equal(t, before[0].RawContentDigest, after[0].RawContentDigest, "mistral is unchanged")
	assert.NotEqual(t, before[1].RawContentDigest, after[1].RawContentDigest, "llama3 changed")
}

func TestParseListing_EmptyPage(t *testing.T) {
	entries, err := ParseListing("<html><body></body></html>")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseDetail(t *testing.T) {
	summary, readme, err := ParseDetail(fixture(t, "detail.html"))
	require.NoError(t, err)

	assert.Equal(t, "Meta Llama 3: The most capable openly available LLM to date", summary)
	assert.Contains(t, readme, "Llama 3")
	assert.Contains(t, readme, "optimized for dialogue")
}

func TestParseDetail_MissingSections(t *testing.T) {
	summary, readme, err := ParseDetail("<html><body><p>nothing here</p></body></html>")
	require.NoError(t, err)
	assert.Empty(t, summary)
	assert.Empty(t, readme)
}

func TestParseTags(t *testing.T) {
	variants, err := ParseTags("llama3", fixture(t, "tags.html"))
	require.NoError(t, err)

	assert.Equal(t, []domain.VariantRecord{
		{
			Name:    "llama3:latest",
			Href:    "/library/llama3:latest",
			Size:    "4.7GB",
			Context: "8K",
			Input:   "Text",
			Hash:    "365c0bd3c000",
		},
		{
			Name:    "llama3:70b",
			Href:    "/library/llama3:70b",
			Size:    "40GB",
			Context: "8K",
			Input:   "Text",
			Hash:    "786f3184aec0",
		},
	}, variants)
}
