package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoard/internal/domain"
)

func TestParseCompletionStatus(t *testing.T) {
	for _, s := range []domain.CompletionStatus{domain.NotStarted, domain.InProgress, domain.Completed, domain.Failed} {
		got, err := domain.ParseCompletionStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := domain.ParseCompletionStatus("completed")
	assert.Error(t, err)
}

func TestCompletionStatus_OnlyCompletedIsDone(t *testing.T) {
	assert.True(t, domain.Completed.Done())
	assert.False(t, domain.InProgress.Done())
	assert.False(t, domain.Failed.Done())
	assert.False(t, domain.NotStarted.Done())
}

// Flag names are persisted; changing them orphans existing stores.
func TestFlagNames(t *testing.T) {
	assert.Equal(t, "init_status", domain.FlagInitStatus)
	assert.Equal(t, "pull_status:llama3:8b", domain.PullStatusFlag("llama3:8b"))
	assert.Equal(t, "blob:llama3:8b:model:6a07", domain.BlobFlag("llama3:8b", domain.LocalBlob{Category: "model", Digest: "sha256:6a07"}))
	assert.Equal(t, "blob:llama3:8b:license:", domain.BlobFlag("llama3:8b", domain.LocalBlob{Category: "license"}))
	assert.Equal(t, "blob:llama3:8b:", domain.BlobFlagPrefix("llama3:8b"))
}
