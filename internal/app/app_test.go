package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoard/internal/config"
	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/internal/testutils"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	v := viper.New()
	v.Set("data.path", filepath.Join(t.TempDir(), "data"))
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	return cfg
}

func TestNew_WiresServices(t *testing.T) {
	cfg := testConfig(t)
	ctx := testutils.TestContext(t)

	a, err := New(ctx, cfg, testutils.Logger())
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Catalog)
	assert.NotNil(t, a.Pull)
	assert.Equal(t, ModelRoot(cfg.Data.Path), a.Blobs.RootDir())
	assert.FileExists(t, filepath.Join(cfg.Data.Path, "hoard.db"))

	status, err := a.Store.Status(ctx, domain.FlagInitStatus)
	require.NoError(t, err)
	assert.Equal(t, domain.NotStarted, status)
}

func TestNew_DataDirectoryIsExclusive(t *testing.T) {
	cfg := testConfig(t)
	ctx := testutils.TestContext(t)

	first, err := New(ctx, cfg, testutils.Logger())
	require.NoError(t, err)

	_, err = New(ctx, cfg, testutils.Logger(), WithLockTimeout(100*time.Millisecond))
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, first.Close())

	second, err := New(ctx, cfg, testutils.Logger())
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestNew_UnwritableDataDir(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	cfg := testConfig(t)
	cfg.Data.Path = filepath.Join(blocker, "data")

	_, err := New(testutils.TestContext(t), cfg, testutils.Logger())
	assert.Error(t, err)
}
