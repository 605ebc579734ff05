// Package app provides the application initialization and wiring.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"github.com/bnema/hoard/internal/adapters/out/filesystem"
	"github.com/bnema/hoard/internal/adapters/out/ratelimit"
	"github.com/bnema/hoard/internal/adapters/out/registry"
	"github.com/bnema/hoard/internal/adapters/out/sqlite"
	"github.com/bnema/hoard/internal/adapters/out/webcatalog"
	"github.com/bnema/hoard/internal/config"
	"github.com/bnema/hoard/internal/usecase/catalog"
	"github.com/bnema/hoard/internal/usecase/pull"
	"github.com/bnema/hoard/pkg/download"
)

// ErrLocked is returned when another process holds the data directory.
var ErrLocked = errors.New("data directory is in use by another hoard process")

const lockRetry = 250 * time.Millisecond

// App holds the wired services of one hoard invocation.
type App struct {
	Config     *config.Config
	Log        *log.Logger
	Store      *sqlite.Store
	Blobs      *filesystem.BlobStorage
	Downloader *download.Engine
	Catalog    *catalog.Service
	Pull       *pull.Service

	lock *flock.Flock
}

type options struct {
	progress    func(download.Progress)
	lockTimeout time.Duration
}

// Option customizes New.
type Option func(*options)

// WithProgress reports blob download progress to fn.
func WithProgress(fn func(download.Progress)) Option {
	return func(o *options) { o.progress = fn }
}

// WithLockTimeout bounds the wait for the data directory lock.
func WithLockTimeout(d time.Duration) Option {
	return func(o *options) { o.lockTimeout = d }
}

// New locks the data directory, opens the metadata store and wires the
// services. Close releases everything.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger, opts ...Option) (*App, error) {
	o := options{lockTimeout: 2 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.MkdirAll(cfg.Data.Path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	lock := flock.New(LockPath(cfg.Data.Path))
	lockCtx, cancel := context.WithTimeout(ctx, o.lockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, lockRetry)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("failed to lock data directory: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, cfg.Data.Path)
	}

	a := &App{Config: cfg, Log: logger, lock: lock}
	if err := a.wire(ctx, o); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wire(ctx context.Context, o options) error {
	cfg := a.Config

	store, err := sqlite.Open(ctx, cfg.Data.Path, sqlite.DBFilename)
	if err != nil {
		return err
	}
	a.Store = store
	a.Log.Debug("metadata store opened", "path", store.Path())

	if a.Blobs, err = filesystem.NewBlobStorage(ModelRoot(cfg.Data.Path), a.Log); err != nil {
		return err
	}

	// Catalog side
	catalogHTTP, err := cfg.Registry.Client.HTTPClient()
	if err != nil {
		return err
	}
	catalogBackoff, err := cfg.Registry.Client.Backoff()
	if err != nil {
		return err
	}
	limiter := ratelimit.NewMemoryStore(cfg.Registry.Client.RateLimit, 1, a.Log)
	source, err := webcatalog.NewClient(cfg.Registry.Catalog, catalogHTTP, limiter, catalogBackoff, a.Log)
	if err != nil {
		return err
	}
	a.Catalog = catalog.NewService(source, store, a.Log)

	// Pull side
	modelHTTP, err := cfg.Model.Client.HTTPClient()
	if err != nil {
		return err
	}
	registryClient, err := registry.NewClient(cfg.Registry.Remote, cfg.Registry.Namespace, modelHTTP, a.Log)
	if err != nil {
		return err
	}
	modelBackoff, err := cfg.Model.Client.Backoff()
	if err != nil {
		return err
	}
	chunkTimeout, err := cfg.Model.Client.ChunkTimeoutDuration()
	if err != nil {
		return err
	}

	engineOpts := []download.Option{download.WithHTTPClient(modelHTTP)}
	if o.progress != nil {
		engineOpts = append(engineOpts, download.WithProgress(o.progress))
	}
	a.Downloader = download.New(engineOpts...)

	a.Pull = pull.NewService(registryClient, a.Downloader, store, a.Blobs, pull.Config{
		DefaultTag:   cfg.Model.Category,
		ChunkTimeout: chunkTimeout,
		Backoff:      modelBackoff,
	}, a.Log)
	return nil
}

// Close releases the store and the data directory lock.
func (a *App) Close() error {
	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.lock != nil {
		errs = append(errs, a.lock.Unlock())
	}
	return errors.Join(errs...)
}
