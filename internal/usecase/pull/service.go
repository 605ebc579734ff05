// Package pull implements the manifest-driven model pull use case.
package pull

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnema/hoard/internal/boundaries/out"
	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/backoff"
	"github.com/bnema/hoard/pkg/checksum"
	"github.com/bnema/hoard/pkg/download"
	"github.com/bnema/hoard/pkg/retry"
)

// Config holds the pull settings.
type Config struct {
	// DefaultTag is used when a reference has no tag and the catalog knows
	// no variant of the model.
	DefaultTag   string
	ChunkTimeout time.Duration
	Backoff      backoff.Options
}

// Service implements the PullService interface.
type Service struct {
	manifests  out.ManifestSource
	downloader out.Downloader
	store      out.VariantStore
	blobs      out.BlobStorage
	cfg        Config
	log        *log.Logger
}

// NewService creates a new pull service.
func NewService(
	manifests out.ManifestSource,
	downloader out.Downloader,
	store out.VariantStore,
	blobs out.BlobStorage,
	cfg Config,
	logger *log.Logger,
) *Service {
	if cfg.DefaultTag == "" {
		cfg.DefaultTag = "latest"
	}
	return &Service{
		manifests:  manifests,
		downloader: downloader,
		store:      store,
		blobs:      blobs,
		cfg:        cfg,
		log:        logger.With("usecase", "pull"),
	}
}

// Resolve parses raw and finds the variant in the local catalog. A missing
// tag resolves to the first variant recorded for the model.
func (s *Service) Resolve(ctx context.Context, raw string) (domain.Reference, *domain.VariantRecord, error) {
	ref, err := domain.ParseReference(raw)
	if err != nil {
		return domain.Reference{}, nil, err
	}

	if ref.Tag == "" {
		first, err := s.store.FirstVariant(ctx, ref.Name)
		switch {
		case err == nil:
			if ref, err = domain.ParseReference(first.Name); err != nil {
				return domain.Reference{}, nil, err
			}
			return ref, first, nil
		case errors.Is(err, domain.ErrVariantNotFound):
			ref.Tag = s.cfg.DefaultTag
		default:
			return domain.Reference{}, nil, err
		}
	}

	variant, err := s.store.FindVariant(ctx, ref.String())
	if err != nil {
		if errors.Is(err, domain.ErrVariantNotFound) {
			return ref, nil, fmt.Errorf("%w: %s (run `hoard update` to refresh the catalog)", domain.ErrVariantNotFound, ref)
		}
		return ref, nil, err
	}
	return ref, variant, nil
}

// Pull makes every blob of the variant's manifest present and verified on
// disk. Blobs already present with a matching digest are skipped without any
// network transfer.
func (s *Service) Pull(ctx context.Context, raw string) (*domain.PullReport, error) {
	ref, variant, err := s.Resolve(ctx, raw)
	if err != nil {
		return nil, err
	}
	logger := s.log.With("model", ref.String())

	manifest, err := retry.DoIf(ctx, s.strategy(), func(ctx context.Context) (*domain.Manifest, error) {
		return s.manifests.FetchManifest(ctx, ref)
	}, domain.IsRetryable)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}

	dialect, err := s.store.ManifestDialect(ctx)
	if err != nil {
		return nil, err
	}
	if manifest.Dialect() != dialect {
		return nil, fmt.Errorf("%w: got %s, want %s", domain.ErrSchemaMismatch, manifest.Dialect(), dialect)
	}

	flag := domain.PullStatusFlag(variant.Name)
	if err := s.store.SetStatus(ctx, flag, domain.InProgress); err != nil {
		return nil, err
	}

	report := &domain.PullReport{Reference: ref, Dir: s.blobs.ModelDir(ref)}
	for _, blob := range manifest.Blobs() {
		result, err := s.pullBlob(ctx, ref, report.Dir, blob)
		if err != nil {
			s.markFailed(ctx, flag)
			return nil, err
		}
		if err := s.store.RecordBlob(ctx, variant.Name, result.Blob); err != nil {
			s.markFailed(ctx, flag)
			return nil, err
		}
		logger.Info("blob ready", "category", result.Blob.Category, "status", result.Status, "size", result.Blob.Size)
		report.Blobs = append(report.Blobs, result)
	}

	if err := s.store.SetStatus(ctx, flag, domain.Completed); err != nil {
		return nil, err
	}
	logger.Info("pull completed", "blobs", len(report.Blobs), "dir", report.Dir)
	return report, nil
}

func (s *Service) pullBlob(ctx context.Context, ref domain.Reference, dir string, blob domain.BlobRef) (domain.BlobResult, error) {
	category, ok, err := s.store.MediaCategory(ctx, blob.MediaType)
	if err != nil {
		return domain.BlobResult{}, err
	}
	if !ok {
		category = domain.FallbackCategory(blob.MediaType)
		s.log.Warn("unknown media type, using fallback name", "media_type", blob.MediaType, "category", category.Name)
	}

	name := category.FileName(blob.Digest)
	path := filepath.Join(dir, name)
	hexDigest := blob.Digest.Encoded()
	local := domain.LocalBlob{
		Category:  category.Name,
		MediaType: blob.MediaType,
		Digest:    blob.Digest,
		Path:      path,
		Size:      blob.Size,
	}

	state, err := s.blobs.Inspect(path, hexDigest)
	if err != nil {
		return domain.BlobResult{}, err
	}
	switch state {
	case domain.BlobValid:
		return domain.BlobResult{Blob: local, Status: download.Skipped}, nil
	case domain.BlobCorrupt:
		s.log.Warn("local blob does not match digest, downloading again", "path", path)
		if err := s.blobs.Discard(path); err != nil {
			return domain.BlobResult{}, err
		}
	}

	task, err := download.NewTask(s.manifests.BlobURL(ref, blob.Digest), dir, name,
		download.WithChunkTimeout(s.cfg.ChunkTimeout),
		download.WithRetryBudget(s.cfg.Backoff.Retries))
	if err != nil {
		return domain.BlobResult{}, err
	}

	outcome, err := retry.DoIf(ctx, s.strategy(), func(ctx context.Context) (download.Outcome, error) {
		o, err := s.downloader.Fetch(ctx, task)
		if err != nil {
			return o, err
		}
		if o.Status == download.Failed {
			return o, fmt.Errorf("%w: %s", download.ErrNetwork, o.Reason)
		}
		return o, nil
	}, domain.IsRetryable)
	if err != nil {
		return domain.BlobResult{}, fmt.Errorf("failed to download %s: %w", blob.Digest, err)
	}
	if outcome.Path != "" {
		local.Path = outcome.Path
	}

	ok, err = checksum.File(local.Path, hexDigest)
	if err != nil {
		return domain.BlobResult{}, err
	}
	if !ok {
		return domain.BlobResult{}, fmt.Errorf("%w: %s does not match %s", domain.ErrIntegrity, local.Path, blob.Digest)
	}

	return domain.BlobResult{Blob: local, Status: outcome.Status}, nil
}

// Status returns the local pull state of a variant.
func (s *Service) Status(ctx context.Context, raw string) (*domain.PullStatus, error) {
	_, variant, err := s.Resolve(ctx, raw)
	if err != nil {
		return nil, err
	}
	status, err := s.store.Status(ctx, domain.PullStatusFlag(variant.Name))
	if err != nil {
		return nil, err
	}
	blobs, err := s.store.Blobs(ctx, variant.Name)
	if err != nil {
		return nil, err
	}
	return &domain.PullStatus{Variant: *variant, Status: status, Blobs: blobs}, nil
}

func (s *Service) strategy() backoff.Strategy {
	strategy, err := s.cfg.Backoff.Build()
	if err != nil {
		s.log.Warn("invalid backoff settings, retries disabled", "error", err)
		return backoff.Take(backoff.NewFixed(0), 0)
	}
	return strategy
}

func (s *Service) markFailed(ctx context.Context, flag string) {
	if err := s.store.SetStatus(context.WithoutCancel(ctx), flag, domain.Failed); err != nil {
		s.log.Error("failed to record pull failure", "flag", flag, "error", err)
	}
}
