// Package catalog implements the catalog synchronization use case.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/hoard/internal/boundaries/out"
	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/checksum"
)

// QueueSize bounds the number of fetched records waiting to be stored.
const QueueSize = 256

// Service implements the CatalogService interface.
type Service struct {
	source out.CatalogSource
	store  out.CatalogStore
	log    *log.Logger
}

// NewService creates a new catalog service.
func NewService(source out.CatalogSource, store out.CatalogStore, logger *log.Logger) *Service {
	return &Service{
		source: source,
		store:  store,
		log:    logger.With("usecase", "catalog"),
	}
}

// Init performs the first synchronization of the catalog.
func (s *Service) Init(ctx context.Context, force bool) (*domain.SyncReport, error) {
	status, err := s.store.Status(ctx, domain.FlagInitStatus)
	if err != nil {
		return nil, err
	}
	if status.Done() && !force {
		s.log.Info("catalog already initialized")
		return &domain.SyncReport{Status: status}, nil
	}

	if err := s.store.SetStatus(ctx, domain.FlagInitStatus, domain.InProgress); err != nil {
		return nil, err
	}

	report, syncErr := s.Sync(ctx)
	final := domain.Completed
	if syncErr != nil || report.Status != domain.Completed {
		final = domain.Failed
	}
	if err := s.store.SetStatus(context.WithoutCancel(ctx), domain.FlagInitStatus, final); err != nil {
		return report, errors.Join(syncErr, err)
	}
	return report, syncErr
}

// Update re-synchronizes an initialized catalog.
func (s *Service) Update(ctx context.Context) (*domain.SyncReport, error) {
	status, err := s.store.Status(ctx, domain.FlagInitStatus)
	if err != nil {
		return nil, err
	}
	if !status.Done() {
		return nil, fmt.Errorf("%w: run `hoard init` first", domain.ErrNotInitialized)
	}
	return s.Sync(ctx)
}

// Sync fetches the remote listing and stores every entry whose content
// changed since the last completed run. Fetching and storing run
// concurrently; records are handed over through a bounded queue.
func (s *Service) Sync(ctx context.Context) (*domain.SyncReport, error) {
	previous, err := s.store.Status(ctx, domain.FlagCatalogSyncStatus)
	if err != nil {
		return nil, err
	}

	var known map[string]string
	if previous.Done() {
		if known, err = s.store.EntryDigests(ctx); err != nil {
			return nil, err
		}
	} else {
		s.log.Info("previous sync did not complete, fetching every entry", "status", previous)
	}

	if err := s.store.SetStatus(ctx, domain.FlagCatalogSyncStatus, domain.InProgress); err != nil {
		return nil, err
	}

	var (
		listed, fetched, saved, failed atomic.Int64
		final                          = domain.Failed
	)

	pages := make(chan string, 1)
	queue := make(chan domain.CatalogRecord, QueueSize)

	g, gctx := errgroup.WithContext(ctx)

	// Producer. Channels are closed only when the producer succeeds, so
	// consumers never mistake an aborted run for a complete one.
	g.Go(func() error {
		listing, err := s.source.FetchListing(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch listing: %w", err)
		}
		if len(listing.Entries) == 0 {
			return fmt.Errorf("%w: no entries in remote listing", domain.ErrListingNotFound)
		}
		pages <- listing.Raw
		close(pages)
		listed.Store(int64(len(listing.Entries)))

		for _, entry := range listing.Entries {
			if digest, ok := known[entry.Key()]; ok && digest == entry.RawContentDigest {
				s.log.Debug("entry unchanged", "title", entry.Title)
				continue
			}

			record, err := s.source.FetchDetails(gctx, entry)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.log.Error("failed to fetch entry details", "title", entry.Title, "error", err)
				failed.Add(1)
				continue
			}
			fetched.Add(1)

			select {
			case queue <- *record:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		close(queue)
		return nil
	})

	// Listing writer
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case raw := <-pages:
			if err := s.store.SaveListing(gctx, raw, checksum.Digest([]byte(raw))); err != nil {
				return fmt.Errorf("failed to save listing: %w", err)
			}
			return nil
		}
	})

	// Entry writer
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case record, ok := <-queue:
				if !ok {
					status := domain.Completed
					if failed.Load() > 0 {
						status = domain.Failed
					}
					if err := s.store.SetStatus(gctx, domain.FlagCatalogSyncStatus, status); err != nil {
						return err
					}
					final = status
					return nil
				}
				if err := s.store.SaveRecord(gctx, record); err != nil {
					s.log.Error("failed to save entry", "title", record.Entry.Title, "error", err)
					failed.Add(1)
					continue
				}
				saved.Add(1)
				s.log.Debug("entry saved", "title", record.Entry.Title, "variants", len(record.Variants))
			}
		}
	})

	waitErr := g.Wait()
	report := &domain.SyncReport{
		Listed:  int(listed.Load()),
		Fetched: int(fetched.Load()),
		Saved:   int(saved.Load()),
		Failed:  int(failed.Load()),
		Status:  final,
	}

	if waitErr != nil {
		report.Status = domain.Failed
		if err := s.store.SetStatus(context.WithoutCancel(ctx), domain.FlagCatalogSyncStatus, domain.Failed); err != nil {
			s.log.Error("failed to record sync failure", "error", err)
		}
		return report, waitErr
	}

	s.log.Info("catalog synchronized",
		"listed", report.Listed, "fetched", report.Fetched, "saved", report.Saved, "failed", report.Failed, "status", report.Status)
	return report, nil
}

// Entries lists the catalog.
func (s *Service) Entries(ctx context.Context) ([]domain.CatalogEntry, error) {
	return s.store.ListEntries(ctx)
}

// Entry returns an entry and its variants.
func (s *Service) Entry(ctx context.Context, title string) (*domain.CatalogRecord, error) {
	entry, err := s.store.FindEntry(ctx, title)
	if err != nil {
		return nil, err
	}
	variants, err := s.store.VariantsOf(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	return &domain.CatalogRecord{Entry: *entry, Variants: variants}, nil
}
