package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoard/internal/boundaries/out/mocks"
	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/internal/testutils"
	"github.com/bnema/hoard/pkg/checksum"
)

const rawListing = `<div id="repo"><ul><li><a href="/library/llama3">llama3</a></li></ul></div>`

func entry(title, digest string) domain.CatalogEntry {
	return domain.CatalogEntry{Title: title, Href: "/library/" + title, RawContentDigest: digest}
}

func recordOf(e domain.CatalogEntry) *domain.CatalogRecord {
	return &domain.CatalogRecord{
		Entry:    e,
		Variants: []domain.VariantRecord{{Name: e.Title + ":latest", Href: e.Href + ":latest"}},
	}
}

func setup(t *testing.T) (*Service, *mocks.MockCatalogSource, *mocks.MockCatalogStore) {
	source := mocks.NewMockCatalogSource(t)
	store := mocks.NewMockCatalogStore(t)
	return NewService(source, store, testutils.Logger()), source, store
}

func expectDetails(source *mocks.MockCatalogSource, entries ...domain.CatalogEntry) {
	for _, e := range entries {
		source.EXPECT().FetchDetails(mock.Anything, e).Return(recordOf(e), nil).Once()
	}
}

func TestService_Sync_FirstRunStoresEverything(t *testing.T) {
	svc, source, store := setup(t)
	entries := []domain.CatalogEntry{entry("llama3", "d1"), entry("mistral", "d2")}

	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.NotStarted, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).Return(&domain.Listing{Raw: rawListing, Entries: entries}, nil)
	expectDetails(source, entries...)
	store.EXPECT().SaveListing(mock.Anything, rawListing, checksum.Digest([]byte(rawListing))).Return(nil)
	store.EXPECT().SaveRecord(mock.Anything, *recordOf(entries[0])).Return(nil)
	store.EXPECT().SaveRecord(mock.Anything, *recordOf(entries[1])).Return(nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Completed).Return(nil)

	report, err := svc.Sync(testutils.TestContext(t))
	require.NoError(t, err)

	assert.Equal(t, &domain.SyncReport{Listed: 2, Fetched: 2, Saved: 2, Status: domain.Completed}, report)
}

func TestService_Sync_SkipsUnchangedEntriesAfterCompletedRun(t *testing.T) {
	svc, source, store := setup(t)
	unchanged := entry("llama3", "same")
	changed := entry("mistral", "new")

	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.Completed, nil)
	store.EXPECT().EntryDigests(mock.Anything).Return(map[string]string{unchanged.Key(): "same", changed.Key(): "old"}, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).
		Return(&domain.Listing{Raw: rawListing, Entries: []domain.CatalogEntry{unchanged, changed}}, nil)
	expectDetails(source, changed)
	store.EXPECT().SaveListing(mock.Anything, rawListing, mock.Anything).Return(nil)
	store.EXPECT().SaveRecord(mock.Anything, *recordOf(changed)).Return(nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Completed).Return(nil)

	report, err := svc.Sync(testutils.TestContext(t))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Listed)
	assert.Equal(t, 1, report.Fetched)
	assert.Equal(t, 1, report.Saved)
}

func TestService_Sync_RefetchesEverythingAfterFailedRun(t *testing.T) {
	svc, source, store := setup(t)
	entries := []domain.CatalogEntry{entry("llama3", "same"), entry("mistral", "same")}

	// EntryDigests is not expected: a failed run invalidates stored digests.
	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.Failed, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).Return(&domain.Listing{Raw: rawListing, Entries: entries}, nil)
	expectDetails(source, entries...)
	store.EXPECT().SaveListing(mock.Anything, rawListing, mock.Anything).Return(nil)
	store.EXPECT().SaveRecord(mock.Anything, mock.Anything).Return(nil).Times(2)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Completed).Return(nil)

	report, err := svc.Sync(testutils.TestContext(t))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Fetched)
}

func TestService_Sync_EntryFailureMarksRunFailed(t *testing.T) {
	svc, source, store := setup(t)
	good, bad := entry("llama3", "d1"), entry("mistral", "d2")

	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.NotStarted, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).
		Return(&domain.Listing{Raw: rawListing, Entries: []domain.CatalogEntry{good, bad}}, nil)
	expectDetails(source, good, bad)
	store.EXPECT().SaveListing(mock.Anything, rawListing, mock.Anything).Return(nil)
	store.EXPECT().SaveRecord(mock.Anything, *recordOf(good)).Return(nil)
	store.EXPECT().SaveRecord(mock.Anything, *recordOf(bad)).Return(domain.ErrStore)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Failed).Return(nil)

	report, err := svc.Sync(testutils.TestContext(t))
	require.NoError(t, err)

	assert.Equal(t, domain.Failed, report.Status)
	assert.Equal(t, 1, report.Saved)
	assert.Equal(t, 1, report.Failed)
}

func TestService_Sync_DetailFetchFailureIsCounted(t *testing.T) {
	svc, source, store := setup(t)
	e := entry("llama3", "d1")

	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.NotStarted, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).Return(&domain.Listing{Raw: rawListing, Entries: []domain.CatalogEntry{e}}, nil)
	source.EXPECT().FetchDetails(mock.Anything, e).Return(nil, errors.New("tags page missing"))
	store.EXPECT().SaveListing(mock.Anything, rawListing, mock.Anything).Return(nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Failed).Return(nil)

	report, err := svc.Sync(testutils.TestContext(t))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, domain.Failed, report.Status)
}

func TestService_Sync_ListingFailureFailsRun(t *testing.T) {
	svc, source, store := setup(t)

	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.NotStarted, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).Return(nil, errors.New("connection refused"))
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Failed).Return(nil)

	report, err := svc.Sync(testutils.TestContext(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch listing")
	assert.Equal(t, domain.Failed, report.Status)
}

func TestService_Sync_EmptyListingFailsRun(t *testing.T) {
	svc, source, store := setup(t)

	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.NotStarted, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).Return(&domain.Listing{Raw: "<html></html>"}, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Failed).Return(nil)

	report, err := svc.Sync(testutils.TestContext(t))

	require.ErrorIs(t, err, domain.ErrListingNotFound)
	assert.Equal(t, domain.Failed, report.Status)
	store.AssertNotCalled(t, "SaveListing", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Sync_SameTitleDifferentHrefComparedSeparately(t *testing.T) {
	svc, source, store := setup(t)
	official := entry("llama3", "same")
	fork := domain.CatalogEntry{Title: "llama3", Href: "/someone/llama3", RawContentDigest: "fork-new"}

	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.Completed, nil)
	store.EXPECT().EntryDigests(mock.Anything).Return(map[string]string{official.Key(): "same", fork.Key(): "fork-old"}, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).
		Return(&domain.Listing{Raw: rawListing, Entries: []domain.CatalogEntry{official, fork}}, nil)
	expectDetails(source, fork)
	store.EXPECT().SaveListing(mock.Anything, rawListing, mock.Anything).Return(nil)
	store.EXPECT().SaveRecord(mock.Anything, *recordOf(fork)).Return(nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Completed).Return(nil)

	report, err := svc.Sync(testutils.TestContext(t))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Fetched)
}

func TestService_Sync_ListingSaveFailureFailsRun(t *testing.T) {
	svc, source, store := setup(t)
	e := entry("llama3", "d1")

	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.NotStarted, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).Return(&domain.Listing{Raw: rawListing, Entries: []domain.CatalogEntry{e}}, nil)
	source.EXPECT().FetchDetails(mock.Anything, e).Return(recordOf(e), nil).Maybe()
	store.EXPECT().SaveListing(mock.Anything, rawListing, mock.Anything).Return(domain.ErrStore)
	store.EXPECT().SaveRecord(mock.Anything, mock.Anything).Return(nil).Maybe()
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, mock.Anything).Return(nil).Maybe()

	report, err := svc.Sync(testutils.TestContext(t))

	assert.ErrorIs(t, err, domain.ErrStore)
	assert.Equal(t, domain.Failed, report.Status)
	store.AssertCalled(t, "SetStatus", mock.Anything, domain.FlagCatalogSyncStatus, domain.Failed)
}

func TestService_Init_NoopWhenCompleted(t *testing.T) {
	svc, _, store := setup(t)

	store.EXPECT().Status(mock.Anything, domain.FlagInitStatus).Return(domain.Completed, nil)

	report, err := svc.Init(testutils.TestContext(t), false)
	require.NoError(t, err)
	assert.Equal(t, domain.Completed, report.Status)
}

func TestService_Init_ForcedRunsSync(t *testing.T) {
	svc, source, store := setup(t)
	e := entry("llama3", "d1")

	store.EXPECT().Status(mock.Anything, domain.FlagInitStatus).Return(domain.Completed, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagInitStatus, domain.InProgress).Return(nil)
	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.NotStarted, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).Return(&domain.Listing{Raw: rawListing, Entries: []domain.CatalogEntry{e}}, nil)
	expectDetails(source, e)
	store.EXPECT().SaveListing(mock.Anything, rawListing, mock.Anything).Return(nil)
	store.EXPECT().SaveRecord(mock.Anything, *recordOf(e)).Return(nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Completed).Return(nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagInitStatus, domain.Completed).Return(nil)

	report, err := svc.Init(testutils.TestContext(t), true)
	require.NoError(t, err)
	assert.Equal(t, domain.Completed, report.Status)
}

func TestService_Init_FailedSyncMarksInitFailed(t *testing.T) {
	svc, source, store := setup(t)

	store.EXPECT().Status(mock.Anything, domain.FlagInitStatus).Return(domain.NotStarted, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagInitStatus, domain.InProgress).Return(nil)
	store.EXPECT().Status(mock.Anything, domain.FlagCatalogSyncStatus).Return(domain.NotStarted, nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.InProgress).Return(nil)
	source.EXPECT().FetchListing(mock.Anything).Return(nil, errors.New("offline"))
	store.EXPECT().SetStatus(mock.Anything, domain.FlagCatalogSyncStatus, domain.Failed).Return(nil)
	store.EXPECT().SetStatus(mock.Anything, domain.FlagInitStatus, domain.Failed).Return(nil)

	_, err := svc.Init(testutils.TestContext(t), false)
	require.Error(t, err)
}

func TestService_Update_RequiresInit(t *testing.T) {
	svc, _, store := setup(t)

	store.EXPECT().Status(mock.Anything, domain.FlagInitStatus).Return(domain.InProgress, nil)

	_, err := svc.Update(testutils.TestContext(t))
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestService_Entry(t *testing.T) {
	svc, _, store := setup(t)
	e := entry("llama3", "d1")
	e.ID = "entry-1"
	variants := []domain.VariantRecord{{Name: "llama3:8b"}, {Name: "llama3:70b"}}

	store.EXPECT().FindEntry(mock.Anything, "llama3").Return(&e, nil)
	store.EXPECT().VariantsOf(mock.Anything, "entry-1").Return(variants, nil)

	record, err := svc.Entry(testutils.TestContext(t), "llama3")
	require.NoError(t, err)
	assert.Equal(t, e, record.Entry)
	assert.Equal(t, variants, record.Variants)
}

func TestService_Entry_NotFound(t *testing.T) {
	svc, _, store := setup(t)

	store.EXPECT().FindEntry(mock.Anything, "nope").Return(nil, domain.ErrEntryNotFound)

	_, err := svc.Entry(testutils.TestContext(t), "nope")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}
