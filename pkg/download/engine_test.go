package download

import (
	"bytes"
	"context"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoard/pkg/checksum"
)

type recordedRequest struct {
	Method string
	Range  string
}

type blobServer struct {
	content      []byte
	acceptRanges bool
	ignoreRange  bool

	mu       sync.Mutex
	requests []recordedRequest
}

func (s *blobServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, recordedRequest{Method: r.Method, Range: r.Header.Get("Range")})
	s.mu.Unlock()

	if s.acceptRanges && !s.ignoreRange {
		http.ServeContent(w, r, "blob", time.Time{}, bytes.NewReader(s.content))
		return
	}

	if s.acceptRanges {
		w.Header().Set("Accept-Ranges", "bytes")
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(s.content)))
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(s.content)
}

func (s *blobServer) count(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Method == method {
			n++
		}
	}
	return n
}

func (s *blobServer) lastRange() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Method == http.MethodGet {
			return s.requests[i].Range
		}
	}
	return ""
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func newTestTask(t *testing.T, url, dir, name string, opts ...TaskOption) Task {
	t.Helper()
	task, err := NewTask(url, dir, name, opts...)
	require.NoError(t, err)
	return task
}

func TestFetch_FreshDownload(t *testing.T) {
	content := randomBytes(t, 200_000)
	srv := &blobServer{content: content, acceptRanges: true}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	dir := filepath.Join(t.TempDir(), "nested", "dir")
	engine := New(WithBufferSize(4096))

	out, err := engine.Fetch(context.Background(), newTestTask(t, ts.URL+"/blob", dir, "model.bin"))
	require.NoError(t, err)

	assert.Equal(t, Success, out.Status)
	assert.True(t, out.Resumable)
	assert.Equal(t, int64(len(content)), out.ContentLength)
	assert.Equal(t, filepath.Join(dir, "model.bin"), out.Path)

	got, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = os.Stat(out.Path + partSuffix)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, srv.lastRange())
}

func TestFetch_ResumesFromStagedLength(t *testing.T) {
	content := randomBytes(t, 100_000)
	const staged = 37_123

	srv := &blobServer{content: content, acceptRanges: true}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin.part"), content[:staged], 0o644))

	out, err := New().Fetch(context.Background(), newTestTask(t, ts.URL+"/blob", dir, "model.bin"))
	require.NoError(t, err)
	require.Equal(t, Success, out.Status)

	assert.Equal(t, "bytes=37123-100000", srv.lastRange())

	info, err := os.Stat(out.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), info.Size())

	ok, err := checksum.File(out.Path, checksum.Hex(content))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFetch_CompleteStagingSkipsTransfer(t *testing.T) {
	content := randomBytes(t, 4096)
	srv := &blobServer{content: content, acceptRanges: true}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin.part"), content, 0o644))

	out, err := New().Fetch(context.Background(), newTestTask(t, ts.URL+"/blob", dir, "model.bin"))
	require.NoError(t, err)

	assert.Equal(t, Success, out.Status)
	assert.Equal(t, 0, srv.count(http.MethodGet))

	got, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFetch_NonResumableServerRestarts(t *testing.T) {
	content := randomBytes(t, 10_000)
	srv := &blobServer{content: content}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin.part"), []byte("stale bytes"), 0o644))

	out, err := New().Fetch(context.Background(), newTestTask(t, ts.URL+"/blob", dir, "model.bin"))
	require.NoError(t, err)

	assert.Equal(t, Success, out.Status)
	assert.False(t, out.Resumable)
	assert.Empty(t, srv.lastRange())

	got, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFetch_ServerIgnoringRangeRestarts(t *testing.T) {
	content := randomBytes(t, 10_000)
	srv := &blobServer{content: content, acceptRanges: true, ignoreRange: true}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin.part"), content[:500], 0o644))

	out, err := New().Fetch(context.Background(), newTestTask(t, ts.URL+"/blob", dir, "model.bin"))
	require.NoError(t, err)
	require.Equal(t, Success, out.Status)

	assert.Equal(t, "bytes=500-10000", srv.lastRange())
	got, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFetch_OversizedStagingRestarts(t *testing.T) {
	content := randomBytes(t, 4096)
	srv := &blobServer{content: content, acceptRanges: true}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin.part"), randomBytes(t, 4096+3), 0o644))

	out, err := New().Fetch(context.Background(), newTestTask(t, ts.URL+"/blob", dir, "model.bin"))
	require.NoError(t, err)
	require.Equal(t, Success, out.Status)

	assert.Empty(t, srv.lastRange())
	got, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFetch_UnsatisfiableRangeRestarts(t *testing.T) {
	content := randomBytes(t, 4096)
	var ranges []string
	var mu sync.Mutex
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-Ranges", "bytes")
		if r.Method == http.MethodHead {
			// Stale length: larger than what GET serves.
			w.Header().Set("Content-Length", "8192")
			return
		}
		mu.Lock()
		ranges = append(ranges, r.Header.Get("Range"))
		mu.Unlock()
		if r.Header.Get("Range") != "" {
			w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
			return
		}
		_, _ = w.Write(content)
	}))
	defer ts.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin.part"), randomBytes(t, 5000), 0o644))

	out, err := New().Fetch(context.Background(), newTestTask(t, ts.URL+"/blob", dir, "model.bin"))
	require.NoError(t, err)
	require.Equal(t, Success, out.Status)

	assert.Equal(t, []string{"bytes=5000-8192", ""}, ranges)
	got, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFetch_CollisionNaming(t *testing.T) {
	content := []byte("fresh report body")
	srv := &blobServer{content: content, acceptRanges: true}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	dir := t.TempDir()
	original := []byte("existing report")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.txt"), original, 0o644))

	engine := New()
	task := newTestTask(t, ts.URL+"/report", dir, "report.txt")

	out, err := engine.Fetch(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_(1).txt"), out.Path)

	out, err = engine.Fetch(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_(2).txt"), out.Path)

	got, err := os.ReadFile(filepath.Join(dir, "report.txt"))
	require.NoError(t, err)
	assert.Equal(t, original, got)

	for _, name := range []string{"report_(1).txt", "report_(2).txt"} {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, content, got, name)
	}
}

func TestFetch_CollisionResumesInterruptedCandidate(t *testing.T) {
	content := randomBytes(t, 2048)
	srv := &blobServer{content: content, acceptRanges: true}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dl/report.txt", []byte("keep"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/dl/report_(1).txt", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/dl/report_(1).txt.part", content[:1000], 0o644))

	out, err := New(WithFs(fs)).Fetch(context.Background(), newTestTask(t, ts.URL+"/report", "/dl", "report.txt"))
	require.NoError(t, err)

	assert.Equal(t, "/dl/report_(1).txt", out.Path)
	assert.Equal(t, "bytes=1000-2048", srv.lastRange())

	got, err := afero.ReadFile(fs, out.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFetch_UnsuccessfulStatus(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	fs := afero.NewMemMapFs()
	out, err := New(WithFs(fs)).Fetch(context.Background(), newTestTask(t, ts.URL+"/missing", "/dl", "missing.bin"))
	require.NoError(t, err)

	assert.Equal(t, Failed, out.Status)
	assert.Contains(t, out.Reason, "404")
}

func TestFetch_HeadWithoutLengthFallsBackToGet(t *testing.T) {
	content := []byte("streamed without a length on HEAD")
	var mu sync.Mutex
	var methods []string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		methods = append(methods, r.Method)
		mu.Unlock()
		if r.Method == http.MethodHead {
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))
		_, _ = w.Write(content)
	}))
	defer ts.Close()

	fs := afero.NewMemMapFs()
	out, err := New(WithFs(fs)).Fetch(context.Background(), newTestTask(t, ts.URL+"/x", "/dl", "x.txt"))
	require.NoError(t, err)

	assert.Equal(t, Success, out.Status)
	assert.Equal(t, int64(len(content)), out.ContentLength)

	mu.Lock()
	assert.Equal(t, []string{http.MethodHead, http.MethodGet, http.MethodGet}, methods)
	mu.Unlock()
}

func TestFetch_ChunkTimeoutKeepsPartialBytes(t *testing.T) {
	content := randomBytes(t, 8192)
	half := len(content) / 2

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-Ranges", "bytes")
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(content[:half])
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer ts.Close()

	dir := t.TempDir()
	task := newTestTask(t, ts.URL+"/slow", dir, "slow.bin", WithChunkTimeout(100*time.Millisecond))

	progressCalls := 0
	engine := New(WithProgress(func(Progress) { progressCalls++ }))

	out, err := engine.Fetch(context.Background(), task)
	require.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, NotStarted, out.Status)
	assert.Positive(t, progressCalls)

	staged, err := os.ReadFile(filepath.Join(dir, "slow.bin.part"))
	require.NoError(t, err)
	assert.Equal(t, content[:half], staged)

	placeholder, err := os.Stat(filepath.Join(dir, "slow.bin"))
	require.NoError(t, err)
	assert.Zero(t, placeholder.Size())
}

func TestFetch_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := New(WithFs(afero.NewMemMapFs())).Fetch(context.Background(), newTestTask(t, url+"/x", "/dl", "x"))
	assert.ErrorIs(t, err, ErrNetwork)
}
