// Package download implements resumable HTTP downloads.
//
// A download is staged in "<name>.part" next to a zero-length placeholder
// "<name>". The placeholder marks the name as taken while the transfer is in
// flight; on completion it is replaced by the staging file. Interrupted
// transfers leave both files behind and a later Fetch resumes from the staged
// length with a Range request when the server supports it.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

var (
	// ErrNetwork wraps transport failures.
	ErrNetwork = errors.New("network error")
	// ErrTimeout is returned when a body chunk does not arrive in time.
	ErrTimeout = errors.New("chunk timeout")
	// ErrIO wraps local filesystem failures.
	ErrIO = errors.New("download i/o error")
)

const (
	partSuffix        = ".part"
	defaultBufferSize = 64 << 10
)

// Engine performs downloads against an afero filesystem.
type Engine struct {
	client   *http.Client
	fs       afero.Fs
	bufSize  int
	progress func(Progress)
}

// Option configures an Engine.
type Option func(*Engine)

// WithHTTPClient sets the HTTP client used for metadata requests and transfers.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Engine) { e.client = c }
}

// WithFs sets the filesystem downloads are written to.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) { e.fs = fs }
}

// WithProgress registers a callback invoked after every written chunk.
func WithProgress(fn func(Progress)) Option {
	return func(e *Engine) { e.progress = fn }
}

// WithBufferSize sets the read buffer size.
func WithBufferSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.bufSize = n
		}
	}
}

// New creates an Engine writing to the OS filesystem by default.
func New(opts ...Option) *Engine {
	e := &Engine{
		client:  &http.Client{},
		fs:      afero.NewOsFs(),
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fetch downloads task.SourceURL into task.DestinationDir.
func (e *Engine) Fetch(ctx context.Context, task Task) (Outcome, error) {
	out := Outcome{Task: task, Status: NotStarted, ContentLength: -1}

	target, err := e.resolveTarget(task.DestinationDir, task.FileName)
	if err != nil {
		return out, err
	}
	out.Path = target.finalPath

	log.Debug("Download target resolved", "url", task.SourceURL, "path", target.finalPath, "fresh", target.fresh)

	placeholder, err := e.openFile(target.finalPath, target.fresh)
	if err != nil {
		return out, err
	}
	if err := placeholder.Close(); err != nil {
		return out, fmt.Errorf("%w: close placeholder: %w", ErrIO, err)
	}

	staging, err := e.openFile(target.partPath, target.fresh)
	if err != nil {
		return out, err
	}
	defer staging.Close()

	length, acceptRanges, err := e.Inspect(ctx, task.SourceURL)
	if err != nil {
		return out, err
	}
	out.ContentLength = length
	out.Resumable = acceptRanges == "bytes"

	if !out.Resumable {
		if err := staging.Truncate(0); err != nil {
			return out, fmt.Errorf("%w: truncate staging file: %w", ErrIO, err)
		}
	}

	staged, err := fileSize(staging)
	if err != nil {
		return out, err
	}

	if out.Resumable && length >= 0 && staged > length {
		log.Debug("Staged file larger than remote, restarting", "path", target.partPath, "staged", staged, "length", length)
		if err := staging.Truncate(0); err != nil {
			return out, fmt.Errorf("%w: truncate staging file: %w", ErrIO, err)
		}
		staged = 0
	}

	if length >= 0 && length == staged {
		log.Debug("Staged file already complete", "path", target.partPath, "size", staged)
		if err := e.finalize(staging, target); err != nil {
			return out, err
		}
		out.Status = Success
		return out, nil
	}

	reason, err := e.transfer(ctx, task, staging, staged, length, out.Resumable)
	if err != nil {
		return out, err
	}
	if reason != "" {
		out.Status = Failed
		out.Reason = reason
		return out, nil
	}

	if err := e.finalize(staging, target); err != nil {
		return out, err
	}
	out.Status = Success
	return out, nil
}

// Inspect reports the remote content length (-1 if unknown) and the
// Accept-Ranges header. A HEAD without a usable length is retried as a GET
// whose body is discarded unread.
func (e *Engine) Inspect(ctx context.Context, url string) (int64, string, error) {
	length, ranges, err := e.metadata(ctx, http.MethodHead, url)
	if err != nil {
		return -1, "", err
	}
	if length > 0 {
		return length, ranges, nil
	}

	log.Debug("HEAD reported no content length, retrying with GET", "url", url)
	return e.metadata(ctx, http.MethodGet, url)
}

func (e *Engine) metadata(ctx context.Context, method, url string) (int64, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return -1, "", fmt.Errorf("%w: build %s request: %w", ErrNetwork, method, err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return -1, "", fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, url, err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return -1, resp.Header.Get("Accept-Ranges"), nil
	}
	return resp.ContentLength, resp.Header.Get("Accept-Ranges"), nil
}

// transfer streams the body into staging. A non-empty reason reports an
// unsuccessful HTTP status.
func (e *Engine) transfer(ctx context.Context, task Task, staging afero.File, staged, length int64, resumable bool) (string, error) {
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, task.SourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build GET request: %w", ErrNetwork, err)
	}

	ranged := resumable && staged > 0
	if ranged {
		if length >= 0 {
			req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", staged, length))
		} else {
			req.Header.Set("Range", fmt.Sprintf("bytes=%d-", staged))
		}
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: GET %s: %w", ErrNetwork, task.SourceURL, err)
	}
	defer resp.Body.Close()

	if ranged && resp.StatusCode == http.StatusRequestedRangeNotSatisfiable {
		log.Debug("Range not satisfiable, restarting", "url", task.SourceURL, "staged", staged)
		resp.Body.Close()
		cancel()
		if err := staging.Truncate(0); err != nil {
			return "", fmt.Errorf("%w: truncate staging file: %w", ErrIO, err)
		}
		return e.transfer(ctx, task, staging, 0, length, resumable)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Sprintf("unexpected response status %s", resp.Status), nil
	}

	if ranged && resp.StatusCode != http.StatusPartialContent {
		log.Debug("Server ignored range request, restarting", "url", task.SourceURL)
		if err := staging.Truncate(0); err != nil {
			return "", fmt.Errorf("%w: truncate staging file: %w", ErrIO, err)
		}
		staged = 0
	}

	if _, err := staging.Seek(staged, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: seek staging file: %w", ErrIO, err)
	}

	var timedOut atomic.Bool
	buf := make([]byte, e.bufSize)
	written := staged

	for {
		var timer *time.Timer
		if task.ChunkTimeout > 0 {
			timer = time.AfterFunc(task.ChunkTimeout, func() {
				timedOut.Store(true)
				cancel()
			})
		}

		n, readErr := resp.Body.Read(buf)
		if timer != nil {
			timer.Stop()
		}

		if n > 0 {
			if _, err := staging.Write(buf[:n]); err != nil {
				return "", fmt.Errorf("%w: write staging file: %w", ErrIO, err)
			}
			written += int64(n)
			if e.progress != nil {
				e.progress(Progress{FileName: task.FileName, Written: written, Total: length})
			}
		}

		if errors.Is(readErr, io.EOF) {
			return "", nil
		}
		if readErr != nil {
			switch {
			case timedOut.Load():
				return "", fmt.Errorf("%w: no data for %s from %s", ErrTimeout, task.ChunkTimeout, task.SourceURL)
			case ctx.Err() != nil:
				return "", ctx.Err()
			default:
				return "", fmt.Errorf("%w: read body: %w", ErrNetwork, readErr)
			}
		}
	}
}

// finalize replaces the placeholder with the staging file.
func (e *Engine) finalize(staging afero.File, t target) error {
	if err := staging.Close(); err != nil {
		return fmt.Errorf("%w: close staging file: %w", ErrIO, err)
	}
	if err := e.fs.Remove(t.finalPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove placeholder: %w", ErrIO, err)
	}
	if err := e.fs.Rename(t.partPath, t.finalPath); err != nil {
		return fmt.Errorf("%w: rename %s: %w", ErrIO, filepath.Base(t.partPath), err)
	}
	return nil
}

func (e *Engine) openFile(path string, truncate bool) (afero.File, error) {
	flag := os.O_RDWR | os.O_CREATE
	if truncate {
		flag |= os.O_TRUNC
	}
	f, err := e.fs.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	return f, nil
}

func fileSize(f afero.File) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: stat %s: %w", ErrIO, f.Name(), err)
	}
	return info.Size(), nil
}
