package download

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
)

// Status is the terminal state of a download.
type Status int

const (
	NotStarted Status = iota
	Success
	Failed
	Skipped
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "not started"
	}
}

// Task describes a single download. Build it with NewTask.
type Task struct {
	SourceURL      string
	DestinationDir string
	FileName       string
	ChunkTimeout   time.Duration
	RetryBudget    int
}

// TaskOption configures a Task.
type TaskOption func(*Task)

// WithChunkTimeout bounds the time spent waiting for each body chunk.
func WithChunkTimeout(d time.Duration) TaskOption {
	return func(t *Task) { t.ChunkTimeout = d }
}

// WithRetryBudget records how many retries the caller allows for the task.
func WithRetryBudget(n int) TaskOption {
	return func(t *Task) { t.RetryBudget = n }
}

// NewTask validates and builds a Task.
func NewTask(sourceURL, destinationDir, fileName string, opts ...TaskOption) (Task, error) {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Task{}, fmt.Errorf("invalid source url %q", sourceURL)
	}
	if destinationDir == "" {
		return Task{}, fmt.Errorf("destination directory is required")
	}
	if fileName == "" || fileName == "." || fileName == ".." || strings.ContainsAny(fileName, `/\`) {
		return Task{}, fmt.Errorf("invalid file name %q", fileName)
	}

	t := Task{
		SourceURL:      sourceURL,
		DestinationDir: destinationDir,
		FileName:       fileName,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t, nil
}

// FileNameFromURL derives a local file name from the last path segment of u.
// A segment shaped like a query string ("a=b&c=d") becomes "a_b_c_d".
func FileNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	segment := path.Base(u.EscapedPath())
	if segment == "/" || segment == "." {
		return "", nil
	}

	var parts []string
	for _, pair := range strings.Split(segment, "&") {
		name, value, _ := strings.Cut(pair, "=")
		for _, p := range []string{name, value} {
			p, err := url.QueryUnescape(p)
			if err != nil {
				return "", fmt.Errorf("invalid url segment %q: %w", segment, err)
			}
			if p != "" {
				parts = append(parts, p)
			}
		}
	}
	return strings.Join(parts, "_"), nil
}

// Outcome is the result of a Fetch. Network and filesystem failures are
// returned as errors instead; a Failed outcome means the server answered
// with an unsuccessful status.
type Outcome struct {
	Task          Task
	Status        Status
	Reason        string
	ContentLength int64
	Resumable     bool
	Path          string
}

// Progress reports bytes written for the current file.
type Progress struct {
	FileName string
	Written  int64
	Total    int64
}
