package components

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"

	"github.com/bnema/hoard/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/hoard/pkg/download"
)

const (
	progressWidth    = 32
	progressInterval = 100 * time.Millisecond
	nameWidth        = 28
)

// ProgressPrinter draws a single-line progress bar per downloaded file.
// It is safe for concurrent use.
type ProgressPrinter struct {
	w    io.Writer
	bar  progress.Model
	mu   sync.Mutex
	file string
	last time.Time
	now  func() time.Time
}

// NewProgressPrinter creates a printer writing to w, usually stderr.
func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{
		w: w,
		bar: progress.New(
			progress.WithGradient(string(styles.ColorSecondary), string(styles.ColorPrimary)),
			progress.WithWidth(progressWidth),
		),
		now: time.Now,
	}
}

// Update renders p. Redraws are throttled except for the final update of a
// file.
func (pp *ProgressPrinter) Update(p download.Progress) {
	pp.mu.Lock()
	defer pp.mu.Unlock()

	done := p.Total > 0 && p.Written >= p.Total
	now := pp.now()
	if p.FileName == pp.file && !done && now.Sub(pp.last) < progressInterval {
		return
	}
	if pp.file != "" && p.FileName != pp.file {
		fmt.Fprintln(pp.w)
	}
	pp.file = p.FileName
	pp.last = now

	fmt.Fprintf(pp.w, "\r%-*s %s %s", nameWidth, truncateCell(p.FileName, nameWidth), pp.bar.ViewAs(fraction(p)), amount(p))
}

// Done terminates the current line.
func (pp *ProgressPrinter) Done() {
	pp.mu.Lock()
	defer pp.mu.Unlock()
	if pp.file != "" {
		fmt.Fprintln(pp.w)
		pp.file = ""
	}
}

func fraction(p download.Progress) float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(float64(p.Written)/float64(p.Total), 1)
}

func amount(p download.Progress) string {
	written := humanize.Bytes(uint64(max(p.Written, 0)))
	if p.Total <= 0 {
		return written
	}
	return written + " / " + humanize.Bytes(uint64(p.Total))
}
