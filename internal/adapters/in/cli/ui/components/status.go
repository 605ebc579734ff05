package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hoard/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/download"
)

const (
	iconDone    = "✓"
	iconFailed  = "✗"
	iconPending = "•"
	iconSkipped = "="
)

// CompletionStatus renders a pipeline status with its icon.
func CompletionStatus(s domain.CompletionStatus) string {
	switch s {
	case domain.Completed:
		return render(styles.Theme.Success, iconDone, string(s))
	case domain.Failed:
		return render(styles.Theme.Error, iconFailed, string(s))
	case domain.InProgress:
		return render(styles.Theme.Pending, iconPending, string(s))
	default:
		return render(styles.Theme.Muted, iconPending, string(s))
	}
}

// DownloadStatus renders the outcome of a blob or file download.
func DownloadStatus(s download.Status) string {
	switch s {
	case download.Success:
		return render(styles.Theme.Success, iconDone, s.String())
	case download.Skipped:
		return render(styles.Theme.Muted, iconSkipped, s.String())
	case download.Failed:
		return render(styles.Theme.Error, iconFailed, s.String())
	default:
		return render(styles.Theme.Muted, iconPending, s.String())
	}
}

func render(style lipgloss.Style, icon, label string) string {
	return style.Render(icon + " " + label)
}
