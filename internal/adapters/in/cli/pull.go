package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bnema/hoard/internal/adapters/in/cli/ui/components"
	"github.com/bnema/hoard/internal/app"
	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/download"
)

func newPullCmd(opts *rootOptions) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "pull <model[:tag]>...",
		Short: "Pull model variants from the registry",
		Long: `Download and verify every blob of the given model variants. When the tag is
omitted the first variant listed in the catalog is pulled.

Interrupted pulls resume where they stopped; blobs already verified are skipped.`,
		Example: `  hoard pull llama3
  hoard pull llama3:70b qwen2:0.5b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var appOpts []app.Option
			var printer *components.ProgressPrinter
			if !quiet {
				printer = components.NewProgressPrinter(cmd.ErrOrStderr())
				appOpts = append(appOpts, app.WithProgress(printer.Update))
			}

			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				for _, ref := range args {
					report, err := a.Pull.Pull(ctx, ref)
					if printer != nil {
						printer.Done()
					}
					if err != nil {
						return fmt.Errorf("pull %s: %w", ref, err)
					}
					printPull(cmd.OutOrStdout(), report)
				}
				return nil
			}, appOpts...)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not show download progress")
	return cmd
}

func printPull(w io.Writer, r *domain.PullReport) {
	fmt.Fprintln(w, components.BlobTable(r.Blobs))

	var fetched, skipped int
	var size uint64
	for _, b := range r.Blobs {
		switch b.Status {
		case download.Success:
			fetched++
		case download.Skipped:
			skipped++
		}
		if b.Blob.Size > 0 {
			size += uint64(b.Blob.Size)
		}
	}

	color.New(color.FgGreen, color.Bold).Fprintf(w, "✓ %s", r.Reference)
	fmt.Fprintf(w, " %d fetched, %d up to date, %s in %s\n",
		fetched, skipped, humanize.Bytes(size), r.Dir)
}
