package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bnema/hoard/internal/adapters/in/cli/ui/components"
	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/download"
	"github.com/bnema/hoard/pkg/retry"
)

func newDownloadCmd(opts *rootOptions) *cobra.Command {
	var (
		dir   string
		name  string
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "download <url>",
		Short: "Download a single file with resume support",
		Long: `Download a URL into a directory using the model client settings. An
interrupted download resumes from its .part file when the server supports ranges.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			if name == "" {
				derived, err := download.FileNameFromURL(source)
				if err != nil {
					return err
				}
				if derived == "" {
					return errors.New("cannot derive a file name from the url, use --name")
				}
				name = derived
			}

			client := opts.cfg.Model.Client
			chunkTimeout, err := client.ChunkTimeoutDuration()
			if err != nil {
				return err
			}
			task, err := download.NewTask(source, dir, name,
				download.WithChunkTimeout(chunkTimeout),
				download.WithRetryBudget(client.Retry))
			if err != nil {
				return err
			}

			httpClient, err := client.HTTPClient()
			if err != nil {
				return err
			}
			backoffOpts, err := client.Backoff()
			if err != nil {
				return err
			}
			strategy, err := backoffOpts.Build()
			if err != nil {
				return err
			}

			engineOpts := []download.Option{download.WithHTTPClient(httpClient)}
			var printer *components.ProgressPrinter
			if !quiet {
				printer = components.NewProgressPrinter(cmd.ErrOrStderr())
				engineOpts = append(engineOpts, download.WithProgress(printer.Update))
			}
			engine := download.New(engineOpts...)

			opts.log.Debug("download starting", "url", source, "dir", dir, "name", name)
			outcome, err := retry.DoIf(cmd.Context(), strategy, func(ctx context.Context) (download.Outcome, error) {
				o, err := engine.Fetch(ctx, task)
				if err != nil {
					return o, err
				}
				if o.Status == download.Failed {
					return o, fmt.Errorf("%w: %s", download.ErrNetwork, o.Reason)
				}
				return o, nil
			}, domain.IsRetryable)
			if printer != nil {
				printer.Done()
			}
			if err != nil {
				return fmt.Errorf("download %s: %w", source, err)
			}

			w := cmd.OutOrStdout()
			color.New(color.FgGreen, color.Bold).Fprint(w, "✓ ")
			fmt.Fprint(w, outcome.Path)
			if outcome.ContentLength >= 0 {
				fmt.Fprintf(w, " (%s)", humanize.Bytes(uint64(outcome.ContentLength)))
			}
			fmt.Fprintln(w)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "output", "o", ".", "Destination directory")
	cmd.Flags().StringVarP(&name, "name", "n", "", "File name (default: derived from the url)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not show download progress")
	return cmd
}
