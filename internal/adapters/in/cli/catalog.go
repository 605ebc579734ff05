package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/hoard/internal/adapters/in/cli/ui/components"
	"github.com/bnema/hoard/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/hoard/internal/app"
	"github.com/bnema/hoard/internal/boundaries/in"
	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/bytesize"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Build the local model catalog",
		Long: `Fetch the remote library listing and every model's variants into the local
catalog. Does nothing once the catalog was initialized, unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				report, err := a.Catalog.Init(ctx, force)
				if report != nil {
					printSync(cmd.OutOrStdout(), report)
				}
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Synchronize again even if already initialized")
	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Refresh the local model catalog",
		Long: `Fetch the remote library listing and refresh the entries that changed since
the last completed synchronization.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				report, err := a.Catalog.Update(ctx)
				if report != nil {
					printSync(cmd.OutOrStdout(), report)
				}
				return err
			})
		},
	}
}

func printSync(w io.Writer, r *domain.SyncReport) {
	fmt.Fprintf(w, "%s listed %d, fetched %d, saved %d",
		components.CompletionStatus(r.Status), r.Listed, r.Fetched, r.Saved)
	if r.Failed > 0 {
		color.New(color.FgRed).Fprintf(w, ", failed %d", r.Failed)
	}
	fmt.Fprintln(w)
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		output  string
		maxSize string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the models in the local catalog",
		Long: `List the catalog entries. With --max-size, list the variants whose size
does not exceed the given limit instead (e.g. --max-size 8GB).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != "table" && output != "yaml" {
				return fmt.Errorf("unsupported output %q (supported: table, yaml)", output)
			}
			var limit int64
			if maxSize != "" {
				var err error
				if limit, err = bytesize.Parse(maxSize); err != nil {
					return err
				}
			}

			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				w := cmd.OutOrStdout()
				if maxSize == "" {
					entries, err := a.Catalog.Entries(ctx)
					if err != nil {
						return err
					}
					if output == "yaml" {
						return yaml.NewEncoder(w).Encode(entries)
					}
					fmt.Fprintln(w, components.EntryTable(entries))
					return nil
				}

				variants, err := variantsWithin(ctx, a.Catalog, limit)
				if err != nil {
					return err
				}
				if output == "yaml" {
					return yaml.NewEncoder(w).Encode(variants)
				}
				fmt.Fprintln(w, components.VariantTable(variants, nil))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or yaml")
	cmd.Flags().StringVar(&maxSize, "max-size", "", "Only list variants up to this size")
	return cmd
}

// variantsWithin returns every catalog variant whose listed size parses and
// does not exceed limit.
func variantsWithin(ctx context.Context, catalog in.CatalogService, limit int64) ([]domain.VariantRecord, error) {
	entries, err := catalog.Entries(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.VariantRecord
	for _, e := range entries {
		record, err := catalog.Entry(ctx, e.Title)
		if err != nil {
			return nil, err
		}
		for _, v := range record.Variants {
			size, err := bytesize.Parse(v.Size)
			if err != nil || size > limit {
				continue
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var readme bool

	cmd := &cobra.Command{
		Use:   "show <model>",
		Short: "Show a model and its variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				record, err := a.Catalog.Entry(ctx, args[0])
				if err != nil {
					return err
				}

				pulled := make(map[string]string, len(record.Variants))
				for _, v := range record.Variants {
					st, err := a.Pull.Status(ctx, v.Name)
					if err != nil {
						return err
					}
					if st.Status != domain.NotStarted {
						pulled[v.Name] = components.CompletionStatus(st.Status)
					}
				}

				printEntry(cmd.OutOrStdout(), record, pulled, readme)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&readme, "readme", false, "Print the model's readme")
	return cmd
}

func printEntry(w io.Writer, r *domain.CatalogRecord, pulled map[string]string, readme bool) {
	t := styles.Theme
	fmt.Fprintln(w, t.Title.Render(r.Entry.Title))
	if r.Entry.Summary != "" {
		fmt.Fprintln(w, t.Body.Render(r.Entry.Summary))
	} else if r.Entry.Introduction != "" {
		fmt.Fprintln(w, t.Body.Render(r.Entry.Introduction))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Label.Render("Pulls")+r.Entry.PullCount)
	fmt.Fprintln(w, t.Label.Render("Tags")+r.Entry.TagCount)
	fmt.Fprintln(w, t.Label.Render("Updated")+r.Entry.UpdatedTime)
	fmt.Fprintln(w)
	fmt.Fprintln(w, components.VariantTable(r.Variants, pulled))

	if readme && strings.TrimSpace(r.Entry.Readme) != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, t.Box.Render(strings.TrimSpace(r.Entry.Readme)))
	}
}
