package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/hoard/internal/config"
	"github.com/bnema/hoard/pkg/duration"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the hoard configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd(opts))
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force bool
		path  string
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the default configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			cmd.Printf("Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().StringVar(&path, "path", "", "Destination (default: user config directory)")
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := opts.cfg.YAML()
			if err != nil {
				return err
			}
			source := opts.cfg.File
			if source == "" {
				source = "defaults"
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# %s\n", source)
			if err := printSchedule(w, "registry.client", opts.cfg.Registry.Client); err != nil {
				return err
			}
			if err := printSchedule(w, "model.client", opts.cfg.Model.Client); err != nil {
				return err
			}
			_, err = w.Write(out)
			return err
		},
	}
}

func printSchedule(w io.Writer, name string, c config.ClientConfig) error {
	delays, err := c.RetrySchedule()
	if err != nil {
		return err
	}
	if len(delays) == 0 {
		fmt.Fprintf(w, "# %s retries: none\n", name)
		return nil
	}

	parts := make([]string, len(delays))
	for i, d := range delays {
		parts[i] = duration.Format(d)
	}
	suffix := ""
	if c.Jitter {
		suffix = " (jittered)"
	}
	fmt.Fprintf(w, "# %s retry delays: %s%s\n", name, strings.Join(parts, " "), suffix)
	return nil
}
