package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"worldcountries/internal/config"
	"worldcountries/internal/export"
	"worldcountries/internal/order"
	"worldcountries/internal/source"
	"worldcountries/internal/ui"
	"worldcountries/internal/util/logx"
	"worldcountries/internal/version"
	"worldcountries/internal/view"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	root := &cobra.Command{
		Use:   "worldcountries",
		Short: "Browse the world's countries in the terminal",
		Long: `worldcountries loads the country directory once and shows it as a table
you can search, filter by number of land borders, order and prune.

Sources:
  http  the REST endpoint (default)
  file  a JSON payload on disk
  demo  a small embedded data set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Resolve(cmd.Flags()); err != nil {
				return err
			}
			opt := logx.Options{Level: cfg.LogLevel, File: cfg.LogFile, Stderr: cfg.LogStderr}
			// the TUI owns the terminal; other commands also log to stderr
			// when a level is asked for explicitly
			if cmd != cmd.Root() && cmd.Flags().Changed("log-level") {
				opt.Stderr = true
			}
			if err := logx.Init(opt); err != nil {
				return fmt.Errorf("log file: %w", err)
			}
			logx.Infof("starting worldcountries %s (%s): %s", version.String(), cmd.Name(), cfg.String())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ui.Run(cmd.Context(), cfg)
		},
	}
	cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(newListCmd(cfg), newVersionCmd())
	return root
}

func newListCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered, ordered country list and exit",
		Example: `  worldcountries list --min-borders 5 --sort population --order desc
  worldcountries list -s land -f csv -o countries.csv
  worldcountries list --source demo -w "region == 'Europe' && area > 100000"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, cfg)
		},
	}
	cfg.BindListFlags(cmd.Flags())
	return cmd
}

func runList(cmd *cobra.Command, cfg *config.Config) error {
	sorter, err := order.New(cfg.Locale)
	if err != nil {
		return err
	}
	q, err := cfg.InitialQuery()
	if err != nil {
		return err
	}
	opts := cfg.SourceOptions()
	opts.Sorter = sorter
	res, err := source.Load(cmd.Context(), opts)
	if err != nil {
		return err
	}
	rows, err := view.NewEngine(sorter).Derive(res.Countries, q)
	if err != nil {
		return err
	}
	logx.Infof("list: %d of %d countries match %s", len(rows), len(res.Countries), q)

	if cfg.Out == "" {
		return export.Write(cmd.OutOrStdout(), cfg.Format, rows)
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if err := export.Write(f, cfg.Format, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "worldcountries", version.String())
		},
	}
}
