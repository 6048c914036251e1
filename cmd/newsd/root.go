package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"news-curator/internal/adapter/feeds"
	"news-curator/internal/config"
	"news-curator/internal/di"
)

func newRootCmd() *cobra.Command {
	var addr string

	serve := func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if addr != "" {
			cfg.HTTPAddr = addr
		}

		application, err := di.InitializeApp(cfg)
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		return application.Run(cmd.Context())
	}

	root := &cobra.Command{
		Use:   "newsd",
		Short: "RSS news aggregator with keyword filtering and summaries",
		Long: `newsd aggregates technology news from a fixed set of RSS feeds.

Without a subcommand it starts the HTTP service, same as "newsd serve".
Set OPENAI_API_KEY to enable keyword filtering and summaries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serve,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "List the feed sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, s := range feeds.DefaultSources() {
				if _, err := fmt.Fprintf(out, "%-28s %s\n", s.Name, s.URL); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.AddCommand(serveCmd, sourcesCmd)
	return root
}
