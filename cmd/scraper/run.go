package main

import (
	"context"

	"go-eshop-scraper/internal/reporter"
	"go-eshop-scraper/internal/scraper/eshop"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Crawl, then verify every offer through search",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, rt *app) (reporter.Summary, error) {
			return eshop.Run(ctx, rt.browser, rt.cfg, rt.shots)
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
