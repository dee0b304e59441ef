package main

import (
	"context"

	"go-eshop-scraper/internal/reporter"
	"go-eshop-scraper/internal/scraper/eshop"

	"github.com/spf13/cobra"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl the filtered listing and write the offers CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, rt *app) (reporter.Summary, error) {
			offers, err := eshop.CrawlPhase(ctx, rt.browser, rt.cfg, rt.shots)
			if err != nil {
				return reporter.Summary{}, err
			}
			return reporter.Summary{Offers: len(offers), OffersPath: rt.cfg.OffersPath}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(crawlCmd)
}
