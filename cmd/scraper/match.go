package main

import (
	"context"

	"go-eshop-scraper/internal/reporter"
	"go-eshop-scraper/internal/scraper/eshop"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Search every offer in the offers CSV and write the matches CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, rt *app) (reporter.Summary, error) {
			matches, skipped, err := eshop.MatchPhase(ctx, rt.browser, rt.cfg, rt.shots)
			if err != nil {
				return reporter.Summary{}, err
			}
			return reporter.Summary{
				Matches:     len(matches),
				MatchesPath: rt.cfg.MatchesPath,
				Skipped:     skipped,
			}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
