// Package main is the eshop scraper CLI: crawl the filtered listing, verify
// every offer through search, or both.
package main

import (
	"fmt"
	"os"

	"go-eshop-scraper/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scraper",
	Short: "Scrape the Telerik eShop demo into CSV files",
	Long: "Logs into the eShop demo, crawls the discounted Road Bikes listing with detail-page attributes " +
		"into one CSV, then searches every product and saves the matching result cards into a second CSV.",
	SilenceUsage: true,
}

var (
	configPath  string
	baseURL     string
	offersPath  string
	matchesPath string
	headless    bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to YAML config")
	flags.StringVar(&baseURL, "base-url", "", "Override the shop base URL")
	flags.StringVar(&offersPath, "offers", "", "Override the offers CSV path")
	flags.StringVar(&matchesPath, "matches", "", "Override the matches CSV path")
	flags.BoolVar(&headless, "headless", true, "Run the browser without a window")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
