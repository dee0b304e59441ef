package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-eshop-scraper/internal/browser"
	"go-eshop-scraper/internal/config"
	"go-eshop-scraper/internal/reporter"

	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if offersPath != "" {
		cfg.OffersPath = offersPath
	}
	if matchesPath != "" {
		cfg.MatchesPath = matchesPath
	}
	if flags.Changed("headless") {
		cfg.Headless = headless
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Printf("🔧 Config loaded. Target: %s", cfg.BaseURL)
	return cfg, nil
}

// app holds what every command needs once the browser is up.
type app struct {
	cfg      *config.Config
	browser  *browser.PlaywrightManager
	shots    *browser.ScreenShotDebugger
	reporter *reporter.TelegramReporter
}

// withApp starts the browser, runs fn and always shuts the browser down.
// The outcome is printed and, when configured, posted to Telegram.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, rt *app) (reporter.Summary, error)) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := &app{
		cfg:   cfg,
		shots: browser.NewScreenShotDebugger(cfg.ScreenshotDir),
	}

	if cfg.NotifyEnabled() {
		rep, err := reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Telegram disabled: %v", err)
		} else {
			rt.reporter = rep
			log.Println("🤖 Telegram reporter initialized.")
		}
	}

	opts := browser.NewOptions(cfg.Headless, cfg.WaitTimeout, cfg.CookiesPath)

	log.Println("🚀 Starting eShop scraper...")
	pm, err := browser.NewPlaywright(ctx, opts)
	if err != nil {
		return rt.fail(fmt.Errorf("failed to init Playwright: %w", err))
	}
	defer func() {
		if err := pm.Close(); err != nil {
			log.Printf("⚠️ %v", err)
		}
	}()
	rt.browser = pm
	log.Println("✅ Browser initialized successfully!")

	summary, err := fn(ctx, rt)
	if err != nil {
		return rt.fail(err)
	}

	reporter.Render(cmd.OutOrStdout(), summary)
	if rt.reporter != nil {
		if err := rt.reporter.SendSummary(summary); err != nil {
			log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
		}
	}
	log.Println("🏁 Execution finished.")
	return nil
}

func (rt *app) fail(err error) error {
	if browser.IsTimeout(err) {
		err = fmt.Errorf("page did not load within wait_timeout=%s: %w", rt.cfg.WaitTimeout, err)
	}
	if rt.reporter != nil {
		if sendErr := rt.reporter.SendError(err); sendErr != nil {
			log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
		}
	}
	return err
}
