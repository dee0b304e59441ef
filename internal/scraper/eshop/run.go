package eshop

import (
	"context"
	"fmt"
	"log"

	"go-eshop-scraper/internal/browser"
	"go-eshop-scraper/internal/config"
	"go-eshop-scraper/internal/filter"
	"go-eshop-scraper/internal/reporter"
	"go-eshop-scraper/internal/scraper"
	"go-eshop-scraper/internal/storage"
)

// SessionOpener hands out browser sessions; each phase opens its own.
type SessionOpener interface {
	NewSession() (*browser.Session, error)
}

// CrawlPhase runs the listing crawler in a fresh session and writes the
// offers CSV.
func CrawlPhase(ctx context.Context, sessions SessionOpener, cfg *config.Config, shots *browser.ScreenShotDebugger) ([]scraper.Offer, error) {
	sess, err := sessions.NewSession()
	if err != nil {
		return nil, err
	}
	defer closeSession(sess)

	crawler := NewCrawler(cfg, shots)
	log.Printf("\n▶️ Starting %s", crawler.Name())
	offers, err := crawler.Scrape(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", crawler.Name(), err)
	}

	if err := storage.WriteOffers(cfg.OffersPath, offers); err != nil {
		return nil, err
	}
	log.Printf("💾 Saved %d products to %s", len(offers), cfg.OffersPath)
	return offers, nil
}

// MatchPhase reads the offers CSV back, verifies every row in a fresh
// session and writes the matches CSV. It also returns how many rows were
// skipped for lack of a search term.
func MatchPhase(ctx context.Context, sessions SessionOpener, cfg *config.Config, shots *browser.ScreenShotDebugger) ([]scraper.Match, int, error) {
	offers, err := storage.ReadOffers(cfg.OffersPath)
	if err != nil {
		return nil, 0, err
	}
	log.Printf("📋 Loaded %d offers from %s", len(offers), cfg.OffersPath)
	skipped := countUnsearchable(offers)

	sess, err := sessions.NewSession()
	if err != nil {
		return nil, skipped, err
	}
	defer closeSession(sess)

	verifier := NewVerifier(cfg, shots)
	log.Printf("\n▶️ Starting %s", verifier.Name())
	matches, err := verifier.Verify(ctx, sess, offers)
	if err != nil {
		return nil, skipped, fmt.Errorf("%s: %w", verifier.Name(), err)
	}

	if err := storage.WriteMatches(cfg.MatchesPath, matches); err != nil {
		return nil, skipped, err
	}
	log.Printf("💾 Saved %d matched results to %s", len(matches), cfg.MatchesPath)
	return matches, skipped, nil
}

// Run executes both phases. The offers CSV stays on disk if the match
// phase fails.
func Run(ctx context.Context, sessions SessionOpener, cfg *config.Config, shots *browser.ScreenShotDebugger) (reporter.Summary, error) {
	summary := reporter.Summary{OffersPath: cfg.OffersPath, MatchesPath: cfg.MatchesPath}

	offers, err := CrawlPhase(ctx, sessions, cfg, shots)
	if err != nil {
		return summary, err
	}
	summary.Offers = len(offers)

	matches, skipped, err := MatchPhase(ctx, sessions, cfg, shots)
	summary.Skipped = skipped
	if err != nil {
		return summary, err
	}
	summary.Matches = len(matches)
	return summary, nil
}

func countUnsearchable(offers []scraper.Offer) int {
	n := 0
	for _, o := range offers {
		if filter.SearchTerm(o.Title) == "" {
			n++
		}
	}
	return n
}

func closeSession(sess *browser.Session) {
	if err := sess.Close(); err != nil {
		log.Printf("⚠️ %v", err)
	}
}
