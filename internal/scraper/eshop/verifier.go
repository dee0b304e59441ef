package eshop

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go-eshop-scraper/internal/browser"
	"go-eshop-scraper/internal/config"
	"go-eshop-scraper/internal/filter"
	"go-eshop-scraper/internal/scraper"

	"github.com/playwright-community/playwright-go"
)

// Verifier searches the shop for every scraped offer and keeps the result
// cards whose title contains the offer title.
type Verifier struct {
	cfg   *config.Config
	shots *browser.ScreenShotDebugger
}

func NewVerifier(cfg *config.Config, shots *browser.ScreenShotDebugger) *Verifier {
	return &Verifier{
		cfg:   cfg,
		shots: shots,
	}
}

func (v *Verifier) Name() string {
	return "Match Verifier"
}

// Verify returns the matches of every offer, in offer order then result order.
// Offers without a usable search term are skipped.
func (v *Verifier) Verify(ctx context.Context, sess *browser.Session, offers []scraper.Offer) ([]scraper.Match, error) {
	if err := Login(sess.Page, v.cfg); err != nil {
		return nil, err
	}

	var results []scraper.Match
	for i, offer := range offers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		term := filter.SearchTerm(offer.Title)
		if term == "" {
			log.Printf("⚠️ Row %d has no search term in title %q, skipping search", i+1, offer.Title)
			continue
		}

		log.Printf("🔍 Searching for: %s", offer.Title)
		matches, err := v.search(ctx, sess, offer.Title, term)
		if err != nil {
			return nil, err
		}
		log.Printf("    ✅ %d matches", len(matches))
		results = append(results, matches...)
	}
	return results, nil
}

func (v *Verifier) search(ctx context.Context, sess *browser.Session, title, term string) ([]scraper.Match, error) {
	searchURL := SearchURL(v.cfg, term)
	if _, err := sess.Page.Goto(searchURL); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", searchURL, err)
	}

	if err := browser.WaitAttached(sess.Page, resultsContainer, sess.Timeout()); err != nil {
		v.shots.CaptureAndLog(sess.Page, "eshop-no-results", "🚨 Search results did not load")
		return nil, fmt.Errorf("search %q: %w: %w", term, scraper.ErrNoListing, err)
	}

	p := pager{
		page:        sess.Page,
		next:        searchNextSelector,
		content:     resultsContainer,
		fingerprint: resultsContainer,
		timeout:     sess.Timeout(),
		settle:      v.cfg.SettleDelay,
	}

	var matches []scraper.Match
	for pageNo := 1; ; pageNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := v.scrapeResults(sess.Page, title)
		if err != nil {
			return nil, fmt.Errorf("search %q page %d: %w", term, pageNo, err)
		}
		matches = append(matches, found...)

		if v.cfg.MaxPages > 0 && pageNo >= v.cfg.MaxPages {
			break
		}

		more, err := p.advance()
		if err != nil {
			v.shots.CaptureAndLog(sess.Page, "eshop-search-pagination", "🚨 Search pagination failed")
			return nil, fmt.Errorf("search %q page %d: %w", term, pageNo, err)
		}
		if !more {
			break
		}
	}
	return matches, nil
}

func (v *Verifier) scrapeResults(page playwright.Page, title string) ([]scraper.Match, error) {
	html, err := page.Content()
	if err != nil {
		return nil, err
	}
	return ParseMatches(html, title)
}

// SearchURL builds the direct search address for term.
func SearchURL(cfg *config.Config, term string) string {
	sep := "?"
	if strings.Contains(cfg.SearchPath, "?") {
		sep = "&"
	}
	return cfg.URL(cfg.SearchPath) + sep + "searchParam=" + filter.SearchQuery(term)
}
