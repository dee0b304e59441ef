package eshop

import (
	"context"
	"fmt"
	"log"

	"go-eshop-scraper/internal/browser"
	"go-eshop-scraper/internal/config"
	"go-eshop-scraper/internal/scraper"

	"github.com/playwright-community/playwright-go"
)

// Crawler walks the filtered category listing and enriches every card
// from its detail page.
type Crawler struct {
	cfg   *config.Config
	shots *browser.ScreenShotDebugger
}

func NewCrawler(cfg *config.Config, shots *browser.ScreenShotDebugger) *Crawler {
	return &Crawler{
		cfg:   cfg,
		shots: shots,
	}
}

func (c *Crawler) Name() string {
	return "Listing Crawler"
}

// Scrape logs in, applies the listing filters and returns one offer per card
// across every page, in page order.
func (c *Crawler) Scrape(ctx context.Context, sess *browser.Session) ([]scraper.Offer, error) {
	if err := Login(sess.Page, c.cfg); err != nil {
		return nil, err
	}
	if err := c.applyFilters(sess.Page); err != nil {
		return nil, err
	}

	log.Println("⏳ Waiting for product list...")
	if err := browser.WaitAttached(sess.Page, cardSelector, sess.Timeout()); err != nil {
		c.shots.CaptureAndLog(sess.Page, "eshop-no-listing", "🚨 Product list did not load")
		return nil, fmt.Errorf("%w: %w", scraper.ErrNoListing, err)
	}

	return c.crawlPages(ctx, sess)
}

func (c *Crawler) applyFilters(page playwright.Page) error {
	log.Printf("🧭 Navigating to %s > %s", c.cfg.Category, c.cfg.Subcategory)

	steps := []struct {
		name string
		do   func() error
	}{
		{c.cfg.MenuName, func() error {
			return page.GetByRole(*playwright.AriaRoleMenuitem, playwright.PageGetByRoleOptions{Name: c.cfg.MenuName}).
				Locator("svg").Click()
		}},
		{c.cfg.Category, func() error {
			return page.GetByRole(*playwright.AriaRoleMenuitem, playwright.PageGetByRoleOptions{Name: c.cfg.Category}).
				GetByRole(*playwright.AriaRoleLink).Click()
		}},
		{c.cfg.Subcategory, func() error {
			return page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: c.cfg.Subcategory}).Click()
		}},
		{c.cfg.DiscountLabel, func() error {
			if c.cfg.DiscountLabel == "" {
				return nil
			}
			return page.GetByText(c.cfg.DiscountLabel).Click()
		}},
		{c.cfg.SizeFilter, func() error {
			if c.cfg.SizeFilter == "" {
				return nil
			}
			return page.GetByRole(*playwright.AriaRoleCheckbox, playwright.PageGetByRoleOptions{Name: c.cfg.SizeFilter}).Check()
		}},
	}

	for _, step := range steps {
		if err := step.do(); err != nil {
			c.shots.CaptureAndLog(page, "eshop-filter", "🚨 Filter navigation failed")
			return fmt.Errorf("failed to select %q: %w", step.name, err)
		}
	}
	return nil
}

// crawlPages scrapes the listing currently shown on sess.Page and every
// following page until the Next control is missing or disabled.
func (c *Crawler) crawlPages(ctx context.Context, sess *browser.Session) ([]scraper.Offer, error) {
	var allOffers []scraper.Offer

	p := pager{
		page:        sess.Page,
		next:        listingNextSelector,
		content:     cardSelector,
		fingerprint: resultsContainer,
		networkIdle: true,
		timeout:     sess.Timeout(),
		settle:      c.cfg.SettleDelay,
	}

	for pageNo := 1; ; pageNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log.Printf("📄 Scraping product cards on page %d...", pageNo)
		html, err := sess.Page.Content()
		if err != nil {
			return nil, fmt.Errorf("failed to read listing page %d: %w", pageNo, err)
		}

		offers, err := ParseCards(html, c.cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse listing page %d: %w", pageNo, err)
		}

		for i := range offers {
			if offers[i].DetailURL == "" {
				continue
			}
			if err := c.enrich(sess, &offers[i]); err != nil {
				return nil, err
			}
		}

		allOffers = append(allOffers, offers...)
		log.Printf("    📦 %d cards on page %d (%d total)", len(offers), pageNo, len(allOffers))

		if c.cfg.MaxPages > 0 && pageNo >= c.cfg.MaxPages {
			log.Printf("🛑 Reached max_pages=%d, stopping.", c.cfg.MaxPages)
			break
		}

		more, err := p.advance()
		if err != nil {
			c.shots.CaptureAndLog(sess.Page, "eshop-pagination", "🚨 Listing pagination failed")
			return nil, fmt.Errorf("failed to leave listing page %d: %w", pageNo, err)
		}
		if !more {
			log.Println("🏁 No next page found or button disabled. Scraping complete.")
			break
		}
		log.Println("➡️ Clicked next page")
	}

	return allOffers, nil
}

// enrich opens the offer's detail page in a short-lived tab and copies its
// attributes into offer. The tab is closed on every path.
func (c *Crawler) enrich(sess *browser.Session, offer *scraper.Offer) (err error) {
	page, err := sess.NewPage()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := page.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close detail page: %w", cerr)
		}
	}()

	if c.cfg.BlockImages {
		if err := browser.BlockImages(page); err != nil {
			return fmt.Errorf("failed to block images: %w", err)
		}
	}

	log.Printf("🔗 Opening product detail page: %s", offer.DetailURL)
	if _, err := page.Goto(offer.DetailURL); err != nil {
		return fmt.Errorf("failed to open %s: %w", offer.DetailURL, err)
	}

	if err := browser.WaitAttached(page, detailContainer, sess.Timeout()); err != nil {
		c.shots.CaptureAndLog(page, "eshop-no-detail", "🚨 Detail page did not load")
		return fmt.Errorf("detail page %s: %w", offer.DetailURL, err)
	}

	html, err := page.Content()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", offer.DetailURL, err)
	}
	return ParseDetail(html, offer)
}

// Login opens the login page and submits the demo login.
func Login(page playwright.Page, cfg *config.Config) error {
	log.Println("🔐 Logging in...")
	if _, err := page.Goto(cfg.URL(cfg.LoginPath)); err != nil {
		return fmt.Errorf("failed to open login page: %w", err)
	}

	if err := page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: "Login"}).Click(); err != nil {
		return fmt.Errorf("failed to submit login: %w", err)
	}

	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateLoad,
	}); err != nil {
		return fmt.Errorf("login did not complete: %w", err)
	}
	log.Println("✅ Logged in")
	return nil
}
