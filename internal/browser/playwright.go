package browser

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

type Options struct {
	Headless bool
	// Timeout in milliseconds applied to every action of a session.
	Timeout float64
	Cookies []playwright.OptionalCookie
}

// NewOptions builds session options. Cookies are seeded from cookiesPath
// when set; an unreadable file is logged and skipped.
func NewOptions(headless bool, timeout time.Duration, cookiesPath string) Options {
	opts := Options{
		Headless: headless,
		Timeout:  float64(timeout.Milliseconds()),
	}
	if cookiesPath == "" {
		return opts
	}

	cookies, err := LoadCookies(cookiesPath)
	if err != nil {
		log.Printf("⚠️ Could not load cookies: %v. Continuing.", err)
		return opts
	}
	opts.Cookies = cookies
	return opts
}

// PlaywrightManager owns the playwright driver and one browser process.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
}

func NewPlaywright(ctx context.Context, opts Options) (*PlaywrightManager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium: %w", err)
	}

	return &PlaywrightManager{
		pw:      pw,
		browser: browser,
		opts:    opts,
	}, nil
}

// NewSession opens an isolated browser context with one page.
// The caller must Close it.
func (pm *PlaywrightManager) NewSession() (*Session, error) {
	browserCtx, err := pm.browser.NewContext()
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}
	return newSession(browserCtx, pm.opts)
}

func (pm *PlaywrightManager) Close() error {
	var firstErr error
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			firstErr = fmt.Errorf("could not close browser: %w", err)
		}
	}
	if pm.pw != nil {
		if err := pm.pw.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("could not stop playwright: %w", err)
		}
	}
	return firstErr
}

// Session is one browser context and its primary page.
type Session struct {
	Context playwright.BrowserContext
	Page    playwright.Page
	timeout float64
}

func newSession(browserCtx playwright.BrowserContext, opts Options) (*Session, error) {
	if opts.Timeout > 0 {
		browserCtx.SetDefaultTimeout(opts.Timeout)
		browserCtx.SetDefaultNavigationTimeout(opts.Timeout)
	}

	if len(opts.Cookies) > 0 {
		if err := browserCtx.AddCookies(opts.Cookies); err != nil {
			browserCtx.Close()
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
		log.Printf("🍪 Seeded %d cookies", len(opts.Cookies))
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	return &Session{
		Context: browserCtx,
		Page:    page,
		timeout: opts.Timeout,
	}, nil
}

// Timeout is the per-wait bound in milliseconds.
func (s *Session) Timeout() float64 {
	return s.timeout
}

// NewPage opens a secondary page in the same context.
func (s *Session) NewPage() (playwright.Page, error) {
	page, err := s.Context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	return page, nil
}

// Close closes the context and every page in it.
func (s *Session) Close() error {
	if err := s.Context.Close(); err != nil {
		return fmt.Errorf("could not close browser context: %w", err)
	}
	return nil
}

// BlockImages aborts png/jpg/jpeg requests made by page.
func BlockImages(page playwright.Page) error {
	return page.Route("**/*.{png,jpg,jpeg}", func(route playwright.Route) {
		route.Abort()
	})
}
