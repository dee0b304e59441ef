package eshop

import (
	"fmt"
	"strings"
	"time"

	"go-eshop-scraper/internal/browser"

	"github.com/playwright-community/playwright-go"
)

// advanceable reports whether a pager control with the given class
// attribute can be clicked.
func advanceable(class, marker string) bool {
	for _, c := range strings.Fields(class) {
		if c == marker {
			return false
		}
	}
	return true
}

// pager moves a results view forward one page at a time.
type pager struct {
	page playwright.Page
	// next is the selector of the "next page" control.
	next string
	// content must be attached again after a click.
	content string
	// fingerprint covers the whole results view; the click has landed once
	// its text changes.
	fingerprint string
	networkIdle bool
	timeout     float64
	settle      time.Duration
}

// advance clicks the next control. It returns false, without clicking,
// when the control is absent or disabled.
func (p pager) advance() (bool, error) {
	next := p.page.Locator(p.next).First()
	count, err := next.Count()
	if err != nil {
		return false, fmt.Errorf("failed to locate %q: %w", p.next, err)
	}
	if count == 0 {
		return false, nil
	}

	class, err := next.GetAttribute("class")
	if err != nil {
		return false, fmt.Errorf("failed to read class of %q: %w", p.next, err)
	}
	if !advanceable(class, disabledMarker) {
		return false, nil
	}

	before, err := browser.Fingerprint(p.page, p.fingerprint)
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", p.fingerprint, err)
	}

	if err := next.Click(); err != nil {
		return false, fmt.Errorf("failed to click %q: %w", p.next, err)
	}

	if p.networkIdle {
		if err := browser.WaitNetworkIdle(p.page, p.timeout); err != nil {
			return false, err
		}
	}
	if err := browser.WaitAttached(p.page, p.content, p.timeout); err != nil {
		return false, err
	}
	if err := browser.WaitChanged(p.page, p.fingerprint, before, p.timeout); err != nil {
		return false, err
	}

	if p.settle > 0 {
		time.Sleep(p.settle)
	}
	return true, nil
}
