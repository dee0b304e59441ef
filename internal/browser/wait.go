package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// TimeoutError is returned when a bounded wait expires.
type TimeoutError struct {
	Selector string
	Timeout  time.Duration
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for %q: %v", e.Timeout, e.Selector, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is, or wraps, a wait timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te) || errors.Is(err, playwright.ErrTimeout)
}

// WaitAttached blocks until selector is attached to the page's DOM.
func WaitAttached(page playwright.Page, selector string, timeoutMs float64) error {
	err := page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(timeoutMs),
	})
	return wrapTimeout(err, selector, timeoutMs)
}

// WaitChanged blocks until the text of selector differs from previous.
// Used after a pager click so the next read sees the new page.
func WaitChanged(page playwright.Page, selector, previous string, timeoutMs float64) error {
	_, err := page.WaitForFunction(
		`([sel, prev]) => { const el = document.querySelector(sel); return !!el && el.innerText !== prev; }`,
		[]string{selector, previous},
		playwright.PageWaitForFunctionOptions{Timeout: playwright.Float(timeoutMs)},
	)
	return wrapTimeout(err, selector, timeoutMs)
}

// Fingerprint returns the rendered text of the first selector match, or ""
// when nothing matches.
func Fingerprint(page playwright.Page, selector string) (string, error) {
	loc := page.Locator(selector).First()
	count, err := loc.Count()
	if err != nil || count == 0 {
		return "", err
	}
	return loc.InnerText()
}

// WaitNetworkIdle waits for the page to stop issuing requests.
func WaitNetworkIdle(page playwright.Page, timeoutMs float64) error {
	err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(timeoutMs),
	})
	return wrapTimeout(err, "networkidle", timeoutMs)
}

func wrapTimeout(err error, selector string, timeoutMs float64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return &TimeoutError{
			Selector: selector,
			Timeout:  time.Duration(timeoutMs) * time.Millisecond,
			Err:      err,
		}
	}
	return fmt.Errorf("waiting for %q: %w", selector, err)
}
