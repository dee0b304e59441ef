package reporter

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go-eshop-scraper/internal/browser"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTelegram answers getMe and records sendMessage calls.
type fakeTelegram struct {
	mu   sync.Mutex
	sent []map[string]string
}

func (f *fakeTelegram) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"eshop","username":"eshop_bot"}}`)
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.sent = append(f.sent, map[string]string{
			"chat_id":    r.PostForm.Get("chat_id"),
			"text":       r.PostForm.Get("text"),
			"parse_mode": r.PostForm.Get("parse_mode"),
		})
		f.mu.Unlock()
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`)
	default:
		http.NotFound(w, r)
	}
}

func setupReporter(t *testing.T) (*TelegramReporter, *fakeTelegram) {
	t.Helper()
	fake := &fakeTelegram{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	rep, err := newTelegramReporter("test-token", 42, server.URL+"/bot%s/%s")
	require.NoError(t, err)
	return rep, fake
}

func TestTelegramReporter_SendSummary(t *testing.T) {
	rep, fake := setupReporter(t)

	err := rep.SendSummary(Summary{
		Offers:      12,
		OffersPath:  "output-eshop-detailed.csv",
		Matches:     30,
		MatchesPath: "matched_results.csv",
		Skipped:     1,
	})
	require.NoError(t, err)

	require.Len(t, fake.sent, 1)
	msg := fake.sent[0]
	assert.Equal(t, "42", msg["chat_id"])
	assert.Equal(t, "HTML", msg["parse_mode"])
	assert.Contains(t, msg["text"], "12 offers → output-eshop-detailed.csv")
	assert.Contains(t, msg["text"], "30 matches → matched_results.csv")
	assert.Contains(t, msg["text"], "1 rows without search term skipped")
}

func TestTelegramReporter_SendErrorEscapesHTML(t *testing.T) {
	rep, fake := setupReporter(t)

	require.NoError(t, rep.SendError(errors.New(`waiting for "div.k-card-body": <timeout>`)))

	require.Len(t, fake.sent, 1)
	assert.Contains(t, fake.sent[0]["text"], "&lt;timeout&gt;")
}

func TestErrorText(t *testing.T) {
	timeout := fmt.Errorf("search %q: %w", "Road-150", &browser.TimeoutError{
		Selector: "div.k-listview-content",
		Err:      playwright.ErrTimeout,
	})
	assert.Contains(t, errorText(timeout), "did not load in time")
	assert.NotContains(t, errorText(timeout), "scraper failed")

	other := errors.New("target closed")
	assert.Contains(t, errorText(other), "scraper failed")
	assert.Contains(t, errorText(other), "target closed")
}

func TestSummaryText_CrawlOnly(t *testing.T) {
	text := summaryText(Summary{Offers: 3, OffersPath: "offers.csv"})

	assert.Contains(t, text, "3 offers → offers.csv")
	assert.NotContains(t, text, "matches")
	assert.NotContains(t, text, "skipped")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Summary{
		Offers:      5,
		OffersPath:  "output-eshop-detailed.csv",
		Matches:     2,
		MatchesPath: "matched_results.csv",
		Skipped:     1,
	})

	out := buf.String()
	assert.Contains(t, out, "output-eshop-detailed.csv")
	assert.Contains(t, out, "matched_results.csv")
	assert.Contains(t, out, "rows without search term")
	assert.Contains(t, out, "╭")
}

func TestRender_MatchPhaseOnly(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Summary{Matches: 4, MatchesPath: "matched_results.csv"})

	out := buf.String()
	assert.Contains(t, out, "matched_results.csv")
	assert.NotContains(t, out, "Offers")
}
