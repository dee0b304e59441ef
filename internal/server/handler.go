package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"go-eshop-scraper/internal/browser"
	"go-eshop-scraper/internal/config"
	"go-eshop-scraper/internal/scraper"
	"go-eshop-scraper/internal/scraper/eshop"

	"github.com/gin-gonic/gin"
)

type (
	crawlFunc func(ctx context.Context, sessions eshop.SessionOpener, cfg *config.Config, shots *browser.ScreenShotDebugger) ([]scraper.Offer, error)
	matchFunc func(ctx context.Context, sessions eshop.SessionOpener, cfg *config.Config, shots *browser.ScreenShotDebugger) ([]scraper.Match, int, error)
)

// Handler triggers scrape phases over HTTP. All phases share one browser
// and the same output files, so only one runs at a time.
type Handler struct {
	cfg      *config.Config
	sessions eshop.SessionOpener
	shots    *browser.ScreenShotDebugger

	crawl crawlFunc
	match matchFunc

	busy sync.Mutex
}

func NewHandler(cfg *config.Config, sessions eshop.SessionOpener, shots *browser.ScreenShotDebugger) *Handler {
	return &Handler{
		cfg:      cfg,
		sessions: sessions,
		shots:    shots,
		crawl:    eshop.CrawlPhase,
		match:    eshop.MatchPhase,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "eShop scraper API is running!",
		"status":  "healthy",
	})
}

// ScrapeOffers runs the listing crawler and returns the saved offers.
func (h *Handler) ScrapeOffers(c *gin.Context) {
	if !h.busy.TryLock() {
		h.conflict(c)
		return
	}
	defer h.busy.Unlock()

	offers, err := h.crawl(c.Request.Context(), h.sessions, h.cfg, h.shots)
	if err != nil {
		h.fail(c, "Failed to scrape offers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    offers,
		"count":   len(offers),
		"file":    h.cfg.OffersPath,
	})
}

// ScrapeMatches searches every row of an uploaded offers CSV (form field
// "file") and returns the matching result cards.
func (h *Handler) ScrapeMatches(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file uploaded"})
		return
	}

	if !h.busy.TryLock() {
		h.conflict(c)
		return
	}
	defer h.busy.Unlock()

	dir, err := os.MkdirTemp("", "eshop-upload-*")
	if err != nil {
		h.fail(c, "Failed to store upload", err)
		return
	}
	defer os.RemoveAll(dir)

	offersPath := filepath.Join(dir, "offers.csv")
	if err := c.SaveUploadedFile(file, offersPath); err != nil {
		h.fail(c, "Failed to store upload", err)
		return
	}
	log.Printf("📥 Received %s (%d bytes)", file.Filename, file.Size)

	//the uploaded file replaces the configured offers path for this run only
	cfg := *h.cfg
	cfg.OffersPath = offersPath

	matches, skipped, err := h.match(c.Request.Context(), h.sessions, &cfg, h.shots)
	if err != nil {
		h.fail(c, "Failed to match offers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     matches,
		"count":    len(matches),
		"skipped":  skipped,
		"fileName": file.Filename,
		"file":     cfg.MatchesPath,
	})
}

func (h *Handler) conflict(c *gin.Context) {
	c.JSON(http.StatusConflict, gin.H{"success": false, "error": "A scrape is already running"})
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	log.Printf("❌ %s: %v", msg, err)

	status := http.StatusInternalServerError
	if browser.IsTimeout(err) {
		status = http.StatusGatewayTimeout
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
		"detail":  err.Error(),
	})
}
