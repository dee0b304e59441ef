package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-eshop-scraper/internal/browser"
	"go-eshop-scraper/internal/config"
	"go-eshop-scraper/internal/server"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = config.DefaultPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pm, err := browser.NewPlaywright(ctx, browser.NewOptions(cfg.Headless, cfg.WaitTimeout, cfg.CookiesPath))
	if err != nil {
		log.Fatalf("Failed to init Playwright: %v", err)
	}
	defer func() {
		if err := pm.Close(); err != nil {
			log.Printf("⚠️ %v", err)
		}
	}()
	log.Println("✅ Browser initialized successfully!")

	handler := server.NewHandler(cfg, pm, browser.NewScreenShotDebugger(cfg.ScreenshotDir))
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server.SetupRouter(handler),
	}

	go func() {
		log.Printf("Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Shutdown: %v", err)
	}
}
