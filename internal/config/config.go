// Load envs from .env
// Load YAML config
// Provide default values
// Validate config

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the commands look for the config file.
const DefaultPath = "configs/config.yaml"

type Config struct {
	//Target site
	BaseURL    string `yaml:"base_url" validate:"required,url"`
	LoginPath  string `yaml:"login_path" validate:"required"`
	SearchPath string `yaml:"search_path" validate:"required"`

	//Listing filter, matched by accessible name / visible text
	MenuName      string `yaml:"menu_name" validate:"required"`
	Category      string `yaml:"category" validate:"required"`
	Subcategory   string `yaml:"subcategory" validate:"required"`
	DiscountLabel string `yaml:"discount_label"`
	SizeFilter    string `yaml:"size_filter"`

	//Output
	OffersPath  string `yaml:"offers_path" validate:"required"`
	MatchesPath string `yaml:"matches_path" validate:"required"`

	//Browser
	Headless    bool          `yaml:"headless"`
	BlockImages bool          `yaml:"block_images"`
	WaitTimeout time.Duration `yaml:"wait_timeout" validate:"gt=0"`
	SettleDelay time.Duration `yaml:"settle_delay" validate:"gte=0"`
	MaxPages    int           `yaml:"max_pages" validate:"gte=0"`

	//Paths
	CookiesPath   string `yaml:"cookies_path"`
	ScreenshotDir string `yaml:"screenshot_dir"`

	//Optional run notifications
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
}

// Default returns the settings of the Telerik eShop demo.
func Default() *Config {
	return &Config{
		BaseURL:       "https://demos.telerik.com",
		LoginPath:     "/aspnet-core/eshop/Account/Login?ReturnUrl=%2Faspnet-core%2Feshop",
		SearchPath:    "/aspnet-core/eshop/Products/Summary",
		MenuName:      "Categories",
		Category:      "Bikes",
		Subcategory:   "Road Bikes",
		DiscountLabel: "Discounted items only",
		SizeFilter:    "62",
		OffersPath:    "output-eshop-detailed.csv",
		MatchesPath:   "matched_results.csv",
		Headless:      true,
		BlockImages:   true,
		WaitTimeout:   30 * time.Second,
	}
}

// Load builds the config from defaults, the YAML file at path and the environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		log.Printf("⚠️ Config file %s not found, using defaults", path)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

//Override with env vars
func (c *Config) applyEnv() error {
	if v := os.Getenv("ESHOP_BASE_URL"); v != "" {
		c.BaseURL = v
	}

	if v := os.Getenv("ESHOP_HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid ESHOP_HEADLESS: %w", err)
		}
		c.Headless = headless
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}
	return nil
}

// Validate checks required fields and bounds.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// NotifyEnabled reports whether Telegram notifications are configured.
func (c *Config) NotifyEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// URL joins a site path onto BaseURL.
func (c *Config) URL(path string) string {
	return c.BaseURL + path
}
