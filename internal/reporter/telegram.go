package reporter

import (
	"fmt"
	"html"

	"go-eshop-scraper/internal/browser"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramReporter posts run results to one chat.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	return newTelegramReporter(token, chatID, tgbotapi.APIEndpoint)
}

func newTelegramReporter(token string, chatID int64, endpoint string) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendSummary(s Summary) error {
	return t.SendMessage(summaryText(s))
}

func (t *TelegramReporter) SendError(errReq error) error {
	return t.SendMessage(errorText(errReq))
}

// errorText tells a page that never loaded apart from other failures.
func errorText(err error) string {
	headline := "⚠️ <b>eShop scraper failed</b>"
	if browser.IsTimeout(err) {
		headline = "⏱ <b>eShop page did not load in time</b>"
	}
	return fmt.Sprintf("%s:\n%s", headline, html.EscapeString(err.Error()))
}

func summaryText(s Summary) string {
	text := fmt.Sprintf("🚲 <b>eShop scrape finished</b>\n📦 %d offers → %s\n",
		s.Offers, html.EscapeString(s.OffersPath))
	if s.MatchesPath != "" {
		text += fmt.Sprintf("🔍 %d matches → %s\n", s.Matches, html.EscapeString(s.MatchesPath))
	}
	if s.Skipped > 0 {
		text += fmt.Sprintf("⏭ %d rows without search term skipped\n", s.Skipped)
	}
	return text
}
