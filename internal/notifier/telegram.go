package notifier

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stockpulse/insight/models"
)

// TelegramNotifier pushes risk reports to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier for the given bot token and chat.
func NewTelegramNotifier(botToken string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// SendRiskReport formats and sends one report.
func (n *TelegramNotifier) SendRiskReport(ticker string, report *models.RiskReport) error {
	msg := tgbotapi.NewMessage(n.chatID, FormatRiskReport(ticker, report))
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}

// FormatRiskReport renders a report as a Telegram HTML message.
func FormatRiskReport(ticker string, report *models.RiskReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>%s risk report</b>\n", ticker)
	if report.Volatility != nil {
		fmt.Fprintf(&b, "Volatility: %.2f%%\n", *report.Volatility)
	}
	if report.RiskLevel != nil {
		fmt.Fprintf(&b, "Risk level: %s\n", *report.RiskLevel)
	}
	if report.ShortTermTrend != nil {
		fmt.Fprintf(&b, "Short-term trend: %+.4f%%/day\n", *report.ShortTermTrend*100)
	}
	fmt.Fprintf(&b, "Recommendation: <b>%s</b>", report.Recommendation)
	if report.Note != "" {
		fmt.Fprintf(&b, "\n<i>%s</i>", report.Note)
	}

	return b.String()
}
