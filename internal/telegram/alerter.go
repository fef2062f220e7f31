// Package telegram posts a short digest of each new complaint to the support
// chat. The channel is optional and best effort: a failed alert is logged by
// the caller and never affects the HTTP outcome.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"complaintgo/backend/internal/config"
	"complaintgo/backend/internal/models"
)

// Alerter sends complaint digests to a fixed Telegram chat.
type Alerter struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewAlerter authenticates the bot and binds it to the support chat.
func NewAlerter(cfg config.TelegramConfig, logger *zap.Logger) (*Alerter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot auth: %w", err)
	}
	bot.Debug = false
	logger.Info("telegram alerter authorized", zap.String("account", bot.Self.UserName))

	return &Alerter{BotAPI: bot, ChatID: cfg.SupportChatID}, nil
}

// Alert posts the digest for one complaint.
func (a *Alerter) Alert(complaint *models.Complaint) error {
	msg := tgbotapi.NewMessage(a.ChatID, Digest(complaint))
	_, err := a.BotAPI.Send(msg)
	return err
}

// Digest renders the plain-text alert body. It carries the summarized issue,
// same as the email notification.
func Digest(complaint *models.Complaint) string {
	return fmt.Sprintf("New complaint #%d\nFrom: %s (%s)\nProduct: %s\n\n%s",
		complaint.ID, complaint.Name, complaint.Email, complaint.Product,
		complaint.SummarizedIssue)
}
