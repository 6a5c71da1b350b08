package notify

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"funkdesk/backend/config"
)

// Notifier posts short status messages to the management Telegram chat.
// Delivery is best effort: a failed send is logged, never returned to the
// request that triggered it.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewNotifier creates a Telegram notifier. Returns nil (disabled) when no
// token is configured.
func NewNotifier(cfg *config.NotifyConfig, logger *zap.Logger) *Notifier {
	if cfg.TelegramToken == "" {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Warn("telegram notifier disabled", zap.Error(err))
		return nil
	}

	logger.Info("telegram notifier enabled", zap.String("bot", bot.Self.UserName))
	return &Notifier{bot: bot, chatID: cfg.TelegramChatID, logger: logger}
}

// Send posts a plain-text message to the configured chat.
func (n *Notifier) Send(text string) {
	if n == nil {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Warn("telegram send failed", zap.Error(err))
	}
}
