package service

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type NotifierConfig struct {
	BotToken string
	Debug    bool
}

// Notifier sends chat messages through the mini-app's bot. Only rare
// events go through it; everything else stays in the ws feed.
type Notifier struct {
	bot *tgbotapi.BotAPI
}

func NewNotifier(config NotifierConfig) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	bot.Debug = config.Debug

	return &Notifier{bot: bot}, nil
}

func (n *Notifier) NotifyLegendaryDrop(telegramID int64, itemName string) error {
	msg := tgbotapi.NewMessage(telegramID,
		fmt.Sprintf("🐉 Legendary drop! %s joined your reef.", itemName))

	_, err := n.bot.Send(msg)
	return err
}
