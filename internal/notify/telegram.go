// Package notify delivers coach messages and digests out of band.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram sends messages to a single configured chat. A nil *Telegram
// is a valid disabled notifier: Send becomes a no-op.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram authorizes the bot and binds it to the chat that will
// receive coach messages and digests.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] telegram notifier authorized on account %s", api.Self.UserName)

	return &Telegram{api: api, chatID: chatID}, nil
}

// Send delivers an HTML-formatted message to the configured chat.
func (t *Telegram) Send(text string) error {
	if t == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
