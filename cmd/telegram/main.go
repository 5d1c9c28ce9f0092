package main

import (
	"fmt"
	"healthmate/internal/config"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// The bot answers every message with the sender's chat id, which users then
// register as their notification channel.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if !cfg.IsTelegramEnabled() {
		fmt.Fprintln(os.Stderr, "error: TELEGRAM_BOT_TOKEN must be set")
		os.Exit(1)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not authorize telegram bot, error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Authorized as %s\n", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	for {
		select {
		case <-stopCh:
			bot.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			reply := tgbotapi.NewMessage(
				update.Message.Chat.ID,
				fmt.Sprintf("Your chat id is %d. Use it to enable medicine reminders.", update.Message.Chat.ID),
			)
			if _, err := bot.Send(reply); err != nil {
				fmt.Fprintf(os.Stderr, "could not reply to chat %d, error: %v\n", update.Message.Chat.ID, err)
			}
		}
	}
}
