package main

import (
	"context"
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/tg-media-bot/internal/bot"
	"github.com/ytget/tg-media-bot/internal/config"
	"github.com/ytget/tg-media-bot/internal/fetch"
	"github.com/ytget/tg-media-bot/internal/health"
	"github.com/ytget/tg-media-bot/internal/secrets"
	"github.com/ytget/tg-media-bot/internal/sizelimit"
	"github.com/ytget/tg-media-bot/internal/transcribe"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// UpdateTimeoutSec is the long-poll timeout passed to Telegram
const UpdateTimeoutSec = 30

var rootCmd = &cobra.Command{
	Use:   "tg-media-bot",
	Short: "Telegram bot that downloads, converts and transcribes media URLs",
	Long: `tg-media-bot accepts a media URL in chat and replies with a downloaded
video, an extracted audio track, or a text transcription, re-encoding
oversized files to fit the platform upload limit.`,
	RunE: run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log.Infof("tg-media-bot v%s starting...", version)

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Unknown log level %q, keeping default", settings.LogLevel)
	}

	token := secrets.Resolve(secrets.BotTokenName)
	if !secrets.ValidBotToken(token) {
		return fmt.Errorf("invalid %s: put it in env, .env or %s%s",
			secrets.BotTokenName, secrets.BotTokenName, secrets.FactFileSuffix)
	}

	go func() {
		if err := health.Serve(settings.HealthPort); err != nil {
			log.WithError(err).Error("Health check server stopped")
		}
	}()

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	log.WithField("username", api.Self.UserName).Info("Bot authorized")

	transcriptionKey := secrets.Resolve(secrets.TranscriptionName)
	if transcriptionKey == "" {
		log.Warnf("%s not configured; transcription will report unavailable", secrets.TranscriptionName)
	}

	b := bot.New(
		api,
		fetch.NewService(settings.FetchTimeout),
		sizelimit.NewService(settings.TranscodeTimeout),
		transcribe.NewService(transcriptionKey),
		settings.MaxUploadBytes,
	)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = UpdateTimeoutSec

	// Each update runs on its own goroutine; per-chat ordering is guarded by
	// the session state machine, which rejects overlapping work for a chat.
	for update := range api.GetUpdatesChan(u) {
		go b.HandleUpdate(context.Background(), update)
	}
	return nil
}
