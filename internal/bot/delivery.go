package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/tg-media-bot/internal/model"
	"github.com/ytget/tg-media-bot/internal/workspace"
)

// Chat action indicators per delivery kind
const (
	ActionUploadVideo = "upload_video"
	ActionUploadAudio = "upload_audio"
	ActionTyping      = "typing"
)

// execute runs the fetch → enforce → deliver chain for an executing Request.
// The scratch directory and the transient status message are released on
// every exit path, including panics further up the handler.
func (b *Bot) execute(ctx context.Context, req model.Request) {
	chatID := req.ChatID
	defer b.sessions.Finish(chatID)

	statusText := MsgDownloading
	if req.Kind == model.KindTranscription {
		statusText = MsgTranscribing
	}
	status, statusErr := b.api.Send(tgbotapi.NewMessage(chatID, statusText))
	if statusErr != nil {
		log.WithError(statusErr).Warn("Failed to send status message")
	} else {
		defer func() {
			if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, status.MessageID)); err != nil {
				log.WithError(err).Debug("Failed to delete status message")
			}
		}()
	}

	scratch, err := workspace.New()
	if err != nil {
		b.reply(chatID, fmt.Sprintf(MsgFetchFailedFmt, err))
		return
	}
	defer scratch.Cleanup()

	artifact, err := b.fetcher.Fetch(ctx, req.URL, req.Kind, req.Tier, scratch.Path())
	if err != nil {
		log.WithError(err).WithField("chat", chatID).Error("Fetch failed")
		b.reply(chatID, fmt.Sprintf(MsgFetchFailedFmt, err))
		return
	}

	if statusErr == nil && artifact.Title != "" {
		if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, status.MessageID, artifact.Title)); err != nil {
			log.WithError(err).Debug("Failed to edit status message")
		}
	}

	// Transcription input is enforced as audio before it goes to the API.
	enforceKind := req.Kind
	if enforceKind == model.KindTranscription {
		enforceKind = model.KindAudio
	}
	path, err := b.enforcer.Enforce(ctx, artifact.LocalPath, b.maxBytes, enforceKind)
	if err != nil {
		log.WithError(err).WithField("chat", chatID).Error("Transcode failed")
		b.reply(chatID, fmt.Sprintf(MsgTranscodeFailedFmt, err))
		return
	}

	b.deliver(ctx, req, path)
}

// deliver hands the final artifact to the chat as video, audio, or text.
func (b *Bot) deliver(ctx context.Context, req model.Request, path string) {
	chatID := req.ChatID

	switch req.Kind {
	case model.KindVideo:
		b.sendChatAction(chatID, ActionUploadVideo)
		if _, err := b.api.Send(tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))); err != nil {
			log.WithError(err).WithField("chat", chatID).Error("Video upload failed")
			b.reply(chatID, fmt.Sprintf(MsgDeliveryFailedFmt, err))
		}

	case model.KindAudio:
		b.sendChatAction(chatID, ActionUploadAudio)
		if _, err := b.api.Send(tgbotapi.NewAudio(chatID, tgbotapi.FilePath(path))); err != nil {
			log.WithError(err).WithField("chat", chatID).Error("Audio upload failed")
			b.reply(chatID, fmt.Sprintf(MsgDeliveryFailedFmt, err))
		}

	case model.KindTranscription:
		b.sendChatAction(chatID, ActionTyping)
		result := b.transcriber.Transcribe(ctx, path)
		if !result.Available() {
			log.WithField("reason", result.Reason).Info("Transcription unavailable")
			b.reply(chatID, MsgTranscribeFallback)
			return
		}
		b.reply(chatID, result.Text)
	}
}

func (b *Bot) sendChatAction(chatID int64, action string) {
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		log.WithError(err).Debug("Failed to send chat action")
	}
}
