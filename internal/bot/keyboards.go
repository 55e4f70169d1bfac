package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ytget/tg-media-bot/internal/model"
)

// Callback data values for menu buttons
const (
	CallbackVideoMenu  = "menu_video"
	CallbackAudioMenu  = "menu_audio"
	CallbackBack       = "menu_back"
	CallbackTranscribe = "action_transcribe"

	// Tier buttons carry the tier name behind this prefix
	CallbackTierPrefix = "tier_"
)

// mainMenu is the action menu shown when a URL is staged.
func mainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(BtnVideo, CallbackVideoMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(BtnAudio, CallbackAudioMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(BtnTranscribe, CallbackTranscribe),
		),
	)
}

// qualityMenu is the tier submenu for a kind, with a Back row at the bottom.
func qualityMenu(kind model.MediaKind) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 4)
	for _, tier := range model.TiersFor(kind) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tierLabel(tier), CallbackTierPrefix+tier.String()),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(BtnBack, CallbackBack),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func tierLabel(tier model.QualityTier) string {
	switch tier {
	case model.TierVideoHD:
		return BtnVideoHD
	case model.TierVideoSD:
		return BtnVideoSD
	case model.TierVideoLow:
		return BtnVideoLow
	case model.TierAudioHigh:
		return BtnAudioHigh
	case model.TierAudioMedium:
		return BtnAudioMedium
	case model.TierAudioLow:
		return BtnAudioLow
	default:
		return tier.String()
	}
}
