package bot

import (
	"context"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/tg-media-bot/internal/fetch"
	"github.com/ytget/tg-media-bot/internal/model"
	"github.com/ytget/tg-media-bot/internal/sizelimit"
	"github.com/ytget/tg-media-bot/internal/transcribe"
)

// Command names
const (
	CmdStart      = "start"
	CmdVideo      = "video"
	CmdAudio      = "audio"
	CmdTranscribe = "transcribe"
)

// urlPattern matches the first http(s)-prefixed whitespace-free span in a
// message; everything around it is ignored.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// Bot routes Telegram updates through the selection state machine and the
// download pipeline.
type Bot struct {
	api         API
	sessions    *Sessions
	fetcher     fetch.Fetcher
	enforcer    sizelimit.Enforcer
	transcriber transcribe.Transcriber
	maxBytes    int64
}

// New wires the bot's collaborators together.
func New(api API, fetcher fetch.Fetcher, enforcer sizelimit.Enforcer, transcriber transcribe.Transcriber, maxBytes int64) *Bot {
	return &Bot{
		api:         api,
		sessions:    NewSessions(),
		fetcher:     fetcher,
		enforcer:    enforcer,
		transcriber: transcriber,
		maxBytes:    maxBytes,
	}
}

// HandleUpdate processes one inbound update to completion. Each update runs
// on its own goroutine; a panic is contained here so one bad request cannot
// take down the polling loop.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Recovered from panic in update handler")
		}
	}()

	switch {
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.Message != nil:
		b.handleText(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

// handleCommand serves /start plus the three URL-taking shortcuts that jump
// straight to the quality selection for their kind.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case CmdStart:
		b.reply(chatID, MsgGreeting)

	case CmdVideo:
		b.stageCommandURL(chatID, msg.CommandArguments(), model.KindVideo)

	case CmdAudio:
		b.stageCommandURL(chatID, msg.CommandArguments(), model.KindAudio)

	case CmdTranscribe:
		url := extractURL(stripQuotes(msg.CommandArguments()))
		if url == "" {
			b.reply(chatID, MsgProvideURL)
			return
		}
		if _, err := b.sessions.Stage(chatID, url); err != nil {
			b.reportMenuError(chatID, err)
			return
		}
		req, err := b.sessions.StartExecution(chatID, model.KindTranscription, model.TierAudioHigh)
		if err != nil {
			b.reportMenuError(chatID, err)
			return
		}
		b.execute(ctx, req)

	default:
		b.reply(chatID, MsgGreeting)
	}
}

// stageCommandURL stages the command's URL argument and opens the quality
// submenu for the kind in a new message.
func (b *Bot) stageCommandURL(chatID int64, args string, kind model.MediaKind) {
	url := extractURL(stripQuotes(args))
	if url == "" {
		b.reply(chatID, MsgProvideURL)
		return
	}

	if _, err := b.sessions.Stage(chatID, url); err != nil {
		b.reportMenuError(chatID, err)
		return
	}
	if _, err := b.sessions.ToSubmenu(chatID, kind); err != nil {
		b.reportMenuError(chatID, err)
		return
	}

	text := MsgChooseVideoQuality
	if kind == model.KindAudio {
		text = MsgChooseAudioQuality
	}
	out := tgbotapi.NewMessage(chatID, text)
	out.ReplyMarkup = qualityMenu(kind)
	sent, err := b.api.Send(out)
	if err != nil {
		log.WithError(err).Warn("Failed to send quality menu")
		return
	}
	b.sessions.SetMenuMessage(chatID, sent.MessageID)
}

// handleText stages the first URL found in a plain message and presents the
// main menu; messages without a URL get the reprompt.
func (b *Bot) handleText(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	url := extractURL(strings.TrimSpace(msg.Text))
	if url == "" {
		b.reply(chatID, MsgProvideURL)
		return
	}

	if _, err := b.sessions.Stage(chatID, url); err != nil {
		b.reportMenuError(chatID, err)
		return
	}
	out := tgbotapi.NewMessage(chatID, MsgChooseAction)
	out.ReplyMarkup = mainMenu()
	sent, err := b.api.Send(out)
	if err != nil {
		log.WithError(err).Warn("Failed to send action menu")
		return
	}
	b.sessions.SetMenuMessage(chatID, sent.MessageID)
}

// handleCallback serves the inline keyboard: submenu navigation edits the
// menu message in place, tier selection starts the execution chain.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.WithError(err).Debug("Failed to answer callback query")
	}
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID

	switch data := cq.Data; {
	case data == CallbackVideoMenu:
		if _, err := b.sessions.ToSubmenu(chatID, model.KindVideo); err != nil {
			b.reportMenuError(chatID, err)
			return
		}
		b.editMenu(chatID, msgID, MsgChooseVideoQuality, qualityMenu(model.KindVideo))

	case data == CallbackAudioMenu:
		if _, err := b.sessions.ToSubmenu(chatID, model.KindAudio); err != nil {
			b.reportMenuError(chatID, err)
			return
		}
		b.editMenu(chatID, msgID, MsgChooseAudioQuality, qualityMenu(model.KindAudio))

	case data == CallbackBack:
		if _, err := b.sessions.ToMain(chatID); err != nil {
			b.reportMenuError(chatID, err)
			return
		}
		b.editMenu(chatID, msgID, MsgChooseAction, mainMenu())

	case data == CallbackTranscribe:
		req, err := b.sessions.StartExecution(chatID, model.KindTranscription, model.TierAudioHigh)
		if err != nil {
			b.reportMenuError(chatID, err)
			return
		}
		b.execute(ctx, req)

	case strings.HasPrefix(data, CallbackTierPrefix):
		tier := model.QualityTier(strings.TrimPrefix(data, CallbackTierPrefix))
		pending, ok := b.sessions.Pending(chatID)
		if !ok {
			b.reply(chatID, MsgNoPendingURL)
			return
		}
		req, err := b.sessions.StartExecution(chatID, pending.Kind, tier)
		if err != nil {
			b.reportMenuError(chatID, err)
			return
		}
		b.execute(ctx, req)

	default:
		log.WithField("data", data).Debug("Ignoring unknown callback data")
	}
}

// reportMenuError translates state machine errors into their user messages.
func (b *Bot) reportMenuError(chatID int64, err error) {
	switch err {
	case ErrNoPending:
		b.reply(chatID, MsgNoPendingURL)
	case ErrBusy:
		b.reply(chatID, MsgBusy)
	default:
		// A staged URL in the wrong menu state, e.g. a stale keyboard tapped
		// out of order. The URL is still there, so steer back to the menu.
		log.WithError(err).Warn("Menu action rejected")
		b.reply(chatID, MsgUseMenu)
	}
}

func (b *Bot) editMenu(chatID int64, msgID int, text string, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, text, markup)
	if _, err := b.api.Send(edit); err != nil {
		log.WithError(err).Warn("Failed to edit menu message")
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.WithError(err).Warn("Failed to send message")
	}
}

// extractURL returns the first URL-like token in the text, or "".
func extractURL(text string) string {
	return urlPattern.FindString(text)
}

// stripQuotes removes one layer of surrounding quotes from a command
// argument, so both /video <url> and /video "<url>" work.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
