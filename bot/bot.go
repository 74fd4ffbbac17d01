package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vmashkova/restopick/config"
	"github.com/vmashkova/restopick/models"
)

const (
	greetingText  = "Привет! Давай подберём тебе ресторан. Сначала выбери бюджет:"
	restartText   = "Окей! Сначала выбери бюджет:"
	completeText  = "Отлично! Вот подборка для тебя:"
	noMatchesText = "Ничего не нашлось по твоим критериям. Попробуй снова с другими настройками."
	failureText   = "Ошибка при получении данных. Попробуйте позже."
	followupText  = "Хочешь попробовать другой подбор? Нажми /start или кнопку ниже 👇"
)

// Bot wires the wizard and the recommendation API client to Telegram.
type Bot struct {
	api    *tgbotapi.BotAPI
	wizard *Wizard
	client *APIClient
}

func New(cfg *config.Config, sessions SessionStore) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Bot.Debug

	return &Bot{
		api:    api,
		wizard: NewWizard(sessions),
		client: NewAPIClient(cfg.Bot.APIURL, cfg.Bot.Retries),
	}, nil
}

// Run long-polls for updates until the context is cancelled. Updates are
// consumed by this single goroutine, so two events for the same user never
// interleave their session read-modify-write.
func (b *Bot) Run(ctx context.Context) error {
	slog.Info("bot started", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		if update.Message.Command() == "start" {
			b.handleStart(ctx, update.Message)
		}
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) {
	effect, err := b.wizard.Start(ctx, message.From.ID)
	if err != nil {
		slog.Error("failed to start session", "user", message.From.ID, "error", err)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, greetingText)
	msg.ReplyMarkup = buildKeyboard(effect.Category, categoryOptions[effect.Category], effect.Page)
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("failed to send greeting", "error", err)
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		slog.Warn("failed to ack callback", "error", err)
	}

	effect, err := b.wizard.HandleCallback(ctx, query.From.ID, query.Data)
	if err != nil {
		slog.Error("failed to handle callback", "user", query.From.ID, "data", query.Data, "error", err)
		return
	}

	chatID := query.Message.Chat.ID

	switch effect.Kind {
	case EffectPrompt:
		text := categoryPrompts[effect.Category]
		if effect.Restart {
			text = restartText
		}
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID, text, buildKeyboard(effect.Category, categoryOptions[effect.Category], effect.Page))
		if _, err := b.api.Send(edit); err != nil {
			slog.Error("failed to edit prompt", "error", err)
		}
	case EffectRecommend:
		edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, completeText)
		if _, err := b.api.Send(edit); err != nil {
			slog.Error("failed to edit prompt", "error", err)
		}
		b.sendRecommendations(ctx, chatID, effect.Filters)
	}
}

func (b *Bot) sendRecommendations(ctx context.Context, chatID int64, filters models.FilterSet) {
	recs, err := b.client.Recommend(ctx, filters)
	if err != nil {
		slog.Error("failed to fetch recommendations", "filters", filters, "error", err)
		b.sendText(chatID, failureText)
		return
	}

	if len(recs) == 0 {
		b.sendText(chatID, noMatchesText)
		return
	}

	for _, rec := range recs {
		caption := formatCaption(rec)

		photo := rec.Photo
		if photo == "" {
			photo = placeholderPhoto
		}

		msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photo))
		msg.Caption = caption
		msg.ParseMode = tgbotapi.ModeHTML

		if _, err := b.api.Send(msg); err != nil {
			// Photo URLs come from scraped data and go stale; fall back to
			// the same content as plain text instead of dropping it.
			slog.Warn("failed to send photo, degrading to text", "photo", photo, "error", err)
			text := tgbotapi.NewMessage(chatID, caption)
			text.ParseMode = tgbotapi.ModeHTML
			if _, err := b.api.Send(text); err != nil {
				slog.Error("failed to send recommendation text", "error", err)
			}
		}
	}

	followup := tgbotapi.NewMessage(chatID, followupText)
	followup.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(restartRow())
	if _, err := b.api.Send(followup); err != nil {
		slog.Error("failed to send followup", "error", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		slog.Error("failed to send message", "error", err)
	}
}
