package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vmashkova/restopick/models"
)

const pageSize = 10

// buildKeyboard renders one page of a category's options as an inline
// keyboard: one option per row, navigation arrows when there is somewhere to
// go, and always a restart row.
func buildKeyboard(category models.Category, options []string, page int) tgbotapi.InlineKeyboardMarkup {
	start := page * pageSize
	if start > len(options) {
		start = len(options)
	}
	end := start + pageSize
	if end > len(options) {
		end = len(options)
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, opt := range options[start:end] {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt, fmt.Sprintf("%s:%s", category, opt)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", fmt.Sprintf("%s_page:%d", category, page-1)))
	}
	if end < len(options) {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("➡️ Далее", fmt.Sprintf("%s_page:%d", category, page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, restartRow())

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func restartRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔁 Начать заново", "restart"),
	)
}
