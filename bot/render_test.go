package bot

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/vmashkova/restopick/models"
)

func TestFormatCaption(t *testing.T) {
	caption := formatCaption(models.Recommendation{
		Name:        "Тратория",
		Description: "Паста и вино",
		Address:     "ул. Пример, 1",
		Metro:       "Арбатская, Смоленская",
		Link:        "https://example.com",
		AIReason:    "здесь вкусно",
	})

	assert.Contains(t, caption, "<b>Тратория</b>")
	assert.Contains(t, caption, "Паста и вино")
	assert.Contains(t, caption, "📍 ул. Пример, 1")
	assert.Contains(t, caption, "🚇 Арбатская, Смоленская")
	assert.Contains(t, caption, `<a href="https://example.com">Подробнее</a>`)
	assert.Contains(t, caption, "🤖 здесь вкусно")
}

func TestFormatCaptionOmitsEmptyFields(t *testing.T) {
	caption := formatCaption(models.Recommendation{Name: "Бар"})

	assert.NotContains(t, caption, "📍")
	assert.NotContains(t, caption, "🚇")
	assert.NotContains(t, caption, "<a href")
	assert.Contains(t, caption, defaultReason)
}

func TestFormatCaptionNamePlaceholder(t *testing.T) {
	caption := formatCaption(models.Recommendation{})

	assert.Contains(t, caption, "<b>Без названия</b>")
}

func TestFormatCaptionEscapesHTML(t *testing.T) {
	caption := formatCaption(models.Recommendation{Name: "Бар <script>"})

	assert.Contains(t, caption, "&lt;script&gt;")
}

func TestFormatCaptionTruncated(t *testing.T) {
	caption := formatCaption(models.Recommendation{
		Name:        "Бар",
		Description: strings.Repeat("ж", 2000),
	})

	assert.LessOrEqual(t, utf8.RuneCountInString(caption), maxCaptionLength)
	assert.True(t, strings.HasSuffix(caption, "..."))
}

func TestTruncateShortStringUntouched(t *testing.T) {
	assert.Equal(t, "короткий", truncate("короткий", maxCaptionLength))
}
