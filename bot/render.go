package bot

import (
	"fmt"
	"html"
	"strings"

	"github.com/vmashkova/restopick/models"
)

const (
	// Telegram rejects captions above this length.
	maxCaptionLength = 1024

	placeholderPhoto = "https://via.placeholder.com/640x360.png?text=No+Image"

	defaultReason = "Подходит по выбранным параметрам."
)

// formatCaption renders one recommendation as the HTML caption of its photo
// message, truncated to the Telegram caption limit.
func formatCaption(rec models.Recommendation) string {
	var b strings.Builder

	name := rec.Name
	if name == "" {
		name = "Без названия"
	}
	fmt.Fprintf(&b, "<b>%s</b>\n", html.EscapeString(name))

	if rec.Description != "" {
		b.WriteString(html.EscapeString(rec.Description) + "\n")
	}
	if rec.Address != "" {
		b.WriteString("📍 " + html.EscapeString(rec.Address) + "\n")
	}
	if rec.Metro != "" {
		b.WriteString("🚇 " + html.EscapeString(rec.Metro) + "\n")
	}
	if rec.Link != "" {
		fmt.Fprintf(&b, "<a href=\"%s\">Подробнее</a>\n", rec.Link)
	}

	reason := rec.AIReason
	if reason == "" {
		reason = defaultReason
	}
	b.WriteString("\n🤖 " + html.EscapeString(reason))

	return truncate(b.String(), maxCaptionLength)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
