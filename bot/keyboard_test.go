package bot

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmashkova/restopick/models"
)

func manyOptions(n int) []string {
	options := make([]string, n)
	for i := range options {
		options[i] = fmt.Sprintf("Опция %d", i)
	}
	return options
}

func TestKeyboardFirstPage(t *testing.T) {
	markup := buildKeyboard(models.CategoryCuisine, manyOptions(25), 0)

	// 10 options + navigation + restart.
	require.Len(t, markup.InlineKeyboard, 12)

	first := markup.InlineKeyboard[0][0]
	assert.Equal(t, "Опция 0", first.Text)
	assert.Equal(t, "cuisine:Опция 0", *first.CallbackData)
	assert.Equal(t, "Опция 9", markup.InlineKeyboard[9][0].Text)

	nav := markup.InlineKeyboard[10]
	require.Len(t, nav, 1)
	assert.Equal(t, "cuisine_page:1", *nav[0].CallbackData)
}

func TestKeyboardLastPage(t *testing.T) {
	markup := buildKeyboard(models.CategoryCuisine, manyOptions(25), 2)

	// 5 options + navigation + restart.
	require.Len(t, markup.InlineKeyboard, 7)

	assert.Equal(t, "Опция 20", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "Опция 24", markup.InlineKeyboard[4][0].Text)

	nav := markup.InlineKeyboard[5]
	require.Len(t, nav, 1)
	assert.Equal(t, "cuisine_page:1", *nav[0].CallbackData)
}

func TestKeyboardMiddlePageHasBothArrows(t *testing.T) {
	markup := buildKeyboard(models.CategoryCuisine, manyOptions(25), 1)

	nav := markup.InlineKeyboard[10]
	require.Len(t, nav, 2)
	assert.Equal(t, "cuisine_page:0", *nav[0].CallbackData)
	assert.Equal(t, "cuisine_page:2", *nav[1].CallbackData)
}

func TestKeyboardSinglePageHasNoArrows(t *testing.T) {
	markup := buildKeyboard(models.CategoryBudget, budgetOptions, 0)

	// Options + restart only.
	require.Len(t, markup.InlineKeyboard, len(budgetOptions)+1)

	restart := markup.InlineKeyboard[len(budgetOptions)]
	assert.Equal(t, "restart", *restart[0].CallbackData)
}

func TestKeyboardAlwaysHasRestart(t *testing.T) {
	for page := 0; page < 3; page++ {
		markup := buildKeyboard(models.CategoryCuisine, manyOptions(25), page)
		last := markup.InlineKeyboard[len(markup.InlineKeyboard)-1]
		assert.Equal(t, "restart", *last[0].CallbackData)
	}
}
