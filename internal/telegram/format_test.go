package telegram

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

func TestFormatResponse_TextMode(t *testing.T) {
	raw := `{"title":"Заголовок","tags":["go","bots"],"response":{"text":"Основной текст"}}`

	fm := FormatResponse(raw, domain.OutputText)

	assert.Equal(t, models.ParseModeMarkdownV1, fm.ParseMode)
	assert.Contains(t, fm.Text, "📌 *Заголовок*")
	assert.Contains(t, fm.Text, "Основной текст")
	assert.Contains(t, fm.Text, "#go #bots")
	assert.Nil(t, fm.Keyboard)
	assert.Nil(t, fm.Question)
}

func TestFormatResponse_JSONMode(t *testing.T) {
	raw := "```json\n{\"title\":\"T\"}\n```"

	fm := FormatResponse(raw, domain.OutputJSON)

	assert.Equal(t, models.ParseModeHTML, fm.ParseMode)
	assert.Contains(t, fm.Text, `<pre><code class="language-json">`)
	assert.Contains(t, fm.Text, `{"title":"T"}`)
	assert.NotContains(t, fm.Text, "```")
}

func TestFormatResponse_JSONModeEscapesHTML(t *testing.T) {
	raw := `{"title":"<b>&"}`

	fm := FormatResponse(raw, domain.OutputJSON)

	assert.Contains(t, fm.Text, "&lt;b&gt;")
	assert.Contains(t, fm.Text, "&amp;")
}

func TestFormatResponse_SingleSelectQuestion(t *testing.T) {
	raw := `{"title":"Q","tags":[],"response":{"text":"pick","options":["A","B","C"],"multiSelect":false}}`

	fm := FormatResponse(raw, domain.OutputText)

	require.NotNil(t, fm.Question)
	assert.Equal(t, []string{"A", "B", "C"}, fm.Question.Options)
	assert.False(t, fm.Question.IsMultiSelect)
	assert.Nil(t, fm.Question.SelectedIndices)
	assert.Equal(t, fm.Text, fm.Question.QuestionText)

	require.NotNil(t, fm.Keyboard)
	require.Len(t, fm.Keyboard.InlineKeyboard, 3)
	assert.Equal(t, "A", fm.Keyboard.InlineKeyboard[0][0].Text)
	assert.Equal(t, "ans:0", fm.Keyboard.InlineKeyboard[0][0].CallbackData)
}

func TestFormatResponse_MultiSelectQuestion(t *testing.T) {
	raw := `{"title":"Q","tags":[],"response":{"text":"pick many","options":["A","B"],"multiSelect":true}}`

	fm := FormatResponse(raw, domain.OutputText)

	require.NotNil(t, fm.Question)
	assert.True(t, fm.Question.IsMultiSelect)
	assert.Equal(t, []int{}, fm.Question.SelectedIndices)

	require.NotNil(t, fm.Keyboard)
	// Two checkbox rows plus the submit row
	require.Len(t, fm.Keyboard.InlineKeyboard, 3)
	assert.Equal(t, "☐ A", fm.Keyboard.InlineKeyboard[0][0].Text)
	assert.Equal(t, "toggle:0", fm.Keyboard.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "submit", fm.Keyboard.InlineKeyboard[2][0].CallbackData)
	assert.Contains(t, fm.Keyboard.InlineKeyboard[2][0].Text, "Выберите варианты")
}

func TestFormatResponse_InterviewComplete(t *testing.T) {
	raw := `{"title":"Итог","tags":["done"],"response":{"text":"summary","interviewComplete":true}}`

	fm := FormatResponse(raw, domain.OutputText)

	assert.Contains(t, fm.Text, "✅ *Итог*")
	assert.Contains(t, fm.Text, "Интервью завершено")
	assert.Nil(t, fm.Keyboard)
	assert.Nil(t, fm.Question)
}

func TestFormatResponse_FallbackForPlainText(t *testing.T) {
	fm := FormatResponse("just plain prose", domain.OutputText)

	assert.Contains(t, fm.Text, "📌 *Ответ*")
	assert.Contains(t, fm.Text, "just plain prose")
	assert.Nil(t, fm.Question)
}

func TestMultiSelectKeyboard_ShowsSelection(t *testing.T) {
	kb := MultiSelectKeyboard([]string{"A", "B", "C"}, []int{0, 2})

	require.Len(t, kb.InlineKeyboard, 4)
	assert.Equal(t, "☑️ A", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "☐ B", kb.InlineKeyboard[1][0].Text)
	assert.Equal(t, "☑️ C", kb.InlineKeyboard[2][0].Text)
	assert.Equal(t, "✅ Готово (2)", kb.InlineKeyboard[3][0].Text)
}

func TestProviderKeyboard(t *testing.T) {
	kb := ProviderKeyboard([]domain.Provider{domain.ProviderYandex, domain.ProviderDeepSeek}, CallbackSwitchPrefix)

	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "YandexGPT", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "switch:yandex", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "switch:deepseek", kb.InlineKeyboard[1][0].CallbackData)
}
