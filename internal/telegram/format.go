package telegram

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
	"github.com/Moonbreeze/aiAdvent/internal/llm"
)

// FormattedMessage is a reply ready for delivery: rendered text plus an
// optional inline keyboard and the question state the keyboard represents.
type FormattedMessage struct {
	Text      string
	ParseMode models.ParseMode
	Keyboard  *models.InlineKeyboardMarkup
	Question  *domain.QuestionState
}

var codeFenceRe = regexp.MustCompile("^```(?:json)?\\s*|\\s*```$")

// FormatResponse renders raw model output for display. In json mode the
// fence-stripped raw text is shown as an HTML code block; in text mode the
// output is parsed into a structured response and rendered as Markdown,
// attaching a question keyboard when the reply poses one.
func FormatResponse(responseText string, mode domain.OutputMode) FormattedMessage {
	if mode == domain.OutputJSON {
		jsonText := strings.TrimSpace(codeFenceRe.ReplaceAllString(responseText, ""))
		return FormattedMessage{
			Text:      `<pre><code class="language-json">` + EscapeHTML(jsonText) + `</code></pre>`,
			ParseMode: models.ParseModeHTML,
		}
	}

	structured := llm.ParseStructuredResponse(responseText)

	tags := make([]string, 0, len(structured.Tags))
	for _, tag := range structured.Tags {
		tags = append(tags, "#"+tag)
	}
	tagsLine := strings.Join(tags, " ")

	if structured.Response.InterviewComplete {
		text := fmt.Sprintf(
			"✅ *%s*\n\n%s\n\n🏷 %s\n\n_Интервью завершено. Используйте /chat или /interview для новой сессии._",
			structured.Title, structured.Response.Text, tagsLine,
		)
		return FormattedMessage{Text: text, ParseMode: models.ParseModeMarkdownV1}
	}

	text := fmt.Sprintf("📌 *%s*\n\n%s\n\n🏷 %s", structured.Title, structured.Response.Text, tagsLine)

	if structured.Response.HasQuestion() {
		options := structured.Response.Options
		multiSelect := structured.Response.MultiSelect

		question := &domain.QuestionState{
			Options:       options,
			IsMultiSelect: multiSelect,
			QuestionText:  text,
		}
		var keyboard *models.InlineKeyboardMarkup
		if multiSelect {
			question.SelectedIndices = []int{}
			keyboard = MultiSelectKeyboard(options, nil)
		} else {
			keyboard = SingleSelectKeyboard(options)
		}

		return FormattedMessage{
			Text:      text,
			ParseMode: models.ParseModeMarkdownV1,
			Keyboard:  keyboard,
			Question:  question,
		}
	}

	return FormattedMessage{Text: text, ParseMode: models.ParseModeMarkdownV1}
}

// EscapeHTML escapes the characters Telegram requires escaped in HTML mode.
func EscapeHTML(text string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(text)
}
