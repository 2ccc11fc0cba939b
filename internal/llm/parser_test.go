package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

func TestParseStructuredResponse_ValidJSON(t *testing.T) {
	raw, err := json.Marshal(domain.StructuredResponse{
		Datetime: "2024-01-18T12:00:00Z",
		Title:    "Test Response",
		Tags:     []string{"test", "unit"},
		Response: domain.ResponseContent{Text: "This is a test response"},
	})
	require.NoError(t, err)

	result := ParseStructuredResponse(string(raw))

	assert.Equal(t, "2024-01-18T12:00:00Z", result.Datetime)
	assert.Equal(t, "Test Response", result.Title)
	assert.Equal(t, []string{"test", "unit"}, result.Tags)
	assert.Equal(t, "This is a test response", result.Response.Text)
	assert.False(t, result.Response.HasQuestion())
}

func TestParseStructuredResponse_Question(t *testing.T) {
	raw := `{
		"datetime": "2024-01-18T12:00:00Z",
		"title": "Question Response",
		"tags": ["question"],
		"response": {
			"text": "Here is a question for you",
			"options": ["Option 1", "Option 2", "Option 3"],
			"multiSelect": false
		}
	}`

	result := ParseStructuredResponse(raw)

	assert.True(t, result.Response.HasQuestion())
	assert.Equal(t, []string{"Option 1", "Option 2", "Option 3"}, result.Response.Options)
	assert.False(t, result.Response.MultiSelect)
}

func TestParseStructuredResponse_MalformedTagsKeepOtherFields(t *testing.T) {
	raw := `{"title": "Заметка", "tags": "not-a-list", "response": "Текст ответа"}`

	result := ParseStructuredResponse(raw)

	assert.Equal(t, "Заметка", result.Title)
	assert.Equal(t, []string{}, result.Tags)
	assert.Equal(t, "Текст ответа", result.Response.Text)
}

func TestParseStructuredResponse_MultiSelectQuestion(t *testing.T) {
	raw := `{
		"title": "Multi-Select Question",
		"tags": ["multiselect"],
		"response": {
			"text": "Select multiple options",
			"options": ["A", "B", "C", "D"],
			"multiSelect": true
		}
	}`

	result := ParseStructuredResponse(raw)

	assert.True(t, result.Response.MultiSelect)
	assert.Len(t, result.Response.Options, 4)
}

func TestParseStructuredResponse_MarkdownFence(t *testing.T) {
	raw := "```json\n{\"title\":\"T\",\"tags\":[\"x\"],\"response\":{\"text\":\"hi\"}}\n```"

	result := ParseStructuredResponse(raw)

	assert.Equal(t, "T", result.Title)
	assert.Equal(t, []string{"x"}, result.Tags)
	assert.Equal(t, "hi", result.Response.Text)
	assert.False(t, result.Response.HasQuestion())
}

func TestParseStructuredResponse_LegacyStringResponse(t *testing.T) {
	raw := `{
		"datetime": "2024-01-18T12:00:00Z",
		"title": "Old Format",
		"tags": ["legacy"],
		"response": "Direct string response"
	}`

	result := ParseStructuredResponse(raw)

	assert.Equal(t, "Direct string response", result.Response.Text)
	assert.False(t, result.Response.HasQuestion())
}

func TestParseStructuredResponse_InvalidJSONFallback(t *testing.T) {
	raw := "not json at all"

	result := ParseStructuredResponse(raw)

	assert.Equal(t, "Ответ", result.Title)
	assert.Equal(t, []string{}, result.Tags)
	assert.Equal(t, raw, result.Response.Text)
	assert.NotEmpty(t, result.Datetime)
}

func TestParseStructuredResponse_EmptyInput(t *testing.T) {
	result := ParseStructuredResponse("")

	assert.Equal(t, "Ответ", result.Title)
	assert.Equal(t, []string{}, result.Tags)
	assert.Equal(t, "", result.Response.Text)
}

func TestParseStructuredResponse_DefaultsForMissingFields(t *testing.T) {
	raw := `{"response": {"text": "Minimal response"}}`

	result := ParseStructuredResponse(raw)

	assert.NotEmpty(t, result.Datetime)
	assert.Equal(t, "Ответ", result.Title)
	assert.Equal(t, []string{}, result.Tags)
	assert.Equal(t, "Minimal response", result.Response.Text)
}

func TestParseStructuredResponse_JSONEmbeddedInProse(t *testing.T) {
	raw := "Here you go:\n{\"title\":\"Embedded\",\"response\":{\"text\":\"body\"}}\nHope this helps!"

	result := ParseStructuredResponse(raw)

	assert.Equal(t, "Embedded", result.Title)
	assert.Equal(t, "body", result.Response.Text)
}

func TestParseStructuredResponse_MalformedMultiSelectDropped(t *testing.T) {
	raw := `{"title":"Bad","response":{"text":"pick","options":["only one"],"multiSelect":true}}`

	result := ParseStructuredResponse(raw)

	assert.False(t, result.Response.HasQuestion())
	assert.False(t, result.Response.MultiSelect)
}

func TestParseStructuredResponse_UnexpectedResponseShape(t *testing.T) {
	raw := `{"title":"Weird","response":42}`

	result := ParseStructuredResponse(raw)

	assert.Equal(t, "Weird", result.Title)
	assert.Equal(t, raw, result.Response.Text)
}

func TestParseStructuredResponse_InterviewComplete(t *testing.T) {
	raw := `{"title":"Итог","tags":["interview"],"response":{"text":"summary","interviewComplete":true}}`

	result := ParseStructuredResponse(raw)

	assert.True(t, result.Response.InterviewComplete)
	assert.Equal(t, "summary", result.Response.Text)
}
