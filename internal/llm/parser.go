package llm

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

const defaultTitle = "Ответ"

// extractJSON returns the first '{' .. last '}' span of text, tolerating
// surrounding prose and markdown code fences. Brace matching instead of a
// fence regex so backticks inside JSON values don't break extraction.
func extractJSON(text string) string {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first != -1 && last > first {
		return text[first : last+1]
	}
	return strings.TrimSpace(text)
}

type rawStructured struct {
	Datetime string          `json:"datetime"`
	Title    string          `json:"title"`
	Tags     json.RawMessage `json:"tags"`
	Response json.RawMessage `json:"response"`
}

// ParseStructuredResponse normalizes raw model output into a structured
// response. It is a total function: any input, including empty strings and
// non-JSON prose, yields a well-formed value. On parse failure the entire
// raw text becomes the response body so the user always sees something.
func ParseStructuredResponse(text string) domain.StructuredResponse {
	fallback := domain.StructuredResponse{
		Datetime: time.Now().Format(time.RFC3339),
		Title:    defaultTitle,
		Tags:     []string{},
		Response: domain.ResponseContent{Text: text},
	}

	var raw rawStructured
	if err := json.Unmarshal([]byte(extractJSON(text)), &raw); err != nil {
		return fallback
	}

	result := fallback
	if raw.Datetime != "" {
		result.Datetime = raw.Datetime
	}
	if raw.Title != "" {
		result.Title = raw.Title
	}
	// Tags decode independently so a malformed value keeps the rest of
	// the parsed fields and just falls back to the empty list.
	var tags []string
	if json.Unmarshal(raw.Tags, &tags) == nil && tags != nil {
		result.Tags = tags
	}
	result.Response = parseResponseContent(raw.Response, text)
	return result
}

// parseResponseContent handles both response shapes: a plain string (legacy)
// and an object with text plus optional question fields. Anything else
// degrades to the whole raw text.
func parseResponseContent(raw json.RawMessage, text string) domain.ResponseContent {
	if len(raw) == 0 {
		return domain.ResponseContent{Text: text}
	}

	var legacy string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return domain.ResponseContent{Text: legacy}
	}

	var content domain.ResponseContent
	if err := json.Unmarshal(raw, &content); err != nil || content.Text == "" {
		return domain.ResponseContent{Text: text}
	}

	// A multi-select question needs at least two options to make sense;
	// drop malformed question payloads instead of rendering them.
	if content.MultiSelect && len(content.Options) < 2 {
		content.Options = nil
		content.MultiSelect = false
	}

	return content
}
