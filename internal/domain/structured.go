package domain

// ResponseContent is the user-facing part of a structured reply. Options and
// MultiSelect describe an interactive question; InterviewComplete marks the
// final summary of an interview session.
type ResponseContent struct {
	Text              string   `json:"text"`
	Options           []string `json:"options,omitempty"`
	MultiSelect       bool     `json:"multiSelect,omitempty"`
	InterviewComplete bool     `json:"interviewComplete,omitempty"`
}

// HasQuestion reports whether the reply poses a question with answer options.
func (r ResponseContent) HasQuestion() bool {
	return len(r.Options) > 0
}

// StructuredResponse is the normalized shape every assistant reply is coerced
// into before display. The parser always produces a well-formed value, filling
// defaults when the raw text is not valid JSON.
type StructuredResponse struct {
	Datetime string          `json:"datetime"`
	Title    string          `json:"title"`
	Tags     []string        `json:"tags"`
	Response ResponseContent `json:"response"`
}

// QuestionState is the transient per-user record of an unanswered
// multiple-choice prompt. SelectedIndices is used only in multi-select mode
// and always holds valid, duplicate-free indices into Options.
type QuestionState struct {
	Options         []string
	IsMultiSelect   bool
	SelectedIndices []int
	QuestionText    string
}
