package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Moonbreeze/aiAdvent/internal/config"
	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

const (
	yandexCompletionURL = "https://llm.api.cloud.yandex.net/foundationModels/v1/completionAsync"
	yandexOperationURL  = "https://operation.api.cloud.yandex.net/operations"
)

// YandexClient talks to the YandexGPT foundation models API. Completion is
// asynchronous on the wire: the POST returns an operation id which is then
// polled until the generation finishes.
type YandexClient struct {
	apiKey        string
	folderID      string
	completionURL string
	operationURL  string
	httpClient    *http.Client

	pollMaxAttempts int
	pollInterval    time.Duration
}

func NewYandexClient(apiKey, folderID string) *YandexClient {
	return &YandexClient{
		apiKey:          apiKey,
		folderID:        folderID,
		completionURL:   yandexCompletionURL,
		operationURL:    yandexOperationURL,
		httpClient:      &http.Client{Timeout: config.RequestTimeout},
		pollMaxAttempts: config.PollMaxAttempts,
		pollInterval:    config.PollInterval,
	}
}

type yandexMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type yandexCompletionRequest struct {
	ModelURI          string                  `json:"modelUri"`
	CompletionOptions yandexCompletionOptions `json:"completionOptions"`
	Messages          []yandexMessage         `json:"messages"`
}

type yandexCompletionOptions struct {
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
}

type yandexAsyncResponse struct {
	ID string `json:"id"`
}

// modelURI maps a tier to a concrete Yandex model URI.
func (c *YandexClient) modelURI(tier Tier) string {
	model := "yandexgpt"
	if tier == TierLite {
		model = "yandexgpt-lite"
	}
	return fmt.Sprintf("gpt://%s/%s", c.folderID, model)
}

func (c *YandexClient) Complete(ctx context.Context, messages []domain.Message, tier Tier, opts *CompletionOptions) Result {
	options := DefaultOptions
	if opts != nil {
		options = *opts
	}

	yandexMessages := make([]yandexMessage, 0, len(messages))
	for _, m := range messages {
		yandexMessages = append(yandexMessages, yandexMessage{Role: string(m.Role), Text: m.Text})
	}

	payload, err := json.Marshal(yandexCompletionRequest{
		ModelURI: c.modelURI(tier),
		CompletionOptions: yandexCompletionOptions{
			Stream:      false,
			Temperature: options.Temperature,
			MaxTokens:   options.MaxTokens,
		},
		Messages: yandexMessages,
	})
	if err != nil {
		return failure("marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.completionURL, bytes.NewReader(payload))
	if err != nil {
		return failure("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Api-Key "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure("completion request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return failure("yandex responded %d: %s", resp.StatusCode, body)
	}

	var async yandexAsyncResponse
	if err := json.Unmarshal(body, &async); err != nil || async.ID == "" {
		return failure("no operation id in response")
	}

	return c.pollOperation(ctx, async.ID)
}
