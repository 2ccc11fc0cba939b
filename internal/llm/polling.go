package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type yandexOperation struct {
	Done  bool `json:"done"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Response *struct {
		Alternatives []struct {
			Message struct {
				Role string `json:"role"`
				Text string `json:"text"`
			} `json:"message"`
		} `json:"alternatives"`
	} `json:"response"`
}

// pollOperation queries the operation status until the generation completes,
// fails, or the attempt budget runs out. A failed status request aborts the
// wait immediately. The goroutine parks between attempts; cancelling the
// context aborts the wait with a failure.
func (c *YandexClient) pollOperation(ctx context.Context, operationID string) Result {
	for attempt := 0; attempt < c.pollMaxAttempts; attempt++ {
		op, err := c.fetchOperation(ctx, operationID)
		if err != nil {
			return failure("operation poll: %v", err)
		}

		if op.Done {
			if op.Error != nil {
				msg := op.Error.Message
				if msg == "" {
					msg = "operation failed"
				}
				return failure("%s", msg)
			}
			if op.Response != nil && len(op.Response.Alternatives) > 0 {
				if text := op.Response.Alternatives[0].Message.Text; text != "" {
					return success(text)
				}
			}
			return failure("no text in response")
		}

		if attempt < c.pollMaxAttempts-1 {
			if err := sleep(ctx, c.pollInterval); err != nil {
				return failure("operation poll: %v", err)
			}
		}
	}

	return failure("operation timed out")
}

func (c *YandexClient) fetchOperation(ctx context.Context, operationID string) (*yandexOperation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.operationURL+"/"+operationID, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Api-Key "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("status request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var op yandexOperation
	if err := json.Unmarshal(body, &op); err != nil {
		return nil, fmt.Errorf("parse operation: %w", err)
	}
	return &op, nil
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
