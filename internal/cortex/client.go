package cortex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

const (
	completePath = "/api/v2/cortex/inference:complete"
	defaultModel = "mistral-large"

	maxRetries   = 3
	initialDelay = 1 * time.Second
)

const journalPrompt = `Parse this journal entry into 3-5 actionable tasks.

Return ONLY a valid JSON array with this exact structure:
[
  {
    "title": "task name",
    "description": "what needs to be done",
    "estimated_duration": 60,
    "subtasks": ["subtask 1", "subtask 2", "subtask 3"]
  }
]

Rules:
- estimated_duration must be between 30 and 120 minutes
- Include 2-4 subtasks for each task
- Return ONLY the JSON array, no markdown, no explanation

Journal entry: %s`

// Client calls the Cortex inference REST endpoint.
type Client struct {
	accountURL string
	apiKey     string
	model      string
	client     *http.Client
}

type completeRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completeResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// NewClient creates a Cortex client for the given account URL and
// programmatic access token. An empty model selects mistral-large.
func NewClient(accountURL, apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		accountURL: strings.TrimRight(accountURL, "/"),
		apiKey:     apiKey,
		model:      model,
		client:     &http.Client{Timeout: 60 * time.Second},
	}
}

// ParseJournal turns a journal entry into task drafts.
func (c *Client) ParseJournal(ctx context.Context, journalText string) ([]TaskDraft, error) {
	if strings.TrimSpace(journalText) == "" {
		return nil, nil
	}

	raw, err := c.complete(ctx, fmt.Sprintf(journalPrompt, journalText))
	if err != nil {
		return nil, err
	}

	cleaned := cleanJSONResponse(raw)

	var drafts []TaskDraft
	if err := json.Unmarshal([]byte(cleaned), &drafts); err != nil {
		return nil, fmt.Errorf("response is not a valid task array: %w", err)
	}
	return drafts, nil
}

// CoachMessage produces a short motivational message for a session event.
func (c *Client) CoachMessage(ctx context.Context, kind MessageKind, taskName string, durationMinutes int) (string, error) {
	if taskName == "" {
		taskName = "this task"
	}
	if durationMinutes <= 0 {
		durationMinutes = 90
	}

	var prompt string
	switch kind {
	case KindSessionStart:
		prompt = fmt.Sprintf("You're starting a %d-minute focus session on '%s'. Give an encouraging 15-word message to begin.", durationMinutes, taskName)
	case KindHalfway:
		prompt = fmt.Sprintf("You're halfway through your focus session on '%s'. Give a motivating 15-word check-in message.", taskName)
	case KindBreak:
		prompt = "You just completed a focus session. Suggest a healthy 15-word break activity."
	case KindCompletion:
		prompt = fmt.Sprintf("You completed '%s'! Give a celebratory 15-word message recognizing the achievement.", taskName)
	default:
		prompt = "Give an encouraging 15-word message about staying focused."
	}

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	msg := strings.TrimSpace(raw)
	msg = strings.Trim(msg, `"'`)
	return msg, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.accountURL == "" || c.apiKey == "" {
		return "", fmt.Errorf("cortex account URL and API key are not configured")
	}

	body, err := json.Marshal(completeRequest{
		Model:    c.model,
		Messages: []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * initialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.accountURL+completePath, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			var apiErr apiError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
				lastErr = fmt.Errorf("cortex api error (%d): %s", resp.StatusCode, apiErr.Message)
			} else {
				lastErr = fmt.Errorf("cortex api error (%d): %s", resp.StatusCode, string(respBody))
			}
			// Retry only on rate limits and server errors.
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				continue
			}
			return "", lastErr
		}

		var completion completeResponse
		if err := json.Unmarshal(respBody, &completion); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
			return "", fmt.Errorf("empty completion from cortex")
		}
		return completion.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("max retries (%d) exceeded: %w", maxRetries, lastErr)
}

// cleanJSONResponse strips markdown code fences models sometimes wrap
// around JSON output.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = response[len("```json"):]
	} else if strings.HasPrefix(response, "```") {
		response = response[len("```"):]
	}
	response = strings.TrimSuffix(strings.TrimSpace(response), "```")
	return strings.TrimSpace(response)
}
