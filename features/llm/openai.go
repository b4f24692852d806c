package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ttombbab/vibeprompt/constants"
)

type OpenAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []OpenAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	Stream      bool            `json:"stream"`
}

type OpenAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	ID      string         `json:"id"`
	Choices []OpenAIChoice `json:"choices"`
	Error   *OpenAIError   `json:"error,omitempty"` // Sometimes returned in 200 OK by proxies
}

type OpenAIChoice struct {
	Index        int           `json:"index"`
	Message      OpenAIMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

// OpenAI specific error structure inside the JSON body
type OpenAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}

// CallOpenAI is the base function for OpenAI compatible APIs.
// baseUrl: e.g., "https://api.openai.com/v1" or "http://localhost:11434/v1"
func (c *Client) CallOpenAI(ctx context.Context, baseUrl string, apiKey string,
	reqBody *OpenAIChatRequest) (*OpenAIResponse, error) {
	if apiKey == "" {
		apiKey = os.Getenv(constants.ENV_MODEL_KEY)
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	baseUrl = strings.TrimRight(baseUrl, "/")
	url := fmt.Sprintf("%s/chat/completions", baseUrl)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", constants.MIME_JSON)
	if apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, &ApiError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ApiError{Status: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ApiError{
			Status:  resp.StatusCode,
			Body:    string(bodyBytes),
			Message: fmt.Sprintf("OpenAI API returned status %d", resp.StatusCode),
		}
	}

	var apiResp OpenAIResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return nil, &ApiError{Status: resp.StatusCode, Body: string(bodyBytes),
			Message: "failed to decode response", Err: err}
	}

	// Handle logic-level errors (API returned 200 but body contains error)
	if apiResp.Error != nil {
		return nil, &ApiError{Status: resp.StatusCode, Body: string(bodyBytes),
			Message: fmt.Sprintf("api error: %s", apiResp.Error.Message)}
	}

	if len(apiResp.Choices) == 0 {
		return nil, &ApiError{Status: resp.StatusCode, Body: string(bodyBytes), Message: "no choices returned by API"}
	}

	return &apiResp, nil
}

// OpenAIChat performs a simple text-in, text-out conversation.
func (c *Client) OpenAIChat(ctx context.Context, baseUrl string, apiKey string, model string,
	promptText string) (string, error) {
	reqBody := &OpenAIChatRequest{
		Model:       model,
		Messages:    []OpenAIMessage{{Role: "user", Content: promptText}},
		Temperature: 0.7,
	}

	resp, err := c.CallOpenAI(ctx, baseUrl, apiKey, reqBody)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
