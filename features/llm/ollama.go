package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ttombbab/vibeprompt/constants"
)

// Ollama generate endpoint path, relative to server base url.
const OLLAMA_GENERATE_PATH = "/api/generate"

// See https://github.com/ollama/ollama/blob/main/docs/api.md#generate-a-completion
type OllamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"` // always false, streaming is not supported
}

type OllamaGenerateResponse struct {
	Model    string  `json:"model,omitempty"`
	Response *string `json:"response"` // nil if the field is missing
	Done     bool    `json:"done,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// OllamaGenerate sends prompt to {baseUrl}/api/generate and returns the "response" field.
// All failures are *ApiError: transport error (Status 0), non-2xx status, undecodable body or missing "response".
func (c *Client) OllamaGenerate(ctx context.Context, baseUrl string, model string, prompt string) (string, error) {
	jsonData, err := json.Marshal(&OllamaGenerateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	// Handle trailing slash consistency
	url := strings.TrimRight(baseUrl, "/") + OLLAMA_GENERATE_PATH

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", constants.MIME_JSON)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &ApiError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ApiError{Status: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ApiError{
			Status:  resp.StatusCode,
			Body:    string(bodyBytes),
			Message: fmt.Sprintf("Ollama API returned status %d", resp.StatusCode),
		}
	}

	var apiResp OllamaGenerateResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return "", &ApiError{Status: resp.StatusCode, Body: string(bodyBytes),
			Message: "failed to decode response", Err: err}
	}
	if apiResp.Response == nil {
		msg := `no "response" field in response`
		if apiResp.Error != "" {
			msg += ": " + apiResp.Error
		}
		return "", &ApiError{Status: resp.StatusCode, Body: string(bodyBytes), Message: msg}
	}
	return *apiResp.Response, nil
}
