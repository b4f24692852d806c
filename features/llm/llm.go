package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const (
	OPENAI_COMPATIBLE_MODEL_PREFIX = "openai/" // Customary OpenAI API compatible model prefix
)

// error returned by text generation service
type ApiError struct {
	Message string
	Body    string
	Status  int   // http status code, 0 if no response was received
	Err     error // wrapped error
}

func (a *ApiError) Error() string {
	msg := fmt.Sprintf("status=%d: %s", a.Status, a.Message)
	if a.Err != nil {
		msg += ": " + a.Err.Error()
	}
	return msg
}

func (a *ApiError) Temporary() bool {
	return a.Status == 0 || a.Status == http.StatusTooManyRequests ||
		a.Status == http.StatusInternalServerError ||
		a.Status == http.StatusBadGateway ||
		a.Status == http.StatusServiceUnavailable ||
		a.Status == http.StatusGatewayTimeout
}

func (a *ApiError) Unwrap() error {
	return a.Err
}

// Client sends one prompt to a text generation service and returns the generated text.
// The zero value is ready to use.
type Client struct {
	// Defaults to http.DefaultClient.
	HttpClient *http.Client
	// Only used by OpenAI API compatible models.
	ApiKey string
}

func (c *Client) httpClient() *http.Client {
	if c == nil || c.HttpClient == nil {
		return http.DefaultClient
	}
	return c.HttpClient
}

// Generate dispatches to the Ollama or OpenAI compatible backend according to model.
// "openai/<model-name>/<api-url>" models ignore baseUrl; any other model is an Ollama model served by baseUrl.
func (c *Client) Generate(ctx context.Context, baseUrl string, model string, prompt string) (string, error) {
	if strings.HasPrefix(model, OPENAI_COMPATIBLE_MODEL_PREFIX) { // "openai/model-name/http://localhost:8080/v1"
		parts := strings.SplitN(model, "/", 3)
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return "", fmt.Errorf("invalid openai model %s", model)
		}
		apiKey := ""
		if c != nil {
			apiKey = c.ApiKey
		}
		return c.OpenAIChat(ctx, parts[2], apiKey, parts[1], prompt)
	}
	return c.OllamaGenerate(ctx, baseUrl, model, prompt)
}
