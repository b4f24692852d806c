package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOllamaServer(t *testing.T, handler func(w http.ResponseWriter, req *OllamaGenerateRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req OllamaGenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		handler(w, &req)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOllamaGenerateSuccess(t *testing.T) {
	var got *OllamaGenerateRequest
	srv := newOllamaServer(t, func(w http.ResponseWriter, req *OllamaGenerateRequest) {
		got = req
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"m","response":"a glowing tower in the snow","done":true}`))
	})

	client := &Client{HttpClient: srv.Client()}
	text, err := client.Generate(context.Background(), srv.URL+"/", "tomchat-1dllama", "hello")
	require.NoError(t, err)
	assert.Equal(t, "a glowing tower in the snow", text)
	require.NotNil(t, got)
	assert.Equal(t, "tomchat-1dllama", got.Model)
	assert.Equal(t, "hello", got.Prompt)
	assert.False(t, got.Stream)
}

func TestOllamaGenerateRequestBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, map[string]any{"model": "m", "prompt": "p", "stream": false}, raw)
		w.Write([]byte(`{"response":""}`))
	}))
	defer srv.Close()

	text, err := (&Client{}).OllamaGenerate(context.Background(), srv.URL, "m", "p")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestOllamaGenerateFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "model crashed"},
		{"not found", http.StatusNotFound, `{"error":"model not found"}`},
		{"not json", http.StatusOK, "<html>hi</html>"},
		{"missing response", http.StatusOK, `{"done":true}`},
		{"wrong type", http.StatusOK, `{"response":42}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := newOllamaServer(t, func(w http.ResponseWriter, req *OllamaGenerateRequest) {
				w.WriteHeader(c.status)
				w.Write([]byte(c.body))
			})
			text, err := (&Client{}).Generate(context.Background(), srv.URL, "m", "p")
			require.Error(t, err)
			assert.Empty(t, text)
			var apiErr *ApiError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, c.status, apiErr.Status)
			assert.Equal(t, c.body, apiErr.Body)
		})
	}
}

func TestOllamaGenerateStatusInError(t *testing.T) {
	srv := newOllamaServer(t, func(w http.ResponseWriter, req *OllamaGenerateRequest) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := (&Client{}).Generate(context.Background(), srv.URL, "m", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Temporary())
}

func TestOllamaGenerateTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := (&Client{}).Generate(context.Background(), url, "m", "p")
	require.Error(t, err)
	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.NotNil(t, apiErr.Unwrap())
}

func TestOpenAICompatibleModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var req OpenAIChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-oss", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "p", req.Messages[0].Content)
		w.Write([]byte(`{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":" done \n"}}]}`))
	}))
	defer srv.Close()

	client := &Client{ApiKey: "secret"}
	text, err := client.Generate(context.Background(), "http://ignored", "openai/gpt-oss/"+srv.URL+"/v1", "p")
	require.NoError(t, err)
	assert.Equal(t, "done", text)
}

func TestOpenAICompatibleModelErrors(t *testing.T) {
	_, err := (&Client{}).Generate(context.Background(), "", "openai/only-name", "p")
	assert.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()
	_, err = (&Client{}).Generate(context.Background(), "", "openai/m/"+srv.URL, "p")
	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "no choices")
}
