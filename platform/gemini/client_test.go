package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc_relay_backend/config"
	"doc_relay_backend/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{
		GeminiAPIKey:    "secret-key-1234",
		GeminiBaseURL:   srv.URL + "/v1beta/",
		GeminiModel:     "test-model",
		UpstreamTimeout: timeout,
	})
}

func TestGenerateContentSuccess(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotBody models.GenerateContentRequest

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`)
	}, time.Second)

	resp, err := c.GenerateContent(context.Background(), models.SingleContent(models.TextPart("hi")))
	require.NoError(t, err)

	assert.Equal(t, "hello", resp.Text())
	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "secret-key-1234", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "hi", gotBody.Contents[0].Parts[0].Text)
}

func TestResponseTextMissingPath(t *testing.T) {
	for _, raw := range []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"content":{}}]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`{"candidates":[{"content":{"parts":[{"inlineData":{}}]}}]}`,
	} {
		r := &Response{raw: []byte(raw)}
		assert.Empty(t, r.Text(), raw)
	}
	assert.Empty(t, (*Response)(nil).Text())
}

func TestGenerateContentUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
	}, time.Second)

	_, err := c.GenerateContent(context.Background(), models.SingleContent(models.TextPart("hi")))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, "quota exceeded", apiErr.Message)
}

func TestGenerateContentUpstreamErrorWithoutMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `<html>bad gateway</html>`)
	}, time.Second)

	_, err := c.GenerateContent(context.Background(), models.SingleContent(models.TextPart("hi")))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, unknownAPIError, apiErr.Message)
}

func TestGenerateContentInvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}, time.Second)

	_, err := c.GenerateContent(context.Background(), models.SingleContent(models.TextPart("hi")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestGenerateContentTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	start := time.Now()
	_, err := c.GenerateContent(context.Background(), models.SingleContent(models.TextPart("hi")))

	require.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestGenerateContentTransportErrorHidesKey(t *testing.T) {
	c := NewClient(&config.Config{
		GeminiAPIKey:  "secret-key-1234",
		GeminiBaseURL: "http://127.0.0.1:1",
		GeminiModel:   "test-model",
	})

	_, err := c.GenerateContent(context.Background(), models.SingleContent(models.TextPart("hi")))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key-1234")
	assert.NotErrorIs(t, err, ErrTimeout)
}
