package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"doc_relay_backend/config"
	"doc_relay_backend/models"
	"doc_relay_backend/pkg/logging"
)

const (
	textPath         = "candidates.0.content.parts.0.text"
	errorMessagePath = "error.message"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	timeout    time.Duration
}

func NewClient(cfg *config.Config) *Client {
	logging.Logger.Info("gemini client ready",
		"baseURL", cfg.GeminiBaseURL,
		"model", cfg.GeminiModel,
		"apiKey", logging.MaskAPIKey(cfg.GeminiAPIKey),
		"timeout", cfg.UpstreamTimeout,
	)
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.GeminiBaseURL, "/"),
		model:      cfg.GeminiModel,
		apiKey:     cfg.GeminiAPIKey,
		timeout:    cfg.UpstreamTimeout,
	}
}

// Response is a successful generateContent answer.
type Response struct {
	raw []byte
}

func NewResponse(raw []byte) *Response {
	return &Response{raw: raw}
}

// Text follows candidates[0].content.parts[0].text; empty when any link is missing.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return gjson.GetBytes(r.raw, textPath).String()
}

// GenerateContent sends one request upstream. A non-2xx answer is returned as *APIError,
// an expired deadline as ErrTimeout.
func (c *Client) GenerateContent(ctx context.Context, payload *models.GenerateContentRequest) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logging.Logger.Debug("calling gemini api", "model", c.model, "bytes", len(jsonData))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isDeadline(ctx, err) {
			return nil, fmt.Errorf("%w (after %s)", ErrTimeout, c.timeout)
		}
		return nil, fmt.Errorf("failed to send request: %w", redactKey(err))
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logging.Logger.Warn("fail closing response body", "error", err)
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isDeadline(ctx, err) {
			return nil, fmt.Errorf("%w (after %s)", ErrTimeout, c.timeout)
		}
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := gjson.GetBytes(body, errorMessagePath).String()
		if msg == "" {
			msg = unknownAPIError
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to decode response: invalid JSON")
	}
	return &Response{raw: body}, nil
}

// CloseIdleConnections releases pooled upstream connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

func isDeadline(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}

// redactKey drops the request URL, which carries the key, from transport errors.
func redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
