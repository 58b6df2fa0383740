package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"video-gateway/domain/model"
	"video-gateway/domain/repository"
	"video-gateway/infrastructure/logger"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// maxIDsPerRequest is the upstream limit on ids per videos.list call.
const maxIDsPerRequest = 50

// Config represents the upstream client configuration
type Config struct {
	// APIKeys is the ordered credential pool; at least one is required.
	APIKeys []string
	// BaseURL overrides the upstream endpoint (tests).
	BaseURL string
	// HTTPClient overrides the transport (tests).
	HTTPClient *http.Client
}

// Client is the quota-aware upstream API client. It holds no mutable state;
// every Dispatch walks the credential pool from the start.
type Client struct {
	httpClient *http.Client
	baseURL    string
	keys       []string
}

// NewClient creates the upstream client. Fails with model.ErrNoAPIKeys when
// the credential pool is empty.
func NewClient(config *Config) (repository.IYouTube, error) {
	if config == nil || len(config.APIKeys) == 0 {
		return nil, model.ErrNoAPIKeys
	}
	c := &Client{
		httpClient: config.HTTPClient,
		baseURL:    config.BaseURL,
		keys:       config.APIKeys,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	return c, nil
}

// Dispatch issues one logical request, rotating to the next credential when
// the current one reports quota exhaustion. Any non-quota failure, or the
// last credential's quota failure, is returned immediately.
func (c *Client) Dispatch(ctx context.Context, resource string, params url.Values) (json.RawMessage, error) {
	if len(c.keys) == 0 {
		return nil, model.ErrNoAPIKeys
	}
	for i, key := range c.keys {
		body, err := c.call(ctx, resource, params, key)
		if err == nil {
			return body, nil
		}
		if isQuotaError(err) {
			logger.GetLogger().WithField("keyIndex", i).Warn("API key quota exhausted, rotating to next key")
			if i < len(c.keys)-1 {
				continue
			}
			return nil, model.ErrQuotaExhausted
		}
		return nil, err
	}
	return nil, model.ErrQuotaExhausted
}

func (c *Client) call(ctx context.Context, resource string, params url.Values, key string) (json.RawMessage, error) {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("key", key)

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &model.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body),
		}
	}
	return body, nil
}

// upstreamMessage pulls the human-readable message and error reasons out of
// the upstream error envelope; falls back to the raw body.
func upstreamMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Errors  []struct {
				Reason string `json:"reason"`
			} `json:"errors"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
		return strings.TrimSpace(string(body))
	}
	msg := envelope.Error.Message
	for _, e := range envelope.Error.Errors {
		if e.Reason != "" {
			msg = fmt.Sprintf("%s (%s)", msg, e.Reason)
		}
	}
	return msg
}

// isQuotaError reports whether an upstream failure means "this credential is
// out of quota". 403 plus a quota-related token; anything else is a real
// error and must not trigger rotation.
func isQuotaError(err error) bool {
	var ue *model.UpstreamError
	if !errors.As(err, &ue) {
		return false
	}
	if ue.StatusCode != http.StatusForbidden {
		return false
	}
	msg := strings.ToLower(ue.Message)
	for _, token := range []string{"quota", "ratelimitexceeded", "dailylimitexceeded"} {
		if strings.Contains(msg, token) {
			return true
		}
	}
	return false
}
