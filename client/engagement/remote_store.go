package engagement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"video-gateway/domain/model"
)

// kindEndpoint maps each engagement kind onto its gateway route, the query
// parameter carrying the target, and the boolean field of the status reply.
type kindEndpoint struct {
	path        string
	targetParam string
	statusField string
}

var kindEndpoints = map[model.EngagementKind]kindEndpoint{
	model.KindLike:       {path: "/api/likes", targetParam: "videoId", statusField: "isLiked"},
	model.KindWatchLater: {path: "/api/watch-later", targetParam: "videoId", statusField: "isInWatchLater"},
	model.KindSave:       {path: "/api/saved-videos", targetParam: "videoId", statusField: "isInSavedVideos"},
	model.KindSubscribe:  {path: "/api/subscriptions", targetParam: "channelId", statusField: "isSubscribed"},
}

// RemoteStore implements Store against the gateway's HTTP surface. The
// gateway already treats a duplicate add as success, so Add never needs to
// translate a conflict itself; 409 handling stays anyway for stores that do
// surface one.
type RemoteStore struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewRemoteStore(baseURL, token string, httpClient *http.Client) *RemoteStore {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &RemoteStore{baseURL: baseURL, token: token, httpClient: httpClient}
}

func (r *RemoteStore) Exists(ctx context.Context, targetID string, kind model.EngagementKind) (bool, error) {
	ep, ok := kindEndpoints[kind]
	if !ok {
		return false, fmt.Errorf("unknown engagement kind: %s", kind)
	}
	q := url.Values{}
	q.Set(ep.targetParam, targetID)
	body, err := r.do(ctx, http.MethodGet, ep.path+"?"+q.Encode(), nil)
	if err != nil {
		return false, err
	}
	var status map[string]bool
	if err := json.Unmarshal(body, &status); err != nil {
		return false, fmt.Errorf("decoding status response: %w", err)
	}
	return status[ep.statusField], nil
}

func (r *RemoteStore) Add(ctx context.Context, targetID string, kind model.EngagementKind) error {
	return r.mutate(ctx, targetID, kind, "add")
}

func (r *RemoteStore) Remove(ctx context.Context, targetID string, kind model.EngagementKind) error {
	return r.mutate(ctx, targetID, kind, "remove")
}

func (r *RemoteStore) mutate(ctx context.Context, targetID string, kind model.EngagementKind, action string) error {
	ep, ok := kindEndpoints[kind]
	if !ok {
		return fmt.Errorf("unknown engagement kind: %s", kind)
	}
	payload := map[string]string{ep.targetParam: targetID, "action": action}
	_, err := r.do(ctx, http.MethodPost, ep.path, payload)
	return err
}

func (r *RemoteStore) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+r.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	switch {
	case res.StatusCode == http.StatusConflict:
		return nil, model.ErrDuplicate
	case res.StatusCode == http.StatusUnauthorized:
		return nil, model.ErrNotAuthenticated
	case res.StatusCode < 200 || res.StatusCode > 299:
		var errRes struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &errRes)
		if errRes.Error == "" {
			errRes.Error = "request failed"
		}
		return nil, fmt.Errorf("gateway responded %d: %s", res.StatusCode, errRes.Error)
	}
	return raw, nil
}
