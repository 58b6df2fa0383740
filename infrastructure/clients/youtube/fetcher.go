package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"video-gateway/domain/model"
	"video-gateway/infrastructure/logger"
)

// SearchVideoIDs runs a keyword search and returns the candidate video ids
// in upstream order.
func (c *Client) SearchVideoIDs(ctx context.Context, q string, maxResults int64) ([]string, error) {
	if maxResults <= 0 {
		maxResults = 25
	}
	if maxResults > 50 {
		maxResults = 50
	}
	params := encodeParams(searchParams{Part: "id", Q: q, Type: "video", MaxResults: maxResults})
	body, err := c.Dispatch(ctx, "search", params)
	if err != nil {
		return nil, err
	}
	var resp searchListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return resp.videoIDs(), nil
}

// FetchDetails resolves full details for ids, chunked at the upstream
// ids-per-request limit. Best-effort aggregation: a failed chunk is logged
// and skipped, so its ids are simply absent from the result. Surviving
// chunks keep their input order.
func (c *Client) FetchDetails(ctx context.Context, ids []string) ([]model.Video, error) {
	if len(ids) == 0 {
		return []model.Video{}, nil
	}
	out := make([]model.Video, 0, len(ids))
	for start := 0; start < len(ids); start += maxIDsPerRequest {
		end := start + maxIDsPerRequest
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]
		params := encodeParams(videosParams{
			Part: "snippet,statistics,contentDetails",
			ID:   strings.Join(chunk, ","),
		})
		body, err := c.Dispatch(ctx, "videos", params)
		if err != nil {
			logger.GetLogger().WithField("error", err).WithField("chunkSize", len(chunk)).
				Warn("detail chunk failed, skipping")
			continue
		}
		var resp videoListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			logger.GetLogger().WithField("error", err).Warn("detail chunk undecodable, skipping")
			continue
		}
		for i := range resp.Items {
			out = append(out, resp.Items[i].toModel())
		}
	}
	return out, nil
}

// MostPopular returns the trending chart for a region.
func (c *Client) MostPopular(ctx context.Context, region string, maxResults int64) ([]model.Video, error) {
	if maxResults <= 0 {
		maxResults = 25
	}
	params := encodeParams(videosParams{
		Part:       "snippet,statistics,contentDetails",
		Chart:      "mostPopular",
		RegionCode: region,
		MaxResults: maxResults,
	})
	body, err := c.Dispatch(ctx, "videos", params)
	if err != nil {
		return nil, err
	}
	var resp videoListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode videos response: %w", err)
	}
	videos := make([]model.Video, 0, len(resp.Items))
	for i := range resp.Items {
		videos = append(videos, resp.Items[i].toModel())
	}
	return videos, nil
}
