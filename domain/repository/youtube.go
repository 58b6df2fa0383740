package repository

import (
	"context"
	"encoding/json"
	"net/url"

	"video-gateway/domain/model"
)

// IYouTube is the quota-aware upstream client. Dispatch issues one logical
// request, rotating across the configured credential pool; the typed helpers
// build on it for the two data shapes this gateway serves.
type IYouTube interface {
	// Dispatch calls an arbitrary upstream resource with the given query
	// parameters and returns the raw JSON body. Returns
	// model.ErrQuotaExhausted when every credential is out of quota and
	// *model.UpstreamError for any other non-2xx response.
	Dispatch(ctx context.Context, resource string, params url.Values) (json.RawMessage, error)

	// SearchVideoIDs runs a keyword search and returns candidate video ids
	// in upstream relevance order.
	SearchVideoIDs(ctx context.Context, query string, maxResults int64) ([]string, error)

	// FetchDetails resolves full details for the given ids, chunking at the
	// upstream's ids-per-request limit. Best effort: a failed chunk's ids
	// are absent from the result, never an overall error.
	FetchDetails(ctx context.Context, ids []string) ([]model.Video, error)

	// MostPopular returns the trending chart for a region.
	MostPopular(ctx context.Context, region string, maxResults int64) ([]model.Video, error)
}
