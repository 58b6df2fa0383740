package youtube

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// searchParams are the query parameters for the upstream search resource.
type searchParams struct {
	Part       string `url:"part"`
	Q          string `url:"q"`
	Type       string `url:"type"`
	MaxResults int64  `url:"maxResults,omitempty"`
}

// videosParams are the query parameters for the upstream videos resource,
// shared by detail lookups and the most-popular chart.
type videosParams struct {
	Part       string `url:"part"`
	ID         string `url:"id,omitempty"`
	Chart      string `url:"chart,omitempty"`
	RegionCode string `url:"regionCode,omitempty"`
	MaxResults int64  `url:"maxResults,omitempty"`
}

func encodeParams(v interface{}) url.Values {
	values, err := query.Values(v)
	if err != nil {
		return url.Values{}
	}
	return values
}
