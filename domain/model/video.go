package model

import "time"

// Thumbnail represents a single thumbnail rendition
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Thumbnails groups the renditions the upstream API returns
type Thumbnails struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
	High    Thumbnail `json:"high"`
}

// Video represents a video with full detail metadata as returned by the
// upstream videos endpoint. Immutable once fetched within a request.
type Video struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	PublishedAt  time.Time  `json:"published_at"`
	ChannelID    string     `json:"channel_id"`
	ChannelName  string     `json:"channel_name"`
	ViewCount    int64      `json:"view_count"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	Duration     string     `json:"duration"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	Tags         []string   `json:"tags,omitempty"`
	Category     string     `json:"category,omitempty"`
}

// SearchCacheEntry is one row of the persistent query cache. The results
// payload is write-once; only LastAccessedAt mutates after insert.
type SearchCacheEntry struct {
	Query          string    `json:"query"`
	Results        []Video   `json:"results"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
}
