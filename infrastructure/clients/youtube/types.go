package youtube

import (
	"strconv"
	"time"

	"video-gateway/domain/model"
)

// searchListResponse mirrors the upstream search.list shape; only ids are
// consumed, details come from a follow-up videos.list.
type searchListResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

func (r *searchListResponse) videoIDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids
}

type thumbnailResource struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// videoListResponse mirrors the upstream videos.list shape.
type videoListResponse struct {
	Items []videoResource `json:"items"`
}

type videoResource struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		PublishedAt  time.Time `json:"publishedAt"`
		ChannelID    string    `json:"channelId"`
		ChannelTitle string    `json:"channelTitle"`
		CategoryID   string    `json:"categoryId"`
		Tags         []string  `json:"tags"`
		Thumbnails   struct {
			Default thumbnailResource `json:"default"`
			Medium  thumbnailResource `json:"medium"`
			High    thumbnailResource `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	// Counts arrive as decimal strings
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

func (v *videoResource) toModel() model.Video {
	out := model.Video{
		ID:           v.ID,
		Title:        v.Snippet.Title,
		Description:  v.Snippet.Description,
		PublishedAt:  v.Snippet.PublishedAt,
		ChannelID:    v.Snippet.ChannelID,
		ChannelName:  v.Snippet.ChannelTitle,
		Duration:     v.ContentDetails.Duration,
		Tags:         v.Snippet.Tags,
		Category:     v.Snippet.CategoryID,
		ViewCount:    parseCount(v.Statistics.ViewCount),
		LikeCount:    parseCount(v.Statistics.LikeCount),
		CommentCount: parseCount(v.Statistics.CommentCount),
	}
	out.Thumbnails.Default = model.Thumbnail(v.Snippet.Thumbnails.Default)
	out.Thumbnails.Medium = model.Thumbnail(v.Snippet.Thumbnails.Medium)
	out.Thumbnails.High = model.Thumbnail(v.Snippet.Thumbnails.High)
	return out
}

func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
