package dto

// EngagementActionRequest mutates one engagement fact. Exactly one of
// VideoID/ChannelID is set depending on the endpoint.
type EngagementActionRequest struct {
	VideoID   string `json:"videoId,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
	Action    string `json:"action" binding:"required"` // add, remove
}

// HistoryAppendRequest appends one video to the caller's watch history.
type HistoryAppendRequest struct {
	VideoID string `json:"videoId" binding:"required"`
}
