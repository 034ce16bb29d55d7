// Package dto はpostsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"strconv"
	"time"

	"social_backend/internal/feature/posts/domain/entity"
)

// PostResponse is the wire form of a single post record.
type PostResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Caption   string    `json:"caption"`
	URL       string    `json:"url"`
	FileType  string    `json:"file_type"`
	FileName  string    `json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
}

// PostFeedItem is a post annotated with feed metadata.
type PostFeedItem struct {
	PostResponse
	IsOwner bool   `json:"is_owner"`
	Email   string `json:"email"`
}

// FeedResponse is the body of GET /feed.
type FeedResponse struct {
	Posts []PostFeedItem `json:"posts"`
}

// NewPostResponse converts a domain post to its wire form.
// IDは不透明な文字列として公開します。
func NewPostResponse(p *entity.Post) PostResponse {
	return PostResponse{
		ID:        p.ID.String(),
		UserID:    strconv.FormatUint(uint64(p.UserID), 10),
		Caption:   p.Caption,
		URL:       p.URL,
		FileType:  p.FileType,
		FileName:  p.FileName,
		CreatedAt: p.CreatedAt,
	}
}

// NewFeedResponse converts annotated feed posts to the wire form.
func NewFeedResponse(feed []entity.FeedPost) FeedResponse {
	items := make([]PostFeedItem, 0, len(feed))
	for i := range feed {
		items = append(items, PostFeedItem{
			PostResponse: NewPostResponse(&feed[i].Post),
			IsOwner:      feed[i].IsOwner,
			Email:        feed[i].Email,
		})
	}
	return FeedResponse{Posts: items}
}
