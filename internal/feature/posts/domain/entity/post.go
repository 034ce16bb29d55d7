// Package entity はpostsフィーチャーのドメインエンティティを定義します。
package entity

import (
	"time"

	"github.com/google/uuid"
)

// メディア種別。FileTypeは必ずこの2値のいずれかになります。
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

// Post represents one uploaded media item.
// Ownership never changes after creation; posts are removed only by an
// explicit delete from their owner.
type Post struct {
	// ID is the globally unique identifier, assigned at creation.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// UserID references the owning user. Set once, never reassigned.
	UserID uint `gorm:"index;not null"`

	// Caption is optional free text supplied by the uploader.
	Caption string `gorm:"size:2048"`

	// URL is the media location at the media store. Immutable once set.
	URL string `gorm:"size:2048;not null"`

	// FileType is either FileTypeImage or FileTypeVideo, derived from the
	// declared content type at upload time.
	FileType string `gorm:"size:16;not null"`

	// FileName is the name assigned by the media store. It may differ from
	// the client-supplied name because the store enforces uniqueness.
	FileName string `gorm:"size:512;not null"`

	// CreatedAt is the server-assigned creation timestamp and the sole
	// ordering key for feeds.
	CreatedAt time.Time `gorm:"index;not null"`
}

// FeedPost is a Post annotated for feed delivery: the owner's email and
// whether the requesting caller owns it.
type FeedPost struct {
	Post
	Email   string
	IsOwner bool
}
