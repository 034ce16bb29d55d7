// Package usecase はtextpostsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"social_backend/internal/feature/textposts/domain/entity"
)

// ErrTextPostNotFound is returned when no text post exists for the given ID.
var ErrTextPostNotFound = errors.New("post not found")

// TextPostRepository abstracts the storage for text posts so the in-memory
// demo store and any persistent implementation share one contract.
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TextPostRepository interface {
	// Get retrieves a text post by its ID.
	// It returns ErrTextPostNotFound if no such post exists.
	Get(ctx context.Context, id int) (*entity.TextPost, error)

	// List returns the whole collection keyed by ID.
	List(ctx context.Context) (map[int]entity.TextPost, error)

	// Create adds a post to the collection, assigning the next free ID.
	Create(ctx context.Context, post *entity.TextPost) error
}

// textPostUsecase はテキスト投稿の参照ロジックを提供します。
type textPostUsecase struct {
	posts TextPostRepository
}

// NewTextPostUsecase はtextPostUsecaseの新しいインスタンスを生成します。
func NewTextPostUsecase(posts TextPostRepository) *textPostUsecase {
	return &textPostUsecase{posts: posts}
}

// Get はIDでテキスト投稿を1件取得します。
func (u *textPostUsecase) Get(ctx context.Context, id int) (*entity.TextPost, error) {
	return u.posts.Get(ctx, id)
}

// List はコレクション全体をID付きマップとして返します。
func (u *textPostUsecase) List(ctx context.Context) (map[int]entity.TextPost, error) {
	return u.posts.List(ctx)
}
