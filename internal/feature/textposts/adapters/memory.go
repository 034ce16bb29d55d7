// Package adapters はtextpostsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"sync"

	"social_backend/internal/feature/textposts/domain/entity"
	"social_backend/internal/feature/textposts/usecase"
)

// textPostMemory はTextPostRepositoryのインメモリ実装です。
// 並行リクエストに備えてRWMutexでマップを保護します。
type textPostMemory struct {
	mu     sync.RWMutex
	posts  map[int]entity.TextPost
	nextID int
}

// textPostMemoryがTextPostRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TextPostRepository = (*textPostMemory)(nil)

// NewTextPostMemory は指定された初期データでtextPostMemoryの新しいインスタンスを生成します。
func NewTextPostMemory(seed []entity.TextPost) *textPostMemory {
	posts := make(map[int]entity.TextPost, len(seed))
	nextID := 1
	for _, p := range seed {
		posts[p.ID] = p
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}
	return &textPostMemory{posts: posts, nextID: nextID}
}

// Get はIDでテキスト投稿を取得します。
// 存在しない場合、usecase.ErrTextPostNotFoundを返します。
func (r *textPostMemory) Get(_ context.Context, id int) (*entity.TextPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, usecase.ErrTextPostNotFound
	}
	return &post, nil
}

// List はコレクション全体のコピーを返します。
func (r *textPostMemory) List(_ context.Context) (map[int]entity.TextPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make(map[int]entity.TextPost, len(r.posts))
	for id, p := range r.posts {
		posts[id] = p
	}
	return posts, nil
}

// Create は次の空きIDを割り当てて投稿を追加します。
func (r *textPostMemory) Create(_ context.Context, post *entity.TextPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = r.nextID
	r.nextID++
	r.posts[post.ID] = *post
	return nil
}
