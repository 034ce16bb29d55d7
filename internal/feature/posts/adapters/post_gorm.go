// Package adapters はpostsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"social_backend/internal/feature/posts/domain/entity"
	"social_backend/internal/feature/posts/usecase"
)

// postGorm はPostRepositoryインターフェースのGORM実装です。
type postGorm struct {
	db *gorm.DB
}

// postGormがPostRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostGorm は指定されたgorm.DB接続でpostGormの新しいインスタンスを生成します。
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// Create は投稿をデータベースに追加します。
func (r *postGorm) Create(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindAllNewestFirst はすべての投稿を作成日時の降順で取得します。
// 同時刻の投稿間の順序はストア側の安定順に従います（非決定的）。
func (r *postGorm) FindAllNewestFirst(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByID はIDで投稿を取得します。
// 投稿が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postGorm) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var post entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Delete はIDで投稿を削除します。
// 対象が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postGorm) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}
