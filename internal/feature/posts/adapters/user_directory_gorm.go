package adapters

import (
	"context"

	"gorm.io/gorm"

	authentity "social_backend/internal/feature/auth/domain/entity"
	"social_backend/internal/feature/posts/usecase"
)

// userDirectoryGorm はUserDirectoryインターフェースのGORM実装です。
// authフィーチャーが所有するusersテーブルを読み取り専用で参照します。
type userDirectoryGorm struct {
	db *gorm.DB
}

var _ usecase.UserDirectory = (*userDirectoryGorm)(nil)

// NewUserDirectoryGorm はuserDirectoryGormの新しいインスタンスを生成します。
func NewUserDirectoryGorm(db *gorm.DB) *userDirectoryGorm {
	return &userDirectoryGorm{db: db}
}

// EmailsByID は全ユーザーのID->メールアドレスのマッピングを返します。
// 全件ロードは想定スケールが小さいため許容しています。
func (r *userDirectoryGorm) EmailsByID(ctx context.Context) (map[uint]string, error) {
	var users []authentity.User
	if err := r.db.WithContext(ctx).Select("id", "email").Find(&users).Error; err != nil {
		return nil, err
	}

	emails := make(map[uint]string, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
	}
	return emails, nil
}
