// Package usecase はpostsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"social_backend/internal/feature/posts/domain/entity"
)

// unknownEmail は投稿の所有者が見つからない場合のフィード用フォールバック値です。
const unknownEmail = "Unknown"

// PostRepository abstracts the persistence layer for post entities.
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PostRepository interface {
	// Create persists a new post to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// FindAllNewestFirst returns every post ordered by creation time descending.
	FindAllNewestFirst(ctx context.Context) ([]entity.Post, error)

	// FindByID retrieves a post by its ID.
	// It returns ErrPostNotFound if no such post exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// Delete removes the post with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserDirectory resolves user identities for feed annotation.
// The auth feature owns the users table; the posts feature only reads emails from it.
type UserDirectory interface {
	// EmailsByID returns a userID -> email mapping covering all known users.
	EmailsByID(ctx context.Context) (map[uint]string, error)
}

// MediaUpload is the media store's answer to a successful upload.
type MediaUpload struct {
	// URL is the public location of the stored file.
	URL string
	// FileName is the name the store assigned, which may differ from the
	// suggested one because the store enforces uniqueness.
	FileName string
}

// MediaStore abstracts the third-party media host.
// 実装はinternal/platform/externalapi/imagekitにあります。
type MediaStore interface {
	// Upload stores the file under a uniqueness-guaranteed name and returns
	// its public URL and stored name. Any non-success answer from the host
	// surfaces as an error.
	Upload(ctx context.Context, file io.Reader, fileName string) (*MediaUpload, error)
}

// postUsecase は投稿のアップロード・フィード・削除のビジネスロジックを提供します。
type postUsecase struct {
	posts PostRepository
	users UserDirectory
	media MediaStore
}

// NewPostUsecase はpostUsecaseの新しいインスタンスを生成します。
func NewPostUsecase(posts PostRepository, users UserDirectory, media MediaStore) *postUsecase {
	return &postUsecase{posts: posts, users: users, media: media}
}

// CreatePost stages the incoming stream to a temporary file, hands it to the
// media store and, only after a confirmed upload, persists the post row.
//
// 一時ファイルの削除とアップロードストリームのクローズは、エラーパスを含む
// すべての終了経路で保証されます（defer）。
//
// If the database insert fails after a successful upload, the remote file is
// left behind: there is no compensating delete at the media store.
func (u *postUsecase) CreatePost(ctx context.Context, userID uint, file io.ReadCloser, fileName, contentType, caption string) (*entity.Post, error) {
	defer func() {
		_ = file.Close()
	}()

	// 元のファイル拡張子を保ったまま一時ファイルへステージング
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(fileName))
	if err != nil {
		return nil, fmt.Errorf("%w: staging: %v", ErrMediaUpload, err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, file); err != nil {
		return nil, fmt.Errorf("%w: staging: %v", ErrMediaUpload, err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: staging: %v", ErrMediaUpload, err)
	}

	uploaded, err := u.media.Upload(ctx, tmp, fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaUpload, err)
	}

	// content typeがvideo/で始まるときのみvideo、それ以外はすべてimage
	fileType := entity.FileTypeImage
	if strings.HasPrefix(contentType, "video/") {
		fileType = entity.FileTypeVideo
	}

	post := &entity.Post{
		ID:       uuid.New(),
		UserID:   userID,
		Caption:  caption,
		URL:      uploaded.URL,
		FileType: fileType,
		FileName: uploaded.FileName,
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to persist post: %w", err)
	}
	return post, nil
}

// Feed returns every post newest first, each annotated with the owner's email
// and whether the caller owns it. No pagination is applied.
func (u *postUsecase) Feed(ctx context.Context, callerID uint) ([]entity.FeedPost, error) {
	posts, err := u.posts.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	emails, err := u.users.EmailsByID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	feed := make([]entity.FeedPost, 0, len(posts))
	for _, p := range posts {
		// 所有者不在はフィード全体を失敗させず、センチネル値で埋める
		email, ok := emails[p.UserID]
		if !ok {
			email = unknownEmail
		}
		feed = append(feed, entity.FeedPost{
			Post:    p,
			Email:   email,
			IsOwner: p.UserID == callerID,
		})
	}
	return feed, nil
}

// DeletePost removes the identified post after an ownership check.
// 不正な形式のIDは存在しないIDと同一に扱います（ErrPostNotFound）。
func (u *postUsecase) DeletePost(ctx context.Context, callerID uint, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ErrPostNotFound
	}

	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return ErrNotOwner
	}

	// メディアストア側の孤児ファイルは削除しない（補償処理なし）
	return u.posts.Delete(ctx, id)
}
