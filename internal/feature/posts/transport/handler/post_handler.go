// Package handler はpostsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/posts/domain/entity"
	"social_backend/internal/feature/posts/transport/http/dto"
	"social_backend/internal/feature/posts/usecase"
	jwtmw "social_backend/internal/platform/jwt"
)

// PostUsecase は投稿操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PostUsecase interface {
	// CreatePost uploads the file to the media store and persists the post.
	CreatePost(ctx context.Context, userID uint, file io.ReadCloser, fileName, contentType, caption string) (*entity.Post, error)
	// Feed returns every post newest first, annotated for the caller.
	Feed(ctx context.Context, callerID uint) ([]entity.FeedPost, error)
	// DeletePost removes the identified post after an ownership check.
	DeletePost(ctx context.Context, callerID uint, rawID string) error
}

// PostHandler は投稿操作のHTTPリクエストを処理します。
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler はPostHandlerの新しいインスタンスを生成します。
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// Upload はメディアアップロードAPIエンドポイントを処理します。
//
// エンドポイント: POST /upload
// Content-Type: multipart/form-data
// フィールド: file（必須）、caption（任意）
func (h *PostHandler) Upload(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		slog.Warn("upload file missing", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to read file"})
		return
	}
	// ストリームのクローズはusecaseが全終了経路で保証する

	post, err := h.posts.CreatePost(
		c.Request.Context(),
		userID,
		f,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		c.PostForm("caption"),
	)
	if err != nil {
		if errors.Is(err, usecase.ErrMediaUpload) {
			slog.Error("media store upload failed", "error", err, "user_id", userID)
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("post creation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("post created", "post_id", post.ID, "user_id", userID, "file_type", post.FileType)
	c.JSON(http.StatusCreated, dto.NewPostResponse(post))
}

// Feed はフィード取得APIエンドポイントを処理します。
//
// エンドポイント: GET /feed
func (h *PostHandler) Feed(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	feed, err := h.posts.Feed(c.Request.Context(), userID)
	if err != nil {
		slog.Error("feed assembly failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewFeedResponse(feed))
}

// Delete は投稿削除APIエンドポイントを処理します。
//
// エンドポイント: DELETE /posts/:post_id
// - 投稿が存在しない（またはIDが不正な形式）場合は404
// - 呼び出し元が所有者でない場合は403
// - それ以外の失敗は500
func (h *PostHandler) Delete(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	postID := c.Param("post_id")

	if err := h.posts.DeletePost(c.Request.Context(), userID, postID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "post not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			slog.Warn("delete rejected: not owner", "post_id", postID, "user_id", userID)
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "not authorized to delete this post"})
		default:
			slog.Error("post deletion failed", "error", err, "post_id", postID)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}

	slog.Info("post deleted", "post_id", postID, "user_id", userID)
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true, Message: "post deleted"})
}
