// Package handler はtextpostsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/textposts/domain/entity"
)

// TextPostUsecase はテキスト投稿参照のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TextPostUsecase interface {
	Get(ctx context.Context, id int) (*entity.TextPost, error)
	List(ctx context.Context) (map[int]entity.TextPost, error)
}

// TextPostHandler はデモモードのHTTPリクエストを処理します。認証は不要です。
type TextPostHandler struct {
	posts TextPostUsecase
}

// NewTextPostHandler はTextPostHandlerの新しいインスタンスを生成します。
func NewTextPostHandler(posts TextPostUsecase) *TextPostHandler {
	return &TextPostHandler{posts: posts}
}

// List はコレクション全体をID付きマップとして返します。
//
// エンドポイント: GET /posts
func (h *TextPostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list text posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get はIDで投稿を1件返します。
// 不正な形式のIDは存在しないIDと同一に扱います。
//
// エンドポイント: GET /posts/:id
func (h *TextPostHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}
