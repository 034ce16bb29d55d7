// Package router はアプリケーションのHTTPルートを構成します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "social_backend/internal/feature/auth/transport/handler"
	posthandler "social_backend/internal/feature/posts/transport/handler"
	"social_backend/internal/platform/http/handler"
	jwtmw "social_backend/internal/platform/jwt"
)

// NewRouter はメインAPIサーバーのルーティングを構成したgin.Engineを返します。
func NewRouter(auth *authhandler.AuthHandler, posts *posthandler.PostHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT + リフレッシュトークン発行）
	r.POST("/login", auth.Login)
	// リフレッシュトークンのローテーション
	r.POST("/refresh", auth.Refresh)
	// リフレッシュセッションの失効
	r.POST("/logout", auth.Logout)

	// 認証必須のルート
	authorized := r.Group("/")
	// リクエストヘッダーにBearer JWTが必要になる
	authorized.Use(jwtmw.AuthRequired())
	{
		authorized.POST("/upload", posts.Upload)
		authorized.GET("/feed", posts.Feed)
		authorized.DELETE("/posts/:post_id", posts.Delete)
	}

	return r
}
