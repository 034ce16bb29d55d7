// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/auth/transport/http/dto"
	"social_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定されたメールアドレスとパスワードで新規ユーザーを登録します。
	Signup(ctx context.Context, email, password string) error
	// Login はユーザーを認証し、成功時にトークンペアを返します。
	Login(ctx context.Context, email, password, userAgent, ipAddress string) (*usecase.LoginResult, error)
	// Refresh はリフレッシュトークンをローテーションし、新しいトークンペアを返します。
	Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*usecase.LoginResult, error)
	// Logout は指定されたリフレッシュセッションを失効させます。
	Logout(ctx context.Context, refreshToken string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は409を返却
// - その他の作成失敗（ストレージ障害等）は500を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "signup failed"})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "ok"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はアクセストークンとリフレッシュトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: result.AccessToken, RefreshToken: result.RefreshToken})
}

// Refresh はトークン再発行APIエンドポイントを処理します。
// 失効・期限切れ・未知のリフレッシュトークンはすべて401を返却します。
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("refresh validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	result, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRefreshToken) ||
			errors.Is(err, usecase.ErrSessionRevoked) ||
			errors.Is(err, usecase.ErrSessionExpired) ||
			errors.Is(err, usecase.ErrUserInactive) {
			slog.Warn("refresh rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid refresh token"})
			return
		}
		slog.Error("refresh failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "refresh failed"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: result.AccessToken, RefreshToken: result.RefreshToken})
}

// Logout はログアウトAPIエンドポイントを処理します。
// リフレッシュセッションを失効させます。未知のトークンでも200を返します。
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("logout validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		if !errors.Is(err, usecase.ErrInvalidRefreshToken) {
			slog.Error("logout failed", "error", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "logout failed"})
			return
		}
		// 未知のトークンはセッション終了済みとして扱う
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
}
