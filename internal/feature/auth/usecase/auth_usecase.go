// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"social_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// refreshTokenBytes はリフレッシュトークンの乱数長（バイト）です。hex化で64文字になります。
	refreshTokenBytes = 32

	// refreshTokenTTL はリフレッシュセッションの有効期間です。
	refreshTokenTTL = 7 * 24 * time.Hour

	// maxSessionsPerUser は1ユーザーが同時に保持できるセッション数の上限です。
	maxSessionsPerUser = 5
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// LoginResult はログインまたはリフレッシュ成功時に発行されるトークンのペアです。
type LoginResult struct {
	AccessToken  string
	RefreshToken string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// newRefreshToken は暗号論的乱数から64文字のhexトークンを生成します。
func newRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// 新規アカウントは有効（IsActive）・未確認（IsVerifiedがfalse）の状態で作成されます。
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時にアクセストークンとリフレッシュトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*LoginResult, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, errors.New("invalid email or password")
	}

	// 無効化されたアカウントはログイン不可
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	session, err := u.createSession(ctx, user.ID, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{AccessToken: token, RefreshToken: session.ID}, nil
}

// Refresh はリフレッシュトークンを検証・ローテーションし、新しいトークンペアを返します。
func (u *authUsecase) Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*LoginResult, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if session.IsRevoked() {
		return nil, ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// ローテーション: 旧セッションを失効させてから新セッションを発行
	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}
	next, err := u.createSession(ctx, user.ID, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{AccessToken: token, RefreshToken: next.ID}, nil
}

// Logout は指定されたリフレッシュセッションを失効させます。
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrInvalidRefreshToken
		}
		return err
	}
	return nil
}

// createSession はセッション数の上限を保ちながら新しいリフレッシュセッションを永続化します。
func (u *authUsecase) createSession(ctx context.Context, userID uint, userAgent, ipAddress string) (*entity.Session, error) {
	count, err := u.sessions.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	if count >= maxSessionsPerUser {
		if err := u.sessions.DeleteOldestByUserID(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to evict oldest session: %w", err)
		}
	}

	id, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}
