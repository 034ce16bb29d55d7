package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"social_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// mockSessionRepository is an in-memory mock of the SessionRepository interface.
type mockSessionRepository struct {
	sessions map[string]*entity.Session

	CreateFunc func(ctx context.Context, session *entity.Session) error
	RevokeFunc func(ctx context.Context, id string) error
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: map[string]*entity.Session{}}
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *mockSessionRepository) Revoke(ctx context.Context, id string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, id)
	}
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

func (m *mockSessionRepository) RevokeAllByUserID(ctx context.Context, userID uint) error {
	now := time.Now()
	for _, s := range m.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (m *mockSessionRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	for _, s := range m.sessions {
		if s.UserID == userID && s.IsValid() {
			count++
		}
	}
	return count, nil
}

func (m *mockSessionRepository) DeleteOldestByUserID(ctx context.Context, userID uint) error {
	var oldest *entity.Session
	for _, s := range m.sessions {
		if s.UserID != userID {
			continue
		}
		if oldest == nil || s.CreatedAt.Before(oldest.CreatedAt) {
			oldest = s
		}
	}
	if oldest != nil {
		delete(m.sessions, oldest.ID)
	}
	return nil
}

// mockJWTGenerator is a mock implementation of the JWTGenerator interface.
type mockJWTGenerator struct {
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	return "mock-jwt-token", nil
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Run("successful signup", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if len(user.Password) == 0 || user.Password == "password123" {
					t.Errorf("password is not hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				// New accounts start active and unverified
				if !user.IsActive {
					t.Error("expected new account to be active")
				}
				if user.IsVerified || user.IsSuperuser {
					t.Error("expected new account to be unverified and non-admin")
				}
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, newMockSessionRepository(), &mockJWTGenerator{})
		err := uc.Signup(context.Background(), "test@example.com", "password123")

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("short password is rejected", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, newMockSessionRepository(), &mockJWTGenerator{})
		err := uc.Signup(context.Background(), "test@example.com", "short")

		if err == nil {
			t.Error("expected an error for a short password")
		}
	})

	t.Run("repository create failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return expectedErr
			},
		}

		uc := NewAuthUsecase(mockRepo, newMockSessionRepository(), &mockJWTGenerator{})
		err := uc.Signup(context.Background(), "test@example.com", "password123")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	// Hashed password for testing
	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       1,
		Email:    "test@example.com",
		Password: string(hashedPassword),
		IsActive: true,
	}

	findTestUser := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("successful login issues both tokens", func(t *testing.T) {
		sessions := newMockSessionRepository()
		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, sessions, &mockJWTGenerator{})

		result, err := uc.Login(context.Background(), testUser.Email, password, "test-agent", "127.0.0.1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.AccessToken != "mock-jwt-token" {
			t.Errorf("expected access token, got %q", result.AccessToken)
		}
		if len(result.RefreshToken) != 64 {
			t.Errorf("expected 64-char refresh token, got %d chars", len(result.RefreshToken))
		}
		session, err := sessions.FindByID(context.Background(), result.RefreshToken)
		if err != nil {
			t.Fatalf("expected a persisted session: %v", err)
		}
		if session.UserID != testUser.ID {
			t.Errorf("expected session for user %d, got %d", testUser.ID, session.UserID)
		}
		if session.UserAgent != "test-agent" || session.IPAddress != "127.0.0.1" {
			t.Errorf("expected session metadata to be recorded, got %q/%q", session.UserAgent, session.IPAddress)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, newMockSessionRepository(), &mockJWTGenerator{})

		_, err := uc.Login(context.Background(), testUser.Email, "wrong-password", "", "")

		if err == nil {
			t.Error("expected an error for a wrong password")
		}
	})

	t.Run("unknown user gets the same generic error", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, newMockSessionRepository(), &mockJWTGenerator{})

		_, err := uc.Login(context.Background(), "nobody@example.com", password, "", "")

		if err == nil || err.Error() != "invalid email or password" {
			t.Errorf("expected generic credential error, got: %v", err)
		}
	})

	t.Run("inactive account cannot log in", func(t *testing.T) {
		inactive := *testUser
		inactive.IsActive = false
		uc := NewAuthUsecase(&mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &inactive, nil
			},
		}, newMockSessionRepository(), &mockJWTGenerator{})

		_, err := uc.Login(context.Background(), testUser.Email, password, "", "")

		if !errors.Is(err, ErrUserInactive) {
			t.Errorf("expected ErrUserInactive, got: %v", err)
		}
	})

	t.Run("session cap evicts the oldest session", func(t *testing.T) {
		sessions := newMockSessionRepository()
		now := time.Now()
		for i := 0; i < maxSessionsPerUser; i++ {
			sessions.sessions[string(rune('a'+i))] = &entity.Session{
				ID:        string(rune('a' + i)),
				UserID:    testUser.ID,
				CreatedAt: now.Add(time.Duration(i) * time.Minute),
				ExpiresAt: now.Add(refreshTokenTTL),
			}
		}

		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, sessions, &mockJWTGenerator{})
		_, err := uc.Login(context.Background(), testUser.Email, password, "", "")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, exists := sessions.sessions["a"]; exists {
			t.Error("expected the oldest session to be evicted")
		}
		if len(sessions.sessions) != maxSessionsPerUser {
			t.Errorf("expected %d sessions after eviction, got %d", maxSessionsPerUser, len(sessions.sessions))
		}
	})
}

func TestAuthUsecase_Refresh(t *testing.T) {
	testUser := &entity.User{ID: 1, Email: "test@example.com", IsActive: true}
	users := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			if id == testUser.ID {
				return testUser, nil
			}
			return nil, ErrUserNotFound
		},
	}

	seedSession := func(sessions *mockSessionRepository, id string, expiresIn time.Duration) *entity.Session {
		now := time.Now()
		s := &entity.Session{
			ID:        id,
			UserID:    testUser.ID,
			CreatedAt: now,
			ExpiresAt: now.Add(expiresIn),
		}
		sessions.sessions[id] = s
		return s
	}

	t.Run("successful rotation revokes the old session", func(t *testing.T) {
		sessions := newMockSessionRepository()
		seedSession(sessions, "old-token", time.Hour)

		uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{})
		result, err := uc.Refresh(context.Background(), "old-token", "agent", "127.0.0.1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RefreshToken == "old-token" {
			t.Error("expected a rotated refresh token")
		}
		old, _ := sessions.FindByID(context.Background(), "old-token")
		if !old.IsRevoked() {
			t.Error("expected the old session to be revoked")
		}
		if _, err := sessions.FindByID(context.Background(), result.RefreshToken); err != nil {
			t.Errorf("expected the new session to be persisted: %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		uc := NewAuthUsecase(users, newMockSessionRepository(), &mockJWTGenerator{})

		_, err := uc.Refresh(context.Background(), "missing", "", "")

		if !errors.Is(err, ErrInvalidRefreshToken) {
			t.Errorf("expected ErrInvalidRefreshToken, got: %v", err)
		}
	})

	t.Run("revoked token", func(t *testing.T) {
		sessions := newMockSessionRepository()
		s := seedSession(sessions, "revoked-token", time.Hour)
		now := time.Now()
		s.RevokedAt = &now

		uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{})
		_, err := uc.Refresh(context.Background(), "revoked-token", "", "")

		if !errors.Is(err, ErrSessionRevoked) {
			t.Errorf("expected ErrSessionRevoked, got: %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		sessions := newMockSessionRepository()
		seedSession(sessions, "expired-token", -time.Hour)

		uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{})
		_, err := uc.Refresh(context.Background(), "expired-token", "", "")

		if !errors.Is(err, ErrSessionExpired) {
			t.Errorf("expected ErrSessionExpired, got: %v", err)
		}
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	t.Run("revokes the session", func(t *testing.T) {
		sessions := newMockSessionRepository()
		now := time.Now()
		sessions.sessions["token"] = &entity.Session{
			ID: "token", UserID: 1, CreatedAt: now, ExpiresAt: now.Add(time.Hour),
		}

		uc := NewAuthUsecase(&mockUserRepository{}, sessions, &mockJWTGenerator{})
		err := uc.Logout(context.Background(), "token")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sessions.sessions["token"].IsRevoked() {
			t.Error("expected the session to be revoked")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, newMockSessionRepository(), &mockJWTGenerator{})
		err := uc.Logout(context.Background(), "missing")

		if !errors.Is(err, ErrInvalidRefreshToken) {
			t.Errorf("expected ErrInvalidRefreshToken, got: %v", err)
		}
	})
}
