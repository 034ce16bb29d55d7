package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/textposts/domain/entity"
	"social_backend/internal/feature/textposts/usecase"
)

// mockTextPostUsecase is a mock implementation of the TextPostUsecase interface.
type mockTextPostUsecase struct {
	GetFunc  func(ctx context.Context, id int) (*entity.TextPost, error)
	ListFunc func(ctx context.Context) (map[int]entity.TextPost, error)
}

func (m *mockTextPostUsecase) Get(ctx context.Context, id int) (*entity.TextPost, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrTextPostNotFound
}

func (m *mockTextPostUsecase) List(ctx context.Context) (map[int]entity.TextPost, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return map[int]entity.TextPost{}, nil
}

// setupRouter はデモエンドポイントを登録したテスト用ルーターを構築します。
func setupRouter(uc TextPostUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTextPostHandler(uc)
	r.GET("/posts", h.List)
	r.GET("/posts/:id", h.Get)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTextPostHandler_List(t *testing.T) {
	t.Run("returns the collection keyed by ID", func(t *testing.T) {
		uc := &mockTextPostUsecase{
			ListFunc: func(ctx context.Context) (map[int]entity.TextPost, error) {
				return map[int]entity.TextPost{
					1: {ID: 1, Title: "First", Content: "one"},
					2: {ID: 2, Title: "Second", Content: "two"},
				}, nil
			},
		}
		w := doGet(setupRouter(uc), "/posts")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 posts, got %d", len(body))
		}
		if body["1"].Title != "First" || body["2"].Content != "two" {
			t.Errorf("unexpected payload: %+v", body)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		uc := &mockTextPostUsecase{
			ListFunc: func(ctx context.Context) (map[int]entity.TextPost, error) {
				return nil, context.DeadlineExceeded
			},
		}
		w := doGet(setupRouter(uc), "/posts")

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestTextPostHandler_Get(t *testing.T) {
	uc := &mockTextPostUsecase{
		GetFunc: func(ctx context.Context, id int) (*entity.TextPost, error) {
			if id == 3 {
				return &entity.TextPost{ID: 3, Title: "Third", Content: "three"}, nil
			}
			return nil, usecase.ErrTextPostNotFound
		},
	}
	r := setupRouter(uc)

	t.Run("found", func(t *testing.T) {
		w := doGet(r, "/posts/3")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		// IDはレスポンスに含まれない
		if body := w.Body.String(); body != `{"title":"Third","content":"three"}` {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("unknown ID", func(t *testing.T) {
		w := doGet(r, "/posts/999")

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"error":"Post not found"}` {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("malformed ID is treated as unknown", func(t *testing.T) {
		w := doGet(r, "/posts/abc")

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
