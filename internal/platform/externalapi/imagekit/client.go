package imagekit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"social_backend/internal/feature/posts/usecase"
)

// uploadTag はこのサービスからアップロードされたファイルに付ける固定の出所タグです。
const uploadTag = "social_backend"

// uploadResponse はImageKitアップロードAPIのレスポンスボディです。
type uploadResponse struct {
	URL     string `json:"url"`
	Name    string `json:"name"`
	FileID  string `json:"fileId"`
	Message string `json:"message"` // エラー時のみ
}

// Client はImageKitへファイルをアップロードするMediaStore実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがMediaStoreを実装していることをコンパイル時に検証します。
var _ usecase.MediaStore = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Upload はファイルをImageKitにアップロードし、公開URLと確定ファイル名を返します。
// useUniqueFileNameを有効にするため、ストア側で名前が変わることがあります。
// ステータスコード200のみを成功として扱います。
func (c *Client) Upload(ctx context.Context, file io.Reader, fileName string) (*usecase.MediaUpload, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	// ファイル本体
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}

	// 希望ファイル名
	if err := w.WriteField("fileName", fileName); err != nil {
		return nil, err
	}
	// 一意な名前の割り当てをストアに要求
	if err := w.WriteField("useUniqueFileName", "true"); err != nil {
		return nil, err
	}
	// 出所タグ
	if err := w.WriteField("tags", uploadTag); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/api/v1/files/upload", c.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	// ImageKitはprivate keyをユーザー名、空パスワードのBasic認証を要求する
	req.SetBasicAuth(c.cfg.PrivateKey, "")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// JSONレスポンスをDTOにデコード
	var out uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("imagekit: decode response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		if out.Message != "" {
			return nil, fmt.Errorf("imagekit http %d: %s", res.StatusCode, out.Message)
		}
		return nil, fmt.Errorf("imagekit http %d", res.StatusCode)
	}

	return &usecase.MediaUpload{URL: out.URL, FileName: out.Name}, nil
}
