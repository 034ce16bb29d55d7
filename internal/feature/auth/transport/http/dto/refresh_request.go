package dto

// RefreshReq は/refreshおよび/logoutエンドポイントのリクエストボディを表します。
type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required,len=64,hexadecimal"`
}
