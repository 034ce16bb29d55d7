// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health は /healthz エンドポイントを処理します。
// APIサーバーとデモサーバーの両方が同じハンドラーを公開します。
//
// ロードバランサーのプローブを想定し、GETは {"status":"ok"}、
// HEADは200、OPTIONSは204を返します。古い結果を掴まないよう
// キャッシュは常に無効化します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
