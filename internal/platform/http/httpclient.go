// Package http はメディアストア呼び出し用の共有HTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient はメディアストアへのアップロード用に調整したHTTPクライアントを作成します。
//
// http.DefaultClientはタイムアウトを持たないため使用しないこと。
// Transportを明示するのは接続の再利用とリソース枯渇防止のためです:
//   - DialContext: TCP接続は5秒で諦め、確立済み接続は30秒keep-alive
//   - MaxIdleConns / IdleConnTimeout: アイドル接続は100本・90秒まで保持
//   - TLSHandshakeTimeout: HTTPSハンドシェイクは5秒まで
//
// timeoutはアップロード1回全体（接続＋転送＋レスポンス）の上限で、
// 呼び出し元の設定（imagekit.Config.Timeout）から渡されます。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
