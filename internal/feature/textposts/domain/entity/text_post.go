// Package entity はtextpostsフィーチャーのドメインエンティティを定義します。
package entity

// TextPost is one item of the fixed demo collection.
// デモ変種専用のエンティティで、永続化も所有者も持ちません。
type TextPost struct {
	ID      int    `json:"-"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
