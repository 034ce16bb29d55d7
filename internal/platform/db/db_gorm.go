// Package db はGORMデータベース接続のオープンとマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "social_backend/internal/feature/auth/adapters"
	authentity "social_backend/internal/feature/auth/domain/entity"
	postentity "social_backend/internal/feature/posts/domain/entity"
)

// OpenDB は環境変数の接続情報でPostgresに接続します。
// 起動直後のDB未準備に備えて最大60秒リトライします。
// RUN_MIGRATIONS=true のときのみAutoMigrateを実行します。
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError: 重複キー等をgorm.ErrDuplicatedKeyへ変換（adaptersが依存）
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Session, Post）
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&postentity.Post{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
