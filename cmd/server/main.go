package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"social_backend/internal/app/di"
	"social_backend/internal/app/router"
	authadapters "social_backend/internal/feature/auth/adapters"
	authhandler "social_backend/internal/feature/auth/transport/handler"
	authusecase "social_backend/internal/feature/auth/usecase"
	postadapters "social_backend/internal/feature/posts/adapters"
	posthandler "social_backend/internal/feature/posts/transport/handler"
	postusecase "social_backend/internal/feature/posts/usecase"
	infradb "social_backend/internal/platform/db"
	jwtmw "social_backend/internal/platform/jwt"
	infraredis "social_backend/internal/platform/redis"
)

// accessTokenTTL はアクセストークン（JWT）の有効期間です。
const accessTokenTTL = 15 * time.Minute

func main() {
	// .envは存在すれば読む（本番では環境変数を直接設定）
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to DB-backed sessions.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	postRepo := postadapters.NewPostGorm(db)
	userDir := postadapters.NewUserDirectoryGorm(db)
	mediaStore := di.NewMediaStore()

	// Usecase
	jwtGen := jwtmw.NewGenerator(secret, accessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen)
	postUC := postusecase.NewPostUsecase(postRepo, userDir, mediaStore)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	postH := posthandler.NewPostHandler(postUC)

	// ルータ生成
	r := router.NewRouter(authH, postH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
