// demoは認証も永続化も持たないスタンドアロンの簡易サーバーです。
// 固定の10件のテキスト投稿をインメモリリポジトリから配信します。
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"social_backend/internal/feature/textposts/adapters"
	"social_backend/internal/feature/textposts/transport/handler"
	"social_backend/internal/feature/textposts/usecase"
	platformhandler "social_backend/internal/platform/http/handler"
)

func main() {
	_ = godotenv.Load()

	repo := adapters.NewTextPostMemory(adapters.SeedPosts())
	uc := usecase.NewTextPostUsecase(repo)
	h := handler.NewTextPostHandler(uc)

	r := gin.Default()
	r.GET("/healthz", platformhandler.Health)
	r.GET("/posts", h.List)
	r.GET("/posts/:id", h.Get)

	if err := r.Run(":8081"); err != nil {
		log.Fatal(err)
	}
}
