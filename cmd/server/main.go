package main

import (
	"context"
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"finboard/internal/app/di"
	"finboard/internal/app/router"
	statehandler "finboard/internal/feature/appstate/transport/handler"
	stateusecase "finboard/internal/feature/appstate/usecase"
	charthandler "finboard/internal/feature/charts/transport/handler"
	chartsusecase "finboard/internal/feature/charts/usecase"
	cryptohandler "finboard/internal/feature/crypto/transport/handler"
	cryptousecase "finboard/internal/feature/crypto/usecase"
	forexhandler "finboard/internal/feature/forex/transport/handler"
	forexusecase "finboard/internal/feature/forex/usecase"
	"finboard/internal/feature/profile/adapters/gemini"
	profilehandler "finboard/internal/feature/profile/transport/handler"
	profileusecase "finboard/internal/feature/profile/usecase"
	quotehandler "finboard/internal/feature/quotes/transport/handler"
	quotesusecase "finboard/internal/feature/quotes/usecase"
	"finboard/internal/platform/cache"
	infradb "finboard/internal/platform/db"
	infraredis "finboard/internal/platform/redis"
)

func main() {
	// db（接続失敗時はstateが読み書き不可になるだけで他機能は動かす）
	db, err := infradb.Open()
	if err != nil {
		log.Println("[WARN] Database unavailable. Running without state store:", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 外部APIクライアント
	yahooClient := di.NewYahooClient()
	forexClient := di.NewForexClient()
	cryptoClient := di.NewCryptoClient()

	// AIサマリー（APIキー未設定などで失敗してもフォールバック文で継続）
	var summarizer profileusecase.Summarizer
	if s, err := gemini.NewSummarizer(context.Background()); err != nil {
		slog.Warn("summarizer unavailable, profiles use fallback text", "error", err)
	} else {
		summarizer = s
	}

	// Repository
	stateRepo := di.NewStateRepository(db)

	// Redisキャッシュでラップ（ttl=0は既定の5分）
	cachedCharts := cache.NewCachingChartProvider(rdb, 0, yahooClient, "charts")

	// Usecase
	quotesUC := quotesusecase.NewQuotesUsecase(yahooClient)
	chartsUC := chartsusecase.NewChartsUsecase(cachedCharts)
	forexUC := forexusecase.NewForexUsecase(forexClient, stateRepo)
	cryptoUC := cryptousecase.NewCryptoUsecase(cryptoClient)
	profileUC := profileusecase.NewProfileUsecase(yahooClient, summarizer)
	stateUC := stateusecase.NewStateUsecase(stateRepo)

	// Handler
	quoteH := quotehandler.NewQuoteHandler(quotesUC)
	chartH := charthandler.NewChartHandler(chartsUC)
	forexH := forexhandler.NewForexHandler(forexUC)
	cryptoH := cryptohandler.NewCryptoHandler(cryptoUC)
	profileH := profilehandler.NewProfileHandler(profileUC)
	stateH := statehandler.NewStateHandler(stateUC)

	// ルータ生成
	r := router.NewRouter(quoteH, chartH, forexH, cryptoH, profileH, stateH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
