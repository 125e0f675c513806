package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"stockoracle_backend/internal/app/di"
	"stockoracle_backend/internal/app/router"
	authadapters "stockoracle_backend/internal/feature/auth/adapters"
	authhandler "stockoracle_backend/internal/feature/auth/transport/handler"
	authusecase "stockoracle_backend/internal/feature/auth/usecase"
	markethandler "stockoracle_backend/internal/feature/marketdata/transport/handler"
	marketusecase "stockoracle_backend/internal/feature/marketdata/usecase"
	newsadapters "stockoracle_backend/internal/feature/news/adapters"
	newshandler "stockoracle_backend/internal/feature/news/transport/handler"
	newsusecase "stockoracle_backend/internal/feature/news/usecase"
	predictionhandler "stockoracle_backend/internal/feature/prediction/transport/handler"
	predictionusecase "stockoracle_backend/internal/feature/prediction/usecase"
	symboladapters "stockoracle_backend/internal/feature/symbollist/adapters"
	symbolhandler "stockoracle_backend/internal/feature/symbollist/transport/handler"
	symbolusecase "stockoracle_backend/internal/feature/symbollist/usecase"
	trialhandler "stockoracle_backend/internal/feature/trial/transport/handler"
	"stockoracle_backend/internal/feature/trial/ticker"
	trialusecase "stockoracle_backend/internal/feature/trial/usecase"
	"stockoracle_backend/internal/platform/cache"
	"stockoracle_backend/internal/platform/config"
	infradb "stockoracle_backend/internal/platform/db"
	jwtmw "stockoracle_backend/internal/platform/jwt"
	infraredis "stockoracle_backend/internal/platform/redis"
	"stockoracle_backend/internal/platform/scheduler"
)

func main() {
	cfg := config.Load()

	// db
	db := infradb.OpenDB()

	// 銘柄マスターが空ならデフォルトを投入
	if err := symboladapters.SeedDefaults(context.Background(), db); err != nil {
		log.Println("[WARN] Failed to seed symbols:", err)
	}

	// Redis（無くてもDBフォールバックで動く）
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		log.Println("[WARN] Redis not configured. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	trialRepo := di.NewTrialRepository(rdb, db)
	symbolRepo := symboladapters.NewSymbolRepository(db)

	// Usecase
	trialUC := trialusecase.NewTrialUsecase(trialRepo, cfg.TrialBudgetSeconds)
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen, trialUC)
	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo)
	newsUC := newsusecase.NewNewsUsecase(newsadapters.NewNewsFixture())

	// チャート生成はRedisキャッシュでラップ
	chartGen := cache.NewCachingChartGenerator(rdb, 5*time.Minute, marketusecase.NewChartUsecase(), "charts")
	predictionUC := predictionusecase.NewPredictionUsecase(chartGen)

	// Handler
	handlers := router.Handlers{
		Auth:       authhandler.NewAuthHandler(authUC),
		Chart:      markethandler.NewChartHandler(chartGen, symbolUC),
		Symbol:     symbolhandler.NewSymbolHandler(symbolUC),
		News:       newshandler.NewNewsHandler(newsUC),
		Prediction: predictionhandler.NewPredictionHandler(predictionUC, symbolUC),
		Trial:      trialhandler.NewTrialHandler(trialUC),
	}

	// バックグラウンド処理: 1秒ティッカーと定期メンテナンス
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go ticker.New(trialUC, time.Second).Run(ctx)

	sched, err := scheduler.New(sessionRepo, trialUC)
	if err != nil {
		log.Fatal("failed to set up scheduler:", err)
	}
	sched.Start()
	defer sched.Stop()

	// ルータ生成
	r := router.NewRouter(handlers, cfg.AllowedOrigins)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
