// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "stockoracle_backend/internal/feature/auth/transport/handler"
	markethandler "stockoracle_backend/internal/feature/marketdata/transport/handler"
	newshandler "stockoracle_backend/internal/feature/news/transport/handler"
	predictionhandler "stockoracle_backend/internal/feature/prediction/transport/handler"
	symbolhandler "stockoracle_backend/internal/feature/symbollist/transport/handler"
	trialhandler "stockoracle_backend/internal/feature/trial/transport/handler"
	"stockoracle_backend/internal/platform/http/handler"
	jwtmw "stockoracle_backend/internal/platform/jwt"
	"stockoracle_backend/internal/shared/ratelimiter"
)

// Handlers はルーティングに必要なハンドラーをまとめます。
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Chart      *markethandler.ChartHandler
	Symbol     *symbolhandler.SymbolHandler
	News       *newshandler.NewsHandler
	Prediction *predictionhandler.PredictionHandler
	Trial      *trialhandler.TrialHandler
}

// NewRouter は全エンドポイントを登録したGinエンジンを生成します。
// allowedOriginsが空の場合、CORSは全オリジン許可になります。
func NewRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsCfg.AllowOrigins = allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// 認証エンドポイントは総当たり対策でIP単位のレート制限をかける
	authLimit := ratelimiter.NewRateLimiter(10, time.Minute).Middleware()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/register", authLimit, h.Auth.Register)
	// ログイン（JWT発行・セッション開始）
	r.POST("/login", authLimit, h.Auth.Login)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/charts/:symbol", h.Chart.GetChartHandler)
		auth.GET("/symbols", h.Symbol.List)
		auth.GET("/news", h.News.List)
		auth.GET("/predictions/:symbol", h.Prediction.Get)
		auth.GET("/trial", h.Trial.Status)
		auth.GET("/me", h.Auth.Me)
		auth.POST("/logout", h.Auth.Logout)
		auth.POST("/upgrade", h.Auth.Upgrade)
	}

	return r
}
