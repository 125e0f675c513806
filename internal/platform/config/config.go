// Package config はアプリケーション全体の設定を環境変数から読み込みます。
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config はサーバーの起動に必要な設定値を保持します。
type Config struct {
	Port string // HTTPリッスンポート

	RedisAddr     string // Redisアドレス（host:port、空なら無効）
	RedisPassword string

	JWTExpiration time.Duration // 発行するJWTの有効期間

	TrialBudgetSeconds int // 無料トライアルの初期予算（0ならデフォルト）

	AllowedOrigins []string // CORSで許可するオリジン
}

// Load は.envとシステム環境変数からConfigを構築します。
// DB接続情報はdb.OpenDBが直接環境変数を参照します。
func Load() Config {
	// .envを読み込む（無ければシステム環境変数のみ）
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTExpiration: getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getEnv("REDIS_PORT", "6379")
	}

	if v := os.Getenv("TRIAL_BUDGET_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			slog.Warn("invalid TRIAL_BUDGET_SECONDS; using default", "value", v)
		} else {
			cfg.TrialBudgetSeconds = n
		}
	}

	if origin := os.Getenv("CORS_ALLOWED_ORIGIN"); origin != "" {
		cfg.AllowedOrigins = []string{origin}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration; using default", "key", key, "value", v)
		return fallback
	}
	return d
}
