// Package db はGORMによるデータベース接続を提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "stockoracle_backend/internal/feature/auth/domain/entity"
	symbolentity "stockoracle_backend/internal/feature/symbollist/domain/entity"
	trialadapters "stockoracle_backend/internal/feature/trial/adapters"
)

// OpenDB は環境変数の接続情報でPostgreSQLに接続します。
// 起動直後のDBがまだ受け付けない場合に備えて60秒までリトライします。
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
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
		// マイグレーション（User, Session, Trial, Symbol）
		if err := db.AutoMigrate(
			&authentity.User{},
			&authentity.Session{},
			&trialadapters.TrialModel{},
			&symbolentity.Symbol{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
