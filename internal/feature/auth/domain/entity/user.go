// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// User はメールアドレスをキーとする登録ユーザーの台帳レコードです。
// 同じメールアドレスでの再ログイン時にプレミアム状態を復元するため、
// セッションとは独立して永続化されます。
type User struct {
	// ID is the database primary key.
	ID uint `gorm:"primaryKey"`

	// PublicID is the stable external identifier (UUID v4).
	PublicID string `gorm:"size:36;not null;uniqueIndex"`

	// Email is unique across all users and drives premium-status recall.
	Email string `gorm:"size:255;not null;uniqueIndex"`

	// Name is the display name. Defaults to the email local part on login-created accounts.
	Name string `gorm:"size:255;not null"`

	// Password is the bcrypt hash. Plaintext is never stored.
	Password string `gorm:"size:255;not null"`

	// IsPremium removes free-trial gating entirely once set.
	IsPremium bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
