package entity

import "time"

// Session は1回のログインに対応するサーバー側セッションです。
// ログアウトで失効し、期限切れはストレージ側のTTLまたは定期パージで回収されます。
type Session struct {
	ID        string     `gorm:"primaryKey;size:64"` // 64文字のhex文字列
	UserID    uint       `gorm:"index;not null"`
	UserAgent string     `gorm:"size:512"`
	IPAddress string     `gorm:"size:45"` // IPv6の最大長
	CreatedAt time.Time  `gorm:"not null"`
	ExpiresAt time.Time  `gorm:"index;not null"`
	RevokedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM.
func (Session) TableName() string {
	return "sessions"
}

// IsExpired は有効期限を過ぎている場合にtrueを返します。
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked は失効済みの場合にtrueを返します。
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid は期限内かつ未失効の場合にtrueを返します。
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}
