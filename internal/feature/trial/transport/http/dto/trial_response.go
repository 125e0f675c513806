// Package dto はtrialフィーチャーのAPIレスポンス型を定義します。
package dto

import "time"

// TrialRes は無料トライアルの残高レスポンスです。
type TrialRes struct {
	SecondsRemaining int        `json:"seconds_remaining"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	Expired          bool       `json:"expired"`
}
