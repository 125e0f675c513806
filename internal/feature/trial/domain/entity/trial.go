// Package entity はtrialフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Trial は無料トライアルの残高レコードです。
// 非プレミアムセッションの初回作成時に固定予算で初期化され、
// アクティブな間は1秒ごとに減算されます。
type Trial struct {
	UserID           uint
	SecondsRemaining int        // 残り秒数（0未満にはならない）
	ExpiresAt        *time.Time // 残高が初めて0になった時点で一度だけ now+24h が刻印される
	UpdatedAt        time.Time
}

// Exhausted は残高を使い切っている場合にtrueを返します。
func (t *Trial) Exhausted() bool {
	return t.SecondsRemaining <= 0
}

// Expired は残高が尽き、かつ刻印された猶予期限も過ぎている場合にtrueを返します。
func (t *Trial) Expired(now time.Time) bool {
	return t.Exhausted() && t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}
