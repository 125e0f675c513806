// Package ticker はトライアル残高を1秒ごとに減算するバックグラウンドループを提供します。
package ticker

import (
	"context"
	"log/slog"
	"time"
)

// TrialTicker はティックの適用先を抽象化します。
type TrialTicker interface {
	TickAll(ctx context.Context) error
}

// Ticker は一定間隔でTickAllを呼び出すループです。
type Ticker struct {
	trials   TrialTicker
	interval time.Duration
}

// New はTickerの新しいインスタンスを生成します。
// intervalが0以下の場合は1秒間隔になります。
func New(trials TrialTicker, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{trials: trials, interval: interval}
}

// Run はコンテキストがキャンセルされるまでティックを繰り返します。
// 呼び出し側がゴルーチンで起動します。
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("trial ticker stopped")
			return
		case <-ticker.C:
			if err := t.trials.TickAll(ctx); err != nil {
				slog.Warn("trial tick pass failed", "error", err)
			}
		}
	}
}
