// Package scheduler は定期メンテナンスジョブを管理します。
package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// SessionCleaner は期限切れセッションの削除を抽象化します。
type SessionCleaner interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// TrialSweeper は失効したトライアルの掃除を抽象化します。
type TrialSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Scheduler はcronで定期ジョブを実行します。
// 毎日3時に期限切れセッションを削除し、毎時失効トライアルを掃除します。
type Scheduler struct {
	cron     *cron.Cron
	sessions SessionCleaner
	trials   TrialSweeper
}

// New はジョブ登録済みのSchedulerを生成します。
func New(sessions SessionCleaner, trials TrialSweeper) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		sessions: sessions,
		trials:   trials,
	}

	if _, err := s.cron.AddFunc("0 3 * * *", s.cleanSessions); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc("@hourly", s.sweepTrials); err != nil {
		return nil, err
	}
	return s, nil
}

// Start はジョブの実行を開始します。
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("maintenance scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop は実行を停止し、走行中のジョブの完了を待ちます。
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("maintenance scheduler stopped")
}

func (s *Scheduler) cleanSessions() {
	deleted, err := s.sessions.DeleteExpired(context.Background())
	if err != nil {
		slog.Error("session cleanup failed", "error", err)
		return
	}
	slog.Info("expired sessions deleted", "count", deleted)
}

func (s *Scheduler) sweepTrials() {
	swept, err := s.trials.SweepExpired(context.Background())
	if err != nil {
		slog.Error("trial sweep failed", "error", err)
		return
	}
	if swept > 0 {
		slog.Info("expired trials swept", "count", swept)
	}
}
