package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stockoracle_backend/internal/feature/trial/domain/entity"
)

const (
	// DefaultBudgetSeconds は無料トライアルの初期予算です（5時間）。
	DefaultBudgetSeconds = 5 * 60 * 60

	// ExpiryGrace は残高が尽きてから刻印される猶予期限までの期間です。
	ExpiryGrace = 24 * time.Hour
)

// TrialRepository はトライアル残高の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TrialRepository interface {
	// Get はユーザーのトライアル残高を取得します。
	// 記録が存在しない場合、ErrTrialNotFoundを返します。
	Get(ctx context.Context, userID uint) (*entity.Trial, error)

	// Save はトライアル残高を保存します（毎ティック呼ばれます）。
	Save(ctx context.Context, trial *entity.Trial) error

	// Delete はトライアル記録（残高と猶予期限）を完全に削除します。
	Delete(ctx context.Context, userID uint) error

	// SetActive はユーザーをカウントダウン対象に含める/外すを切り替えます。
	SetActive(ctx context.Context, userID uint, active bool) error

	// ListActive はカウントダウン対象のユーザーIDを返します。
	ListActive(ctx context.Context) ([]uint, error)
}

// trialUsecase は無料トライアルのライフサイクルを実装します。
// 残高の変更はティッカーゴルーチンとリクエストハンドラーからのみ行われ、
// 各リポジトリ操作は単体で原子的なため、プロセス内の共有状態はありません。
type trialUsecase struct {
	trials TrialRepository
	budget int
	now    func() time.Time
}

// NewTrialUsecase はtrialUsecaseの新しいインスタンスを生成します。
// budgetSecondsが0以下の場合はDefaultBudgetSecondsを使用します。
func NewTrialUsecase(trials TrialRepository, budgetSeconds int) *trialUsecase {
	if budgetSeconds <= 0 {
		budgetSeconds = DefaultBudgetSeconds
	}
	return &trialUsecase{
		trials: trials,
		budget: budgetSeconds,
		now:    time.Now,
	}
}

// Start はトライアルを開始します。記録が無ければ初期予算で作成し、
// 既存の記録は残高をリセットせずそのまま再開します。
// 使い切った後の再付与は行いません（プレミアム移行のみが出口）。
func (u *trialUsecase) Start(ctx context.Context, userID uint) error {
	_, err := u.trials.Get(ctx, userID)
	if errors.Is(err, ErrTrialNotFound) {
		trial := &entity.Trial{
			UserID:           userID,
			SecondsRemaining: u.budget,
			UpdatedAt:        u.now(),
		}
		if err := u.trials.Save(ctx, trial); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return u.trials.SetActive(ctx, userID, true)
}

// Tick は残高を1秒減算して保存します。0を下回ることはなく、
// 初めて0に達した時だけ猶予期限を刻印します（再刻印はしない）。
func (u *trialUsecase) Tick(ctx context.Context, userID uint) error {
	trial, err := u.trials.Get(ctx, userID)
	if errors.Is(err, ErrTrialNotFound) {
		// 記録が消えたユーザーはカウントダウン対象から外す
		return u.trials.SetActive(ctx, userID, false)
	}
	if err != nil {
		return err
	}

	switch {
	case trial.SecondsRemaining > 1:
		trial.SecondsRemaining--
	case trial.SecondsRemaining > 0:
		trial.SecondsRemaining = 0
		if trial.ExpiresAt == nil {
			expiry := u.now().Add(ExpiryGrace)
			trial.ExpiresAt = &expiry
		}
	default:
		// 既に0: 減算も再刻印もしない
		return nil
	}

	trial.UpdatedAt = u.now()
	return u.trials.Save(ctx, trial)
}

// TickAll はカウントダウン対象の全ユーザーに1ティックを適用します。
// 1秒間隔のティッカーから呼ばれます。個別の失敗はログに残して続行します。
func (u *trialUsecase) TickAll(ctx context.Context) error {
	ids, err := u.trials.ListActive(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := u.Tick(ctx, id); err != nil {
			slog.Warn("trial tick failed", "user_id", id, "error", err)
		}
	}
	return nil
}

// SweepExpired はカウントダウン対象のうち、残高が尽きて猶予期限も過ぎた
// ユーザーを対象から外します。定期メンテナンスジョブから呼ばれます。
func (u *trialUsecase) SweepExpired(ctx context.Context) (int, error) {
	ids, err := u.trials.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	now := u.now()
	swept := 0
	for _, id := range ids {
		trial, err := u.trials.Get(ctx, id)
		if errors.Is(err, ErrTrialNotFound) {
			continue
		}
		if err != nil {
			slog.Warn("trial sweep failed", "user_id", id, "error", err)
			continue
		}
		if !trial.Expired(now) {
			continue
		}
		if err := u.trials.SetActive(ctx, id, false); err != nil {
			slog.Warn("trial sweep failed", "user_id", id, "error", err)
			continue
		}
		swept++
	}
	return swept, nil
}

// Suspend はカウントダウンを停止します。残高は保持されるため、
// 次回ログインでそのまま再開されます。
func (u *trialUsecase) Suspend(ctx context.Context, userID uint) error {
	return u.trials.SetActive(ctx, userID, false)
}

// Clear はプレミアム移行時に残高と猶予期限のストレージを完全に削除します。
func (u *trialUsecase) Clear(ctx context.Context, userID uint) error {
	if err := u.trials.SetActive(ctx, userID, false); err != nil {
		return err
	}
	if err := u.trials.Delete(ctx, userID); err != nil && !errors.Is(err, ErrTrialNotFound) {
		return err
	}
	return nil
}

// Status はユーザーのトライアル残高を返します。
func (u *trialUsecase) Status(ctx context.Context, userID uint) (*entity.Trial, error) {
	return u.trials.Get(ctx, userID)
}
