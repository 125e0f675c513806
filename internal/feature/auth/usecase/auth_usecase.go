package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stockoracle_backend/internal/feature/auth/domain/entity"
)

const (
	// MinPasswordLength はパスワードの最低文字数を定義します。
	MinPasswordLength = 6

	// MaxSessionsPerUser は1ユーザーあたりの同時セッション上限です。
	// 上限に達した場合は最も古いセッションを削除します。
	MaxSessionsPerUser = 5

	// SessionTTL はセッションの有効期間です。
	SessionTTL = 7 * 24 * time.Hour
)

// UserRepository はユーザー台帳の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーを台帳に永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// SetPremium はユーザーのプレミアムフラグを更新します。
	SetPremium(ctx context.Context, id uint, premium bool) error
}

// JWTGenerator はアクセストークン生成のインターフェースを定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// TrialService は無料トライアルのライフサイクル操作を抽象化します。
// 実装はtrialフィーチャーのusecaseが提供します。
type TrialService interface {
	// Start は非プレミアムユーザーのトライアルを開始（既存があれば再開）します。
	Start(ctx context.Context, userID uint) error
	// Suspend はログアウト時にカウントダウンを停止します（残秒数は保持）。
	Suspend(ctx context.Context, userID uint) error
	// Clear はプレミアム移行時にトライアル記録を完全に削除します。
	Clear(ctx context.Context, userID uint) error
}

// ClientInfo はセッション記録用のクライアントメタデータです。
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// LoginResult はログイン/登録成功時に発行される資格情報一式です。
type LoginResult struct {
	Token     string
	SessionID string
	User      *entity.User
}

// authUsecase は認証とセッションライフサイクルのビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
	trials       TrialService
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator, trials TrialService) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
		trials:       trials,
	}
}

// validatePassword はパスワードが最低要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	return nil
}

// Register は新規ユーザーを登録し、ログイン済みの状態で資格情報を返します。
// 新規アカウントは常に無料プランで開始し、トライアルが起動します。
func (u *authUsecase) Register(ctx context.Context, name, email, password string, client ClientInfo) (*LoginResult, error) {
	if name == "" || email == "" {
		return nil, ErrInvalidRegistration
	}
	if err := validatePassword(password); err != nil {
		return nil, ErrInvalidRegistration
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		PublicID: uuid.NewString(),
		Email:    email,
		Name:     name,
		Password: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.openSession(ctx, user, client)
}

// Login はユーザーを認証し、成功時に資格情報を返します。
// 未知のメールアドレスはその場で無料アカウントとして登録されます
// （表示名はメールアドレスのローカル部）。既知のメールアドレスは
// bcrypt照合に失敗するとErrInvalidCredentialsを返し、部分的な状態変化は起きません。
// 再ログイン時は台帳に保存されたプレミアムフラグがそのまま復元されます。
func (u *authUsecase) Login(ctx context.Context, email, password string, client ClientInfo) (*LoginResult, error) {
	if email == "" {
		return nil, ErrInvalidCredentials
	}
	if err := validatePassword(password); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		// 既存ユーザー: パスワードを照合
		if compareErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); compareErr != nil {
			return nil, ErrInvalidCredentials
		}
	case errors.Is(err, ErrUserNotFound):
		// 初回ログイン: 無料アカウントを自動作成
		user, err = u.provision(ctx, email, password)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return u.openSession(ctx, user, client)
}

// Logout はセッションを失効させ、トライアルのカウントダウンを停止します。
// 既に存在しないセッションに対しては何もしません（冪等）。
func (u *authUsecase) Logout(ctx context.Context, sessionID string, userID uint) error {
	if err := u.sessions.Revoke(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	if err := u.trials.Suspend(ctx, userID); err != nil {
		slog.Warn("failed to suspend trial on logout", "user_id", userID, "error", err)
	}
	return nil
}

// Upgrade はユーザーをプレミアムに昇格させ、トライアル記録を削除します。
// 既にプレミアムの場合は何もしません（冪等）。
func (u *authUsecase) Upgrade(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsPremium {
		return user, nil
	}

	if err := u.users.SetPremium(ctx, userID, true); err != nil {
		return nil, err
	}
	if err := u.trials.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear trial state: %w", err)
	}

	user.IsPremium = true
	return user, nil
}

// CurrentUser は認証済みユーザーのプロフィールを返します。
func (u *authUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// provision はログイン時の自動アカウント作成を行います。
func (u *authUsecase) provision(ctx context.Context, email, password string) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	user := &entity.User{
		PublicID: uuid.NewString(),
		Email:    email,
		Name:     name,
		Password: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// openSession はセッション上限を適用した上で新しいセッションとトークンを発行し、
// 非プレミアムユーザーのトライアルを起動します。
func (u *authUsecase) openSession(ctx context.Context, user *entity.User, client ClientInfo) (*LoginResult, error) {
	count, err := u.sessions.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if count >= MaxSessionsPerUser {
		if err := u.sessions.DeleteOldestByUserID(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    user.ID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// トライアル起動はベストエフォート: 失敗してもログインは成立させる
	if !user.IsPremium {
		if err := u.trials.Start(ctx, user.ID); err != nil {
			slog.Warn("failed to start trial", "user_id", user.ID, "error", err)
		}
	}

	return &LoginResult{Token: token, SessionID: session.ID, User: user}, nil
}

// newSessionID は64文字のhexセッションIDを生成します。
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
