// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockoracle_backend/internal/api"
	"stockoracle_backend/internal/feature/auth/domain/entity"
	"stockoracle_backend/internal/feature/auth/transport/http/dto"
	"stockoracle_backend/internal/feature/auth/usecase"
	jwtmw "stockoracle_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error)
	Login(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error)
	Logout(ctx context.Context, sessionID string, userID uint) error
	Upgrade(ctx context.Context, userID uint) (*entity.User, error)
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却（詳細は公開しない）
// - 成功時は201でログイン済みの資格情報を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	res, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, clientInfo(c))
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrInvalidRegistration) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid registration details"})
			return
		}
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "registration failed"})
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toLoginRes(res))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（汎用メッセージ）
// - 成功時はトークンとセッションID付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, toLoginRes(res))
}

// Logout はセッションを失効させます。存在しないセッションでも200を返します（冪等）。
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	if err := h.auth.Logout(c.Request.Context(), req.SessionID, userID); err != nil {
		slog.Error("logout failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Upgrade は無料アカウントをプレミアムに昇格させます。2回目以降の呼び出しは無害です。
func (h *AuthHandler) Upgrade(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	user, err := h.auth.Upgrade(c.Request.Context(), userID)
	if err != nil {
		slog.Error("upgrade failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "upgrade failed"})
		return
	}

	slog.Info("account upgraded", "user_id", userID)
	c.JSON(http.StatusOK, toUserRes(user))
}

// Me は認証済みユーザーのプロフィールを返します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, toUserRes(user))
}

// clientInfo はセッション記録用のクライアントメタデータを抽出します。
func clientInfo(c *gin.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

func toUserRes(u *entity.User) dto.UserRes {
	return dto.UserRes{
		ID:        u.PublicID,
		Email:     u.Email,
		Name:      u.Name,
		IsPremium: u.IsPremium,
	}
}

func toLoginRes(r *usecase.LoginResult) dto.LoginRes {
	return dto.LoginRes{
		Token:     r.Token,
		SessionID: r.SessionID,
		User:      toUserRes(r.User),
	}
}
